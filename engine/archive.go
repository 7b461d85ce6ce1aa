package engine

import (
	"github.com/skillprotocol/skill/skill"
)

// Snapshot is an immutable view of a settled round. Only post-settlement
// fields appear here; a snapshot taken once stays valid until the round
// is pruned, which makes it safe to cache and hand out by pointer.
type Snapshot struct {
	ID              uint64
	Deployed        [skill.NumPositions]uint64
	Count           [skill.NumPositions]uint64
	TotalDeployed   uint64
	TotalWinnings   uint64
	WinningPosition uint8
	SplitFlag       bool
	BonusFlag       bool
	EntropySample   skill.Bytes32
	ExpiresAt       uint64
}

// RoundSnapshot returns the settled round's outcome. Snapshots are
// cached, so repeated reads of historical rounds skip the store.
func (e *Engine) RoundSnapshot(id uint64) (*Snapshot, error) {
	if cached, ok := e.snapshots.Get(id); ok {
		return cached.(*Snapshot), nil
	}

	rnd, ok := e.getRound(id)
	if !ok {
		return nil, ErrUnknownRound
	}
	if err := e.st.Err(); err != nil {
		return nil, err
	}
	if !rnd.Finalized() {
		return nil, ErrRoundNotEnded
	}

	snap := &Snapshot{
		ID:              rnd.ID,
		Deployed:        rnd.Deployed,
		Count:           rnd.Count,
		TotalDeployed:   rnd.TotalDeployed,
		TotalWinnings:   rnd.TotalWinnings,
		WinningPosition: rnd.WinningPosition,
		SplitFlag:       rnd.SplitFlag,
		BonusFlag:       rnd.BonusFlag,
		EntropySample:   rnd.EntropySample,
		ExpiresAt:       rnd.ExpiresAt,
	}
	e.snapshots.Add(id, snap)
	return snap, nil
}
