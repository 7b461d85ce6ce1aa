// Package engine implements the round/reward state machine: deposits,
// round finalization, reward checkpointing, the prediction mini-game and
// the claim/prune/migrate maintenance operations.
//
// Every operation is a single atomic state transition: a journal
// checkpoint is taken on entry and reverted on any failure, so partial
// application is never observable. The engine holds no state of its own
// between invocations other than read-only snapshot caches; time and
// entropy enter as explicit arguments.
package engine

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"

	"github.com/skillprotocol/skill/board"
	"github.com/skillprotocol/skill/skill"
	"github.com/skillprotocol/skill/state"
)

var log = logrus.WithField("module", "engine")

const snapshotCacheSize = 128

// Engine executes game state transitions against a state.
type Engine struct {
	st        *state.State
	snapshots *lru.Cache // round id -> *Snapshot, settled rounds only
}

// New creates an engine over the given state.
func New(st *state.State) *Engine {
	snapshots, _ := lru.New(snapshotCacheSize)
	return &Engine{st: st, snapshots: snapshots}
}

// atomically runs fn as one all-or-nothing transition.
func (e *Engine) atomically(fn func() error) error {
	cp := e.st.NewCheckpoint()
	if err := fn(); err != nil {
		e.st.RevertTo(cp)
		return err
	}
	if err := e.st.Err(); err != nil {
		e.st.RevertTo(cp)
		return err
	}
	return nil
}

func (e *Engine) getBoard() (*board.Board, bool) {
	var b board.Board
	if !e.st.Get(board.BoardKey(), board.TagBoard, &b) {
		return nil, false
	}
	return &b, true
}

func (e *Engine) mustBoard() (*board.Board, error) {
	b, ok := e.getBoard()
	if !ok {
		return nil, ErrNotInitialized
	}
	return b, nil
}

func (e *Engine) saveBoard(b *board.Board) {
	e.st.Set(board.BoardKey(), board.TagBoard, b)
}

func (e *Engine) getConfig() (*board.Config, error) {
	var c board.Config
	if !e.st.Get(board.ConfigKey(), board.TagConfig, &c) {
		return nil, ErrNotInitialized
	}
	return &c, nil
}

func (e *Engine) getTreasury() (*board.Treasury, error) {
	var t board.Treasury
	if !e.st.Get(board.TreasuryKey(), board.TagTreasury, &t) {
		return nil, ErrNotInitialized
	}
	return &t, nil
}

func (e *Engine) saveTreasury(t *board.Treasury) {
	e.st.Set(board.TreasuryKey(), board.TagTreasury, t)
}

func (e *Engine) getRound(id uint64) (*board.Round, bool) {
	var r board.Round
	if !e.st.Get(board.RoundKey(id), board.TagRound, &r) {
		return nil, false
	}
	return &r, true
}

func (e *Engine) saveRound(r *board.Round) {
	e.st.Set(board.RoundKey(r.ID), board.TagRound, r)
}

func (e *Engine) getMiner(authority skill.Address) (*board.Miner, bool) {
	var m board.Miner
	if !e.st.Get(board.MinerKey(authority), board.TagMiner, &m) {
		return nil, false
	}
	return &m, true
}

// getOrCreateMiner opens the miner record, creating a fresh one on first
// contact with the engine.
func (e *Engine) getOrCreateMiner(authority skill.Address) *board.Miner {
	if m, ok := e.getMiner(authority); ok {
		return m
	}
	return &board.Miner{
		Authority:    authority,
		CurrentRound: board.NoRound,
		SettledRound: board.NoRound,
		Prediction:   skill.NoPosition,
	}
}

func (e *Engine) saveMiner(m *board.Miner) {
	e.st.Set(board.MinerKey(m.Authority), board.TagMiner, m)
}

// mint grants up to amount of new emission, truncated so the emitted
// supply never exceeds the hard cap. Degrades softly: the excess is
// dropped, not an error.
func mint(t *board.Treasury, amount uint64) uint64 {
	remaining := t.MaxSupply - t.EmittedSupply
	if amount > remaining {
		amount = remaining
	}
	t.EmittedSupply += amount
	return amount
}
