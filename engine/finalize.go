package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/skillprotocol/skill/board"
	"github.com/skillprotocol/skill/skill"
)

// Finalize closes the ended round: determines the winning position,
// derives the secondary random outcomes from the entropy sample, carves
// the fees out of the losers' pool and opens the next round.
// It fails with ErrRoundNotEnded while the round window is still open.
func (e *Engine) Finalize(entropy []byte, now uint64) error {
	return e.atomically(func() error {
		due, err := e.finalizeDue(now)
		if err != nil {
			return err
		}
		if !due {
			return ErrRoundNotEnded
		}
		return e.finalizeActive(entropy, now)
	})
}

// Crank finalizes the round if one is due and succeeds as a no-op
// otherwise. It is the self-cranking entry used by Play, so any
// participant's move can settle an overdue round first.
func (e *Engine) Crank(entropy []byte, now uint64) error {
	return e.atomically(func() error {
		due, err := e.finalizeDue(now)
		if err != nil {
			return err
		}
		if !due {
			return nil
		}
		return e.finalizeActive(entropy, now)
	})
}

func (e *Engine) finalizeDue(now uint64) (bool, error) {
	brd, err := e.mustBoard()
	if err != nil {
		return false, err
	}
	if brd.RoundEnd == board.NeverEnds || now < brd.RoundEnd {
		return false, nil
	}
	return true, nil
}

func (e *Engine) finalizeActive(entropy []byte, now uint64) error {
	brd, err := e.mustBoard()
	if err != nil {
		return err
	}
	cfg, err := e.getConfig()
	if err != nil {
		return err
	}
	tre, err := e.getTreasury()
	if err != nil {
		return err
	}

	rnd, ok := e.getRound(brd.ActiveRound)
	if !ok {
		// The window opened and elapsed without a single deposit.
		rnd = &board.Round{
			ID:              brd.ActiveRound,
			ExpiresAt:       board.NeverEnds,
			Status:          board.RoundActive,
			WinningPosition: skill.NoPosition,
		}
	}
	if rnd.Finalized() {
		return nil
	}

	winner := rnd.WinnerByStake()
	rnd.WinningPosition = winner
	rnd.EntropySample = board.MixEntropy(entropy, rnd.TotalDeployed, rnd.ID, now)

	rng := rnd.Rng()
	rnd.SplitFlag = board.IsSplit(rng)
	rnd.BonusFlag = board.HitsBonus(rng)

	// Carve fees out of the losers' pool. The 89% remainder stays in
	// escrow as the winners' pool.
	pool := rnd.TotalDeployed - rnd.Deployed[winner]
	adminFee := percent(pool, skill.AdminFeePercent)
	vaultCut := percent(pool, skill.VaultPercent)
	rnd.TotalWinnings = pool - adminFee - vaultCut
	rnd.Escrow -= adminFee + vaultCut
	tre.FeeBalance += adminFee
	tre.VaultBalance += vaultCut

	if rnd.BonusFlag {
		granted := mint(tre, cfg.BonusEmission)
		tre.BonusPool += granted
		metricEmissionMinted().Add(int64(granted))
	}

	rnd.Status = board.RoundEnded
	rnd.ExpiresAt = now + cfg.ClaimWindow

	brd.ActiveRound++
	brd.RoundStart = now
	brd.RoundEnd = now + cfg.RoundDuration

	e.saveRound(rnd)
	e.saveBoard(brd)
	e.saveTreasury(tre)

	log.WithFields(logrus.Fields{
		"round":    rnd.ID,
		"winner":   winner,
		"total":    rnd.TotalDeployed,
		"winnings": rnd.TotalWinnings,
		"split":    rnd.SplitFlag,
		"bonus":    rnd.BonusFlag,
	}).Info("round finalized")
	metricRoundsFinalized().Add(1)
	return nil
}
