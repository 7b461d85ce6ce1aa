package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/skillprotocol/skill/board"
)

// PruneRound removes a settled round record whose settlement window has
// passed, bounding historical storage growth. Residual escrow — rounding
// remainders and unclaimed forfeits — is swept into the treasury vault,
// never discarded.
func (e *Engine) PruneRound(id uint64, now uint64) error {
	return e.atomically(func() error {
		rnd, ok := e.getRound(id)
		if !ok {
			return ErrUnknownRound
		}
		if !rnd.Finalized() {
			return ErrRoundNotEnded
		}
		if now < rnd.ExpiresAt {
			return ErrWindowOpen
		}

		tre, err := e.getTreasury()
		if err != nil {
			return err
		}

		swept, ok := safeAdd(tre.VaultBalance, rnd.Escrow)
		if !ok {
			return ErrOverflow
		}
		tre.VaultBalance = swept
		e.saveTreasury(tre)
		e.st.Delete(board.RoundKey(id))
		e.snapshots.Remove(id)

		log.WithFields(logrus.Fields{
			"round": id,
			"swept": rnd.Escrow,
		}).Info("round pruned")
		metricRoundsPruned().Add(1)
		return nil
	})
}
