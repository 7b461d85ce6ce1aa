package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/skillprotocol/skill/board"
	"github.com/skillprotocol/skill/skill"
)

// SubmitPrediction records the miner's winning-position prediction for
// the active round. Exactly one prediction per round, submitted strictly
// before round end.
func (e *Engine) SubmitPrediction(authority skill.Address, position uint8, now uint64) error {
	return e.atomically(func() error {
		if position >= skill.NumPositions {
			return ErrBadPosition
		}
		brd, err := e.mustBoard()
		if err != nil {
			return err
		}
		if brd.RoundEnd != board.NeverEnds && now >= brd.RoundEnd {
			return ErrRoundClosed
		}

		m := e.getOrCreateMiner(authority)
		if m.HasPredictionForRound(brd.ActiveRound) || m.LastPredictionRound > brd.ActiveRound {
			return ErrAlreadyPredicted
		}

		m.RecordPrediction(position, brd.ActiveRound)
		e.saveMiner(m)

		log.WithFields(logrus.Fields{
			"round":    brd.ActiveRound,
			"miner":    authority.String(),
			"position": position,
		}).Info("prediction submitted")
		return nil
	})
}
