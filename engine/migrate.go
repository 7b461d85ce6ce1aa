package engine

import (
	"github.com/skillprotocol/skill/skill"
)

// Records encoded before a schema extension decode with zeroed tail
// fields. The migrations below re-encode such records in the current
// layout and seed the sentinel values the zero default cannot express.
// Both are idempotent and safe to run against already-migrated records.

// MigrateRound upgrades a round record in place.
func (e *Engine) MigrateRound(id uint64) error {
	return e.atomically(func() error {
		rnd, ok := e.getRound(id)
		if !ok {
			return ErrUnknownRound
		}

		// A pre-extension active round decodes the winner as position 0;
		// the sentinel only exists in the extended layout.
		if !rnd.Finalized() && rnd.EntropySample.IsZero() && rnd.WinningPosition == 0 {
			rnd.WinningPosition = skill.NoPosition
		}

		e.saveRound(rnd)
		return nil
	})
}

// MigrateMiner upgrades a miner record in place. Runs at upgrade time,
// before the prediction game accepts submissions, so a zeroed prediction
// field can only mean "no prediction yet".
func (e *Engine) MigrateMiner(authority skill.Address) error {
	return e.atomically(func() error {
		m, ok := e.getMiner(authority)
		if !ok {
			return ErrUnknownMiner
		}

		if m.Prediction == 0 && m.LastPredictionRound == 0 && m.Attempts == 0 {
			m.Prediction = skill.NoPosition
		}

		e.saveMiner(m)
		return nil
	})
}
