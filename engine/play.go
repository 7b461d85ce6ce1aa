package engine

import (
	"github.com/skillprotocol/skill/skill"
)

// Play is the composed move operation: it opportunistically finalizes an
// overdue round, checkpoints the caller's settled-but-unclaimed round if
// any, then places the deposit. Each step is its own atomic transition;
// the composition is explicit rather than hidden reentrancy.
func (e *Engine) Play(authority skill.Address, position uint8, amount uint64, entropy []byte, now uint64) error {
	if err := e.Crank(entropy, now); err != nil {
		return err
	}

	if m, ok := e.getMiner(authority); ok {
		brd, err := e.mustBoard()
		if err != nil {
			return err
		}
		if m.CurrentRound != brd.ActiveRound && m.SettledRound != m.CurrentRound {
			if err := e.Checkpoint(authority, now); err != nil {
				return err
			}
		}
	}

	return e.Deposit(authority, position, amount, now)
}
