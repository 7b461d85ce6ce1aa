package engine

import (
	"github.com/skillprotocol/skill/board"
	"github.com/skillprotocol/skill/skill"
)

// Initialize creates the Board, Config and Treasury singletons.
// The first round opens lazily on the first deposit.
func (e *Engine) Initialize(cfg *board.Config, maxSupply uint64) error {
	return e.atomically(func() error {
		if _, ok := e.getBoard(); ok {
			return ErrAlreadyInitialized
		}

		e.saveBoard(&board.Board{
			ActiveRound: 0,
			RoundStart:  board.NeverEnds,
			RoundEnd:    board.NeverEnds,
		})
		e.st.Set(board.ConfigKey(), board.TagConfig, cfg)
		e.saveTreasury(&board.Treasury{MaxSupply: maxSupply})

		log.WithField("maxSupply", maxSupply).Info("board initialized")
		return nil
	})
}

// Fund credits an authority's free balance with value entering from the
// host environment.
func (e *Engine) Fund(authority skill.Address, amount uint64) error {
	return e.atomically(func() error {
		if amount == 0 {
			return ErrZeroAmount
		}
		m := e.getOrCreateMiner(authority)
		balance, ok := safeAdd(m.Balance, amount)
		if !ok {
			return ErrOverflow
		}
		m.Balance = balance
		e.saveMiner(m)
		return nil
	})
}
