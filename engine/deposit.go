package engine

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/skillprotocol/skill/board"
	"github.com/skillprotocol/skill/skill"
)

// activeRound loads the board and the active round record, implicitly
// opening the round window on the first deposit after a reset.
// The caller persists the board.
func (e *Engine) activeRound(now uint64) (*board.Board, *board.Config, *board.Round, error) {
	brd, err := e.mustBoard()
	if err != nil {
		return nil, nil, nil, err
	}
	cfg, err := e.getConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	if brd.RoundEnd != board.NeverEnds && now >= brd.RoundEnd {
		return nil, nil, nil, errors.WithMessage(ErrRoundClosed, "finalize due")
	}

	// Wait until first deposit to start the clock.
	if brd.RoundEnd == board.NeverEnds {
		brd.RoundStart = now
		brd.RoundEnd = now + cfg.RoundDuration
	}

	rnd, ok := e.getRound(brd.ActiveRound)
	if !ok {
		rnd = &board.Round{
			ID:              brd.ActiveRound,
			ExpiresAt:       board.NeverEnds,
			Status:          board.RoundActive,
			WinningPosition: skill.NoPosition,
		}
	}
	return brd, cfg, rnd, nil
}

// enterRound moves the miner onto the round, enforcing that the prior
// round was checkpointed first.
func (e *Engine) enterRound(authority skill.Address, rnd *board.Round) (*board.Miner, error) {
	m := e.getOrCreateMiner(authority)
	if m.CurrentRound != rnd.ID {
		if m.SettledRound != m.CurrentRound {
			return nil, errors.WithMessagef(ErrUnsettledPriorRound, "round %d", m.CurrentRound)
		}
		m.ResetForRound(rnd)
	}
	return m, nil
}

// stake applies one position's deposit to the miner and round records.
// All counters are overflow-checked before any of them is written.
func stake(m *board.Miner, rnd *board.Round, position uint8, amount uint64) error {
	if m.Balance < amount {
		return ErrInsufficientBalance
	}

	deployed, ok1 := safeAdd(rnd.Deployed[position], amount)
	cumulative, ok2 := safeAdd(rnd.Cumulative[position], amount)
	total, ok3 := safeAdd(rnd.TotalDeployed, amount)
	escrow, ok4 := safeAdd(rnd.Escrow, amount)
	mine, ok5 := safeAdd(m.Deployed[position], amount)
	if !(ok1 && ok2 && ok3 && ok4 && ok5) {
		return ErrOverflow
	}

	if m.Deployed[position] == 0 {
		// Record the range start for weighted-selection math.
		m.CumulativeAtDeposit[position] = rnd.Cumulative[position]
		rnd.Count[position]++
	}

	rnd.Deployed[position] = deployed
	rnd.Cumulative[position] = cumulative
	rnd.TotalDeployed = total
	rnd.Escrow = escrow
	m.Deployed[position] = mine
	m.Balance -= amount
	return nil
}

// Deposit stakes amount on a position in the active round. The prior
// round must be settled; the value moves from the miner's free balance
// into the round escrow atomically with the bookkeeping update.
func (e *Engine) Deposit(authority skill.Address, position uint8, amount uint64, now uint64) error {
	return e.atomically(func() error {
		if position >= skill.NumPositions {
			return ErrBadPosition
		}
		if amount == 0 {
			return ErrZeroAmount
		}

		brd, _, rnd, err := e.activeRound(now)
		if err != nil {
			return err
		}
		m, err := e.enterRound(authority, rnd)
		if err != nil {
			return err
		}
		if err := stake(m, rnd, position, amount); err != nil {
			return err
		}

		e.saveMiner(m)
		e.saveRound(rnd)
		e.saveBoard(brd)

		log.WithFields(logrus.Fields{
			"round":    rnd.ID,
			"miner":    authority.String(),
			"position": position,
			"amount":   amount,
		}).Info("deposit")
		metricDeposits().Add(1)
		return nil
	})
}

// DepositMask stakes the same amount on every set bit of a 25-bit
// position mask in one transition, skipping positions the miner already
// holds this round.
func (e *Engine) DepositMask(authority skill.Address, mask uint32, amount uint64, now uint64) error {
	return e.atomically(func() error {
		if mask == 0 || mask >= 1<<skill.NumPositions {
			return ErrBadPosition
		}
		if amount == 0 {
			return ErrZeroAmount
		}

		brd, _, rnd, err := e.activeRound(now)
		if err != nil {
			return err
		}
		m, err := e.enterRound(authority, rnd)
		if err != nil {
			return err
		}

		applied := 0
		for position := uint8(0); position < skill.NumPositions; position++ {
			if mask&(1<<position) == 0 {
				continue
			}
			if m.Deployed[position] > 0 {
				continue
			}
			if err := stake(m, rnd, position, amount); err != nil {
				return err
			}
			applied++
		}

		e.saveMiner(m)
		e.saveRound(rnd)
		e.saveBoard(brd)

		log.WithFields(logrus.Fields{
			"round":     rnd.ID,
			"miner":     authority.String(),
			"positions": applied,
			"amount":    amount,
		}).Info("deposit mask")
		metricDeposits().Add(int64(applied))
		return nil
	})
}
