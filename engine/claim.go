package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/skillprotocol/skill/skill"
)

// ClaimValue drains the miner's pending value reward into their free
// balance and returns the claimed amount.
func (e *Engine) ClaimValue(authority skill.Address) (uint64, error) {
	var amount uint64
	err := e.atomically(func() error {
		m, ok := e.getMiner(authority)
		if !ok {
			return ErrUnknownMiner
		}
		if m.PendingValue == 0 {
			return ErrNothingToClaim
		}

		balance, ok := safeAdd(m.Balance, m.PendingValue)
		if !ok {
			return ErrOverflow
		}
		amount = m.PendingValue
		m.Balance = balance
		m.PendingValue = 0
		e.saveMiner(m)

		log.WithFields(logrus.Fields{
			"miner":  authority.String(),
			"amount": amount,
		}).Info("value claimed")
		return nil
	})
	return amount, err
}

// ClaimEmission drains the miner's pending emission into their token
// balance and returns the claimed amount.
func (e *Engine) ClaimEmission(authority skill.Address) (uint64, error) {
	var amount uint64
	err := e.atomically(func() error {
		m, ok := e.getMiner(authority)
		if !ok {
			return ErrUnknownMiner
		}
		if m.PendingEmission == 0 {
			return ErrNothingToClaim
		}

		tokens, ok := safeAdd(m.Tokens, m.PendingEmission)
		if !ok {
			return ErrOverflow
		}
		amount = m.PendingEmission
		m.Tokens = tokens
		m.PendingEmission = 0
		e.saveMiner(m)

		log.WithFields(logrus.Fields{
			"miner":  authority.String(),
			"amount": amount,
		}).Info("emission claimed")
		return nil
	})
	return amount, err
}
