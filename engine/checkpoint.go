package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/skillprotocol/skill/skill"
)

// Checkpoint settles the miner's outcome for their last played round:
// pays out value and emission for a winning stake, applies the skill
// multiplier to the emission, updates prediction bookkeeping and unlocks
// participation in the next round. A no-op success when already settled.
func (e *Engine) Checkpoint(authority skill.Address, now uint64) error {
	return e.atomically(func() error {
		m, ok := e.getMiner(authority)
		if !ok {
			return ErrUnknownMiner
		}
		if m.SettledRound == m.CurrentRound {
			return nil
		}

		rnd, ok := e.getRound(m.CurrentRound)
		if !ok {
			// The round was pruned before the miner checkpointed.
			// Potential rewards are forfeit.
			m.SettledRound = m.CurrentRound
			e.saveMiner(m)
			log.WithFields(logrus.Fields{
				"round": m.CurrentRound,
				"miner": authority.String(),
			}).Info("checkpoint against pruned round, rewards forfeit")
			metricCheckpoints().AddWithLabel(1, map[string]string{"outcome": "pruned"})
			return nil
		}
		if !rnd.Finalized() {
			return ErrRoundNotEnded
		}

		// Past the settlement window the stake is forfeit; the record
		// is settled so the miner can play on.
		if now >= rnd.ExpiresAt {
			m.SettledRound = m.CurrentRound
			e.saveMiner(m)
			log.WithFields(logrus.Fields{
				"round": rnd.ID,
				"miner": authority.String(),
			}).Info("checkpoint after expiry, rewards forfeit")
			metricCheckpoints().AddWithLabel(1, map[string]string{"outcome": "expired"})
			return nil
		}

		cfg, err := e.getConfig()
		if err != nil {
			return err
		}
		tre, err := e.getTreasury()
		if err != nil {
			return err
		}

		winner := rnd.WinningPosition
		var value, emission uint64

		if winner < skill.NumPositions && m.Deployed[winner] > 0 && rnd.Deployed[winner] > 0 {
			// Original stake back, plus the proportional share of the
			// winners' pool and of the round emission.
			value = m.Deployed[winner]
			value += mulDiv(rnd.TotalWinnings, m.Deployed[winner], rnd.Deployed[winner])
			emission = mulDiv(cfg.EmissionPerRound, m.Deployed[winner], rnd.Deployed[winner])
		}

		// Skill bookkeeping runs for winners and losers alike. The
		// multiplier boosts the emission component only, never the
		// returned principal.
		multiplier := m.EvaluatePrediction(winner, rnd.ID)
		if emission > 0 {
			boosted := mulDiv(emission, multiplier, 100)
			if boosted > cfg.MaxRewardPerRound {
				boosted = cfg.MaxRewardPerRound
			}
			emission = mint(tre, boosted)
		}

		if value > rnd.Escrow {
			return ErrOverflow
		}
		rnd.Escrow -= value

		pendingValue, ok1 := safeAdd(m.PendingValue, value)
		pendingEmission, ok2 := safeAdd(m.PendingEmission, emission)
		if !(ok1 && ok2) {
			return ErrOverflow
		}
		m.PendingValue = pendingValue
		m.PendingEmission = pendingEmission
		m.LifetimeValue += value
		m.LifetimeEmission += emission
		m.SettledRound = rnd.ID

		e.saveMiner(m)
		e.saveRound(rnd)
		e.saveTreasury(tre)

		outcome := "lost"
		if value > 0 {
			outcome = "won"
		}
		log.WithFields(logrus.Fields{
			"round":      rnd.ID,
			"miner":      authority.String(),
			"value":      value,
			"emission":   emission,
			"multiplier": multiplier,
		}).Info("checkpoint")
		metricCheckpoints().AddWithLabel(1, map[string]string{"outcome": outcome})
		metricEmissionMinted().Add(int64(emission))
		return nil
	})
}
