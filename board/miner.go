package board

import (
	"math/bits"

	"github.com/skillprotocol/skill/skill"
)

// ResetForRound clears per-round stakes when the miner enters a new round.
// The round's running totals are snapshotted so later weighted-selection
// math can reconstruct each deposit's cumulative range.
func (m *Miner) ResetForRound(r *Round) {
	m.Deployed = [skill.NumPositions]uint64{}
	m.CumulativeAtDeposit = r.Cumulative
	m.CurrentRound = r.ID
}

// HasPredictionForRound reports whether a prediction is recorded for the
// given round.
func (m *Miner) HasPredictionForRound(roundID uint64) bool {
	return m.LastPredictionRound == roundID && m.Prediction != skill.NoPosition
}

// RecordPrediction stores a prediction for the given round.
func (m *Miner) RecordPrediction(position uint8, roundID uint64) {
	m.Prediction = position
	m.LastPredictionRound = roundID
}

// Multiplier computes the emission multiplier in percent.
// Formula: base 100, plus 5 per order of magnitude of skill score, plus 2
// per consecutive win up to 10. Clamped to [100, 150].
func (m *Miner) Multiplier() uint64 {
	score := skill.BaseMultiplier

	if m.SkillScore > 0 {
		// integer approximation of log10
		logApprox := uint64(bits.Len64(m.SkillScore)) * 3 / 10
		score += logApprox * 5
	}

	streak := uint64(m.Streak)
	if streak > skill.MaxStreakCredit {
		streak = skill.MaxStreakCredit
	}
	score += streak * 2

	if score > skill.MaxMultiplier {
		return skill.MaxMultiplier
	}
	return score
}

// EvaluatePrediction settles the skill outcome for a finished round and
// returns the multiplier to apply to the miner's emission.
// The skill score never decreases; a miss only resets the streak.
func (m *Miner) EvaluatePrediction(winningPosition uint8, roundID uint64) uint64 {
	if m.LastPredictionRound != roundID || m.Prediction == skill.NoPosition {
		m.Streak = 0
		return skill.BaseMultiplier
	}

	m.Attempts++
	if m.Prediction == winningPosition {
		m.SkillScore += skill.PointsPerWin
		m.Streak++
		m.Correct++
	} else {
		m.Streak = 0
	}

	m.Prediction = skill.NoPosition

	return m.Multiplier()
}
