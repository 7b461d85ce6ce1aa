package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillprotocol/skill/skill"
)

func TestSubmitPrediction(t *testing.T) {
	e := newInitializedEngine(t)
	require.NoError(t, e.Fund(alice, 1000))
	require.NoError(t, e.Deposit(alice, 12, 1000, 100))

	assert.ErrorIs(t, e.SubmitPrediction(alice, skill.NumPositions, 110), ErrBadPosition)

	require.NoError(t, e.SubmitPrediction(alice, 12, 110))
	m, _ := e.getMiner(alice)
	assert.Equal(t, uint8(12), m.Prediction)
	assert.Equal(t, uint64(0), m.LastPredictionRound)

	// One prediction per round.
	err := e.SubmitPrediction(alice, 3, 120)
	assert.ErrorIs(t, err, ErrAlreadyPredicted)

	// Closed round rejects predictions.
	err = e.SubmitPrediction(bob, 3, 100+skill.RoundDuration)
	assert.ErrorIs(t, err, ErrRoundClosed)
}

func TestPredictionBoostsEmission(t *testing.T) {
	endAt := uint64(100 + skill.RoundDuration)

	settle := func(t *testing.T, predict bool) uint64 {
		e := newInitializedEngine(t)
		require.NoError(t, e.Fund(alice, 1000))
		require.NoError(t, e.Fund(bob, 1000))
		require.NoError(t, e.Deposit(alice, 12, 1000, 100))
		require.NoError(t, e.Deposit(bob, 8, 500, 100))
		if predict {
			require.NoError(t, e.SubmitPrediction(alice, 12, 110))
		}
		require.NoError(t, e.Finalize(testEntropy, endAt))
		require.NoError(t, e.Checkpoint(alice, endAt+1))
		m, _ := e.getMiner(alice)
		return m.PendingEmission
	}

	plain := settle(t, false)
	boosted := settle(t, true)
	assert.Equal(t, skill.EmissionPerRound, plain)
	assert.Greater(t, boosted, plain)
	assert.LessOrEqual(t, boosted, skill.MaxRewardPerRound)
}

func TestPredictionOutcomeTracking(t *testing.T) {
	e := newInitializedEngine(t)
	require.NoError(t, e.Fund(alice, 10_000))

	playRound := func(start uint64, predict uint8) {
		require.NoError(t, e.Deposit(alice, 12, 100, start))
		require.NoError(t, e.SubmitPrediction(alice, predict, start+1))
		require.NoError(t, e.Finalize(testEntropy, start+skill.RoundDuration))
		require.NoError(t, e.Checkpoint(alice, start+skill.RoundDuration+1))
	}

	// Solo rounds: position 12 always wins.
	start := uint64(100)
	playRound(start, 12) // correct
	start += skill.RoundDuration + 10
	playRound(start, 12) // correct
	start += skill.RoundDuration + 10
	playRound(start, 3) // miss

	m, _ := e.getMiner(alice)
	assert.Equal(t, 2*skill.PointsPerWin, m.SkillScore)
	assert.Equal(t, uint64(3), m.Attempts)
	assert.Equal(t, uint64(2), m.Correct)
	assert.Zero(t, m.Streak, "miss resets the streak")
	assert.Equal(t, skill.NoPosition, m.Prediction)
}

func TestPredictionWithoutDeposit(t *testing.T) {
	e := newInitializedEngine(t)
	require.NoError(t, e.Fund(alice, 1000))

	// Prediction alone never blocks later rounds and never pays.
	require.NoError(t, e.Deposit(alice, 5, 100, 100))
	require.NoError(t, e.SubmitPrediction(bob, 5, 110))

	require.NoError(t, e.Finalize(testEntropy, 100+skill.RoundDuration))
	require.NoError(t, e.Checkpoint(bob, 100+skill.RoundDuration+1))

	m, _ := e.getMiner(bob)
	assert.Zero(t, m.PendingValue)
	assert.Zero(t, m.PendingEmission)
}
