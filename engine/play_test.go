package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillprotocol/skill/skill"
)

func TestPlayFirstMove(t *testing.T) {
	e := newInitializedEngine(t)
	require.NoError(t, e.Fund(alice, 1000))

	require.NoError(t, e.Play(alice, 3, 500, testEntropy, 100))

	rnd, ok := e.getRound(0)
	require.True(t, ok)
	assert.Equal(t, uint64(500), rnd.Deployed[3])
}

// One call settles the overdue round, checkpoints the caller and places
// the new stake.
func TestPlaySelfCranks(t *testing.T) {
	e := newInitializedEngine(t)
	require.NoError(t, e.Fund(alice, 1000))
	require.NoError(t, e.Play(alice, 3, 500, testEntropy, 100))

	later := uint64(100 + skill.RoundDuration + 5)
	require.NoError(t, e.Play(alice, 7, 200, testEntropy, later))

	brd, _ := e.getBoard()
	assert.Equal(t, uint64(1), brd.ActiveRound)

	rnd0, _ := e.getRound(0)
	assert.True(t, rnd0.Finalized())
	assert.Equal(t, uint8(3), rnd0.WinningPosition)

	m, _ := e.getMiner(alice)
	assert.Equal(t, uint64(1), m.CurrentRound)
	assert.Equal(t, uint64(0), m.SettledRound, "round 0 settled on the way in")
	assert.Equal(t, uint64(500), m.PendingValue, "solo winner gets the stake back")
	assert.Equal(t, uint64(200), m.Deployed[7])

	rnd1, _ := e.getRound(1)
	assert.Equal(t, uint64(200), rnd1.Deployed[7])
}

func TestPlayValidatesLikeDeposit(t *testing.T) {
	e := newInitializedEngine(t)
	require.NoError(t, e.Fund(alice, 100))

	assert.ErrorIs(t, e.Play(alice, skill.NumPositions, 50, testEntropy, 10), ErrBadPosition)
	assert.ErrorIs(t, e.Play(alice, 0, 0, testEntropy, 10), ErrZeroAmount)
	assert.ErrorIs(t, e.Play(alice, 0, 500, testEntropy, 10), ErrInsufficientBalance)
}

func TestPlayAcrossManyRounds(t *testing.T) {
	e := newInitializedEngine(t)
	require.NoError(t, e.Fund(alice, 10_000))

	now := uint64(100)
	for i := 0; i < 5; i++ {
		require.NoError(t, e.Play(alice, uint8(i), 100, testEntropy, now))
		now += skill.RoundDuration + 1
	}

	brd, _ := e.getBoard()
	assert.Equal(t, uint64(4), brd.ActiveRound)

	m, _ := e.getMiner(alice)
	assert.Equal(t, uint64(4), m.CurrentRound)
	assert.Equal(t, uint64(3), m.SettledRound)
	// Four settled solo rounds, each returning its 100 stake.
	assert.Equal(t, uint64(400), m.PendingValue)
	assert.Equal(t, uint64(4)*skill.EmissionPerRound, m.PendingEmission)
}
