package skill

import "math"

// Constants of the board game protocol.
const (
	// NumPositions is the number of board positions deposits can target.
	NumPositions = 25

	// NoPosition is the sentinel for "no position chosen".
	NoPosition uint8 = math.MaxUint8

	// RoundDuration is the default length of a round, in host time units.
	RoundDuration uint64 = 150

	// ClaimWindow is the default number of time units after round end during
	// which settlement is honored. Past it, stakes and rewards are forfeit
	// and the round record becomes prunable.
	ClaimWindow uint64 = 14400

	// TokenDecimals decimal places of the emission token.
	TokenDecimals = 9

	// OneToken is one whole emission token in base units.
	OneToken uint64 = 1_000_000_000

	// MaxSupply is the default emission hard cap.
	MaxSupply uint64 = 5_000_000 * OneToken

	// EmissionPerRound is the default emission split pro-rata among winners.
	EmissionPerRound uint64 = OneToken

	// BonusEmission is the default amount accrued to the treasury bonus pool
	// when a round trips the 1-in-625 bonus trigger.
	BonusEmission uint64 = OneToken / 5

	// MaxRewardPerRound caps a single miner's boosted emission for one round.
	MaxRewardPerRound uint64 = 2 * OneToken

	// AdminFeePercent is the cut of the losers' pool collected as admin fee.
	AdminFeePercent uint64 = 1

	// VaultPercent is the cut of the losers' pool contributed to the vault.
	VaultPercent uint64 = 10

	// BonusDenominator one round in this many trips the bonus pool trigger.
	BonusDenominator uint64 = 625
)

// Constants of the skill mini-game.
const (
	// PointsPerWin is the score awarded for a correct prediction.
	PointsPerWin uint64 = 100

	// BaseMultiplier is the neutral emission multiplier, in percent.
	BaseMultiplier uint64 = 100

	// MaxMultiplier caps the emission multiplier, in percent.
	MaxMultiplier uint64 = 150

	// MaxStreakCredit is the number of consecutive wins that still grow the
	// streak bonus. Each credited win adds 2 percent.
	MaxStreakCredit uint64 = 10
)
