package board

import (
	"math"

	"github.com/skillprotocol/skill/skill"
	"github.com/skillprotocol/skill/state"
)

// Record type tags. Persisted as the leading byte of every stored record.
const (
	TagBoard    state.Tag = 0x01
	TagRound    state.Tag = 0x02
	TagMiner    state.Tag = 0x03
	TagTreasury state.Tag = 0x04
	TagConfig   state.Tag = 0x05
)

// Round status values.
const (
	RoundActive uint8 = iota
	RoundEnded
)

// NeverEnds marks a round window waiting for its first deposit.
const NeverEnds uint64 = math.MaxUint64

// NoRound marks a miner who has not entered or settled any round yet.
// Without the sentinel a fresh miner would read as having settled round 0.
const NoRound uint64 = math.MaxUint64

// Board is the singleton tracking the active round and its time window.
type Board struct {
	ActiveRound uint64
	RoundStart  uint64
	RoundEnd    uint64
}

// Round is the per-round ledger of deposits and the finalized outcome.
type Round struct {
	// The round number.
	ID uint64

	// The amount of value deployed to each position.
	Deployed [skill.NumPositions]uint64

	// Running total of value staked per position, advanced as each deposit
	// is recorded. Snapshotted onto miners for weighted-selection math.
	Cumulative [skill.NumPositions]uint64

	// The count of miners on each position.
	Count [skill.NumPositions]uint64

	// The total amount of value deployed in the round.
	TotalDeployed uint64

	// Value currently held by the round: deposits not yet paid out or swept.
	Escrow uint64

	// The winners' pool after fees, set at finalization.
	TotalWinnings uint64

	// Hash mixed from host entropy at finalization. Zero while active.
	EntropySample skill.Bytes32

	// The time after which settlement is forfeit and the record prunable.
	ExpiresAt uint64

	// RoundActive or RoundEnded.
	Status uint8

	// Fields below were appended when the winner moved onto the record;
	// older encodings lack them and decode to zero until migrated.

	// The winning position, skill.NoPosition while active.
	WinningPosition uint8 `rlp:"optional"`

	// 50% split outcome derived from the entropy sample.
	SplitFlag bool `rlp:"optional"`

	// 1-in-625 bonus pool trigger derived from the entropy sample.
	BonusFlag bool `rlp:"optional"`
}

// Miner is the per-authority participant record.
type Miner struct {
	// The authority of this miner record.
	Authority skill.Address

	// Free value balance, spendable on deposits.
	Balance uint64

	// The round this miner last played in.
	CurrentRound uint64

	// The last round this miner settled via checkpoint.
	SettledRound uint64

	// The miner's stakes in the current round.
	Deployed [skill.NumPositions]uint64

	// Per position, the round's cumulative stake just before this miner's
	// deposit was recorded.
	CumulativeAtDeposit [skill.NumPositions]uint64

	// Claimable value and emission.
	PendingValue    uint64
	PendingEmission uint64

	// Emission already claimed into spendable form.
	Tokens uint64

	// Lifetime totals across all rounds.
	LifetimeValue    uint64
	LifetimeEmission uint64

	// Fields below were appended with the skill mini-game; older encodings
	// lack them and decode to zero until migrated.

	// Cumulative points from correct predictions. Never decreases.
	SkillScore uint64 `rlp:"optional"`

	// Current round prediction, skill.NoPosition when none.
	Prediction uint8 `rlp:"optional"`

	// Consecutive correct predictions. Resets on a miss.
	Streak uint16 `rlp:"optional"`

	// The round the last prediction was made for (anti-replay).
	LastPredictionRound uint64 `rlp:"optional"`

	// Prediction attempts and wins.
	Attempts uint64 `rlp:"optional"`
	Correct  uint64 `rlp:"optional"`
}

// Treasury is the escrow and emission accounting singleton.
type Treasury struct {
	// Value swept from losers' pools and rounding remainders.
	VaultBalance uint64

	// Accumulated admin fees awaiting collection.
	FeeBalance uint64

	// Emission accrued from bonus triggers, paid out by a separate
	// distribution mechanism.
	BonusPool uint64

	// Total emission minted so far. Never exceeds MaxSupply.
	EmittedSupply uint64

	// The emission hard cap.
	MaxSupply uint64
}

// Config is the admin configuration singleton.
type Config struct {
	Admin        skill.Address
	FeeCollector skill.Address

	// Round timing, in host time units.
	RoundDuration uint64
	ClaimWindow   uint64

	// Emission tunables.
	EmissionPerRound  uint64
	BonusEmission     uint64
	MaxRewardPerRound uint64
}
