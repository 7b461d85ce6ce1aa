package board

import (
	"encoding/binary"
	"math/bits"

	"github.com/skillprotocol/skill/skill"
)

// MixEntropy derives the round entropy sample from host-supplied entropy
// bytes and round-specific values.
func MixEntropy(entropy []byte, totalDeployed, roundID, now uint64) skill.Bytes32 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], totalDeployed)
	binary.LittleEndian.PutUint64(buf[8:16], roundID)
	binary.LittleEndian.PutUint64(buf[16:24], now)
	return skill.Keccak(entropy, buf[:])
}

// Finalized reports whether the round outcome has been determined.
func (r *Round) Finalized() bool {
	return r.Status == RoundEnded
}

// WinnerByStake returns the position with the most value deployed.
// Ties break to the lowest index; an empty round yields position 0.
// Winner selection is a pure function of the deployed amounts.
func (r *Round) WinnerByStake() uint8 {
	winner := 0
	for i := 1; i < skill.NumPositions; i++ {
		if r.Deployed[i] > r.Deployed[winner] {
			winner = i
		}
	}
	return uint8(winner)
}

// Rng folds the entropy sample into the value driving the round's
// secondary random outcomes.
func (r *Round) Rng() uint64 {
	r1 := binary.LittleEndian.Uint64(r.EntropySample[0:8])
	r2 := binary.LittleEndian.Uint64(r.EntropySample[8:16])
	r3 := binary.LittleEndian.Uint64(r.EntropySample[16:24])
	r4 := binary.LittleEndian.Uint64(r.EntropySample[24:32])
	return r1 ^ r2 ^ r3 ^ r4
}

// IsSplit derives the 50% split outcome from the rng value: the XOR parity
// of its four 16-bit chunks, bit-reversed first so the decision is
// independent of the bonus draw.
func IsSplit(rng uint64) bool {
	rev := bits.Reverse64(rng)
	r := uint16(rev) ^ uint16(rev>>16) ^ uint16(rev>>32) ^ uint16(rev>>48)
	return r%2 == 0
}

// HitsBonus derives the 1-in-625 bonus pool trigger from the rng value.
func HitsBonus(rng uint64) bool {
	return bits.Reverse64(rng)%skill.BonusDenominator == 0
}

// LosersPool returns the total value staked on non-winning positions.
func (r *Round) LosersPool() uint64 {
	return r.TotalDeployed - r.Deployed[r.WinningPosition]
}
