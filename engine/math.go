package engine

import (
	"math/bits"

	"github.com/holiman/uint256"
)

// safeAdd returns a+b, reporting overflow.
func safeAdd(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// mulDiv computes a*b/div with a 256-bit intermediate, so proportional
// shares of 64-bit pools never overflow. div must be non-zero.
func mulDiv(a, b, div uint64) uint64 {
	x := new(uint256.Int).SetUint64(a)
	x.Mul(x, new(uint256.Int).SetUint64(b))
	x.Div(x, new(uint256.Int).SetUint64(div))
	return x.Uint64()
}

// percent returns amount*pct/100.
func percent(amount, pct uint64) uint64 {
	return mulDiv(amount, pct, 100)
}
