// Package entropy provides the verifiable randomness feed for round
// settlement. A beacon operator proves a VRF over a per-round seed; the
// proof lets anyone check that the entropy handed to finalization was
// not chosen after seeing the stakes.
package entropy

import (
	"crypto/ecdsa"
	"encoding/binary"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/vechain/go-ecvrf"

	"github.com/skillprotocol/skill/skill"
)

const proofLen = 81

// Seed derives the VRF input for a round: the previous round's entropy
// sample bound to the round id, so each round's randomness chains to the
// last and cannot be precomputed further ahead than one round.
func Seed(prevSample skill.Bytes32, roundID uint64) []byte {
	var id [8]byte
	binary.LittleEndian.PutUint64(id[:], roundID)
	return skill.Keccak(prevSample.Bytes(), id[:]).Bytes()
}

// Beacon produces entropy proofs with the operator's key.
type Beacon struct {
	sk *ecdsa.PrivateKey
}

// NewBeacon creates a beacon over the operator's private key.
func NewBeacon(sk *ecdsa.PrivateKey) *Beacon {
	return &Beacon{sk: sk}
}

// PublicKey returns the beacon's compressed public key.
func (b *Beacon) PublicKey() []byte {
	return crypto.CompressPubkey(&b.sk.PublicKey)
}

// Generate proves the VRF over the given seed and returns the entropy
// output along with the proof.
func (b *Beacon) Generate(seed []byte) (entropy, proof []byte, err error) {
	entropy, proof, err = ecvrf.Secp256k1Sha256Tai.Prove(b.sk, seed)
	if err != nil {
		return nil, nil, errors.Wrap(err, "prove entropy")
	}
	return
}

// Verify checks proof against the beacon public key and seed, returning
// the entropy output the proof commits to.
func Verify(compressedPub, seed, proof []byte) ([]byte, error) {
	if len(proof) != proofLen {
		return nil, errors.Errorf("invalid entropy proof length, %d bytes needed", proofLen)
	}
	pub, err := crypto.DecompressPubkey(compressedPub)
	if err != nil {
		return nil, errors.Wrap(err, "decompress beacon key")
	}
	entropy, err := ecvrf.Secp256k1Sha256Tai.Verify(pub, seed, proof)
	if err != nil {
		return nil, errors.Wrap(err, "verify entropy proof")
	}
	return entropy, nil
}
