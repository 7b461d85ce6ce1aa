package entropy

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillprotocol/skill/skill"
)

func TestSeedChaining(t *testing.T) {
	prev := skill.Keccak([]byte("round 4 sample"))

	assert.Equal(t, Seed(prev, 5), Seed(prev, 5))
	assert.NotEqual(t, Seed(prev, 5), Seed(prev, 6))
	assert.NotEqual(t, Seed(prev, 5), Seed(skill.Bytes32{}, 5))
	assert.Len(t, Seed(prev, 5), 32)
}

func TestBeaconProveVerify(t *testing.T) {
	sk, err := crypto.GenerateKey()
	require.NoError(t, err)
	beacon := NewBeacon(sk)

	seed := Seed(skill.Keccak([]byte("genesis")), 0)
	out, proof, err := beacon.Generate(seed)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	verified, err := Verify(beacon.PublicKey(), seed, proof)
	require.NoError(t, err)
	assert.Equal(t, out, verified)

	// Wrong seed or mangled proof must not verify to the same output.
	_, err = Verify(beacon.PublicKey(), Seed(skill.Keccak([]byte("genesis")), 1), proof)
	assert.Error(t, err)

	mangled := append([]byte(nil), proof...)
	mangled[10] ^= 0xff
	_, err = Verify(beacon.PublicKey(), seed, mangled)
	assert.Error(t, err)

	_, err = Verify(beacon.PublicKey(), seed, proof[:40])
	assert.Error(t, err)

	// A different beacon cannot claim this proof.
	sk2, err := crypto.GenerateKey()
	require.NoError(t, err)
	_, err = Verify(NewBeacon(sk2).PublicKey(), seed, proof)
	assert.Error(t, err)
}
