package skill

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	addr := BytesToAddress([]byte("authority"))

	parsed, err := ParseAddress(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr, parsed)

	_, err = ParseAddress("0xdeadbeef")
	assert.Error(t, err)
}

func TestAddressJSON(t *testing.T) {
	addr := BytesToAddress([]byte("authority"))

	data, err := json.Marshal(&addr)
	require.NoError(t, err)

	var back Address
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, addr, back)
}

func TestBytesToAddress(t *testing.T) {
	// Longer input crops from the left, shorter pads from the left.
	long := make([]byte, AddressLength+4)
	long[len(long)-1] = 0xff
	assert.Equal(t, byte(0xff), BytesToAddress(long)[AddressLength-1])

	short := BytesToAddress([]byte{0xab})
	assert.Equal(t, byte(0xab), short[AddressLength-1])
	assert.Equal(t, byte(0), short[0])
}
