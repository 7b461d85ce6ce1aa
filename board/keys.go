package board

import (
	"encoding/binary"

	"github.com/skillprotocol/skill/skill"
)

// Storage keys are derived from a record namespace plus identity,
// the same way for every record kind.
var (
	boardKey    = skill.Keccak([]byte("board"))
	treasuryKey = skill.Keccak([]byte("treasury"))
	configKey   = skill.Keccak([]byte("config"))
)

// BoardKey returns the key of the board singleton.
func BoardKey() skill.Bytes32 { return boardKey }

// TreasuryKey returns the key of the treasury singleton.
func TreasuryKey() skill.Bytes32 { return treasuryKey }

// ConfigKey returns the key of the config singleton.
func ConfigKey() skill.Bytes32 { return configKey }

// RoundKey returns the key of the round record with the given id.
func RoundKey(id uint64) skill.Bytes32 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], id)
	return skill.Keccak([]byte("round"), b[:])
}

// MinerKey returns the key of the miner record of the given authority.
func MinerKey(authority skill.Address) skill.Bytes32 {
	return skill.Keccak([]byte("miner"), authority.Bytes())
}
