package model

import (
	"fmt"
	"strconv"
)

// Mode is a game ruleset
type Mode uint8

const (
	ModeVanilla Mode = iota + 1
	ModeSimpleKZ
	ModeKZTimer
)

func (m Mode) String() string {
	switch m {
	case ModeVanilla:
		return "Vanilla"
	case ModeSimpleKZ:
		return "SimpleKZ"
	case ModeKZTimer:
		return "KZTimer"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// MarshalText renders the mode by name in both CSV and JSON output
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// steamIDBase is the community id of account number 0 in the public universe
const steamIDBase uint64 = 76561197960265728

// SteamID is a 64-bit community id
type SteamID uint64

// NewSteamID builds the community id of a 32-bit account id
func NewSteamID(id32 uint32) SteamID {
	return SteamID(steamIDBase + uint64(id32))
}

// CommunityID returns the 64-bit form
func (s SteamID) CommunityID() uint64 {
	return uint64(s)
}

// ID32 returns the 32-bit account id the SteamID was built from
func (s SteamID) ID32() uint32 {
	return uint32(uint64(s) - steamIDBase)
}

// String renders the textual STEAM_1:Y:Z form
func (s SteamID) String() string {
	id32 := s.ID32()
	return fmt.Sprintf("STEAM_1:%d:%d", id32&1, id32>>1)
}

func (s SteamID) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
