package keri

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Tier selects the Argon2id cost parameters a Salter stretches with.
// Higher tiers cost more CPU/memory per derivation and are meant for
// long-lived controlling keys; Low suits ephemeral or test material.
type Tier string

const (
	TierLow  Tier = "low"
	TierMed  Tier = "med"
	TierHigh Tier = "high"
)

type tierParams struct {
	time    uint32
	memory  uint32 // KiB
	threads uint8
}

var tierTable = map[Tier]tierParams{
	TierLow:  {time: 1, memory: 8 * 1024, threads: 1},
	TierMed:  {time: 2, memory: 64 * 1024, threads: 2},
	TierHigh: {time: 3, memory: 256 * 1024, threads: 4},
}

// Salter is a 128 bit random salt used to deterministically stretch a
// sequence of per-index signing seeds, so a controller can regenerate
// its entire key history from one secret plus a path/tier policy.
type Salter struct {
	Matter
}

// NewSalter generates a fresh random salt.
func NewSalter() (Salter, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return Salter{}, err
	}
	m, err := NewMatterFromRaw(CodeSalt128, raw, 0)
	if err != nil {
		return Salter{}, err
	}
	return Salter{Matter: m}, nil
}

// NewSalterFromQb64 wraps a previously qualified salt.
func NewSalterFromQb64(qb64 string) (Salter, error) {
	m, err := NewMatterFromQb64(qb64)
	if err != nil {
		return Salter{}, err
	}
	if m.Code() != CodeSalt128 {
		return Salter{}, newValidation("code %q is not a salt code", m.Code())
	}
	return Salter{Matter: m}, nil
}

// Stretch derives a 32 byte Ed25519 seed from the salt, a caller-chosen
// path string, and an index, at the given cost tier. The same
// (salt, path, index, tier) always yields the same seed.
func (s Salter) Stretch(path string, index uint32, tier Tier) ([]byte, error) {
	params, ok := tierTable[tier]
	if !ok {
		return nil, newValidation("unknown tier %q", tier)
	}
	passwd := []byte(fmt.Sprintf("%s%x", path, index))
	return argon2.IDKey(passwd, s.Raw(), params.time, params.memory, params.threads, 32), nil
}

// SignerAt derives the Signer at index along path, at the given cost
// tier.
func (s Salter) SignerAt(path string, index uint32, tier Tier, transferable bool) (Signer, error) {
	seed, err := s.Stretch(path, index, tier)
	if err != nil {
		return Signer{}, err
	}
	return NewSignerFromSeed(seed, transferable)
}
