package keri

import (
	"crypto/ed25519"
	"crypto/rand"
)

// Signer is private signing key material: an Ed25519 seed plus the
// derived verification key it controls.
type Signer struct {
	Matter
	verfer Verfer
	priv   ed25519.PrivateKey
}

// NewSigner generates a fresh Ed25519 seed. transferable selects whether
// the derived Verfer uses the transferable or non-transferable basic
// derivation code.
func NewSigner(transferable bool) (Signer, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return Signer{}, err
	}
	return newSignerFromSeed(priv.Seed(), transferable)
}

// NewSignerFromSeed wraps an existing 32-byte Ed25519 seed.
func NewSignerFromSeed(seed []byte, transferable bool) (Signer, error) {
	return newSignerFromSeed(seed, transferable)
}

func newSignerFromSeed(seed []byte, transferable bool) (Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return Signer{}, newValidation("invalid Ed25519 seed size %d", len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)

	m, err := NewMatterFromRaw(CodeEd25519Seed, seed, 0)
	if err != nil {
		return Signer{}, err
	}

	code := CodeEd25519N
	if transferable {
		code = CodeEd25519
	}
	verfer, err := NewVerfer(code, priv.Public().(ed25519.PublicKey))
	if err != nil {
		return Signer{}, err
	}

	return Signer{Matter: m, verfer: verfer, priv: priv}, nil
}

// NewSignerFromQb64 wraps a previously qualified seed.
func NewSignerFromQb64(qb64 string, transferable bool) (Signer, error) {
	m, err := NewMatterFromQb64(qb64)
	if err != nil {
		return Signer{}, err
	}
	if m.Code() != CodeEd25519Seed {
		return Signer{}, newValidation("code %q is not a seed code", m.Code())
	}
	return newSignerFromSeed(m.Raw(), transferable)
}

// Verfer returns the verification key derived from this seed.
func (s Signer) Verfer() Verfer { return s.verfer }

// Sign produces a non-indexed signature over ser.
func (s Signer) Sign(ser []byte) (Cigar, error) {
	sig := ed25519.Sign(s.priv, ser)
	cig, err := NewCigar(sig)
	if err != nil {
		return Cigar{}, err
	}
	cig.AttachVerfer(s.verfer)
	return cig, nil
}

// SignIndexed produces an indexed signature over ser, tagged with the
// signer's position index in a key list.
func (s Signer) SignIndexed(ser []byte, index uint16) (Siger, error) {
	sig := ed25519.Sign(s.priv, ser)
	sgr, err := NewSiger(sig, index)
	if err != nil {
		return Siger{}, err
	}
	sgr.AttachVerfer(s.verfer)
	return sgr, nil
}
