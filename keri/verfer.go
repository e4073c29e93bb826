package keri

import "crypto/ed25519"

// Verfer is public verification key material: an Ed25519 public key
// tagged transferable or non-transferable by its derivation code.
type Verfer struct {
	Matter
}

// NewVerfer wraps an Ed25519 public key. code selects whether the key is
// non-transferable (CodeEd25519N) or transferable (CodeEd25519) basic
// derivation.
func NewVerfer(code string, pub ed25519.PublicKey) (Verfer, error) {
	if code != CodeEd25519N && code != CodeEd25519 {
		return Verfer{}, newValidation("code %q is not a verification key code", code)
	}
	if len(pub) != ed25519.PublicKeySize {
		return Verfer{}, newValidation("invalid Ed25519 public key size %d", len(pub))
	}
	m, err := NewMatterFromRaw(code, pub, 0)
	if err != nil {
		return Verfer{}, err
	}
	return Verfer{Matter: m}, nil
}

// NewVerferFromQb64 wraps previously qualified verification key material.
func NewVerferFromQb64(qb64 string) (Verfer, error) {
	m, err := NewMatterFromQb64(qb64)
	if err != nil {
		return Verfer{}, err
	}
	if m.Code() != CodeEd25519N && m.Code() != CodeEd25519 {
		return Verfer{}, newValidation("code %q is not a verification key code", m.Code())
	}
	return Verfer{Matter: m}, nil
}

// PublicKey returns the wrapped Ed25519 public key.
func (v Verfer) PublicKey() ed25519.PublicKey {
	return ed25519.PublicKey(v.Raw())
}

// Verify reports whether sig is a valid Ed25519 signature over ser under
// this key.
func (v Verfer) Verify(ser, sig []byte) bool {
	if len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(v.PublicKey(), ser, sig)
}
