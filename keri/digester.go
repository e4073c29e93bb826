package keri

import (
	"crypto/sha256"
	"crypto/subtle"
	"hash"

	"github.com/lukechampine/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// hasherFor returns a fresh hash.Hash for a digest derivation code.
func hasherFor(code string) (hash.Hash, error) {
	switch code {
	case CodeBlake3_256:
		return blake3.New(32, nil), nil
	case CodeBlake2b_256:
		return blake2b.New256(nil)
	case CodeBlake2s_256:
		return blake2s.New256(nil)
	case CodeSHA3_256:
		return sha3.New256(), nil
	case CodeSHA2_256:
		return sha256.New(), nil
	default:
		return nil, newValidation("unsupported digest code %q", code)
	}
}

func subtleEqual(a, b []byte) bool {
	return len(a) == len(b) && subtle.ConstantTimeCompare(a, b) == 1
}

func digest(code string, ser []byte) ([]byte, error) {
	h, err := hasherFor(code)
	if err != nil {
		return nil, err
	}
	h.Write(ser)
	return h.Sum(nil), nil
}

// Digester is self-addressing derivation material: the digest of some
// serialization, tagged with the algorithm that produced it.
type Digester struct {
	Matter
}

// NewDigester computes the digest of ser under code and wraps it as a
// Digester. code must be one of the digest derivation codes.
func NewDigester(code string, ser []byte) (Digester, error) {
	if !isDigestive(code) {
		return Digester{}, newValidation("code %q is not a digest algorithm", code)
	}
	raw, err := digest(code, ser)
	if err != nil {
		return Digester{}, err
	}
	m, err := NewMatterFromRaw(code, raw, 0)
	if err != nil {
		return Digester{}, err
	}
	return Digester{Matter: m}, nil
}

// NewDigesterFromQb64 wraps previously derived qualified digest material.
func NewDigesterFromQb64(qb64 string) (Digester, error) {
	m, err := NewMatterFromQb64(qb64)
	if err != nil {
		return Digester{}, err
	}
	if !m.Digestive() {
		return Digester{}, newValidation("code %q is not a digest algorithm", m.Code())
	}
	return Digester{Matter: m}, nil
}

// NewDigesterFromQb64b is the byte-typed equivalent of NewDigesterFromQb64.
func NewDigesterFromQb64b(qb64b []byte) (Digester, error) {
	return NewDigesterFromQb64(string(qb64b))
}

// Verify reports whether ser hashes, under d's algorithm, to d's raw
// digest.
func (d Digester) Verify(ser []byte) (bool, error) {
	want, err := digest(d.Code(), ser)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(want, d.Raw()) == 1, nil
}

// Compare reports whether d and other both name a digest of the same
// serialization ser. If the two use the same algorithm their raw bytes
// are compared directly; otherwise ser is rehashed under each side's own
// algorithm and the two results are compared against their respective
// digests, which is equivalent to, but cheaper than, rehashing ser under
// both algorithms and comparing those.
func (d Digester) Compare(ser []byte, other Digester) (bool, error) {
	if d.Code() == other.Code() {
		return subtle.ConstantTimeCompare(d.Raw(), other.Raw()) == 1, nil
	}
	ok1, err := d.Verify(ser)
	if err != nil {
		return false, err
	}
	ok2, err := other.Verify(ser)
	if err != nil {
		return false, err
	}
	return ok1 && ok2, nil
}
