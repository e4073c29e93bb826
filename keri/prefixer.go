package keri

import (
	"strings"

	"github.com/libkeri/keri/wire"
)

// Prefixer is a self-certifying identifier prefix: material that lets a
// party verify it was derived, by one of a handful of fixed methods,
// from the inception data it identifies - without any external registry.
type Prefixer struct {
	Matter
}

// NewPrefixerFromVerfer derives a basic-derivation prefix directly from ked
// and the requested code: the prefix equals the sole signing key named in
// ked's "k" field. This covers both the non-transferable (Ed25519N) and
// transferable (Ed25519) basic derivations, and enforces the preconditions
// basic derivation requires: exactly one signing key, whose own code
// matches code, and - for the non-transferable code - an empty "n"
// next-key commitment, since an identifier that can never rotate can
// never meaningfully commit to next keys.
func NewPrefixerFromVerfer(code string, ked *KED) (Prefixer, error) {
	if code != CodeEd25519N && code != CodeEd25519 {
		return Prefixer{}, newDerivation("code %q is not a basic derivation code", code)
	}

	key, err := singleSigningKey(ked)
	if err != nil {
		return Prefixer{}, err
	}
	v, err := NewVerferFromQb64(key)
	if err != nil {
		return Prefixer{}, err
	}
	if v.Code() != code {
		return Prefixer{}, newDerivation("signing key code %q does not match requested basic derivation code %q", v.Code(), code)
	}

	if code == CodeEd25519N {
		if err := requireEmptyNext(ked); err != nil {
			return Prefixer{}, err
		}
	}

	return Prefixer{Matter: v.Matter}, nil
}

// singleSigningKey reads ked's "k" field and returns its sole qb64 key,
// failing if the field is absent, malformed, or names more than one key.
func singleSigningKey(ked *KED) (string, error) {
	v, ok := ked.Get("k")
	if !ok {
		return "", newDerivation("event has no signing key")
	}
	keys, ok := v.([]any)
	if !ok || len(keys) != 1 {
		return "", newDerivation("basic derivation requires exactly one signing key")
	}
	key, ok := keys[0].(string)
	if !ok {
		return "", newDerivation("signing key is not a string")
	}
	return key, nil
}

// requireEmptyNext fails unless ked's "n" field, if present, is empty.
func requireEmptyNext(ked *KED) error {
	v, ok := ked.Get("n")
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case string:
		if n != "" {
			return newDerivation("non-transferable prefix requires an empty next-key commitment")
		}
	case []any:
		if len(n) != 0 {
			return newDerivation("non-transferable prefix requires an empty next-key commitment")
		}
	case nil:
	default:
		return newDerivation("unsupported next-key field type %T", v)
	}
	return nil
}

// NewPrefixerSelfAddressing derives a self-addressing prefix: the digest,
// under code, of ked's serialization with its "i" field blanked to the
// prefix's own eventual width.
func NewPrefixerSelfAddressing(code string, ked *KED) (Prefixer, error) {
	if !isDigestive(code) {
		return Prefixer{}, newDerivation("code %q is not a digest algorithm", code)
	}
	entry, ok := lookupCode(code)
	if !ok {
		return Prefixer{}, newDerivation("unknown code %q", code)
	}

	ser, err := serializeWithBlankPrefix(ked, entry.FullLen)
	if err != nil {
		return Prefixer{}, err
	}

	d, err := NewDigester(code, ser)
	if err != nil {
		return Prefixer{}, err
	}
	return Prefixer{Matter: d.Matter}, nil
}

// NewPrefixerSelfSigning derives a self-signing prefix: signer's own
// signature over ked's serialization with its "i" field blanked to the
// eventual signature width.
func NewPrefixerSelfSigning(signer Signer, ked *KED) (Prefixer, error) {
	entry, ok := lookupCode(CodeEd25519Sig)
	if !ok {
		return Prefixer{}, newDerivation("no self-signing code registered")
	}

	ser, err := serializeWithBlankPrefix(ked, entry.FullLen)
	if err != nil {
		return Prefixer{}, err
	}

	cig, err := signer.Sign(ser)
	if err != nil {
		return Prefixer{}, err
	}
	return Prefixer{Matter: cig.Matter}, nil
}

// NewPrefixerFromQb64 wraps previously derived prefix material without
// revalidating its derivation.
func NewPrefixerFromQb64(qb64 string) (Prefixer, error) {
	m, err := NewMatterFromQb64(qb64)
	if err != nil {
		return Prefixer{}, err
	}
	return Prefixer{Matter: m}, nil
}

// Verify reports whether p is the correct prefix for ked, dispatching on
// p's own derivation code. The value of ked's "i" field is not compared;
// verification recomputes the prefix from the rest of the event with "i"
// replaced by a placeholder. If ked has no "i" field, the placeholder is
// appended as its last field.
func (p Prefixer) Verify(ked *KED) (bool, error) {
	switch {
	case p.Code() == CodeEd25519N || p.Code() == CodeEd25519:
		key, err := singleSigningKey(ked)
		if err != nil {
			return false, err
		}
		other, err := NewMatterFromQb64(key)
		if err != nil {
			return false, err
		}
		if p.Code() == CodeEd25519N {
			if err := requireEmptyNext(ked); err != nil {
				return false, err
			}
		}
		return other.Code() == p.Code() && subtleEqual(other.Raw(), p.Raw()), nil

	case p.Digestive():
		entry, _ := lookupCode(p.Code())
		ser, err := serializeWithBlankPrefix(ked, entry.FullLen)
		if err != nil {
			return false, err
		}
		d := Digester{Matter: p.Matter}
		return d.Verify(ser)

	case p.Code() == CodeEd25519Sig:
		v, ok := ked.Get("k")
		if !ok {
			return false, newDerivation("event has no signing key to verify a self-signing prefix against")
		}
		keys, ok := v.([]any)
		if !ok || len(keys) != 1 {
			return false, newDerivation("self-signing derivation requires exactly one signing key")
		}
		key, _ := keys[0].(string)
		verfer, err := NewVerferFromQb64(key)
		if err != nil {
			return false, err
		}
		entry, _ := lookupCode(CodeEd25519Sig)
		ser, err := serializeWithBlankPrefix(ked, entry.FullLen)
		if err != nil {
			return false, err
		}
		return verfer.Verify(ser, p.Raw()), nil

	default:
		logger.Warnf("prefixer: unsupported derivation code %q", p.Code())
		return false, newDerivation("unsupported prefix derivation code %q", p.Code())
	}
}

// serializeWithBlankPrefix serializes ked with its "i" field replaced by
// a run of pound signs the length the eventual prefix will occupy, using
// the wire format named by ked's "v" version string.
func serializeWithBlankPrefix(ked *KED, width int) ([]byte, error) {
	vs, ok := ked.Get("v")
	if !ok {
		return nil, newDerivation(`event has no "v" version field`)
	}
	vsStr, ok := vs.(string)
	if !ok {
		return nil, newDerivation(`"v" field is not a string`)
	}
	kind, _, _, err := Deversify(vsStr)
	if err != nil {
		return nil, err
	}
	codec, ok := wire.Lookup(string(kind))
	if !ok {
		return nil, newDerivation("unsupported serialization kind %q", kind)
	}

	blanked := ked.Clone()
	blanked.Set("i", strings.Repeat("#", width))
	return codec.Marshal(blanked)
}
