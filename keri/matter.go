package keri

import (
	"github.com/libkeri/keri/b64"
)

// Matter is the fully qualified cryptographic material base type: a
// derivation code paired with a raw byte payload and, for count-class
// codes, an index. It is immutable after construction and freely
// shareable; every crypto-specific wrapper (Digester, Verfer, Signer,
// ...) embeds one.
type Matter struct {
	code  string
	raw   []byte
	index uint16
}

// Code returns the derivation code selecting the material's cipher suite.
func (m Matter) Code() string { return m.code }

// Raw returns the raw crypto material without its derivation code.
// The returned slice must not be mutated by the caller.
func (m Matter) Raw() []byte { return m.raw }

// Index returns the attached count or signing index for count-class and
// indexed codes; it is zero for everything else.
func (m Matter) Index() uint16 { return m.index }

// Pad returns the number of Base64 pad characters implied by len(Raw()).
func (m Matter) Pad() int { return padFor(len(m.raw)) }

// Transferable reports whether Code is not one of the non-transferable
// basic derivation codes.
func (m Matter) Transferable() bool { return isTransferable(m.code) }

// Digestive reports whether Code names a digest algorithm.
func (m Matter) Digestive() bool { return isDigestive(m.code) }

func padFor(rawLen int) int {
	r := rawLen % 3
	if r == 0 {
		return 0
	}
	return 3 - r
}

// NewMatterFromRaw builds a Matter from a raw payload and explicit code.
// index is only meaningful (and must be 0..4095) for count-class codes.
func NewMatterFromRaw(code string, raw []byte, index uint16) (Matter, error) {
	entry, ok := lookupCode(code)
	if !ok {
		return Matter{}, newValidation("unknown derivation code %q", code)
	}

	pad := padFor(len(raw))
	switch {
	case pad == 1 && entry.Category == catOne:
	case pad == 2 && entry.Category == catTwo:
	case pad == 0 && entry.Category == catFour:
	case pad == 0 && entry.Category == catCount:
	default:
		return Matter{}, newValidation("wrong code %q for raw of length %d", code, len(raw))
	}

	if entry.Category == catCount && index > countIdxMax {
		return Matter{}, newValidation("invalid index %d for code %q", index, code)
	}

	if len(raw) < entry.RawLen {
		return Matter{}, newValidation("unexpected raw size %d for code %q, want %d", len(raw), code, entry.RawLen)
	}
	raw = raw[:entry.RawLen] // allow longer input by truncating, as a stream would supply it

	out := make([]byte, len(raw))
	copy(out, raw)
	return Matter{code: code, raw: out, index: index}, nil
}

// infil returns the fully qualified Base64URL bytes for m: code (plus, for
// count codes, the base64 index) followed by the Base64URL encoding of
// raw with its trailing pad characters stripped.
func (m Matter) infil() ([]byte, error) {
	entry, ok := lookupCode(m.code)
	if !ok {
		return nil, newValidation("unknown derivation code %q", m.code)
	}

	full := m.code
	if entry.Category == catCount {
		full = m.code + b64.IntToB64(uint64(m.index), entry.IdxLen)
	}

	pad := m.Pad()
	if len(full)%4 != pad {
		return nil, newValidation("invalid code %q for raw pad %d", full, pad)
	}

	encoded := b64.EncodeRaw(m.raw)
	encoded = encoded[:len(encoded)-pad] // strip the '=' padding infil never emits
	return append([]byte(full), encoded...), nil
}

// Qb64b returns the fully qualified Base64URL form as bytes.
func (m Matter) Qb64b() ([]byte, error) { return m.infil() }

// Qb64 returns the fully qualified Base64URL form as a string.
func (m Matter) Qb64() (string, error) {
	b, err := m.infil()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Qb2 returns the packed binary form: the Base64URL decoding of the
// entire qualified string, code prefix included. It is not a distinct
// wire format; it is the same bitstream without Base64 expansion.
func (m Matter) Qb2() ([]byte, error) {
	full, err := m.infil()
	if err != nil {
		return nil, err
	}
	return b64.DecodeRaw(padQb64ForDecode(full))
}

// padQb64ForDecode restores standard Base64 '=' padding to a pad-stripped
// qb64 byte string so the stdlib decoder accepts it.
func padQb64ForDecode(qb64b []byte) string {
	pad := (4 - len(qb64b)%4) % 4
	out := make([]byte, len(qb64b)+pad)
	copy(out, qb64b)
	for i := len(qb64b); i < len(out); i++ {
		out[i] = '='
	}
	return string(out)
}

// NewMatterFromQb64b extracts a Matter from fully qualified Base64URL
// bytes. Input longer than the code's full_len is accepted; only the
// leading full_len bytes are consumed, supporting parses out of a
// longer buffer.
func NewMatterFromQb64b(qb64b []byte) (Matter, error) {
	if len(qb64b) < MinMaterialSize {
		return Matter{}, newShortage("need at least %d bytes, got %d", MinMaterialSize, len(qb64b))
	}

	cs := 1
	sel := string(qb64b[:cs])
	code := sel
	index := uint16(0)

	switch {
	case isOneCharSelector(sel):
		code = sel

	case sel == "0":
		cs = 2
		code = string(qb64b[:cs])
		if _, ok := twoCharTable[code]; !ok {
			return Matter{}, newValidation("invalid derivation code %q", code)
		}

	case sel == "1":
		cs = 4
		if len(qb64b) < cs {
			return Matter{}, newShortage("need more bytes for four-char code")
		}
		code = string(qb64b[:cs])
		if _, ok := fourCharTable[code]; !ok {
			return Matter{}, newValidation("invalid derivation code %q", code)
		}

	case sel == "-":
		cs = 2
		if len(qb64b) < cs {
			return Matter{}, newShortage("need more bytes for count code")
		}
		code = string(qb64b[:cs])
		entry, ok := countTable[code]
		if !ok {
			return Matter{}, newValidation("invalid derivation code %q", code)
		}
		idxEnd := cs + entry.IdxLen
		if len(qb64b) < idxEnd {
			return Matter{}, newShortage("need more bytes for count index")
		}
		n, err := b64.B64ToInt(string(qb64b[cs:idxEnd]))
		if err != nil {
			return Matter{}, newValidation("bad count index: %v", err)
		}
		index = uint16(n)
		cs = idxEnd

	default:
		return Matter{}, newValidation("improperly coded material, unknown selector %q", sel)
	}

	entry, ok := lookupCode(code)
	if !ok {
		return Matter{}, newValidation("invalid derivation code %q", code)
	}

	if len(qb64b) < entry.FullLen {
		return Matter{}, newShortage("need %d bytes for code %q, have %d", entry.FullLen, code, len(qb64b))
	}
	qb64b = qb64b[:entry.FullLen]

	pad := cs % 4
	base := string(qb64b[cs:]) + string(make([]byte, pad, pad))
	baseBytes := []byte(base)
	for i := len(base) - pad; i < len(base); i++ {
		baseBytes[i] = '='
	}

	raw, err := b64.DecodeRaw(string(baseBytes))
	if err != nil {
		return Matter{}, newValidation("improperly qualified material: %v", err)
	}

	if len(raw) != (len(qb64b)-cs)*3/4 {
		return Matter{}, newValidation("improperly qualified material, decoded length mismatch")
	}

	return Matter{code: code, raw: raw, index: index}, nil
}

// NewMatterFromQb64 is the string-typed equivalent of NewMatterFromQb64b.
func NewMatterFromQb64(qb64 string) (Matter, error) {
	return NewMatterFromQb64b([]byte(qb64))
}

// NewMatterFromQb2 extracts a Matter from packed binary form.
func NewMatterFromQb2(qb2 []byte) (Matter, error) {
	return NewMatterFromQb64b([]byte(b64.EncodeRaw(qb2)))
}

func isOneCharSelector(sel string) bool {
	_, ok := oneCharTable[sel]
	return ok
}
