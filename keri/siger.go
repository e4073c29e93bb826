package keri

import "github.com/libkeri/keri/b64"

// Siger is indexed signature material: a signature paired with the
// position of its signing key within a controller's current key list.
// It uses its own small derivation table rather than Matter's, because
// its one-character selectors collide with CodeTables' unrelated basic
// and digest codes - "A" means Ed25519 seed in one table and Ed25519
// indexed signature in the other, distinguished only by which parser a
// caller invokes.
type Siger struct {
	code   string
	raw    []byte
	index  uint16
	verfer *Verfer
}

// NewSiger wraps a raw Ed25519 signature with its signing key's index.
func NewSiger(raw []byte, index uint16) (Siger, error) {
	entry, ok := sigTwoTable[SigCodeEd25519]
	if !ok {
		return Siger{}, newValidation("no indexed signature code registered")
	}
	if len(raw) != entry.RawLen {
		return Siger{}, newValidation("invalid signature size %d, want %d", len(raw), entry.RawLen)
	}
	maxIdx := uint16(1)<<(6*entry.IdxLen) - 1
	if index > maxIdx {
		return Siger{}, newValidation("index %d exceeds max %d for code %q", index, maxIdx, SigCodeEd25519)
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return Siger{code: SigCodeEd25519, raw: out, index: index}, nil
}

// Code returns the indexed signature derivation code.
func (s Siger) Code() string { return s.code }

// Raw returns the raw signature bytes.
func (s Siger) Raw() []byte { return s.raw }

// Index returns the signing key's position in the key list.
func (s Siger) Index() uint16 { return s.index }

// Qb64b returns the fully qualified Base64URL form as bytes.
func (s Siger) Qb64b() ([]byte, error) {
	entry, ok := lookupSigCode(s.code)
	if !ok {
		return nil, newValidation("unknown indexed signature code %q", s.code)
	}
	full := s.code + b64.IntToB64(uint64(s.index), entry.IdxLen)
	pad := padFor(len(s.raw))
	encoded := b64.EncodeRaw(s.raw)
	encoded = encoded[:len(encoded)-pad]
	return append([]byte(full), encoded...), nil
}

// Qb64 returns the fully qualified Base64URL form as a string.
func (s Siger) Qb64() (string, error) {
	b, err := s.Qb64b()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// NewSigerFromQb64b extracts a Siger from fully qualified bytes.
func NewSigerFromQb64b(qb64b []byte) (Siger, error) {
	if len(qb64b) < 2 {
		return Siger{}, newShortage("need at least 2 bytes for an indexed signature selector")
	}

	sel := string(qb64b[:1])
	cs := 1
	code := sel
	if _, ok := sigTwoTable[sel]; ok {
		code = sel
	} else if sel == "0" {
		cs = 2
		if len(qb64b) < cs {
			return Siger{}, newShortage("need more bytes for four-char indexed signature code")
		}
		code = string(qb64b[:cs])
		if _, ok := sigFourTable[code]; !ok {
			return Siger{}, newValidation("invalid indexed signature code %q", code)
		}
	} else {
		return Siger{}, newValidation("unknown indexed signature selector %q", sel)
	}

	entry, ok := lookupSigCode(code)
	if !ok {
		return Siger{}, newValidation("invalid indexed signature code %q", code)
	}

	idxEnd := cs + entry.IdxLen
	if len(qb64b) < idxEnd {
		return Siger{}, newShortage("need more bytes for signature index")
	}
	n, err := b64.B64ToInt(string(qb64b[cs:idxEnd]))
	if err != nil {
		return Siger{}, newValidation("bad signature index: %v", err)
	}

	if len(qb64b) < entry.FullLen {
		return Siger{}, newShortage("need %d bytes for code %q, have %d", entry.FullLen, code, len(qb64b))
	}
	qb64b = qb64b[:entry.FullLen]

	pad := idxEnd % 4
	base := append([]byte(nil), qb64b[idxEnd:]...)
	for i := 0; i < pad; i++ {
		base = append(base, '=')
	}
	raw, err := b64.DecodeRaw(string(base))
	if err != nil {
		return Siger{}, newValidation("improperly qualified indexed signature: %v", err)
	}

	return Siger{code: code, raw: raw, index: uint16(n)}, nil
}

// NewSigerFromQb64 is the string-typed equivalent of NewSigerFromQb64b.
func NewSigerFromQb64(qb64 string) (Siger, error) {
	return NewSigerFromQb64b([]byte(qb64))
}

func lookupSigCode(code string) (codeEntry, bool) {
	if e, ok := sigTwoTable[code]; ok {
		return e, true
	}
	if e, ok := sigFourTable[code]; ok {
		return e, true
	}
	return codeEntry{}, false
}

// AttachVerfer records the key that produced this signature.
func (s *Siger) AttachVerfer(v Verfer) { s.verfer = &v }

// Verfer returns the key previously attached with AttachVerfer, or false
// if none was attached.
func (s Siger) Verfer() (Verfer, bool) {
	if s.verfer == nil {
		return Verfer{}, false
	}
	return *s.verfer, true
}
