package keri

import (
	"github.com/libkeri/keri/wire"
)

// Serder is a framed key event: a parsed field dictionary together with
// the exact serialized bytes it was derived from (or will be derived
// into), version-tagged with the serialization kind and byte size that
// let a stream reader find the event's end without a delimiter.
type Serder struct {
	raw  []byte
	ked  *KED
	kind Kind
	size int
}

// Ked returns the event's parsed fields. Callers should not mutate the
// returned dictionary; round-trip it through NewSerderFromKED instead.
func (s *Serder) Ked() *KED { return s.ked }

// Raw returns the exact serialized bytes this Serder represents.
func (s *Serder) Raw() []byte { return s.raw }

// Kind returns the wire serialization this Serder was framed with.
func (s *Serder) Kind() Kind { return s.kind }

// Size returns the byte length of Raw, matching the version string's
// embedded size field.
func (s *Serder) Size() int { return s.size }

// NewSerderFromKED serializes ked under kind, computing and stamping its
// "v" version field in a first pass, then reserializing so the embedded
// size field matches the final byte length. This is a two-pass process
// because the size field is itself part of what it measures.
func NewSerderFromKED(ked *KED, kind Kind) (*Serder, error) {
	codec, ok := wire.Lookup(string(kind))
	if !ok {
		return nil, newValidation("unsupported serialization kind %q", kind)
	}

	placeholder, err := Versify(CurrentVersion, kind, 0)
	if err != nil {
		return nil, err
	}
	working := ked.Clone()
	working.Set("v", placeholder)

	draft, err := codec.Marshal(working)
	if err != nil {
		return nil, err
	}

	vs, err := Versify(CurrentVersion, kind, len(draft))
	if err != nil {
		return nil, err
	}
	working.Set("v", vs)

	final, err := codec.Marshal(working)
	if err != nil {
		return nil, err
	}
	if len(final) != len(draft) {
		return nil, newValidation("version string restamp changed serialized length from %d to %d", len(draft), len(final))
	}

	return &Serder{raw: final, ked: working, kind: kind, size: len(final)}, nil
}

// Inhale sniffs the version string out of raw, validates the protocol
// version and serialization kind, and parses the event fields through
// the matching codec. raw may contain trailing bytes (a following
// attachment group); only the first Size() of them belong to this event.
func Inhale(raw []byte) (*Serder, error) {
	if len(raw) < MinSniffSize {
		return nil, newShortage("need at least %d bytes to sniff a version string, have %d", MinSniffSize, len(raw))
	}

	window := raw
	if len(window) > verTagMaxStart+VersionFullLen {
		window = window[:verTagMaxStart+VersionFullLen]
	}
	loc := verRe.FindIndex(window)
	if loc == nil || loc[0] >= verTagMaxStart {
		return nil, newValidation("no version string found in the first %d bytes", verTagMaxStart)
	}
	m := window[loc[0]:loc[1]]

	kind, version, size, err := Deversify(string(m))
	if err != nil {
		return nil, err
	}
	if version != CurrentVersion {
		logger.Errorf("serder: unsupported protocol version %d.%d", version.Major, version.Minor)
		return nil, newVersionErr("unsupported protocol version %d.%d", version.Major, version.Minor)
	}
	if len(raw) < size {
		return nil, newShortage("need %d bytes for event, have %d", size, len(raw))
	}

	codec, ok := wire.Lookup(string(kind))
	if !ok {
		return nil, newValidation("unsupported serialization kind %q", kind)
	}

	ked := NewKED()
	if err := codec.Unmarshal(raw[:size], ked); err != nil {
		return nil, newValidation("malformed %s event: %v", kind, err)
	}

	logger.Debugf("serder: inhaled %s event, %d bytes", kind, size)
	return &Serder{raw: raw[:size], ked: ked, kind: kind, size: size}, nil
}

// Compare reports whether other names the same event: either their raw
// serializations are byte-identical, or (when a digestive "d" field is
// present) their digests agree regardless of serialization kind.
func (s *Serder) Compare(other *Serder) bool {
	if subtleEqual(s.raw, other.raw) {
		return true
	}
	dv, ok1 := s.ked.Get("d")
	ov, ok2 := other.ked.Get("d")
	if !ok1 || !ok2 {
		return false
	}
	ds, ok1 := dv.(string)
	os, ok2 := ov.(string)
	if !ok1 || !ok2 {
		return false
	}
	d1, err := NewDigesterFromQb64(ds)
	if err != nil {
		return false
	}
	d2, err := NewDigesterFromQb64(os)
	if err != nil {
		return false
	}
	ok, err := d1.Compare(other.raw, d2)
	return err == nil && ok
}
