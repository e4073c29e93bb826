package keri

import (
	"fmt"
	"regexp"
	"strconv"
)

// Kind identifies the wire serialization of a key event.
type Kind string

const (
	KindJSON Kind = "JSON"
	KindMGPK Kind = "MGPK"
	KindCBOR Kind = "CBOR"
)

func (k Kind) valid() bool {
	switch k {
	case KindJSON, KindMGPK, KindCBOR:
		return true
	}
	return false
}

// Version is a protocol major.minor pair.
type Version struct {
	Major int
	Minor int
}

// CurrentVersion is the only protocol version this module accepts.
var CurrentVersion = Version{Major: 1, Minor: 0}

const (
	verRawSizeHex  = 6  // hex digits for the raw serialization size
	VersionFullLen = 17 // total bytes in a version string

	// verTagMaxStart is the furthest byte offset the version tag may
	// start at within a serialization: with "v" as the event's first
	// field, only the map header and the "v" label precede the tag.
	verTagMaxStart = 13

	// MinSniffSize is the minimum buffer length Inhale needs before it can
	// even attempt to locate a version string; shorter buffers yield a
	// recoverable ShortageError instead of a validation failure, so a
	// streaming reader knows to buffer more bytes and retry.
	MinSniffSize = verTagMaxStart + VersionFullLen - 1
)

var verRe = regexp.MustCompile(`KERI([0-9a-f])([0-9a-f])([A-Z]{4})([0-9a-f]{6})_`)

// Versify renders the 17-byte version tag for version, kind and size.
func Versify(version Version, kind Kind, size int) (string, error) {
	if !kind.valid() {
		return "", newValidation("invalid serialization kind %q", kind)
	}
	if version.Major > 15 || version.Major < 0 || version.Minor > 15 || version.Minor < 0 {
		return "", newValidation("version %d.%d does not fit in one hex digit each", version.Major, version.Minor)
	}
	return fmt.Sprintf("KERI%x%x%s%0*x_", version.Major, version.Minor, kind, verRawSizeHex, size), nil
}

// Deversify parses a 17-byte version tag into its kind, version and size.
func Deversify(vs string) (Kind, Version, int, error) {
	if len(vs) != VersionFullLen {
		return "", Version{}, 0, newValidation("invalid version string %q", vs)
	}
	m := verRe.FindStringSubmatch(vs)
	if m == nil {
		return "", Version{}, 0, newValidation("invalid version string %q", vs)
	}
	major, _ := strconv.ParseInt(m[1], 16, 64)
	minor, _ := strconv.ParseInt(m[2], 16, 64)
	kind := Kind(m[3])
	if !kind.valid() {
		return "", Version{}, 0, newValidation("invalid serialization kind %q", m[3])
	}
	size, _ := strconv.ParseInt(m[4], 16, 64)
	return kind, Version{Major: int(major), Minor: int(minor)}, int(size), nil
}
