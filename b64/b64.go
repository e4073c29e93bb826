// Package b64 implements the Base64URL alphabet indexing used to encode
// derivation-code index fields (attachment counts, signature indices) and
// the padded encode/decode step shared by every qualified material form.
//
// It does not replace encoding/base64 for bulk payload conversion; it
// exposes the small set of primitives that the qualified material codec
// needs on top of it: character<->index lookup and int<->digit-string
// conversion, most significant digit first.
package b64

import (
	"encoding/base64"
	"fmt"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

var indexByChar [256]int8

func init() {
	for i := range indexByChar {
		indexByChar[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		indexByChar[alphabet[i]] = int8(i)
	}
}

// CharByIndex returns the Base64URL character for index 0..63.
// It panics if i is out of range; callers only ever pass values already
// masked to 6 bits.
func CharByIndex(i byte) byte {
	return alphabet[i]
}

// IndexByChar returns the Base64URL index for c, or false if c is not in
// the alphabet.
func IndexByChar(c byte) (byte, bool) {
	idx := indexByChar[c]
	if idx < 0 {
		return 0, false
	}
	return byte(idx), true
}

// IntToB64 converts n to a Base64URL digit string, left-padded with 'A'
// (index 0) to at least minChars digits. It never truncates: if n needs
// more digits than minChars, the result widens.
func IntToB64(n uint64, minChars int) string {
	var digits []byte
	if n == 0 {
		digits = []byte{0}
	} else {
		for v := n; v > 0; v /= 64 {
			digits = append(digits, byte(v%64))
		}
	}
	for len(digits) < minChars {
		digits = append(digits, 0)
	}
	out := make([]byte, len(digits))
	for i, d := range digits {
		out[len(digits)-1-i] = CharByIndex(d)
	}
	return string(out)
}

// B64ToInt converts a Base64URL digit string to its positional integer
// value, most-significant digit first.
func B64ToInt(s string) (uint64, error) {
	var n uint64
	for i := 0; i < len(s); i++ {
		idx, ok := IndexByChar(s[i])
		if !ok {
			return 0, fmt.Errorf("b64: invalid digit %q in %q", s[i], s)
		}
		n = n*64 + uint64(idx)
	}
	return n, nil
}

// EncodeRaw returns the standard padded Base64URL encoding of raw.
func EncodeRaw(raw []byte) string {
	return base64.URLEncoding.EncodeToString(raw)
}

// DecodeRaw decodes a standard padded Base64URL string back to bytes.
func DecodeRaw(s string) ([]byte, error) {
	return base64.URLEncoding.DecodeString(s)
}
