package keri

import (
	"bytes"
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// KED is a key event dictionary: the parsed field/value map of a key
// event, with insertion order preserved. Order matters here in a way it
// never does for an ordinary map literal - the version string's encoded
// size field is computed over the serialization of this exact field
// order, so decode-then-reencode must reproduce it byte for byte.
type KED struct {
	keys   []string
	values map[string]any
}

// NewKED returns an empty, ready-to-use key event dictionary.
func NewKED() *KED {
	return &KED{values: make(map[string]any)}
}

// Set assigns key to value, appending key to the end of the field order
// if it is new, or leaving the order unchanged if key already exists.
func (k *KED) Set(key string, value any) *KED {
	if _, ok := k.values[key]; !ok {
		k.keys = append(k.keys, key)
	}
	k.values[key] = value
	return k
}

// Get returns the value stored at key and whether it was present.
func (k *KED) Get(key string) (any, bool) {
	v, ok := k.values[key]
	return v, ok
}

// MustGet returns the value at key, or nil if absent.
func (k *KED) MustGet(key string) any {
	return k.values[key]
}

// Keys returns the field names in insertion order. The returned slice
// must not be mutated by the caller.
func (k *KED) Keys() []string { return k.keys }

// Len returns the number of fields.
func (k *KED) Len() int { return len(k.keys) }

// Clone returns a deep-enough copy: a new KED with the same field order
// and the same value references (values are not themselves cloned).
func (k *KED) Clone() *KED {
	out := &KED{
		keys:   append([]string(nil), k.keys...),
		values: make(map[string]any, len(k.values)),
	}
	for key, v := range k.values {
		out.values[key] = v
	}
	return out
}

// MarshalJSON writes the fields in insertion order instead of the
// randomized order map[string]any would produce.
func (k *KED) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range k.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(k.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds the dictionary preserving the field order as it
// appears in data, using token-level streaming instead of decoding into
// a plain map.
func (k *KED) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return newValidation("expected a JSON object")
	}

	*k = KED{values: make(map[string]any)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return newValidation("expected a string field name")
		}
		var val any
		if err := dec.Decode(&val); err != nil {
			return err
		}
		k.Set(key, val)
	}
	_, err = dec.Token() // closing '}'
	return err
}

// EncodeMsgpack implements msgpack.CustomEncoder so a KED round trips
// through MessagePack with its field order intact.
func (k *KED) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(len(k.keys)); err != nil {
		return err
	}
	for _, key := range k.keys {
		if err := enc.EncodeString(key); err != nil {
			return err
		}
		if err := enc.Encode(k.values[key]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (k *KED) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return err
	}
	*k = KED{values: make(map[string]any)}
	for i := 0; i < n; i++ {
		key, err := dec.DecodeString()
		if err != nil {
			return err
		}
		var val any
		if err := dec.Decode(&val); err != nil {
			return err
		}
		k.Set(key, val)
	}
	return nil
}

// MarshalCBOR implements cbor.Marshaler, writing the CBOR map header by
// hand so the key/value pairs follow in insertion order.
func (k *KED) MarshalCBOR() ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(cborMapHeader(len(k.keys)))
	for _, key := range k.keys {
		kb, err := cbor.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		vb, err := cbor.Marshal(k.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	return buf.Bytes(), nil
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (k *KED) UnmarshalCBOR(data []byte) error {
	n, consumed, err := cborMapHeaderLen(data)
	if err != nil {
		return err
	}

	dec := cbor.NewDecoder(bytes.NewReader(data[consumed:]))
	*k = KED{values: make(map[string]any)}
	for i := 0; i < n; i++ {
		var key string
		if err := dec.Decode(&key); err != nil {
			return err
		}
		var val any
		if err := dec.Decode(&val); err != nil {
			return err
		}
		k.Set(key, val)
	}
	return nil
}

// cborMapHeader encodes a CBOR major type 5 (map) header for n pairs.
func cborMapHeader(n int) []byte {
	const majorMap = 0xA0
	switch {
	case n < 24:
		return []byte{byte(majorMap | n)}
	case n < 256:
		return []byte{0xB8, byte(n)}
	case n < 65536:
		return []byte{0xB9, byte(n >> 8), byte(n)}
	default:
		return []byte{0xBA, byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}
	}
}

// cborMapHeaderLen parses a CBOR map header, returning the pair count and
// the number of header bytes consumed.
func cborMapHeaderLen(data []byte) (n, consumed int, err error) {
	if len(data) == 0 {
		return 0, 0, newShortage("empty CBOR input")
	}
	lead := data[0]
	if lead&0xE0 != 0xA0 {
		return 0, 0, newValidation("expected a CBOR map, got major type %d", lead>>5)
	}
	info := lead & 0x1F
	switch {
	case info < 24:
		return int(info), 1, nil
	case info == 24:
		if len(data) < 2 {
			return 0, 0, newShortage("truncated CBOR map header")
		}
		return int(data[1]), 2, nil
	case info == 25:
		if len(data) < 3 {
			return 0, 0, newShortage("truncated CBOR map header")
		}
		return int(data[1])<<8 | int(data[2]), 3, nil
	case info == 26:
		if len(data) < 5 {
			return 0, 0, newShortage("truncated CBOR map header")
		}
		return int(data[1])<<24 | int(data[2])<<16 | int(data[3])<<8 | int(data[4]), 5, nil
	default:
		return 0, 0, newValidation("unsupported CBOR map length encoding")
	}
}
