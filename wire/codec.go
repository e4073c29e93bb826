// Package wire provides pluggable marshal/unmarshal codecs for the key
// event serializations KERI supports. It mirrors a small Codec interface
// rather than hard-coding a single format, so a Serder can pick the
// right one by Kind without every call site switching on it.
//
// Types that want their field order preserved across all three formats
// (as a key event dictionary must) implement the relevant per-format
// marshaler interfaces themselves; the codecs here just delegate to the
// standard entry points of each library.
package wire

// Codec marshals and unmarshals a value to one wire serialization.
type Codec interface {
	// ContentType names the format, matching a keri.Kind value.
	ContentType() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// ByContentType maps each supported Kind string to its Codec.
var ByContentType = map[string]Codec{
	jsonCodec{}.ContentType():    jsonCodec{},
	msgpackCodec{}.ContentType(): msgpackCodec{},
	cborCodec{}.ContentType():    cborCodec{},
}

// Lookup returns the Codec registered for contentType, or false if none
// is registered.
func Lookup(contentType string) (Codec, bool) {
	c, ok := ByContentType[contentType]
	return c, ok
}
