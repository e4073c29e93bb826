package wire

import "github.com/fxamacker/cbor/v2"

type cborCodec struct{}

func (cborCodec) ContentType() string { return "CBOR" }

func (cborCodec) Marshal(v any) ([]byte, error) {
	return cbor.Marshal(v)
}

func (cborCodec) Unmarshal(data []byte, v any) error {
	return cbor.Unmarshal(data, v)
}
