package wire

import "github.com/vmihailenco/msgpack/v5"

type msgpackCodec struct{}

func (msgpackCodec) ContentType() string { return "MGPK" }

func (msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
