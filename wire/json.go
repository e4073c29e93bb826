package wire

import "encoding/json"

type jsonCodec struct{}

func (jsonCodec) ContentType() string { return "JSON" }

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
