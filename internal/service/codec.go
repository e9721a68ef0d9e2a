package service

import "encoding/json"

// JSONCodec marshals plain Go message structs for Connect. It is registered
// under the name "json", so clients and handlers negotiate
// application/json (unary) and application/connect+json (streaming).
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg any) ([]byte, error) { return json.Marshal(msg) }

func (JSONCodec) Unmarshal(data []byte, msg any) error { return json.Unmarshal(data, msg) }
