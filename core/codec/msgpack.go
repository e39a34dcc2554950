package codec

import "github.com/vmihailenco/msgpack/v5"

// MediaTypeMsgPack is the media type served by the MessagePack codec.
const MediaTypeMsgPack = "application/x-msgpack"

// MsgPack encodes and decodes MessagePack bodies.
type MsgPack struct{}

// MediaType returns "application/x-msgpack".
func (MsgPack) MediaType() string { return MediaTypeMsgPack }

// Marshal encodes a value as MessagePack.
func (MsgPack) Marshal(v any) ([]byte, error) { return msgpack.Marshal(v) }

// Unmarshal decodes MessagePack bytes into the destination.
func (MsgPack) Unmarshal(data []byte, v any) error { return msgpack.Unmarshal(data, v) }
