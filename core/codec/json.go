package codec

import (
	"encoding/json"

	"github.com/routegate/routegate/core/mediatype"
)

// JSON encodes and decodes application/json bodies.
type JSON struct{}

// MediaType returns "application/json".
func (JSON) MediaType() string { return mediatype.JSON }

// Marshal encodes a value as JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes JSON bytes into the destination.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
