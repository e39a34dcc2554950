package codec

import "gopkg.in/yaml.v3"

// MediaTypeYAML is the media type served by the YAML codec.
const MediaTypeYAML = "application/x-yaml"

// YAML encodes and decodes YAML bodies.
type YAML struct{}

// MediaType returns "application/x-yaml".
func (YAML) MediaType() string { return MediaTypeYAML }

// Marshal encodes a value as YAML.
func (YAML) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }

// Unmarshal decodes YAML bytes into the destination.
func (YAML) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }
