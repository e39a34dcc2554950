// Package codec provides structured-body codecs keyed by media type.
//
// A Registry holds an ordered set of codecs and resolves them two ways:
// by a request's Content-Type for decoding, and by an Accept value for
// encoding. Registration order is the preference order during Accept
// negotiation, so wildcard Accept values resolve to the first codec.
package codec

import (
	"github.com/routegate/routegate/core/mediatype"
)

// Codec encodes and decodes structured values for one media type.
type Codec interface {
	// MediaType returns the concrete media type the codec serves.
	MediaType() string

	// Marshal encodes a value into its wire representation.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes wire bytes into the given destination.
	Unmarshal(data []byte, v any) error
}

// Registry is an ordered, immutable collection of codecs. It is safe for
// concurrent use after construction.
type Registry struct {
	codecs []Codec
}

// NewRegistry creates a registry with the given codecs in preference order.
func NewRegistry(codecs ...Codec) *Registry {
	return &Registry{codecs: codecs}
}

// Default returns a registry with the JSON, MessagePack, and YAML codecs,
// in that preference order.
func Default() *Registry {
	return NewRegistry(JSON{}, MsgPack{}, YAML{})
}

// ForContentType returns the codec compatible with the given Content-Type
// value. An empty value resolves to the first registered codec, so bodies
// without a declared type decode with the default format.
func (r *Registry) ForContentType(contentType string) (Codec, bool) {
	if len(r.codecs) == 0 {
		return nil, false
	}
	if contentType == "" {
		return r.codecs[0], true
	}

	for _, c := range r.codecs {
		if mediatype.IsCompatible(contentType, c.MediaType()) {
			return c, true
		}
	}
	return nil, false
}

// Negotiate returns the first codec whose media type is compatible with the
// given Accept value.
func (r *Registry) Negotiate(accept string) (Codec, bool) {
	for _, c := range r.codecs {
		if mediatype.IsCompatible(accept, c.MediaType()) {
			return c, true
		}
	}
	return nil, false
}
