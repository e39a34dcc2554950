package handler

import (
	"net/http"

	"google.golang.org/protobuf/proto"
)

// BodyKind tags the variant carried by a response Body.
type BodyKind int

const (
	// BodyEmpty marks a response without a body. It serializes as
	// 204 No Content regardless of the declared status.
	BodyEmpty BodyKind = iota

	// BodyStructured marks a generic value encoded by a structured codec
	// negotiated from the Accept header.
	BodyStructured

	// BodyMessage marks a protobuf message, serialized either as
	// base64-encoded binary or as flattened JSON depending on negotiation.
	BodyMessage
)

// Body is a tagged variant over the possible response body kinds. The zero
// value is the empty body.
type Body struct {
	kind  BodyKind
	value any
	msg   proto.Message
}

// EmptyBody returns a body that serializes as 204 No Content.
func EmptyBody() Body { return Body{kind: BodyEmpty} }

// StructuredBody wraps a generic value for structured encoding.
func StructuredBody(v any) Body { return Body{kind: BodyStructured, value: v} }

// MessageBody wraps a protobuf message for binary or flattened-JSON encoding.
func MessageBody(m proto.Message) Body { return Body{kind: BodyMessage, msg: m} }

// Kind returns the variant tag.
func (b Body) Kind() BodyKind { return b.kind }

// Value returns the structured value, or nil for other kinds.
func (b Body) Value() any { return b.value }

// Message returns the protobuf message, or nil for other kinds.
func (b Body) Message() proto.Message { return b.msg }

// Entity is the typed result of a handler: a status code, response headers,
// and a tagged body. It is produced by handler logic and consumed exactly
// once by the response serializer.
type Entity struct {
	Status  int
	Headers map[string]string
	Body    Body
}

// OK creates an entity with 200 OK status and the given body.
func OK(body Body) *Entity {
	return WithStatus(http.StatusOK, body)
}

// WithStatus creates an entity with an explicit status code and body.
func WithStatus(status int, body Body) *Entity {
	return &Entity{Status: status, Body: body}
}

// NoContent creates an entity without a body.
func NoContent() *Entity {
	return &Entity{Status: http.StatusNoContent, Body: EmptyBody()}
}

// WithHeader sets a response header and returns the entity for chaining.
func (e *Entity) WithHeader(name, value string) *Entity {
	if e.Headers == nil {
		e.Headers = make(map[string]string)
	}
	e.Headers[name] = value
	return e
}

// Response is the wire-level outbound structure returned to the hosting
// adapter: status code, headers, and the payload as a string. Binary
// payloads are base64-encoded by the serializer before they reach this
// envelope.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}
