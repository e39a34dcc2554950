package response

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/routegate/routegate/core/codec"
	"github.com/routegate/routegate/core/handler"
	"github.com/routegate/routegate/core/mediatype"
)

const headerContentType = "Content-Type"

// ErrUnsupportedResponseType is returned when a handler produces a body that
// has no representation compatible with the request's Accept value. This is
// a route configuration error, not a client-facing condition; the dispatcher
// surfaces it as an internal failure.
var ErrUnsupportedResponseType = errors.New("no response representation for accept value")

// Serialize converts a typed response entity into a wire response using the
// request's Accept value.
//
// An empty body always serializes as 204 No Content with no Content-Type
// override. A protobuf message body serializes as base64-encoded binary
// when the Accept value is compatible with application/x-protobuf, or as
// flattened JSON (well-known wrapper types rendered as bare scalars) when
// compatible with application/json. A structured body is encoded by the
// first registry codec compatible with the Accept value.
func Serialize(req *handler.Request, e *handler.Entity, codecs *codec.Registry) (handler.Response, error) {
	headers := make(map[string]string, len(e.Headers)+1)
	for k, v := range e.Headers {
		headers[k] = v
	}

	if e.Body.Kind() == handler.BodyEmpty {
		return handler.Response{
			StatusCode: http.StatusNoContent,
			Headers:    headers,
		}, nil
	}

	status := e.Status
	if status == 0 {
		status = http.StatusOK
	}

	accept := req.Accept()
	if accept == "" {
		// The hosting adapter normalizes an absent Accept header to the
		// wildcard; do the same for requests built without an adapter.
		accept = mediatype.Wildcard
	}

	switch e.Body.Kind() {
	case handler.BodyMessage:
		msg := e.Body.Message()

		if mediatype.IsCompatible(accept, mediatype.Protobuf) {
			raw, err := proto.Marshal(msg)
			if err != nil {
				return handler.Response{}, fmt.Errorf("marshal protobuf response: %w", err)
			}
			headers[headerContentType] = mediatype.Protobuf
			return handler.Response{
				StatusCode: status,
				Headers:    headers,
				Body:       base64.StdEncoding.EncodeToString(raw),
			}, nil
		}

		if mediatype.IsCompatible(accept, mediatype.JSON) {
			data, err := protojson.Marshal(msg)
			if err != nil {
				return handler.Response{}, fmt.Errorf("marshal protobuf response as json: %w", err)
			}
			headers[headerContentType] = mediatype.JSON
			return handler.Response{
				StatusCode: status,
				Headers:    headers,
				Body:       string(data),
			}, nil
		}

		return handler.Response{}, fmt.Errorf("%w: message body, accept %q", ErrUnsupportedResponseType, accept)

	case handler.BodyStructured:
		c, ok := codecs.Negotiate(accept)
		if !ok {
			return handler.Response{}, fmt.Errorf("%w: structured body, accept %q", ErrUnsupportedResponseType, accept)
		}

		data, err := c.Marshal(e.Body.Value())
		if err != nil {
			return handler.Response{}, fmt.Errorf("marshal %s response: %w", c.MediaType(), err)
		}
		headers[headerContentType] = c.MediaType()
		return handler.Response{
			StatusCode: status,
			Headers:    headers,
			Body:       string(data),
		}, nil

	default:
		return handler.Response{}, fmt.Errorf("%w: unknown body kind %d", ErrUnsupportedResponseType, e.Body.Kind())
	}
}

// SerializeError converts a known API error into its wire response. Error
// responses are always rendered as application/json and are never subject
// to Accept negotiation.
func SerializeError(e Error) handler.Response {
	body, err := json.Marshal(e)
	if err != nil {
		// Unmarshalable details degrade to the generic internal error body.
		return SerializeInternalError()
	}

	return handler.Response{
		StatusCode: e.Status,
		Headers:    map[string]string{headerContentType: mediatype.JSON},
		Body:       string(body),
	}
}

// SerializeInternalError returns the generic 500 wire response. No internal
// detail is exposed to the client; the caller is responsible for logging it.
func SerializeInternalError() handler.Response {
	body, _ := json.Marshal(ErrInternalServerError)
	return handler.Response{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{headerContentType: mediatype.JSON},
		Body:       string(body),
	}
}
