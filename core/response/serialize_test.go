package response_test

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/routegate/routegate/core/codec"
	"github.com/routegate/routegate/core/handler"
	"github.com/routegate/routegate/core/response"
)

func request(accept string) *handler.Request {
	var headers map[string]string
	if accept != "" {
		headers = map[string]string{"Accept": accept}
	}
	return handler.NewRequest(http.MethodGet, "/things", headers, nil)
}

func TestSerializeEmptyBody(t *testing.T) {
	t.Parallel()

	entity := handler.WithStatus(http.StatusOK, handler.EmptyBody()).WithHeader("X-Trace", "abc")

	resp, err := response.Serialize(request("application/json"), entity, codec.Default())
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode, "empty body forces 204 over the declared status")
	assert.Empty(t, resp.Body)
	assert.Equal(t, "abc", resp.Headers["X-Trace"])
	assert.NotContains(t, resp.Headers, "Content-Type")
}

func TestSerializeStructuredBody(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		entity := handler.OK(handler.StructuredBody(map[string]int{"count": 3}))
		resp, err := response.Serialize(request("application/json"), entity, codec.Default())
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Headers["Content-Type"])
		assert.JSONEq(t, `{"count":3}`, resp.Body)
	})

	t.Run("wildcard accept uses first codec", func(t *testing.T) {
		t.Parallel()

		entity := handler.OK(handler.StructuredBody(map[string]int{"count": 3}))
		resp, err := response.Serialize(request("*/*"), entity, codec.Default())
		require.NoError(t, err)

		assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	})

	t.Run("absent accept treated as wildcard", func(t *testing.T) {
		t.Parallel()

		entity := handler.OK(handler.StructuredBody(map[string]int{"count": 3}))
		resp, err := response.Serialize(request(""), entity, codec.Default())
		require.NoError(t, err)

		assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	})

	t.Run("msgpack negotiated", func(t *testing.T) {
		t.Parallel()

		entity := handler.OK(handler.StructuredBody(map[string]int{"count": 3}))
		resp, err := response.Serialize(request("application/x-msgpack"), entity, codec.Default())
		require.NoError(t, err)

		assert.Equal(t, codec.MediaTypeMsgPack, resp.Headers["Content-Type"])

		var out map[string]int
		require.NoError(t, codec.MsgPack{}.Unmarshal([]byte(resp.Body), &out))
		assert.Equal(t, map[string]int{"count": 3}, out)
	})

	t.Run("zero status defaults to 200", func(t *testing.T) {
		t.Parallel()

		entity := &handler.Entity{Body: handler.StructuredBody("ok")}
		resp, err := response.Serialize(request("application/json"), entity, codec.Default())
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("no compatible codec", func(t *testing.T) {
		t.Parallel()

		entity := handler.OK(handler.StructuredBody("ok"))
		_, err := response.Serialize(request("text/csv"), entity, codec.Default())

		assert.ErrorIs(t, err, response.ErrUnsupportedResponseType)
	})
}

func TestSerializeMessageBody(t *testing.T) {
	t.Parallel()

	t.Run("protobuf accept yields base64 binary", func(t *testing.T) {
		t.Parallel()

		msg := wrapperspb.String("hello")
		entity := handler.OK(handler.MessageBody(msg))

		resp, err := response.Serialize(request("application/x-protobuf"), entity, codec.Default())
		require.NoError(t, err)

		assert.Equal(t, "application/x-protobuf", resp.Headers["Content-Type"])

		raw, err := base64.StdEncoding.DecodeString(resp.Body)
		require.NoError(t, err)

		var decoded wrapperspb.StringValue
		require.NoError(t, proto.Unmarshal(raw, &decoded))
		assert.True(t, proto.Equal(msg, &decoded))
	})

	t.Run("wildcard accept prefers binary", func(t *testing.T) {
		t.Parallel()

		entity := handler.OK(handler.MessageBody(wrapperspb.String("hello")))
		resp, err := response.Serialize(request("*/*"), entity, codec.Default())
		require.NoError(t, err)

		assert.Equal(t, "application/x-protobuf", resp.Headers["Content-Type"])
	})

	t.Run("json accept flattens wrapper types", func(t *testing.T) {
		t.Parallel()

		entity := handler.OK(handler.MessageBody(wrapperspb.String("hello")))
		resp, err := response.Serialize(request("application/json"), entity, codec.Default())
		require.NoError(t, err)

		assert.Equal(t, "application/json", resp.Headers["Content-Type"])
		assert.Equal(t, `"hello"`, resp.Body, "wrapper serializes as the bare scalar")
	})

	t.Run("json accept renders message fields without wrapper layer", func(t *testing.T) {
		t.Parallel()

		msg, err := structpb.NewStruct(map[string]any{"name": "jane", "age": 30})
		require.NoError(t, err)

		entity := handler.OK(handler.MessageBody(msg))
		resp, err := response.Serialize(request("application/json"), entity, codec.Default())
		require.NoError(t, err)

		assert.JSONEq(t, `{"name":"jane","age":30}`, resp.Body)
	})

	t.Run("incompatible accept", func(t *testing.T) {
		t.Parallel()

		entity := handler.OK(handler.MessageBody(wrapperspb.String("hello")))
		_, err := response.Serialize(request("text/plain"), entity, codec.Default())

		assert.ErrorIs(t, err, response.ErrUnsupportedResponseType)
	})
}

func TestSerializeError(t *testing.T) {
	t.Parallel()

	t.Run("fixed json shape", func(t *testing.T) {
		t.Parallel()

		resp := response.SerializeError(response.NewError(http.StatusNotFound, "not found", "NOT_FOUND"))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Headers["Content-Type"])
		assert.Equal(t, `{"message":"not found","code":"NOT_FOUND","details":null}`, resp.Body)
	})

	t.Run("details included when present", func(t *testing.T) {
		t.Parallel()

		apiErr := response.ErrBadRequest.WithDetails(map[string]any{"field": "name"})
		resp := response.SerializeError(apiErr)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.JSONEq(t, `{"message":"Bad Request","code":"BAD_REQUEST","details":{"field":"name"}}`, resp.Body)
	})
}

func TestSerializeInternalError(t *testing.T) {
	t.Parallel()

	resp := response.SerializeInternalError()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.JSONEq(t, `{"message":"Internal Server Error","code":"INTERNAL_SERVER_ERROR","details":null}`, resp.Body)
}
