package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routegate/routegate/core/handler"
)

func TestRequestAccessors(t *testing.T) {
	t.Parallel()

	req := handler.NewRequest(http.MethodPost, "/users", map[string]string{
		"Content-Type": "application/json",
		"Accept":       "*/*",
	}, []byte(`{"name":"jane"}`))

	assert.Equal(t, http.MethodPost, req.Method())
	assert.Equal(t, "/users", req.Path())
	assert.Equal(t, "application/json", req.ContentType())
	assert.Equal(t, "*/*", req.Accept())

	body, ok := req.Body()
	require.True(t, ok)
	assert.Equal(t, `{"name":"jane"}`, string(body))
}

func TestRequestHeaderLookupCaseInsensitive(t *testing.T) {
	t.Parallel()

	req := handler.NewRequest(http.MethodGet, "/", map[string]string{"X-Request-ID": "abc"}, nil)

	assert.Equal(t, "abc", req.Header("x-request-id"))
	assert.Equal(t, "abc", req.Header("X-REQUEST-ID"))
	assert.Empty(t, req.Header("X-Missing"))
}

func TestRequestWithoutBody(t *testing.T) {
	t.Parallel()

	req := handler.NewRequest(http.MethodGet, "/", nil, nil)

	body, ok := req.Body()
	assert.False(t, ok)
	assert.Nil(t, body)
}

func TestRequestImmutability(t *testing.T) {
	t.Parallel()

	headers := map[string]string{"Accept": "application/json"}
	body := []byte("original")
	req := handler.NewRequest(http.MethodGet, "/", headers, body)

	headers["Accept"] = "text/plain"
	body[0] = 'X'

	assert.Equal(t, "application/json", req.Accept())
	got, _ := req.Body()
	assert.Equal(t, "original", string(got))
}

func TestRequestWithRoute(t *testing.T) {
	t.Parallel()

	req := handler.NewRequest(http.MethodGet, "/users/42", nil, nil)
	routed := req.WithRoute("/users/{id}")

	assert.Empty(t, req.Route(), "original request is unchanged")
	assert.Equal(t, "/users/{id}", routed.Route())
	assert.Equal(t, req.Path(), routed.Path())
}
