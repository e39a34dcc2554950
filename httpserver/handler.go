// Package httpserver hosts a route table over net/http. It implements the
// boundary adapter contract the routing core expects: header values are
// exposed with case-insensitive lookup, an absent Accept header is
// normalized to "*/*", the raw request body is passed through unmodified,
// and the produced wire response is written back verbatim.
package httpserver

import (
	"io"
	"net/http"

	"github.com/routegate/routegate/core/handler"
	"github.com/routegate/routegate/core/mediatype"
	"github.com/routegate/routegate/core/router"
)

// Handler adapts a router to http.Handler.
type Handler struct {
	router *router.Router
}

// NewHandler wraps a fully configured router. The router must not be
// mutated after this point.
func NewHandler(rt *router.Router) *Handler {
	return &Handler{router: rt}
}

// ServeHTTP converts the inbound request into the core envelope, dispatches
// it, and writes the wire response.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	headers := make(map[string]string, len(r.Header))
	for name, values := range r.Header {
		if len(values) > 0 {
			headers[name] = values[0]
		}
	}
	if headers["Accept"] == "" {
		headers["Accept"] = mediatype.Wildcard
	}

	var body []byte
	if r.Body != nil {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if len(data) > 0 {
			body = data
		}
	}

	resp := h.router.Dispatch(handler.NewRequest(r.Method, r.URL.Path, headers, body))

	for name, value := range resp.Headers {
		w.Header().Set(name, value)
	}
	w.WriteHeader(resp.StatusCode)
	if resp.Body != "" {
		_, _ = io.WriteString(w, resp.Body)
	}
}
