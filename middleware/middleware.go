package middleware

import (
	"errors"
	"net/http"

	"github.com/routegate/routegate/core/handler"
	"github.com/routegate/routegate/core/response"
)

// statusOf derives the wire status a handler outcome will be rendered with.
// Empty bodies are forced to 204 by the serializer; unknown errors become
// the generic 500.
func statusOf(entity *handler.Entity, err error) int {
	if err != nil {
		var apiErr response.Error
		if errors.As(err, &apiErr) {
			return apiErr.Status
		}
		var decErr *handler.DecodeError
		if errors.As(err, &decErr) {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	}

	if entity == nil {
		return http.StatusInternalServerError
	}
	if entity.Body.Kind() == handler.BodyEmpty {
		return http.StatusNoContent
	}
	if entity.Status == 0 {
		return http.StatusOK
	}
	return entity.Status
}
