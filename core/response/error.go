// Package response defines the structured API error type and converts typed
// response entities into wire-level responses: content negotiation between
// a binary protobuf representation and generic structured encodings, plus
// the fixed-shape JSON error rendering.
package response

import "net/http"

// Error represents a known, client-attributable failure. It carries enough
// information to render a structured error body without stack inspection.
// The JSON shape is fixed: {"message":…,"code":…,"details":…} with details
// present even when null.
type Error struct {
	Status  int            `json:"-"`
	Message string         `json:"message"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details"`
}

// NewError creates an Error with the given HTTP status, message, and code.
func NewError(status int, message, code string) Error {
	return Error{Status: status, Message: message, Code: code}
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for the error.
func (e Error) StatusCode() int {
	return e.Status
}

// WithMessage returns a copy of the error with a custom message.
func (e Error) WithMessage(message string) Error {
	e.Message = message
	return e
}

// WithDetails returns a copy of the error with additional details.
func (e Error) WithDetails(details map[string]any) Error {
	e.Details = details
	return e
}

// WithError returns a copy of the error with an error cause in the details.
func (e Error) WithError(err error) Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details["cause"] = err.Error()
	e.Details = details
	return e
}

// Predefined errors using http.StatusText for default messages.
var (
	ErrBadRequest           = Error{Status: http.StatusBadRequest, Code: "BAD_REQUEST", Message: http.StatusText(http.StatusBadRequest)}
	ErrUnauthorized         = Error{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED", Message: http.StatusText(http.StatusUnauthorized)}
	ErrForbidden            = Error{Status: http.StatusForbidden, Code: "FORBIDDEN", Message: http.StatusText(http.StatusForbidden)}
	ErrNotFound             = Error{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: http.StatusText(http.StatusNotFound)}
	ErrMethodNotAllowed     = Error{Status: http.StatusMethodNotAllowed, Code: "METHOD_NOT_ALLOWED", Message: http.StatusText(http.StatusMethodNotAllowed)}
	ErrNotAcceptable        = Error{Status: http.StatusNotAcceptable, Code: "NOT_ACCEPTABLE", Message: http.StatusText(http.StatusNotAcceptable)}
	ErrConflict             = Error{Status: http.StatusConflict, Code: "CONFLICT", Message: http.StatusText(http.StatusConflict)}
	ErrUnsupportedMediaType = Error{Status: http.StatusUnsupportedMediaType, Code: "UNSUPPORTED_MEDIA_TYPE", Message: http.StatusText(http.StatusUnsupportedMediaType)}
	ErrUnprocessableEntity  = Error{Status: http.StatusUnprocessableEntity, Code: "UNPROCESSABLE_ENTITY", Message: http.StatusText(http.StatusUnprocessableEntity)}
	ErrTooManyRequests      = Error{Status: http.StatusTooManyRequests, Code: "TOO_MANY_REQUESTS", Message: http.StatusText(http.StatusTooManyRequests)}
	ErrInternalServerError  = Error{Status: http.StatusInternalServerError, Code: "INTERNAL_SERVER_ERROR", Message: http.StatusText(http.StatusInternalServerError)}
	ErrNotImplemented       = Error{Status: http.StatusNotImplemented, Code: "NOT_IMPLEMENTED", Message: http.StatusText(http.StatusNotImplemented)}
	ErrServiceUnavailable   = Error{Status: http.StatusServiceUnavailable, Code: "SERVICE_UNAVAILABLE", Message: http.StatusText(http.StatusServiceUnavailable)}
)
