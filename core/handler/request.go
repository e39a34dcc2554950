package handler

import "strings"

// Request is an immutable view over a single inbound invocation: method,
// path, headers, optional raw body, and the route pattern it matched.
// Header lookup is case-insensitive. A Request is created once per
// invocation and only read afterwards.
type Request struct {
	method  string
	path    string
	headers map[string]string
	body    []byte
	route   string
}

// NewRequest creates a request envelope. A nil body means the request
// carries no body. Headers are copied, so the caller's map can be reused.
func NewRequest(method, path string, headers map[string]string, body []byte) *Request {
	h := make(map[string]string, len(headers))
	for k, v := range headers {
		h[strings.ToLower(k)] = v
	}

	var b []byte
	if body != nil {
		b = make([]byte, len(body))
		copy(b, body)
	}

	return &Request{
		method:  method,
		path:    path,
		headers: h,
		body:    b,
	}
}

// Method returns the HTTP method of the request.
func (r *Request) Method() string { return r.method }

// Path returns the concrete request path.
func (r *Request) Path() string { return r.path }

// Header returns the value of the named header, or an empty string when the
// header is absent. Lookup is case-insensitive.
func (r *Request) Header(name string) string {
	return r.headers[strings.ToLower(name)]
}

// Accept returns the Accept header value. The hosting adapter is expected
// to normalize an absent header to "*/*" before dispatch.
func (r *Request) Accept() string { return r.Header("Accept") }

// ContentType returns the Content-Type header value, or an empty string
// when the request declares none.
func (r *Request) ContentType() string { return r.Header("Content-Type") }

// Body returns the raw request body and whether one is present.
func (r *Request) Body() ([]byte, bool) {
	if r.body == nil {
		return nil, false
	}
	return r.body, true
}

// Route returns the path pattern the request was routed with, or an empty
// string before dispatch.
func (r *Request) Route() string { return r.route }

// WithRoute returns a copy of the request carrying the matched path pattern.
func (r *Request) WithRoute(pattern string) *Request {
	clone := *r
	clone.route = pattern
	return &clone
}
