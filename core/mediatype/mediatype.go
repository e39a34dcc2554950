// Package mediatype implements wildcard-aware media-type compatibility
// checks used for Accept and Content-Type negotiation.
//
// Compatibility follows standard type/subtype wildcard rules: "*/*" is
// compatible with anything, "type/*" is compatible with any subtype of
// "type", and exact values require equality of both components. Media-type
// parameters (charset, version, q) are ignored for compatibility decisions.
package mediatype

import "strings"

const (
	// Wildcard matches any media type.
	Wildcard = "*/*"

	// JSON is the default structured media type.
	JSON = "application/json"

	// Protobuf is the binary message media type.
	Protobuf = "application/x-protobuf"
)

// split returns the lower-cased type and subtype of a media-type value,
// with any parameters stripped. A value without a slash is treated as a
// bare type with a wildcard subtype.
func split(v string) (string, string) {
	if i := strings.IndexByte(v, ';'); i >= 0 {
		v = v[:i]
	}
	v = strings.TrimSpace(v)

	if i := strings.IndexByte(v, '/'); i >= 0 {
		return strings.ToLower(v[:i]), strings.ToLower(v[i+1:])
	}
	return strings.ToLower(v), "*"
}

// IsCompatible reports whether two media-type values are compatible.
// Wildcards on either side satisfy the corresponding component, so
// IsCompatible("*/*", x) and IsCompatible(x, "*/*") are both true.
func IsCompatible(value, accepted string) bool {
	vt, vs := split(value)
	at, as := split(accepted)

	if vt != at && vt != "*" && at != "*" {
		return false
	}
	return vs == as || vs == "*" || as == "*"
}

// Matches reports whether an actual header value satisfies a set of
// accepted media types. An empty actual value means the header is absent.
//
// The empty accepted set constrains rather than permits: it matches only
// when the actual value is absent. A present value never matches an empty
// set, so routes that declare no consumable types reject any request that
// carries a body.
func Matches(actual string, accepted []string) bool {
	if len(accepted) == 0 {
		return actual == ""
	}
	if actual == "" {
		return false
	}

	for _, a := range accepted {
		if IsCompatible(actual, a) {
			return true
		}
	}
	return false
}
