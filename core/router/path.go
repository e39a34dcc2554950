package router

import "strings"

// MatchPath reports whether a concrete request path matches a path template.
//
// A template is composed of literal segments and placeholder segments: a
// segment entirely wrapped in braces, such as {id}, matches exactly one
// non-empty path segment of any value. Literal segments compare
// case-sensitively and no percent-decoding is performed; decoding is the
// hosting adapter's responsibility. Segment counts must match exactly —
// trailing wildcards are not supported, and a trailing slash counts as an
// extra empty segment.
func MatchPath(pattern, path string) bool {
	patSegs := strings.Split(pattern, "/")
	pathSegs := strings.Split(path, "/")

	if len(patSegs) != len(pathSegs) {
		return false
	}

	for i, seg := range patSegs {
		if isPlaceholder(seg) {
			if pathSegs[i] == "" {
				return false
			}
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}
	return true
}

// isPlaceholder reports whether a template segment is a {name} placeholder.
func isPlaceholder(seg string) bool {
	return len(seg) > 2 && seg[0] == '{' && seg[len(seg)-1] == '}'
}
