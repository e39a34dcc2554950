package router

import (
	"strings"

	"github.com/routegate/routegate/core/handler"
	"github.com/routegate/routegate/core/mediatype"
)

// Predicate is the declarative match condition attached to a route: method,
// path template, and the media types the route produces and consumes.
// Predicates are built through the route builder and immutable once the
// route is registered.
type Predicate struct {
	Method   string
	Pattern  string
	Produces []string
	Consumes []string
}

// MatchResult holds the four independent outcomes of matching a predicate
// against a request. It is derived per dispatch and used both to select the
// route and to compute the fallback error when nothing fully matches.
type MatchResult struct {
	Path        bool
	Method      bool
	Accept      bool
	ContentType bool
}

// Matches reports whether all four components matched.
func (m MatchResult) Matches() bool {
	return m.Path && m.Method && m.Accept && m.ContentType
}

// Match evaluates the predicate against a request. All four components are
// computed regardless of partial failure so the dispatcher has full
// diagnostic information for fallback-error selection.
//
// Method comparison is case-insensitive. The Accept and Content-Type
// checks share the same semantics: an empty declared set matches only an
// absent header value, so a route with no consumable types never matches a
// request that carries a Content-Type.
func (p *Predicate) Match(r *handler.Request) MatchResult {
	return MatchResult{
		Path:        MatchPath(p.Pattern, r.Path()),
		Method:      strings.EqualFold(p.Method, r.Method()),
		Accept:      mediatype.Matches(r.Accept(), p.Produces),
		ContentType: mediatype.Matches(r.ContentType(), p.Consumes),
	}
}
