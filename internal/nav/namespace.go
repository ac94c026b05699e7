package nav

import (
	"regexp"
	"strings"

	"github.com/leadgrid/leadgrid/internal/auth"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// ParseNamespace extracts the tenant namespace slug from a URL path: the
// first path segment, matched case-insensitively against the slug alphabet
// and lower-cased. A segment containing a literal dot looks like a filename
// rather than a tenant slug and yields no namespace.
func ParseNamespace(path string) string {
	seg, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if seg == "" || strings.Contains(seg, ".") {
		return ""
	}
	seg = strings.ToLower(seg)
	if !slugPattern.MatchString(seg) {
		return ""
	}
	return seg
}

// Resolver derives the current tenant namespace. A wired auth Provider is
// authoritative when it scopes the session to a tenant; otherwise the
// request path is parsed. The dual path anchors resolution to a single
// authoritative source but tolerates rendering before the auth layer has a
// session.
type Resolver struct {
	Provider auth.Provider
}

// Resolve returns the namespace for the given request path, or "" when
// there is none.
func (r Resolver) Resolve(path string) string {
	if r.Provider != nil {
		if ns := r.Provider.Namespace(); ns != "" {
			return ns
		}
	}
	return ParseNamespace(path)
}
