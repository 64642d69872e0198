// Package pathutil normalizes dynamic URL paths for metrics labels.
package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a route regex with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, most specific first.
// Pre-compiled at initialization so normalization stays cheap on the
// request hot path.
var pathPatterns = []*pathPattern{
	{pattern: regexp.MustCompile(`^/articles/\d+/tags$`), template: "/articles/:id/tags"},
	{pattern: regexp.MustCompile(`^/articles/\d+/sections$`), template: "/articles/:id/sections"},
	{pattern: regexp.MustCompile(`^/articles/[a-z0-9-]+$`), template: "/articles/:slug"},

	{pattern: regexp.MustCompile(`^/admin/articles/\d+/tags$`), template: "/admin/articles/:id/tags"},
	{pattern: regexp.MustCompile(`^/admin/articles/\d+/sections$`), template: "/admin/articles/:id/sections"},
	{pattern: regexp.MustCompile(`^/admin/articles/\d+$`), template: "/admin/articles/:id"},

	{pattern: regexp.MustCompile(`^/admin/tags/\d+$`), template: "/admin/tags/:id"},
	{pattern: regexp.MustCompile(`^/admin/authors/\d+$`), template: "/admin/authors/:id"},
}

// NormalizePath converts paths carrying IDs or slugs to template form so
// Prometheus label cardinality stays bounded. Static paths are returned
// unchanged; query parameters and trailing slashes are stripped first.
//
// Examples:
//
//	NormalizePath("/admin/articles/123")        // "/admin/articles/:id"
//	NormalizePath("/articles/spa-opening")      // "/articles/:slug"
//	NormalizePath("/articles")                  // "/articles" (unchanged)
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
