package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "static list", path: "/articles", want: "/articles"},
		{name: "slug", path: "/articles/spring-wellness-retreat", want: "/articles/:slug"},
		{name: "public article tags", path: "/articles/10/tags", want: "/articles/:id/tags"},
		{name: "public article sections", path: "/articles/10/sections", want: "/articles/:id/sections"},
		{name: "admin article", path: "/admin/articles/123", want: "/admin/articles/:id"},
		{name: "article tags", path: "/admin/articles/123/tags", want: "/admin/articles/:id/tags"},
		{name: "article sections", path: "/admin/articles/123/sections", want: "/admin/articles/:id/sections"},
		{name: "admin tag", path: "/admin/tags/5", want: "/admin/tags/:id"},
		{name: "admin author", path: "/admin/authors/9", want: "/admin/authors/:id"},
		{name: "query stripped", path: "/articles?page=2&limit=5", want: "/articles"},
		{name: "trailing slash", path: "/admin/articles/123/", want: "/admin/articles/:id"},
		{name: "root", path: "/", want: "/"},
		{name: "healthz", path: "/healthz", want: "/healthz"},
		{name: "non numeric id untouched", path: "/admin/articles/abc", want: "/admin/articles/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
