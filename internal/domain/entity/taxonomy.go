package entity

import "time"

// Category groups articles into a single optional rubric.
// An article references at most one category.
type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Tag is a free-form label attached to articles (many-to-many, unordered).
type Tag struct {
	ID        int64
	Name      string
	Slug      string
	CreatedAt time.Time
}

// PageSection is a named placement on the marketing site where articles can
// be surfaced, identified conceptually by (PageKey, SectionKey).
// Examples: ("home", "latest_news"), ("wellness", "health_info").
type PageSection struct {
	ID           int64
	PageKey      string
	SectionKey   string
	SectionName  string
	Description  string
	DisplayOrder int
	IsActive     bool
	CreatedAt    time.Time
}
