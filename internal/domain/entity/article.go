// Package entity defines the core domain entities and validation logic for the CMS.
// It contains the fundamental business objects such as Article, Tag and
// AllowedAuthor, along with their validation rules and domain-specific errors.
package entity

import "time"

// ArticleStatus is the publication state of an article.
type ArticleStatus string

const (
	// StatusDraft marks an article that is not publicly visible.
	StatusDraft ArticleStatus = "draft"
	// StatusPublished marks an article that is publicly visible.
	StatusPublished ArticleStatus = "published"
)

// Valid reports whether the status is one of the known publication states.
func (s ArticleStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Article represents a blog article on the resort website.
//
// AuthorID, AuthorName and AuthorEmail are a snapshot of the creating
// author's identity taken at creation time. They are intentionally
// denormalized: renaming or removing an allowed author later must not
// rewrite the byline of articles already published.
type Article struct {
	ID                 int64
	Title              string
	Slug               string
	Content            string
	Excerpt            string
	CoverImage         string
	CategoryID         *int64
	AuthorID           int64
	AuthorName         string
	AuthorEmail        string
	Status             ArticleStatus
	PublishedAt        *time.Time
	ScheduledPublishAt *time.Time
	MetaDescription    string
	MetaKeywords       string
	OGImage            string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Published reports whether the article is publicly visible.
func (a *Article) Published() bool { return a.Status == StatusPublished }
