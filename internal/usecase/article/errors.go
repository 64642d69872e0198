// Package article provides use cases for managing articles.
// It implements the business rules for creating, updating, deleting and
// querying articles: slug uniqueness, author-snapshot stamping, publish-once
// semantics and ownership enforcement.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	// Through the public slug path this also covers drafts, so their
	// existence is not leaked.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrSlugTaken indicates that another article already uses the slug.
	ErrSlugTaken = errors.New("slug already exists")

	// ErrNotOwner indicates that a non-admin caller tried to act on an
	// article they did not create.
	ErrNotOwner = errors.New("you can only manage your own articles")
)
