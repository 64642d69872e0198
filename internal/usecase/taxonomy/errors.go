// Package taxonomy provides use cases for tags, categories and page-section
// placements, including the replace-all association semantics for articles.
package taxonomy

import "errors"

// Sentinel errors for taxonomy use case operations.
var (
	// ErrArticleNotFound indicates the target article of an association
	// change does not exist.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidID indicates a non-positive entity ID.
	ErrInvalidID = errors.New("invalid ID")

	// ErrNotOwner indicates that a non-admin caller tried to change the
	// associations of an article they did not create.
	ErrNotOwner = errors.New("you can only manage your own articles")

	// ErrTagExists indicates that a tag with the same name or slug already
	// exists. Both columns are unique.
	ErrTagExists = errors.New("tag name or slug already exists")

	// ErrCategorySlugTaken indicates that a category with the slug already
	// exists.
	ErrCategorySlugTaken = errors.New("category slug already exists")
)
