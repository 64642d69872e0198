package repository

import (
	"context"

	"resort-cms/internal/domain/entity"
)

// ArticleSection is a page section joined through the article_sections
// junction, as surfaced by the public article detail view.
type ArticleSection struct {
	SectionID   int64
	PageKey     string
	SectionKey  string
	SectionName string
}

// TagRepository is the persistence boundary for tags and the article↔tag
// junction.
type TagRepository interface {
	List(ctx context.Context) ([]*entity.Tag, error)
	// ExistsByNameOrSlug reports whether a tag with the given name or slug
	// already exists. Both must be unique.
	ExistsByNameOrSlug(ctx context.Context, name, slug string) (bool, error)
	Create(ctx context.Context, tag *entity.Tag) error
	// Delete removes the tag and every junction row referencing it in a
	// single transaction, so no article is left pointing at a dead tag.
	Delete(ctx context.Context, id int64) error
	ListForArticle(ctx context.Context, articleID int64) ([]*entity.Tag, error)
	// ReplaceForArticle atomically swaps the article's tag set: all existing
	// junction rows are deleted and the given IDs inserted within one
	// transaction. An empty slice clears the set.
	ReplaceForArticle(ctx context.Context, articleID int64, tagIDs []int64) error
}

// SectionRepository is the persistence boundary for page sections and the
// article↔section junction.
type SectionRepository interface {
	// ListActive returns active sections ordered by (page_key, display_order).
	ListActive(ctx context.Context) ([]*entity.PageSection, error)
	ListForArticle(ctx context.Context, articleID int64) ([]ArticleSection, error)
	// ReplaceForArticle atomically swaps the article's section placements.
	// display_order is the position of each ID in the slice, so resubmitting
	// a reordered slice changes the stored order.
	ReplaceForArticle(ctx context.Context, articleID int64, sectionIDs []int64) error
}

// CategoryRepository is the persistence boundary for article categories.
type CategoryRepository interface {
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)
	SlugTaken(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, category *entity.Category) error
}
