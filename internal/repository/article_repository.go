// Package repository defines the persistence interfaces consumed by the use
// case layer. Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"
	"time"

	"resort-cms/internal/domain/entity"
)

// PublishedFilter narrows the public article listing.
type PublishedFilter struct {
	CategoryID *int64 // Optional: restrict to one category
	Search     string // Optional: substring match over title OR content
}

// AdminFilter narrows the editor-facing article listing.
type AdminFilter struct {
	Status      *entity.ArticleStatus // Optional: restrict to one status
	AuthorEmail string                // Non-empty: restrict to that author's rows
}

// ArticleRepository is the persistence boundary for articles.
//
// Get-style methods return (nil, nil) when no row matches, leaving the
// not-found decision to the caller.
type ArticleRepository interface {
	// ListPublished returns published articles ordered by published_at DESC.
	ListPublished(ctx context.Context, f PublishedFilter, offset, limit int) ([]*entity.Article, error)
	// CountPublished counts the rows ListPublished would return unpaginated.
	CountPublished(ctx context.Context, f PublishedFilter) (int64, error)
	// ListAdmin returns articles of any status ordered by updated_at DESC.
	ListAdmin(ctx context.Context, f AdminFilter, offset, limit int) ([]*entity.Article, error)
	// CountAdmin counts the rows ListAdmin would return unpaginated.
	CountAdmin(ctx context.Context, f AdminFilter) (int64, error)
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// GetPublishedBySlug resolves a slug through the public path. Drafts are
	// not resolvable here regardless of slug match.
	GetPublishedBySlug(ctx context.Context, slug string) (*entity.Article, error)
	// SlugTaken reports whether another article already uses the slug.
	// excludeID ignores the article's own row on update; pass 0 on create.
	SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error)
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
	// Delete removes the article row together with its tag and section
	// junction rows in a single transaction.
	Delete(ctx context.Context, id int64) error
	// ListDueScheduled returns drafts whose scheduled_publish_at has elapsed.
	ListDueScheduled(ctx context.Context, now time.Time) ([]*entity.Article, error)
	// MarkPublished transitions one article to published with the given
	// timestamp. Used by the scheduled publisher.
	MarkPublished(ctx context.Context, id int64, publishedAt time.Time) error
}
