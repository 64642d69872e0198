package repository

import (
	"context"

	"resort-cms/internal/domain/entity"
)

// AuthorRepository is the persistence boundary for the allow-list.
//
// The access-control gate queries GetByEmail on every protected request, so
// allow-list edits take effect on the very next request without any cache
// invalidation.
type AuthorRepository interface {
	// GetByEmail returns the allow-list entry for the email, or (nil, nil)
	// when the email is not listed.
	GetByEmail(ctx context.Context, email string) (*entity.AllowedAuthor, error)
	// List returns all entries ordered by created_at.
	List(ctx context.Context) ([]*entity.AllowedAuthor, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, author *entity.AllowedAuthor) error
	Delete(ctx context.Context, id int64) error
}
