// This file implements an allow-list repository wrapper that protects the
// per-request author lookup from cascading database failures.
package circuitbreaker

import (
	"context"

	"resort-cms/internal/domain/entity"
	"resort-cms/internal/repository"
)

// AuthorRepository wraps an allow-list repository with circuit breaker
// protection. Only GetByEmail runs through the breaker: it is the call made
// on every authenticated request. The admin management operations are rare
// and pass through untouched.
type AuthorRepository struct {
	cb    *CircuitBreaker
	inner repository.AuthorRepository
}

var _ repository.AuthorRepository = (*AuthorRepository)(nil)

// NewAuthorRepository wraps the given repository with the allow-list breaker.
func NewAuthorRepository(inner repository.AuthorRepository) *AuthorRepository {
	return &AuthorRepository{
		cb:    New(AllowListConfig()),
		inner: inner,
	}
}

// NewAuthorRepositoryWithConfig wraps the repository with a custom breaker
// configuration.
func NewAuthorRepositoryWithConfig(inner repository.AuthorRepository, cfg Config) *AuthorRepository {
	return &AuthorRepository{
		cb:    New(cfg),
		inner: inner,
	}
}

// GetByEmail looks up an allow-list entry with circuit breaker protection.
// If the circuit is open, it returns ErrOpenState immediately without
// hitting the database.
func (r *AuthorRepository) GetByEmail(ctx context.Context, email string) (*entity.AllowedAuthor, error) {
	result, err := r.cb.Execute(func() (interface{}, error) {
		return r.inner.GetByEmail(ctx, email)
	})
	if err != nil {
		return nil, err
	}
	// A nil entry is a successful "not listed" lookup, not a failure.
	entry, _ := result.(*entity.AllowedAuthor)
	return entry, nil
}

// List returns all allow-list entries without breaker protection.
func (r *AuthorRepository) List(ctx context.Context) ([]*entity.AllowedAuthor, error) {
	return r.inner.List(ctx)
}

// ExistsByEmail reports whether an email is already listed.
func (r *AuthorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.inner.ExistsByEmail(ctx, email)
}

// Create inserts a new allow-list entry.
func (r *AuthorRepository) Create(ctx context.Context, author *entity.AllowedAuthor) error {
	return r.inner.Create(ctx, author)
}

// Delete removes an allow-list entry by ID.
func (r *AuthorRepository) Delete(ctx context.Context, id int64) error {
	return r.inner.Delete(ctx, id)
}

// State returns the current state of the underlying circuit breaker.
func (r *AuthorRepository) State() string {
	return r.cb.State().String()
}
