package author

import (
	"context"
	"fmt"
	"time"

	"resort-cms/internal/domain/entity"
	"resort-cms/internal/repository"
)

// Service provides allow-list management use cases. All operations are
// admin-only; the handler layer enforces the role.
type Service struct {
	Repo  repository.AuthorRepository
	Clock func() time.Time
}

func (s *Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// AddInput represents the input parameters for adding an allow-list entry.
type AddInput struct {
	Email string
	Name  string
	Role  entity.AuthorRole
}

// List returns every allow-list entry ordered by creation time.
func (s *Service) List(ctx context.Context) ([]*entity.AllowedAuthor, error) {
	authors, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list allowed authors: %w", err)
	}
	return authors, nil
}

// Add puts a new email on the allow-list. The acting admin is recorded as
// addedBy. Returns ErrDuplicateEmail when the email is already listed.
func (s *Service) Add(ctx context.Context, actor entity.Actor, in AddInput) (*entity.AllowedAuthor, error) {
	if err := entity.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}

	role := in.Role
	if role == "" {
		role = entity.RoleAuthor
	}
	if !role.Valid() {
		return nil, &entity.ValidationError{Field: "role", Message: "must be author or admin"}
	}

	exists, err := s.Repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check allowed author: %w", err)
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	addedBy := actor.ID
	entry := &entity.AllowedAuthor{
		Email:     in.Email,
		Name:      in.Name,
		Role:      role,
		AddedBy:   &addedBy,
		CreatedAt: s.now(),
	}
	if err := s.Repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create allowed author: %w", err)
	}
	return entry, nil
}

// Remove deletes an allow-list entry. Articles created by the removed author
// keep their byline: the author snapshot on each article is denormalized on
// purpose.
func (s *Service) Remove(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidAuthorID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete allowed author: %w", err)
	}
	return nil
}
