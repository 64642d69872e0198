package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"resort-cms/internal/domain/entity"
	"resort-cms/internal/repository"
)

type AuthorRepo struct {
	db *sql.DB
}

func NewAuthorRepo(db *sql.DB) repository.AuthorRepository {
	return &AuthorRepo{db: db}
}

func (repo *AuthorRepo) GetByEmail(ctx context.Context, email string) (*entity.AllowedAuthor, error) {
	const query = `
SELECT id, email, name, role, added_by, created_at
FROM allowed_authors
WHERE email = $1
LIMIT 1`
	var a entity.AllowedAuthor
	err := repo.db.QueryRowContext(ctx, query, email).
		Scan(&a.ID, &a.Email, &a.Name, &a.Role, &a.AddedBy, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByEmail: %w", err)
	}
	return &a, nil
}

func (repo *AuthorRepo) List(ctx context.Context) ([]*entity.AllowedAuthor, error) {
	const query = `
SELECT id, email, name, role, added_by, created_at
FROM allowed_authors
ORDER BY created_at`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	authors := make([]*entity.AllowedAuthor, 0, 10)
	for rows.Next() {
		var a entity.AllowedAuthor
		if err := rows.Scan(&a.ID, &a.Email, &a.Name, &a.Role, &a.AddedBy, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: scan: %w", err)
		}
		authors = append(authors, &a)
	}
	return authors, rows.Err()
}

func (repo *AuthorRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM allowed_authors WHERE email = $1)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsByEmail: %w", err)
	}
	return exists, nil
}

func (repo *AuthorRepo) Create(ctx context.Context, a *entity.AllowedAuthor) error {
	const query = `
INSERT INTO allowed_authors (email, name, role, added_by, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		a.Email, a.Name, string(a.Role), a.AddedBy, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *AuthorRepo) Delete(ctx context.Context, id int64) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM allowed_authors WHERE id = $1`, id); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}
