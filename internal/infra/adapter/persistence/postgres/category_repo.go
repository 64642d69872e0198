package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"resort-cms/internal/domain/entity"
	"resort-cms/internal/repository"
)

type CategoryRepo struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

func (repo *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	const query = `
SELECT id, name, slug, description, created_at, updated_at
FROM article_categories
ORDER BY name`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*entity.Category, 0, 10)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: scan: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (repo *CategoryRepo) SlugTaken(ctx context.Context, slug string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM article_categories WHERE slug = $1)`
	var taken bool
	if err := repo.db.QueryRowContext(ctx, query, slug).Scan(&taken); err != nil {
		return false, fmt.Errorf("SlugTaken: %w", err)
	}
	return taken, nil
}

func (repo *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	const query = `
INSERT INTO article_categories (name, slug, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		c.Name, c.Slug, c.Description, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}
