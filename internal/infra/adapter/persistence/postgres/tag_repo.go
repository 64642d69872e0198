package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"resort-cms/internal/domain/entity"
	"resort-cms/internal/repository"
)

type TagRepo struct {
	db *sql.DB
}

func NewTagRepo(db *sql.DB) repository.TagRepository {
	return &TagRepo{db: db}
}

func (repo *TagRepo) List(ctx context.Context) ([]*entity.Tag, error) {
	const query = `
SELECT id, name, slug, created_at
FROM tags
ORDER BY name`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tags := make([]*entity.Tag, 0, 20)
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: scan: %w", err)
		}
		tags = append(tags, &t)
	}
	return tags, rows.Err()
}

func (repo *TagRepo) ExistsByNameOrSlug(ctx context.Context, name, slug string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM tags WHERE name = $1 OR slug = $2)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, name, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsByNameOrSlug: %w", err)
	}
	return exists, nil
}

func (repo *TagRepo) Create(ctx context.Context, t *entity.Tag) error {
	const query = `
INSERT INTO tags (name, slug, created_at)
VALUES ($1, $2, $3)
RETURNING id`
	if err := repo.db.QueryRowContext(ctx, query, t.Name, t.Slug, t.CreatedAt).Scan(&t.ID); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// Delete removes the tag and its junction rows in one transaction so no
// article is left referencing a tag that no longer exists.
func (repo *TagRepo) Delete(ctx context.Context, id int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Delete: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM article_tags WHERE tag_id = $1`, id); err != nil {
		return fmt.Errorf("Delete: junctions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id); err != nil {
		return fmt.Errorf("Delete: tag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Delete: commit: %w", err)
	}
	return nil
}

func (repo *TagRepo) ListForArticle(ctx context.Context, articleID int64) ([]*entity.Tag, error) {
	const query = `
SELECT t.id, t.name, t.slug, t.created_at
FROM article_tags at
INNER JOIN tags t ON at.tag_id = t.id
WHERE at.article_id = $1
ORDER BY t.name`
	rows, err := repo.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("ListForArticle: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tags := make([]*entity.Tag, 0, 8)
	for rows.Next() {
		var t entity.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListForArticle: scan: %w", err)
		}
		tags = append(tags, &t)
	}
	return tags, rows.Err()
}

// ReplaceForArticle swaps the article's tag set in one transaction.
// Delete-then-insert outside a transaction would expose a window where the
// article appears untagged; the transaction closes that window.
func (repo *TagRepo) ReplaceForArticle(ctx context.Context, articleID int64, tagIDs []int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ReplaceForArticle: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM article_tags WHERE article_id = $1`, articleID); err != nil {
		return fmt.Errorf("ReplaceForArticle: delete: %w", err)
	}
	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO article_tags (article_id, tag_id) VALUES ($1, $2)`,
			articleID, tagID); err != nil {
			return fmt.Errorf("ReplaceForArticle: insert tag %d: %w", tagID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ReplaceForArticle: commit: %w", err)
	}
	return nil
}
