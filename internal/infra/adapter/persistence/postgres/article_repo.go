// Package postgres implements the repository interfaces over database/sql
// with hand-written queries using $N placeholders.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"resort-cms/internal/domain/entity"
	"resort-cms/internal/repository"
)

const articleColumns = `id, title, slug, content, excerpt, cover_image, category_id,
author_id, author_name, author_email, status, published_at, scheduled_publish_at,
meta_description, meta_keywords, og_image, created_at, updated_at`

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(s rowScanner) (*entity.Article, error) {
	var a entity.Article
	err := s.Scan(&a.ID, &a.Title, &a.Slug, &a.Content, &a.Excerpt, &a.CoverImage,
		&a.CategoryID, &a.AuthorID, &a.AuthorName, &a.AuthorEmail, &a.Status,
		&a.PublishedAt, &a.ScheduledPublishAt, &a.MetaDescription, &a.MetaKeywords,
		&a.OGImage, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// publishedWhere builds the WHERE clause shared by ListPublished and
// CountPublished so the count always matches the listed rows.
func publishedWhere(f repository.PublishedFilter) (string, []any) {
	clauses := []string{"status = 'published'"}
	var args []any
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		clauses = append(clauses, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR content ILIKE $%d)", n, n))
	}
	return strings.Join(clauses, " AND "), args
}

func adminWhere(f repository.AdminFilter) (string, []any) {
	var clauses []string
	var args []any
	if f.AuthorEmail != "" {
		args = append(args, f.AuthorEmail)
		clauses = append(clauses, fmt.Sprintf("author_email = $%d", len(args)))
	}
	if f.Status != nil {
		args = append(args, string(*f.Status))
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(clauses) == 0 {
		return "TRUE", nil
	}
	return strings.Join(clauses, " AND "), args
}

func (repo *ArticleRepo) queryArticles(ctx context.Context, query string, args ...any) ([]*entity.Article, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 20)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) ListPublished(ctx context.Context, f repository.PublishedFilter, offset, limit int) ([]*entity.Article, error) {
	where, args := publishedWhere(f)
	query := fmt.Sprintf(`
SELECT %s
FROM articles
WHERE %s
ORDER BY published_at DESC
LIMIT $%d OFFSET $%d`, articleColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	articles, err := repo.queryArticles(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPublished: %w", err)
	}
	return articles, nil
}

func (repo *ArticleRepo) CountPublished(ctx context.Context, f repository.PublishedFilter) (int64, error) {
	where, args := publishedWhere(f)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM articles WHERE %s`, where)
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountPublished: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) ListAdmin(ctx context.Context, f repository.AdminFilter, offset, limit int) ([]*entity.Article, error) {
	where, args := adminWhere(f)
	query := fmt.Sprintf(`
SELECT %s
FROM articles
WHERE %s
ORDER BY updated_at DESC
LIMIT $%d OFFSET $%d`, articleColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	articles, err := repo.queryArticles(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListAdmin: %w", err)
	}
	return articles, nil
}

func (repo *ArticleRepo) CountAdmin(ctx context.Context, f repository.AdminFilter) (int64, error) {
	where, args := adminWhere(f)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM articles WHERE %s`, where)
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountAdmin: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM articles
WHERE id = $1
LIMIT 1`, articleColumns)
	a, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return a, nil
}

func (repo *ArticleRepo) GetPublishedBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM articles
WHERE slug = $1 AND status = 'published'
LIMIT 1`, articleColumns)
	a, err := scanArticle(repo.db.QueryRowContext(ctx, query, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetPublishedBySlug: %w", err)
	}
	return a, nil
}

func (repo *ArticleRepo) SlugTaken(ctx context.Context, slug string, excludeID int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1 AND id <> $2)`
	var taken bool
	if err := repo.db.QueryRowContext(ctx, query, slug, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("SlugTaken: %w", err)
	}
	return taken, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, a *entity.Article) error {
	const query = `
INSERT INTO articles
    (title, slug, content, excerpt, cover_image, category_id,
     author_id, author_name, author_email, status, published_at,
     scheduled_publish_at, meta_description, meta_keywords, og_image,
     created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		a.Title, a.Slug, a.Content, a.Excerpt, a.CoverImage, a.CategoryID,
		a.AuthorID, a.AuthorName, a.AuthorEmail, string(a.Status), a.PublishedAt,
		a.ScheduledPublishAt, a.MetaDescription, a.MetaKeywords, a.OGImage,
		a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, a *entity.Article) error {
	const query = `
UPDATE articles
SET title = $1, slug = $2, content = $3, excerpt = $4, cover_image = $5,
    category_id = $6, status = $7, published_at = $8, scheduled_publish_at = $9,
    meta_description = $10, meta_keywords = $11, og_image = $12, updated_at = $13
WHERE id = $14`
	res, err := repo.db.ExecContext(ctx, query,
		a.Title, a.Slug, a.Content, a.Excerpt, a.CoverImage,
		a.CategoryID, string(a.Status), a.PublishedAt, a.ScheduledPublishAt,
		a.MetaDescription, a.MetaKeywords, a.OGImage, a.UpdatedAt, a.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("Update: article %d not found", a.ID)
	}
	return nil
}

// Delete removes the article together with its junction rows. All three
// deletes commit or roll back together so no orphaned junction rows survive.
func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Delete: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM article_tags WHERE article_id = $1`, id); err != nil {
		return fmt.Errorf("Delete: tags: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM article_sections WHERE article_id = $1`, id); err != nil {
		return fmt.Errorf("Delete: sections: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id); err != nil {
		return fmt.Errorf("Delete: article: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Delete: commit: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) ListDueScheduled(ctx context.Context, now time.Time) ([]*entity.Article, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM articles
WHERE status = 'draft'
  AND scheduled_publish_at IS NOT NULL
  AND scheduled_publish_at <= $1
ORDER BY scheduled_publish_at`, articleColumns)

	articles, err := repo.queryArticles(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("ListDueScheduled: %w", err)
	}
	return articles, nil
}

func (repo *ArticleRepo) MarkPublished(ctx context.Context, id int64, publishedAt time.Time) error {
	// The status predicate keeps published_at intact when the article was
	// published by hand between the due-list query and this update.
	const query = `
UPDATE articles
SET status = 'published', published_at = $1, updated_at = $1
WHERE id = $2
  AND status = 'draft'`
	if _, err := repo.db.ExecContext(ctx, query, publishedAt, id); err != nil {
		return fmt.Errorf("MarkPublished: %w", err)
	}
	return nil
}
