package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"resort-cms/internal/domain/entity"
	"resort-cms/internal/repository"
)

type SectionRepo struct {
	db *sql.DB
}

func NewSectionRepo(db *sql.DB) repository.SectionRepository {
	return &SectionRepo{db: db}
}

func (repo *SectionRepo) ListActive(ctx context.Context) ([]*entity.PageSection, error) {
	const query = `
SELECT id, page_key, section_key, section_name, description, display_order, is_active, created_at
FROM page_sections
WHERE is_active = TRUE
ORDER BY page_key, display_order`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListActive: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sections := make([]*entity.PageSection, 0, 20)
	for rows.Next() {
		var s entity.PageSection
		if err := rows.Scan(&s.ID, &s.PageKey, &s.SectionKey, &s.SectionName,
			&s.Description, &s.DisplayOrder, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListActive: scan: %w", err)
		}
		sections = append(sections, &s)
	}
	return sections, rows.Err()
}

func (repo *SectionRepo) ListForArticle(ctx context.Context, articleID int64) ([]repository.ArticleSection, error) {
	const query = `
SELECT ars.section_id, ps.page_key, ps.section_key, ps.section_name
FROM article_sections ars
INNER JOIN page_sections ps ON ars.section_id = ps.id
WHERE ars.article_id = $1
ORDER BY ars.display_order`
	rows, err := repo.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("ListForArticle: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sections := make([]repository.ArticleSection, 0, 8)
	for rows.Next() {
		var s repository.ArticleSection
		if err := rows.Scan(&s.SectionID, &s.PageKey, &s.SectionKey, &s.SectionName); err != nil {
			return nil, fmt.Errorf("ListForArticle: scan: %w", err)
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

// ReplaceForArticle swaps the article's section placements in one
// transaction. display_order records the slice position so a reordered
// resubmission changes the stored order.
func (repo *SectionRepo) ReplaceForArticle(ctx context.Context, articleID int64, sectionIDs []int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ReplaceForArticle: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM article_sections WHERE article_id = $1`, articleID); err != nil {
		return fmt.Errorf("ReplaceForArticle: delete: %w", err)
	}
	for i, sectionID := range sectionIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO article_sections (article_id, section_id, display_order) VALUES ($1, $2, $3)`,
			articleID, sectionID, i); err != nil {
			return fmt.Errorf("ReplaceForArticle: insert section %d: %w", sectionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ReplaceForArticle: commit: %w", err)
	}
	return nil
}
