package taxonomy

import (
	"context"
	"fmt"
	"time"

	"resort-cms/internal/domain/entity"
	"resort-cms/internal/repository"
)

// Service provides tag, category and page-section use cases. Association
// changes go through the same ownership rule as article updates, so the
// service also needs the article repository.
type Service struct {
	Tags       repository.TagRepository
	Sections   repository.SectionRepository
	Categories repository.CategoryRepository
	Articles   repository.ArticleRepository
	Clock      func() time.Time
}

func (s *Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// requireArticleAccess loads the article and applies the admin-or-owner rule.
func (s *Service) requireArticleAccess(ctx context.Context, actor entity.Actor, articleID int64) error {
	if articleID <= 0 {
		return ErrInvalidID
	}
	art, err := s.Articles.Get(ctx, articleID)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return ErrArticleNotFound
	}
	if !actor.Admin() && !actor.Owns(art) {
		return ErrNotOwner
	}
	return nil
}

// ListTags returns all tags ordered by name.
func (s *Service) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	tags, err := s.Tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// ArticleTags returns the tags attached to an article.
func (s *Service) ArticleTags(ctx context.Context, articleID int64) ([]*entity.Tag, error) {
	if articleID <= 0 {
		return nil, ErrInvalidID
	}
	tags, err := s.Tags.ListForArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list article tags: %w", err)
	}
	return tags, nil
}

// SetArticleTags replaces the article's tag set with exactly the given IDs.
// An empty slice clears all tags. The replacement is transactional in the
// repository, so readers never observe a half-replaced set.
func (s *Service) SetArticleTags(ctx context.Context, actor entity.Actor, articleID int64, tagIDs []int64) error {
	if err := s.requireArticleAccess(ctx, actor, articleID); err != nil {
		return err
	}
	if err := s.Tags.ReplaceForArticle(ctx, articleID, tagIDs); err != nil {
		return fmt.Errorf("replace article tags: %w", err)
	}
	return nil
}

// CreateTag creates a new tag. Admin-only; the handler layer enforces the
// role, the service enforces uniqueness of both name and slug.
func (s *Service) CreateTag(ctx context.Context, name, slug string) (*entity.Tag, error) {
	if name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if len(name) > 50 {
		return nil, &entity.ValidationError{Field: "name", Message: "is too long (max 50 characters)"}
	}
	if err := entity.ValidateSlug(slug); err != nil {
		return nil, err
	}
	if len(slug) > 50 {
		return nil, &entity.ValidationError{Field: "slug", Message: "is too long (max 50 characters)"}
	}

	exists, err := s.Tags.ExistsByNameOrSlug(ctx, name, slug)
	if err != nil {
		return nil, fmt.Errorf("check tag: %w", err)
	}
	if exists {
		return nil, ErrTagExists
	}

	tag := &entity.Tag{Name: name, Slug: slug, CreatedAt: s.now()}
	if err := s.Tags.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return tag, nil
}

// DeleteTag removes a tag. The repository removes junction rows referencing
// the tag in the same transaction, so no article keeps an orphaned
// reference.
func (s *Service) DeleteTag(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.Tags.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}

// ListSections returns active page sections ordered by (pageKey, displayOrder).
func (s *Service) ListSections(ctx context.Context) ([]*entity.PageSection, error) {
	sections, err := s.Sections.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	return sections, nil
}

// ArticleSections returns the section placements of an article.
func (s *Service) ArticleSections(ctx context.Context, articleID int64) ([]repository.ArticleSection, error) {
	if articleID <= 0 {
		return nil, ErrInvalidID
	}
	sections, err := s.Sections.ListForArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list article sections: %w", err)
	}
	return sections, nil
}

// SetArticleSections replaces the article's section placements with exactly
// the given IDs, recording each ID's slice position as its display order.
func (s *Service) SetArticleSections(ctx context.Context, actor entity.Actor, articleID int64, sectionIDs []int64) error {
	if err := s.requireArticleAccess(ctx, actor, articleID); err != nil {
		return err
	}
	if err := s.Sections.ReplaceForArticle(ctx, articleID, sectionIDs); err != nil {
		return fmt.Errorf("replace article sections: %w", err)
	}
	return nil
}

// ListCategories returns all categories ordered by name.
func (s *Service) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.Categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory creates a new category. Admin-only at the handler layer.
func (s *Service) CreateCategory(ctx context.Context, name, slug, description string) (*entity.Category, error) {
	if name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if err := entity.ValidateSlug(slug); err != nil {
		return nil, err
	}

	taken, err := s.Categories.SlugTaken(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("check category slug: %w", err)
	}
	if taken {
		return nil, ErrCategorySlugTaken
	}

	now := s.now()
	cat := &entity.Category{
		Name:        name,
		Slug:        slug,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Categories.Create(ctx, cat); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return cat, nil
}
