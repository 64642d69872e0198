package article

import (
	"context"
	"fmt"
	"time"

	"resort-cms/internal/common/pagination"
	"resort-cms/internal/domain/entity"
	"resort-cms/internal/repository"
)

// Service provides article management use cases. It handles the business
// rules and delegates persistence to the repository.
//
// Clock supplies the current time for publishedAt stamping and is injectable
// for tests; a nil Clock falls back to time.Now.
type Service struct {
	Repo  repository.ArticleRepository
	Clock func() time.Time
}

func (s *Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// ListInput are the parameters of the public article listing.
type ListInput struct {
	CategoryID *int64
	Search     string
	Params     pagination.Params
}

// AdminListInput are the parameters of the editor-facing article listing.
type AdminListInput struct {
	Status *entity.ArticleStatus
	Params pagination.Params
}

// CreateInput represents the input parameters for creating a new article.
// Author fields are never part of the input; they are snapshotted from the
// acting identity server-side.
type CreateInput struct {
	Title              string
	Slug               string
	Content            string
	Excerpt            string
	CoverImage         string
	CategoryID         *int64
	Status             entity.ArticleStatus
	ScheduledPublishAt *time.Time
	MetaDescription    string
	MetaKeywords       string
	OGImage            string
}

// UpdateInput represents the input parameters for updating an existing
// article. Fields with nil values are left untouched.
type UpdateInput struct {
	ID                 int64
	Title              *string
	Slug               *string
	Content            *string
	Excerpt            *string
	CoverImage         *string
	CategoryID         *int64
	Status             *entity.ArticleStatus
	ScheduledPublishAt *time.Time
	MetaDescription    *string
	MetaKeywords       *string
	OGImage            *string
}

// PaginatedResult is one page of articles plus pagination metadata.
type PaginatedResult struct {
	Items      []*entity.Article
	Pagination pagination.Metadata
}

// List returns published articles for public consumption, ordered by
// publishedAt descending (visitor recency).
func (s *Service) List(ctx context.Context, in ListInput) (*PaginatedResult, error) {
	filter := repository.PublishedFilter{
		CategoryID: in.CategoryID,
		Search:     in.Search,
	}

	total, err := s.Repo.CountPublished(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count published articles: %w", err)
	}

	offset := pagination.CalculateOffset(in.Params.Page, in.Params.Limit)
	items, err := s.Repo.ListPublished(ctx, filter, offset, in.Params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}

	return &PaginatedResult{
		Items: items,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       in.Params.Page,
			Limit:      in.Params.Limit,
			TotalPages: pagination.CalculateTotalPages(total, in.Params.Limit),
		},
	}, nil
}

// GetBySlug resolves a published article by its slug. Drafts are reported as
// not found through this path regardless of slug match.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	if slug == "" {
		return nil, &entity.ValidationError{Field: "slug", Message: "is required"}
	}

	art, err := s.Repo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// AdminList returns articles for the editor dashboard, ordered by updatedAt
// descending (editor recency). Admins see every article; other authors see
// only their own.
func (s *Service) AdminList(ctx context.Context, actor entity.Actor, in AdminListInput) (*PaginatedResult, error) {
	filter := repository.AdminFilter{Status: in.Status}
	if !actor.Admin() {
		filter.AuthorEmail = actor.Email
	}

	total, err := s.Repo.CountAdmin(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	offset := pagination.CalculateOffset(in.Params.Page, in.Params.Limit)
	items, err := s.Repo.ListAdmin(ctx, filter, offset, in.Params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return &PaginatedResult{
		Items: items,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       in.Params.Page,
			Limit:      in.Params.Limit,
			TotalPages: pagination.CalculateTotalPages(total, in.Params.Limit),
		},
	}, nil
}

// GetByID retrieves a single article for editing.
// Returns ErrArticleNotFound if the article does not exist and ErrNotOwner
// when a non-admin actor requests someone else's article.
func (s *Service) GetByID(ctx context.Context, actor entity.Actor, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	if !actor.Admin() && !actor.Owns(art) {
		return nil, ErrNotOwner
	}
	return art, nil
}

// Create validates the input and creates a new article authored by the
// actor. The author snapshot (id, name, email) is taken from the actor, so a
// later rename or removal of the allowed author does not rewrite history.
// Returns ErrSlugTaken if the slug is already in use.
func (s *Service) Create(ctx context.Context, actor entity.Actor, in CreateInput) (*entity.Article, error) {
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if in.Content == "" {
		return nil, &entity.ValidationError{Field: "content", Message: "is required"}
	}
	if err := entity.ValidateSlug(in.Slug); err != nil {
		return nil, err
	}
	if err := entity.ValidateMetaDescription(in.MetaDescription); err != nil {
		return nil, err
	}
	if err := entity.ValidateMetaKeywords(in.MetaKeywords); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = entity.StatusDraft
	}
	if !status.Valid() {
		return nil, &entity.ValidationError{Field: "status", Message: "must be draft or published"}
	}

	taken, err := s.Repo.SlugTaken(ctx, in.Slug, 0)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if taken {
		return nil, ErrSlugTaken
	}

	now := s.now()
	art := &entity.Article{
		Title:              in.Title,
		Slug:               in.Slug,
		Content:            in.Content,
		Excerpt:            in.Excerpt,
		CoverImage:         in.CoverImage,
		CategoryID:         in.CategoryID,
		AuthorID:           actor.ID,
		AuthorName:         actor.Name,
		AuthorEmail:        actor.Email,
		Status:             status,
		ScheduledPublishAt: in.ScheduledPublishAt,
		MetaDescription:    in.MetaDescription,
		MetaKeywords:       in.MetaKeywords,
		OGImage:            in.OGImage,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if status == entity.StatusPublished {
		art.PublishedAt = &now
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Update modifies an existing article. Only non-nil fields are applied.
// publishedAt is stamped exactly once, on the first transition to published;
// re-saving an already published article leaves the original timestamp.
func (s *Service) Update(ctx context.Context, actor entity.Actor, in UpdateInput) error {
	if in.ID <= 0 {
		return ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return ErrArticleNotFound
	}
	if !actor.Admin() && !actor.Owns(art) {
		return ErrNotOwner
	}

	if in.Slug != nil && *in.Slug != art.Slug {
		if err := entity.ValidateSlug(*in.Slug); err != nil {
			return err
		}
		taken, err := s.Repo.SlugTaken(ctx, *in.Slug, art.ID)
		if err != nil {
			return fmt.Errorf("check slug: %w", err)
		}
		if taken {
			return ErrSlugTaken
		}
		art.Slug = *in.Slug
	}
	if in.Title != nil {
		if *in.Title == "" {
			return &entity.ValidationError{Field: "title", Message: "cannot be empty"}
		}
		art.Title = *in.Title
	}
	if in.Content != nil {
		if *in.Content == "" {
			return &entity.ValidationError{Field: "content", Message: "cannot be empty"}
		}
		art.Content = *in.Content
	}
	if in.Excerpt != nil {
		art.Excerpt = *in.Excerpt
	}
	if in.CoverImage != nil {
		art.CoverImage = *in.CoverImage
	}
	if in.CategoryID != nil {
		art.CategoryID = in.CategoryID
	}
	if in.ScheduledPublishAt != nil {
		art.ScheduledPublishAt = in.ScheduledPublishAt
	}
	if in.MetaDescription != nil {
		if err := entity.ValidateMetaDescription(*in.MetaDescription); err != nil {
			return err
		}
		art.MetaDescription = *in.MetaDescription
	}
	if in.MetaKeywords != nil {
		if err := entity.ValidateMetaKeywords(*in.MetaKeywords); err != nil {
			return err
		}
		art.MetaKeywords = *in.MetaKeywords
	}
	if in.OGImage != nil {
		art.OGImage = *in.OGImage
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return &entity.ValidationError{Field: "status", Message: "must be draft or published"}
		}
		// First draft→published transition stamps publishedAt; it is never
		// bumped or cleared afterwards.
		if *in.Status == entity.StatusPublished && art.Status != entity.StatusPublished {
			now := s.now()
			art.PublishedAt = &now
		}
		art.Status = *in.Status
	}

	art.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, art); err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// Delete removes an article after the same ownership check as Update.
// The repository clears the article's tag and section junction rows in the
// same transaction as the row itself.
func (s *Service) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return ErrArticleNotFound
	}
	if !actor.Admin() && !actor.Owns(art) {
		return ErrNotOwner
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
