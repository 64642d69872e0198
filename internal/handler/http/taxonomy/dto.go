// Package taxonomy provides HTTP handlers for tags, categories and
// page-section placements.
package taxonomy

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"resort-cms/internal/domain/entity"
	"resort-cms/internal/repository"
	taxUC "resort-cms/internal/usecase/taxonomy"
)

// TagDTO represents the JSON structure for tag data transfer.
type TagDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func newTagDTO(t *entity.Tag) TagDTO {
	return TagDTO{ID: t.ID, Name: t.Name, Slug: t.Slug}
}

// CategoryDTO represents the JSON structure for category data transfer.
type CategoryDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

func newCategoryDTO(c *entity.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID, Name: c.Name, Slug: c.Slug, Description: c.Description}
}

// SectionDTO represents the JSON structure for a page section placement slot.
type SectionDTO struct {
	ID           int64     `json:"id"`
	PageKey      string    `json:"pageKey"`
	SectionKey   string    `json:"sectionKey"`
	SectionName  string    `json:"sectionName"`
	Description  string    `json:"description,omitempty"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

func newSectionDTO(s *entity.PageSection) SectionDTO {
	return SectionDTO{
		ID:           s.ID,
		PageKey:      s.PageKey,
		SectionKey:   s.SectionKey,
		SectionName:  s.SectionName,
		Description:  s.Description,
		DisplayOrder: s.DisplayOrder,
		CreatedAt:    s.CreatedAt,
	}
}

// ArticleSectionDTO represents one section placement of an article.
type ArticleSectionDTO struct {
	SectionID   int64  `json:"sectionId"`
	PageKey     string `json:"pageKey"`
	SectionKey  string `json:"sectionKey"`
	SectionName string `json:"sectionName"`
}

func newArticleSectionDTO(s repository.ArticleSection) ArticleSectionDTO {
	return ArticleSectionDTO{
		SectionID:   s.SectionID,
		PageKey:     s.PageKey,
		SectionKey:  s.SectionKey,
		SectionName: s.SectionName,
	}
}

// errStatus maps use case errors to HTTP status codes.
func errStatus(err error) int {
	var vErr *entity.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, taxUC.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, taxUC.ErrArticleNotFound):
		return http.StatusNotFound
	case errors.Is(err, taxUC.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, taxUC.ErrTagExists), errors.Is(err, taxUC.ErrCategorySlugTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// pathID parses the {id} path segment as a positive integer.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid ID")
	}
	return id, nil
}
