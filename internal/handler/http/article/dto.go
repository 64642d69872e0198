// Package article provides HTTP handlers for the public article endpoints
// and the authoring endpoints under /admin.
package article

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"resort-cms/internal/domain/entity"
	artUC "resort-cms/internal/usecase/article"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID                 int64      `json:"id"`
	Title              string     `json:"title"`
	Slug               string     `json:"slug"`
	Content            string     `json:"content,omitempty"`
	Excerpt            string     `json:"excerpt,omitempty"`
	CoverImage         string     `json:"coverImage,omitempty"`
	CategoryID         *int64     `json:"categoryId,omitempty"`
	AuthorName         string     `json:"authorName"`
	AuthorEmail        string     `json:"authorEmail,omitempty"`
	Status             string     `json:"status"`
	PublishedAt        *time.Time `json:"publishedAt,omitempty"`
	ScheduledPublishAt *time.Time `json:"scheduledPublishAt,omitempty"`
	MetaDescription    string     `json:"metaDescription,omitempty"`
	MetaKeywords       string     `json:"metaKeywords,omitempty"`
	OGImage            string     `json:"ogImage,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// newDTO converts an article to its full JSON representation.
func newDTO(a *entity.Article) DTO {
	return DTO{
		ID:                 a.ID,
		Title:              a.Title,
		Slug:               a.Slug,
		Content:            a.Content,
		Excerpt:            a.Excerpt,
		CoverImage:         a.CoverImage,
		CategoryID:         a.CategoryID,
		AuthorName:         a.AuthorName,
		AuthorEmail:        a.AuthorEmail,
		Status:             string(a.Status),
		PublishedAt:        a.PublishedAt,
		ScheduledPublishAt: a.ScheduledPublishAt,
		MetaDescription:    a.MetaDescription,
		MetaKeywords:       a.MetaKeywords,
		OGImage:            a.OGImage,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// newListDTO converts an article to its listing representation. The body is
// omitted: listings show excerpts, readers fetch the full article by slug.
func newListDTO(a *entity.Article) DTO {
	dto := newDTO(a)
	dto.Content = ""
	return dto
}

// errStatus maps use case errors to HTTP status codes.
func errStatus(err error) int {
	var vErr *entity.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, artUC.ErrInvalidArticleID):
		return http.StatusBadRequest
	case errors.Is(err, artUC.ErrArticleNotFound):
		return http.StatusNotFound
	case errors.Is(err, artUC.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, artUC.ErrSlugTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// pathID parses the {id} path segment as a positive integer.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid article ID")
	}
	return id, nil
}
