package article

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"resort-cms/internal/domain/entity"
	"resort-cms/internal/handler/http/auth"
	"resort-cms/internal/handler/http/respond"
	artUC "resort-cms/internal/usecase/article"
)

// CreateHandler creates a new article authored by the acting identity.
type CreateHandler struct{ Svc *artUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized: invalid credentials"))
		return
	}

	var req struct {
		Title              string `json:"title"`
		Slug               string `json:"slug"`
		Content            string `json:"content"`
		Excerpt            string `json:"excerpt"`
		CoverImage         string `json:"coverImage"`
		CategoryID         *int64 `json:"categoryId"`
		Status             string `json:"status"`
		ScheduledPublishAt string `json:"scheduledPublishAt"`
		MetaDescription    string `json:"metaDescription"`
		MetaKeywords       string `json:"metaKeywords"`
		OGImage            string `json:"ogImage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	var scheduledAt *time.Time
	if req.ScheduledPublishAt != "" {
		t, err := time.Parse(time.RFC3339, req.ScheduledPublishAt)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("scheduledPublishAt must be in RFC3339 format"))
			return
		}
		scheduledAt = &t
	}

	art, err := h.Svc.Create(r.Context(), actor, artUC.CreateInput{
		Title:              req.Title,
		Slug:               req.Slug,
		Content:            req.Content,
		Excerpt:            req.Excerpt,
		CoverImage:         req.CoverImage,
		CategoryID:         req.CategoryID,
		Status:             entity.ArticleStatus(req.Status),
		ScheduledPublishAt: scheduledAt,
		MetaDescription:    req.MetaDescription,
		MetaKeywords:       req.MetaKeywords,
		OGImage:            req.OGImage,
	})
	if err != nil {
		respond.SafeError(w, errStatus(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, newDTO(art))
}
