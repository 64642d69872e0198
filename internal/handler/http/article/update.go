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

// UpdateHandler applies a partial update to an article. Absent JSON fields
// are left untouched; present fields are validated and written.
type UpdateHandler struct{ Svc *artUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized: invalid credentials"))
		return
	}

	id, err := pathID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title              *string `json:"title"`
		Slug               *string `json:"slug"`
		Content            *string `json:"content"`
		Excerpt            *string `json:"excerpt"`
		CoverImage         *string `json:"coverImage"`
		CategoryID         *int64  `json:"categoryId"`
		Status             *string `json:"status"`
		ScheduledPublishAt *string `json:"scheduledPublishAt"`
		MetaDescription    *string `json:"metaDescription"`
		MetaKeywords       *string `json:"metaKeywords"`
		OGImage            *string `json:"ogImage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	in := artUC.UpdateInput{
		ID:              id,
		Title:           req.Title,
		Slug:            req.Slug,
		Content:         req.Content,
		Excerpt:         req.Excerpt,
		CoverImage:      req.CoverImage,
		CategoryID:      req.CategoryID,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
		OGImage:         req.OGImage,
	}
	if req.Status != nil {
		status := entity.ArticleStatus(*req.Status)
		in.Status = &status
	}
	if req.ScheduledPublishAt != nil {
		t, err := time.Parse(time.RFC3339, *req.ScheduledPublishAt)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("scheduledPublishAt must be in RFC3339 format"))
			return
		}
		in.ScheduledPublishAt = &t
	}

	if err := h.Svc.Update(r.Context(), actor, in); err != nil {
		respond.SafeError(w, errStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
