package taxonomy

import (
	"encoding/json"
	"errors"
	"net/http"

	"resort-cms/internal/handler/http/auth"
	"resort-cms/internal/handler/http/respond"
	taxUC "resort-cms/internal/usecase/taxonomy"
)

// ListTagsHandler serves the full tag vocabulary.
type ListTagsHandler struct{ Svc *taxUC.Service }

func (h ListTagsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Svc.ListTags(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	dtos := make([]TagDTO, 0, len(tags))
	for _, t := range tags {
		dtos = append(dtos, newTagDTO(t))
	}
	respond.JSON(w, http.StatusOK, dtos)
}

// ArticleTagsHandler serves the tags attached to one article.
type ArticleTagsHandler struct{ Svc *taxUC.Service }

func (h ArticleTagsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	tags, err := h.Svc.ArticleTags(r.Context(), id)
	if err != nil {
		respond.SafeError(w, errStatus(err), err)
		return
	}
	dtos := make([]TagDTO, 0, len(tags))
	for _, t := range tags {
		dtos = append(dtos, newTagDTO(t))
	}
	respond.JSON(w, http.StatusOK, dtos)
}

// SetArticleTagsHandler replaces an article's tag set with exactly the IDs
// in the request body. An empty list clears all tags.
type SetArticleTagsHandler struct{ Svc *taxUC.Service }

func (h SetArticleTagsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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
		TagIDs []int64 `json:"tagIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if err := h.Svc.SetArticleTags(r.Context(), actor, id, req.TagIDs); err != nil {
		respond.SafeError(w, errStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateTagHandler adds a tag to the vocabulary. Admin-only.
type CreateTagHandler struct{ Svc *taxUC.Service }

func (h CreateTagHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	tag, err := h.Svc.CreateTag(r.Context(), req.Name, req.Slug)
	if err != nil {
		respond.SafeError(w, errStatus(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, newTagDTO(tag))
}

// DeleteTagHandler removes a tag and detaches it from every article.
// Admin-only.
type DeleteTagHandler struct{ Svc *taxUC.Service }

func (h DeleteTagHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.DeleteTag(r.Context(), id); err != nil {
		respond.SafeError(w, errStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
