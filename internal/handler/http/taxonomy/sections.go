package taxonomy

import (
	"encoding/json"
	"errors"
	"net/http"

	"resort-cms/internal/handler/http/auth"
	"resort-cms/internal/handler/http/respond"
	taxUC "resort-cms/internal/usecase/taxonomy"
)

// ListSectionsHandler serves the active page-section placement slots.
type ListSectionsHandler struct{ Svc *taxUC.Service }

func (h ListSectionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sections, err := h.Svc.ListSections(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	dtos := make([]SectionDTO, 0, len(sections))
	for _, s := range sections {
		dtos = append(dtos, newSectionDTO(s))
	}
	respond.JSON(w, http.StatusOK, dtos)
}

// ArticleSectionsHandler serves the section placements of one article.
type ArticleSectionsHandler struct{ Svc *taxUC.Service }

func (h ArticleSectionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	sections, err := h.Svc.ArticleSections(r.Context(), id)
	if err != nil {
		respond.SafeError(w, errStatus(err), err)
		return
	}
	dtos := make([]ArticleSectionDTO, 0, len(sections))
	for _, s := range sections {
		dtos = append(dtos, newArticleSectionDTO(s))
	}
	respond.JSON(w, http.StatusOK, dtos)
}

// SetArticleSectionsHandler replaces an article's section placements with
// exactly the IDs in the request body, in the given order.
type SetArticleSectionsHandler struct{ Svc *taxUC.Service }

func (h SetArticleSectionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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
		SectionIDs []int64 `json:"sectionIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if err := h.Svc.SetArticleSections(r.Context(), actor, id, req.SectionIDs); err != nil {
		respond.SafeError(w, errStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
