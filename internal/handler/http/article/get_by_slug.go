package article

import (
	"net/http"

	"resort-cms/internal/handler/http/respond"
	artUC "resort-cms/internal/usecase/article"
)

// GetBySlugHandler serves a single published article by slug. Drafts answer
// 404 through this path, so unpublished work stays invisible.
type GetBySlugHandler struct{ Svc *artUC.Service }

func (h GetBySlugHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	art, err := h.Svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		respond.SafeError(w, errStatus(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, newDTO(art))
}
