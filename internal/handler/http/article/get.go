package article

import (
	"errors"
	"net/http"

	"resort-cms/internal/handler/http/auth"
	"resort-cms/internal/handler/http/respond"
	artUC "resort-cms/internal/usecase/article"
)

// GetHandler serves a single article by ID for editing, draft or published.
type GetHandler struct{ Svc *artUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	art, err := h.Svc.GetByID(r.Context(), actor, id)
	if err != nil {
		respond.SafeError(w, errStatus(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, newDTO(art))
}
