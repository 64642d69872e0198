package article

import (
	"errors"
	"net/http"

	"resort-cms/internal/handler/http/auth"
	"resort-cms/internal/handler/http/respond"
	artUC "resort-cms/internal/usecase/article"
)

// DeleteHandler removes an article together with its tag and section
// associations.
type DeleteHandler struct{ Svc *artUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Svc.Delete(r.Context(), actor, id); err != nil {
		respond.SafeError(w, errStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
