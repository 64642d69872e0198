// Package author provides HTTP handlers for allow-list management.
// All routes are admin-only.
package author

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"resort-cms/internal/domain/entity"
	"resort-cms/internal/handler/http/auth"
	"resort-cms/internal/handler/http/respond"
	authorUC "resort-cms/internal/usecase/author"
)

// DTO represents the JSON structure for an allow-list entry.
type DTO struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	AddedBy   *int64    `json:"addedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func newDTO(a *entity.AllowedAuthor) DTO {
	return DTO{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Role:      string(a.Role),
		AddedBy:   a.AddedBy,
		CreatedAt: a.CreatedAt,
	}
}

func errStatus(err error) int {
	var vErr *entity.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, authorUC.ErrInvalidAuthorID):
		return http.StatusBadRequest
	case errors.Is(err, authorUC.ErrDuplicateEmail):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ListHandler serves the full allow-list.
type ListHandler struct{ Svc *authorUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	authors, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	dtos := make([]DTO, 0, len(authors))
	for _, a := range authors {
		dtos = append(dtos, newDTO(a))
	}
	respond.JSON(w, http.StatusOK, dtos)
}

// AddHandler puts a new email on the allow-list.
type AddHandler struct{ Svc *authorUC.Service }

func (h AddHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized: invalid credentials"))
		return
	}

	var req struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Role  string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	entry, err := h.Svc.Add(r.Context(), actor, authorUC.AddInput{
		Email: req.Email,
		Name:  req.Name,
		Role:  entity.AuthorRole(req.Role),
	})
	if err != nil {
		respond.SafeError(w, errStatus(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, newDTO(entry))
}

// RemoveHandler deletes an allow-list entry. Existing articles keep their
// author byline.
type RemoveHandler struct{ Svc *authorUC.Service }

func (h RemoveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid author ID"))
		return
	}
	if err := h.Svc.Remove(r.Context(), id); err != nil {
		respond.SafeError(w, errStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
