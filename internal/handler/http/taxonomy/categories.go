package taxonomy

import (
	"encoding/json"
	"errors"
	"net/http"

	"resort-cms/internal/handler/http/respond"
	taxUC "resort-cms/internal/usecase/taxonomy"
)

// ListCategoriesHandler serves the category list.
type ListCategoriesHandler struct{ Svc *taxUC.Service }

func (h ListCategoriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Svc.ListCategories(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	dtos := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, newCategoryDTO(c))
	}
	respond.JSON(w, http.StatusOK, dtos)
}

// CreateCategoryHandler adds a category. Admin-only.
type CreateCategoryHandler struct{ Svc *taxUC.Service }

func (h CreateCategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	cat, err := h.Svc.CreateCategory(r.Context(), req.Name, req.Slug, req.Description)
	if err != nil {
		respond.SafeError(w, errStatus(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, newCategoryDTO(cat))
}
