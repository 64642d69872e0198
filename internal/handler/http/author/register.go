package author

import (
	"net/http"

	authorUC "resort-cms/internal/usecase/author"
)

// Register wires the allow-list routes into the mux behind the admin guard.
func Register(mux *http.ServeMux, svc *authorUC.Service, adminGuard func(http.Handler) http.Handler) {
	mux.Handle("GET /admin/authors", adminGuard(ListHandler{svc}))
	mux.Handle("POST /admin/authors", adminGuard(AddHandler{svc}))
	mux.Handle("DELETE /admin/authors/{id}", adminGuard(RemoveHandler{svc}))
}
