package article

import (
	"log/slog"
	"net/http"

	"resort-cms/internal/common/pagination"
	artUC "resort-cms/internal/usecase/article"
)

// Register wires the article routes into the mux. Public routes serve the
// marketing site; /admin routes go through the supplied guard, which is the
// identity plus allow-list middleware chain composed in main.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger, guard func(http.Handler) http.Handler) {
	mux.Handle("GET /articles", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	// {slug} spans exactly one segment, keeping this route disjoint from
	// the two-segment /articles/{id}/tags and /articles/{id}/sections
	// routes registered by the taxonomy package.
	mux.Handle("GET /articles/{slug}", GetBySlugHandler{svc})

	mux.Handle("GET /admin/articles", guard(AdminListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	}))
	mux.Handle("GET /admin/articles/{id}", guard(GetHandler{svc}))
	mux.Handle("POST /admin/articles", guard(CreateHandler{svc}))
	mux.Handle("PUT /admin/articles/{id}", guard(UpdateHandler{svc}))
	mux.Handle("DELETE /admin/articles/{id}", guard(DeleteHandler{svc}))
}
