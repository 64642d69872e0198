package taxonomy

import (
	"net/http"

	taxUC "resort-cms/internal/usecase/taxonomy"
)

// Register wires the taxonomy routes into the mux. The guard is the
// identity plus allow-list chain; adminGuard additionally requires the
// admin role. Reads are public: the marketing site renders an article's
// tags and section placements anonymously. Changing associations needs an
// allow-listed author, and vocabulary management (creating and deleting
// tags and categories) is admin-only.
func Register(mux *http.ServeMux, svc *taxUC.Service, guard, adminGuard func(http.Handler) http.Handler) {
	mux.Handle("GET /tags", ListTagsHandler{svc})
	mux.Handle("GET /categories", ListCategoriesHandler{svc})
	mux.Handle("GET /sections", ListSectionsHandler{svc})
	mux.Handle("GET /articles/{id}/tags", ArticleTagsHandler{svc})
	mux.Handle("GET /articles/{id}/sections", ArticleSectionsHandler{svc})

	mux.Handle("PUT /admin/articles/{id}/tags", guard(SetArticleTagsHandler{svc}))
	mux.Handle("PUT /admin/articles/{id}/sections", guard(SetArticleSectionsHandler{svc}))

	mux.Handle("POST /admin/tags", adminGuard(CreateTagHandler{svc}))
	mux.Handle("DELETE /admin/tags/{id}", adminGuard(DeleteTagHandler{svc}))
	mux.Handle("POST /admin/categories", adminGuard(CreateCategoryHandler{svc}))
}
