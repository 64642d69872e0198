package article

import (
	"errors"
	"log/slog"
	"net/http"

	"resort-cms/internal/common/pagination"
	"resort-cms/internal/domain/entity"
	"resort-cms/internal/handler/http/auth"
	"resort-cms/internal/handler/http/respond"
	"resort-cms/internal/observability/logging"
	artUC "resort-cms/internal/usecase/article"
)

// AdminListHandler serves the authoring dashboard listing: drafts included,
// ordered by updatedAt descending. Admins see every article, authors only
// their own.
type AdminListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h AdminListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized: invalid credentials"))
		return
	}

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	in := artUC.AdminListInput{Params: params}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := entity.ArticleStatus(statusStr)
		if !status.Valid() {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("invalid query parameter: status must be draft or published"))
			return
		}
		in.Status = &status
	}

	result, err := h.Svc.AdminList(ctx, actor, in)
	if err != nil {
		logger.Error("failed to list articles for dashboard",
			"error", err.Error(),
			"actor_email", actor.Email)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Items))
	for _, item := range result.Items {
		dtos = append(dtos, newListDTO(item))
	}

	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Pagination))
}
