package article

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"resort-cms/internal/common/pagination"
	"resort-cms/internal/handler/http/respond"
	"resort-cms/internal/observability/logging"
	artUC "resort-cms/internal/usecase/article"
)

// ListHandler serves the public article listing: published articles only,
// newest first by publishedAt, optionally filtered by category and search
// term.
type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", "error", err.Error())
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	in := artUC.ListInput{
		Search: r.URL.Query().Get("search"),
		Params: params,
	}
	if catStr := r.URL.Query().Get("categoryId"); catStr != "" {
		catID, err := strconv.ParseInt(catStr, 10, 64)
		if err != nil || catID <= 0 {
			respond.SafeError(w, http.StatusBadRequest,
				errors.New("invalid query parameter: categoryId must be a positive integer"))
			return
		}
		in.CategoryID = &catID
	}

	result, err := h.Svc.List(ctx, in)
	if err != nil {
		logger.Error("failed to list published articles",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit)
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Items))
	for _, item := range result.Items {
		dtos = append(dtos, newListDTO(item))
	}

	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Pagination))
}
