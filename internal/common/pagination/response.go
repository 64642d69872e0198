package pagination

// Response is a generic paginated listing response.
type Response[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
}

// NewResponse builds a Response from a page of items and its metadata.
func NewResponse[T any](items []T, meta Metadata) Response[T] {
	return Response[T]{
		Items:      items,
		Total:      meta.Total,
		Page:       meta.Page,
		TotalPages: meta.TotalPages,
	}
}
