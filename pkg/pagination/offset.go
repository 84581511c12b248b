package pagination

const (
	PageDefaultSize = 100
	PageMaxSize     = 1_000
)

// OffsetRequest is a 1-based page request bound from query parameters.
type OffsetRequest struct {
	Page int `json:"page" query:"page"`
	Size int `json:"size" query:"size"`
}

// Normalize clamps the request into a valid page.
func (r *OffsetRequest) Normalize() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
}

func (r OffsetRequest) Offset() int {
	return (r.Page - 1) * r.Size
}

type OffsetResult[T any] struct {
	Items   []T  `json:"items"`
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	Size    int  `json:"size"`
	HasMore bool `json:"has_more"`
}

// Paginate returns the requested page of an already materialized list.
// A page past the end yields no items.
func Paginate[T any](all []T, req OffsetRequest) *OffsetResult[T] {
	req.Normalize()

	start := min(req.Offset(), len(all))
	end := min(start+req.Size, len(all))

	return &OffsetResult[T]{
		Items:   append([]T{}, all[start:end]...),
		Total:   len(all),
		Page:    req.Page,
		Size:    req.Size,
		HasMore: end < len(all),
	}
}
