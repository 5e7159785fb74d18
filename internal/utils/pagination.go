package utils

import "math"

// PaginationParams holds the pagination parameters
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// PaginationResponse represents the pagination metadata in API responses
type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPaginationParams computes the offset for an already validated page and
// limit. An offset that does not fit in an int saturates at math.MaxInt, which
// is past any stored row.
func NewPaginationParams(page, limit int) PaginationParams {
	offset := 0
	if page > 1 && limit > 0 {
		if page-1 > math.MaxInt/limit {
			offset = math.MaxInt
		} else {
			offset = (page - 1) * limit
		}
	}
	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: offset,
	}
}

// PastEnd reports whether the page starts after the last of total rows.
func (p PaginationParams) PastEnd(total int64) bool {
	return int64(p.Offset) >= total
}

// TotalPages is ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	return pages
}

// NewPaginationResponse builds the response metadata for a page of results.
func NewPaginationResponse(params PaginationParams, total int64) PaginationResponse {
	return PaginationResponse{
		Page:  params.Page,
		Limit: params.Limit,
		Total: total,
		Pages: TotalPages(total, params.Limit),
	}
}
