// Package pagination holds the page arithmetic shared by every list endpoint.
package pagination

const DefaultPerPage = 10

// Pagination describes one page of a result set.
type Pagination struct {
	TotalItems  int64 `json:"total_items"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	Offset      int   `json:"-"`
	HasPrev     bool  `json:"has_prev"`
	HasNext     bool  `json:"has_next"`
}

// New clamps the requested page into [1, total_pages] and derives the offset.
// A non-positive perPage falls back to DefaultPerPage, so the zero value of a
// request never divides by zero.
func New(totalItems int64, page, perPage int) Pagination {
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	totalPages := int((totalItems + int64(perPage) - 1) / int64(perPage))
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Pagination{
		TotalItems:  totalItems,
		PerPage:     perPage,
		CurrentPage: page,
		TotalPages:  totalPages,
		Offset:      (page - 1) * perPage,
		HasPrev:     page > 1,
		HasNext:     page < totalPages,
	}
}
