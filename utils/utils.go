package utils

import "math"

// Listing defaults shared by the paginated endpoints; enriched-sales pages
// are large because consumers typically pull whole date ranges.
const (
	DefaultPage     = 1
	DefaultPageSize = 50
)

// Pagination describes one page of a listing response.
type Pagination struct {
	TotalItems  int `json:"totalItems"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalPages  int `json:"totalPages"`
}

// CreatePagination builds the pagination envelope for a listing, substituting
// the defaults for out-of-range page arguments.
func CreatePagination(totalItems, page, pageSize int) *Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page <= 0 {
		page = DefaultPage
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))

	return &Pagination{
		TotalItems:  totalItems,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
	}
}
