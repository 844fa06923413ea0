// Package paginate slices fixed-size ordered datasets into 1-indexed pages.
package paginate

import "fmt"

// InvalidPageError reports a page outside [1, TotalPages]. The range is
// carried so handlers can tell callers what is valid.
type InvalidPageError struct {
	Page       int
	TotalPages int
}

func (e *InvalidPageError) Error() string {
	return fmt.Sprintf("invalid page %d: must be between 1 and %d", e.Page, e.TotalPages)
}

// TotalPages returns ceil(totalItems / perPage).
func TotalPages(totalItems, perPage int) int {
	return (totalItems + perPage - 1) / perPage
}

// Slice returns the half-open index range [start, end) for the requested
// page. The underlying sequence is never touched.
func Slice(totalItems, page, perPage int) (start, end int, err error) {
	total := TotalPages(totalItems, perPage)
	if page < 1 || page > total {
		return 0, 0, &InvalidPageError{Page: page, TotalPages: total}
	}
	start = (page - 1) * perPage
	end = start + perPage
	if end > totalItems {
		end = totalItems
	}
	return start, end, nil
}
