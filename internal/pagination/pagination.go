// Package pagination implements the shared page helper used by every feed
// endpoint. Pages are 1-based and fixed-size; out-of-range requests clamp to
// the last valid page instead of erroring, so deep links never 404.
package pagination

import "strconv"

// PageSize is the number of posts on a feed page.
const PageSize = 10

// Meta describes the position of a page within the full result set.
type Meta struct {
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	Total      int64 `json:"total"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

// ParsePage interprets a raw page query value. Absent, malformed or
// non-positive input falls back to page 1.
func ParsePage(raw string) int {
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate clamps the requested page against the total item count and returns
// the query offset and limit together with the page metadata. The effective
// page after clamping is in Meta.Page. An empty result set still has exactly
// one (empty) page.
func Paginate(page int, total int64) (int, int, Meta) {
	totalPages := int((total + PageSize - 1) / PageSize)
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	offset := (page - 1) * PageSize
	meta := Meta{
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
	return offset, PageSize, meta
}
