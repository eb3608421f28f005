// Package usecase defines the application-level interfaces and their
// input/output types. Implementations live in the impl subpackage.
package usecase

// Pagination carries the common page/limit pair for list operations.
// Handlers normalize raw query values before passing it down.
type Pagination struct {
	Page  int `json:"page" validate:"min=1"`
	Limit int `json:"limit" validate:"min=1,max=100"`
}

// PageInfo describes one page of a listing in responses.
type PageInfo struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// NewPageInfo derives the page descriptor from a total row count.
func NewPageInfo(total int64, page, limit int) *PageInfo {
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}

	return &PageInfo{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}
