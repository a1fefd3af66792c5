package repository

import "github.com/imovelhub/backoffice-api/internal/domain"

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Pagination is the shared page window applied to every list query. Values
// are clamped on construction, never rejected.
type Pagination struct {
	Page    int
	PerPage int
}

// NewPagination clamps page to >= 1 and perPage to [1, MaxPerPage]. Callers
// pass DefaultPerPage when the client did not supply a value.
func NewPagination(page, perPage int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = 1
	} else if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Pagination{Page: page, PerPage: perPage}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Meta builds the response envelope for a list with the given filtered total.
func (p Pagination) Meta(total int64) domain.PageMeta {
	return domain.PageMeta{Total: total, Page: p.Page, PerPage: p.PerPage}
}
