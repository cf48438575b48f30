package models

import "encoding/json"

// PaginatedResult is one page of items. Page is 1-based.
// TotalPages, HasPreviousPage and HasNextPage are derived from the other fields.
type PaginatedResult[T any] struct {
	Items      []T
	TotalCount int64
	Page       int
	PageSize   int
}

func NewPaginatedResult[T any](items []T, totalCount int64, page, pageSize int) PaginatedResult[T] {
	if items == nil {
		items = []T{}
	}
	return PaginatedResult[T]{
		Items:      items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}
}

func (p PaginatedResult[T]) TotalPages() int {
	if p.PageSize <= 0 || p.TotalCount <= 0 {
		return 0
	}
	size := int64(p.PageSize)
	return int((p.TotalCount + size - 1) / size)
}

func (p PaginatedResult[T]) HasPreviousPage() bool {
	return p.Page > 1
}

func (p PaginatedResult[T]) HasNextPage() bool {
	return p.Page < p.TotalPages()
}

type paginatedResultJSON[T any] struct {
	Items           []T   `json:"items"`
	TotalCount      int64 `json:"totalCount"`
	Page            int   `json:"page"`
	PageSize        int   `json:"pageSize"`
	TotalPages      int   `json:"totalPages"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
	HasNextPage     bool  `json:"hasNextPage"`
}

func (p PaginatedResult[T]) MarshalJSON() ([]byte, error) {
	items := p.Items
	if items == nil {
		items = []T{}
	}
	return json.Marshal(paginatedResultJSON[T]{
		Items:           items,
		TotalCount:      p.TotalCount,
		Page:            p.Page,
		PageSize:        p.PageSize,
		TotalPages:      p.TotalPages(),
		HasPreviousPage: p.HasPreviousPage(),
		HasNextPage:     p.HasNextPage(),
	})
}

// MapPaginatedResult converts the items of a page, keeping the paging fields.
func MapPaginatedResult[T, U any](p PaginatedResult[T], fn func(T) U) PaginatedResult[U] {
	out := make([]U, 0, len(p.Items))
	for _, item := range p.Items {
		out = append(out, fn(item))
	}
	return PaginatedResult[U]{
		Items:      out,
		TotalCount: p.TotalCount,
		Page:       p.Page,
		PageSize:   p.PageSize,
	}
}
