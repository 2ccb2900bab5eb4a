package services

import (
	"repairdesk/app/repo"
)

// ListPage is one page of catalog rows plus the unpaginated total.
type ListPage[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

// ResourceService wraps the generic repository with pagination arithmetic.
// One instance exists per catalog table.
type ResourceService[T any] struct{ rows *repo.ResourceRepository[T] }

func NewResourceService[T any](rows *repo.ResourceRepository[T]) *ResourceService[T] {
	return &ResourceService[T]{rows: rows}
}

// List fetches the requested page. Out-of-range values fall back to page 1
// and limit 10.
func (s *ResourceService[T]) List(page, limit int) (ListPage[T], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit
	items, total, err := s.rows.List(offset, limit)
	if err != nil {
		return ListPage[T]{}, err
	}
	return ListPage[T]{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *ResourceService[T]) Create(row *T) error { return s.rows.Create(row) }

func (s *ResourceService[T]) Update(id uint, row *T) error { return s.rows.Update(id, row) }

func (s *ResourceService[T]) Delete(id uint) error { return s.rows.Delete(id) }
