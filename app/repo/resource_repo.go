package repo

import (
	"gorm.io/gorm"
)

// ResourceRepository is the shared CRUD access layer for catalog tables. Both
// devices and services have the same lifecycle (paginated list, insert, full
// replace by id, delete by id), so one implementation is parameterized over
// the row type instead of duplicating a repo per table.
type ResourceRepository[T any] struct{ db *gorm.DB }

func NewResourceRepository[T any](db *gorm.DB) *ResourceRepository[T] {
	return &ResourceRepository[T]{db: db}
}

// List returns one page of rows in the store's natural order plus the total
// row count across the whole table.
func (r *ResourceRepository[T]) List(offset, limit int) ([]T, int64, error) {
	var total int64
	if err := r.db.Model(new(T)).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	items := make([]T, 0, limit)
	if err := r.db.Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *ResourceRepository[T]) Create(row *T) error { return r.db.Create(row).Error }

// Update replaces every column of the row with the given id, including
// zero-valued fields. A missing id is not an error: zero rows are affected
// and the caller never learns the difference.
func (r *ResourceRepository[T]) Update(id uint, row *T) error {
	return r.db.Model(row).Where("id = ?", id).Select("*").Omit("id", "created_at").Updates(row).Error
}

// Delete removes the row with the given id, silently doing nothing when it
// does not exist.
func (r *ResourceRepository[T]) Delete(id uint) error {
	return r.db.Delete(new(T), id).Error
}
