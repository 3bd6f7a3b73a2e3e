package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// crudRepository provides the CRUD operations every resource store repeats.
// Resource repositories embed it and add their own filtered listing on top
// of listPage.
type crudRepository[T any] struct{}

func (r *crudRepository[T]) Create(db *gorm.DB, e *T) error {
	return db.Create(e).Error
}

func (r *crudRepository[T]) FindByID(db *gorm.DB, id uuid.UUID) (*T, error) {
	var e T
	err := db.Where("id = ?", id).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *crudRepository[T]) Update(db *gorm.DB, e *T) error {
	return db.Save(e).Error
}

func (r *crudRepository[T]) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	var e T
	res := db.Where("id = ?", id).Delete(&e)
	return res.RowsAffected, res.Error
}

func (r *crudRepository[T]) Count(db *gorm.DB) (int64, error) {
	var e T
	var total int64
	err := db.Model(&e).Count(&total).Error
	return total, err
}

// listPage implements the shared listing contract: count the filtered set,
// then return the requested page ordered by creation time descending unless
// the caller overrides the order. The scope is applied twice so the count
// and the page query stay independent gorm statements.
func listPage[T any](db *gorm.DB, scope func(*gorm.DB) *gorm.DB, page, limit int, order string) ([]T, int64, error) {
	var model T
	var total int64

	if err := scope(db.Model(&model)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if order == "" {
		order = "created_at DESC"
	}
	offset := (page - 1) * limit

	items := make([]T, 0, limit)
	if err := scope(db.Model(&model)).Order(order).Limit(limit).Offset(offset).Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
