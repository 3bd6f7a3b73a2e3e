package repository

import (
	"clinic-management-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(db *gorm.DB, supplier *entity.Supplier) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Supplier, error)
	FindAll(db *gorm.DB, filter *entity.SupplierFilter, page, limit int) ([]entity.Supplier, int64, error)
	Update(db *gorm.DB, supplier *entity.Supplier) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}

type InventoryAlertRepository interface {
	Create(db *gorm.DB, alert *entity.InventoryAlert) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.InventoryAlert, error)
	FindAll(db *gorm.DB, filter *entity.InventoryAlertFilter, page, limit int) ([]entity.InventoryAlert, int64, error)
	Update(db *gorm.DB, alert *entity.InventoryAlert) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	CountBySupplierID(db *gorm.DB, supplierID uuid.UUID) (int64, error)
}
