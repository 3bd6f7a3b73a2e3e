package repository

import (
	"clinic-management-service/internal/domain/entity"
	domainRepo "clinic-management-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type supplierRepository struct {
	crudRepository[entity.Supplier]
}

func NewSupplierRepository() domainRepo.SupplierRepository {
	return &supplierRepository{}
}

func (r *supplierRepository) FindAll(db *gorm.DB, filter *entity.SupplierFilter, page, limit int) ([]entity.Supplier, int64, error) {
	return listPage[entity.Supplier](db, func(q *gorm.DB) *gorm.DB {
		if filter == nil {
			return q
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			q = q.Where("name ILIKE ? OR contact_person ILIKE ?", pattern, pattern)
		}
		return q
	}, page, limit, "")
}

type inventoryAlertRepository struct {
	crudRepository[entity.InventoryAlert]
}

func NewInventoryAlertRepository() domainRepo.InventoryAlertRepository {
	return &inventoryAlertRepository{}
}

func (r *inventoryAlertRepository) FindAll(db *gorm.DB, filter *entity.InventoryAlertFilter, page, limit int) ([]entity.InventoryAlert, int64, error) {
	return listPage[entity.InventoryAlert](db, func(q *gorm.DB) *gorm.DB {
		q = q.Preload("Supplier")
		if filter == nil {
			return q
		}
		if filter.Search != "" {
			q = q.Where("item_name ILIKE ?", "%"+filter.Search+"%")
		}
		if filter.Category != "" {
			q = q.Where("category = ?", filter.Category)
		}
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
		return q
	}, page, limit, "")
}

func (r *inventoryAlertRepository) CountBySupplierID(db *gorm.DB, supplierID uuid.UUID) (int64, error) {
	var total int64
	err := db.Model(&entity.InventoryAlert{}).Where("supplier_id = ?", supplierID).Count(&total).Error
	return total, err
}
