package repository

import (
	"clinic-management-service/internal/domain/entity"
	domainRepo "clinic-management-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ambulanceRepository struct {
	crudRepository[entity.Ambulance]
}

func NewAmbulanceRepository() domainRepo.AmbulanceRepository {
	return &ambulanceRepository{}
}

func (r *ambulanceRepository) FindAll(db *gorm.DB, filter *entity.AmbulanceFilter, page, limit int) ([]entity.Ambulance, int64, error) {
	return listPage[entity.Ambulance](db, func(q *gorm.DB) *gorm.DB {
		if filter == nil {
			return q
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			q = q.Where("vehicle_number ILIKE ? OR driver_name ILIKE ?", pattern, pattern)
		}
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
		return q
	}, page, limit, "")
}

func (r *ambulanceRepository) CountByStatus(db *gorm.DB, status string) (int64, error) {
	var total int64
	err := db.Model(&entity.Ambulance{}).Where("status = ?", status).Count(&total).Error
	return total, err
}

type emergencyCallRepository struct {
	crudRepository[entity.EmergencyCall]
}

func NewEmergencyCallRepository() domainRepo.EmergencyCallRepository {
	return &emergencyCallRepository{}
}

func (r *emergencyCallRepository) FindAll(db *gorm.DB, filter *entity.EmergencyCallFilter, page, limit int) ([]entity.EmergencyCall, int64, error) {
	return listPage[entity.EmergencyCall](db, func(q *gorm.DB) *gorm.DB {
		q = q.Preload("Ambulance")
		if filter == nil {
			return q
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			q = q.Where("caller_name ILIKE ? OR location ILIKE ?", pattern, pattern)
		}
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
		return q
	}, page, limit, "")
}

func (r *emergencyCallRepository) CountByAmbulanceID(db *gorm.DB, ambulanceID uuid.UUID) (int64, error) {
	var total int64
	err := db.Model(&entity.EmergencyCall{}).Where("ambulance_id = ?", ambulanceID).Count(&total).Error
	return total, err
}
