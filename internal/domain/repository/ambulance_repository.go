package repository

import (
	"clinic-management-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AmbulanceRepository interface {
	Create(db *gorm.DB, ambulance *entity.Ambulance) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Ambulance, error)
	FindAll(db *gorm.DB, filter *entity.AmbulanceFilter, page, limit int) ([]entity.Ambulance, int64, error)
	Update(db *gorm.DB, ambulance *entity.Ambulance) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	CountByStatus(db *gorm.DB, status string) (int64, error)
}

type EmergencyCallRepository interface {
	Create(db *gorm.DB, call *entity.EmergencyCall) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.EmergencyCall, error)
	FindAll(db *gorm.DB, filter *entity.EmergencyCallFilter, page, limit int) ([]entity.EmergencyCall, int64, error)
	Update(db *gorm.DB, call *entity.EmergencyCall) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	CountByAmbulanceID(db *gorm.DB, ambulanceID uuid.UUID) (int64, error)
}
