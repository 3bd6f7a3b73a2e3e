package repository

import (
	"clinic-management-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BloodDonorRepository interface {
	Create(db *gorm.DB, donor *entity.BloodDonor) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.BloodDonor, error)
	FindAll(db *gorm.DB, filter *entity.BloodDonorFilter, page, limit int) ([]entity.BloodDonor, int64, error)
	Update(db *gorm.DB, donor *entity.BloodDonor) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}

type BloodUnitRepository interface {
	Create(db *gorm.DB, unit *entity.BloodUnit) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.BloodUnit, error)
	FindAll(db *gorm.DB, filter *entity.BloodUnitFilter, page, limit int) ([]entity.BloodUnit, int64, error)
	FindByType(db *gorm.DB, bloodType string) ([]entity.BloodUnit, error)
	StockCounts(db *gorm.DB) ([]entity.BloodStockCount, error)
	Update(db *gorm.DB, unit *entity.BloodUnit) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	CountByStatus(db *gorm.DB, status string) (int64, error)
}

type BloodIssueRepository interface {
	Create(db *gorm.DB, issue *entity.BloodIssue) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.BloodIssue, error)
	FindAll(db *gorm.DB, page, limit int) ([]entity.BloodIssue, int64, error)
	Update(db *gorm.DB, issue *entity.BloodIssue) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
