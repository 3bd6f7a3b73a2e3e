package repository

import (
	"errors"

	"clinic-management-service/internal/domain/entity"
	domainRepo "clinic-management-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bloodDonorRepository struct {
	crudRepository[entity.BloodDonor]
}

func NewBloodDonorRepository() domainRepo.BloodDonorRepository {
	return &bloodDonorRepository{}
}

func (r *bloodDonorRepository) FindAll(db *gorm.DB, filter *entity.BloodDonorFilter, page, limit int) ([]entity.BloodDonor, int64, error) {
	return listPage[entity.BloodDonor](db, func(q *gorm.DB) *gorm.DB {
		if filter == nil {
			return q
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			q = q.Where("name ILIKE ? OR phone ILIKE ?", pattern, pattern)
		}
		if filter.BloodType != "" {
			q = q.Where("blood_type = ?", filter.BloodType)
		}
		return q
	}, page, limit, "")
}

type bloodUnitRepository struct {
	crudRepository[entity.BloodUnit]
}

func NewBloodUnitRepository() domainRepo.BloodUnitRepository {
	return &bloodUnitRepository{}
}

func (r *bloodUnitRepository) FindAll(db *gorm.DB, filter *entity.BloodUnitFilter, page, limit int) ([]entity.BloodUnit, int64, error) {
	return listPage[entity.BloodUnit](db, func(q *gorm.DB) *gorm.DB {
		q = q.Preload("Donor")
		if filter == nil {
			return q
		}
		if filter.BloodType != "" {
			q = q.Where("blood_type = ?", filter.BloodType)
		}
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
		return q
	}, page, limit, "")
}

func (r *bloodUnitRepository) FindByType(db *gorm.DB, bloodType string) ([]entity.BloodUnit, error) {
	units := make([]entity.BloodUnit, 0)
	err := db.Preload("Donor").
		Where("blood_type = ?", bloodType).
		Order("created_at DESC").
		Find(&units).Error
	if err != nil {
		return nil, err
	}
	return units, nil
}

func (r *bloodUnitRepository) StockCounts(db *gorm.DB) ([]entity.BloodStockCount, error) {
	counts := make([]entity.BloodStockCount, 0)
	err := db.Model(&entity.BloodUnit{}).
		Select("blood_type, COUNT(*) AS total").
		Where("status = ?", entity.BloodUnitStatusAvailable).
		Group("blood_type").
		Order("blood_type").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *bloodUnitRepository) CountByStatus(db *gorm.DB, status string) (int64, error) {
	var total int64
	err := db.Model(&entity.BloodUnit{}).Where("status = ?", status).Count(&total).Error
	return total, err
}

type bloodIssueRepository struct {
	crudRepository[entity.BloodIssue]
}

func NewBloodIssueRepository() domainRepo.BloodIssueRepository {
	return &bloodIssueRepository{}
}

func (r *bloodIssueRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.BloodIssue, error) {
	var issue entity.BloodIssue
	err := db.Preload("Unit").Preload("Patient").Where("id = ?", id).First(&issue).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &issue, nil
}

func (r *bloodIssueRepository) FindAll(db *gorm.DB, page, limit int) ([]entity.BloodIssue, int64, error) {
	return listPage[entity.BloodIssue](db, func(q *gorm.DB) *gorm.DB {
		return q.Preload("Unit").Preload("Patient")
	}, page, limit, "")
}
