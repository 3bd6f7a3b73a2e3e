package repository

import (
	"clinic-management-service/internal/domain/entity"
	domainRepo "clinic-management-service/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct {
	crudRepository[entity.Patient]
}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) FindAll(db *gorm.DB, filter *entity.PatientFilter, page, limit int) ([]entity.Patient, int64, error) {
	return listPage[entity.Patient](db, func(q *gorm.DB) *gorm.DB {
		if filter == nil {
			return q
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			q = q.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern)
		}
		if filter.Gender != "" {
			q = q.Where("gender = ?", filter.Gender)
		}
		if filter.BloodGroup != "" {
			q = q.Where("blood_group = ?", filter.BloodGroup)
		}
		return q
	}, page, limit, "")
}
