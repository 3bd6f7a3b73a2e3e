package repository

import (
	"clinic-management-service/internal/domain/entity"
	domainRepo "clinic-management-service/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct {
	crudRepository[entity.Doctor]
}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) FindAll(db *gorm.DB, filter *entity.DoctorFilter, page, limit int) ([]entity.Doctor, int64, error) {
	return listPage[entity.Doctor](db, func(q *gorm.DB) *gorm.DB {
		if filter == nil {
			return q
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			q = q.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
		}
		if filter.Specialization != "" {
			q = q.Where("specialization = ?", filter.Specialization)
		}
		if filter.Department != "" {
			q = q.Where("department = ?", filter.Department)
		}
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
		return q
	}, page, limit, "")
}
