package repository

import (
	"clinic-management-service/internal/domain/entity"
	domainRepo "clinic-management-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type prescriptionTemplateRepository struct {
	crudRepository[entity.PrescriptionTemplate]
}

func NewPrescriptionTemplateRepository() domainRepo.PrescriptionTemplateRepository {
	return &prescriptionTemplateRepository{}
}

func (r *prescriptionTemplateRepository) FindAll(db *gorm.DB, filter *entity.PrescriptionTemplateFilter, page, limit int) ([]entity.PrescriptionTemplate, int64, error) {
	return listPage[entity.PrescriptionTemplate](db, func(q *gorm.DB) *gorm.DB {
		q = q.Preload("Doctor")
		if filter == nil {
			return q
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			q = q.Where("name ILIKE ? OR diagnosis ILIKE ?", pattern, pattern)
		}
		if filter.DoctorID != uuid.Nil {
			q = q.Where("doctor_id = ?", filter.DoctorID)
		}
		return q
	}, page, limit, "")
}
