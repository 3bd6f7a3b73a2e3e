package repository

import (
	"clinic-management-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionTemplateRepository interface {
	Create(db *gorm.DB, template *entity.PrescriptionTemplate) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.PrescriptionTemplate, error)
	FindAll(db *gorm.DB, filter *entity.PrescriptionTemplateFilter, page, limit int) ([]entity.PrescriptionTemplate, int64, error)
	Update(db *gorm.DB, template *entity.PrescriptionTemplate) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
