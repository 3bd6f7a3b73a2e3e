package repository

import (
	"clinic-management-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter, page, limit int) ([]entity.Appointment, int64, error)
	FindRecent(db *gorm.DB, limit int) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	Count(db *gorm.DB) (int64, error)
	CountByDate(db *gorm.DB, date string) (int64, error)
	CountByPatientID(db *gorm.DB, patientID uuid.UUID) (int64, error)
	CountByDoctorID(db *gorm.DB, doctorID uuid.UUID) (int64, error)
}
