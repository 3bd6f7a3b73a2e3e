package repository

import (
	"clinic-management-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(db *gorm.DB, staff *entity.Staff) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Staff, error)
	FindAll(db *gorm.DB, filter *entity.StaffFilter, page, limit int) ([]entity.Staff, int64, error)
	Update(db *gorm.DB, staff *entity.Staff) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	Count(db *gorm.DB) (int64, error)
}

type AttendanceRepository interface {
	Create(db *gorm.DB, attendance *entity.Attendance) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Attendance, error)
	FindAll(db *gorm.DB, filter *entity.AttendanceFilter, page, limit int) ([]entity.Attendance, int64, error)
	Update(db *gorm.DB, attendance *entity.Attendance) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	CountByStaffID(db *gorm.DB, staffID uuid.UUID) (int64, error)
}
