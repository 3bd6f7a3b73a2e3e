package repository

import (
	"clinic-management-service/internal/domain/entity"
	domainRepo "clinic-management-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type staffRepository struct {
	crudRepository[entity.Staff]
}

func NewStaffRepository() domainRepo.StaffRepository {
	return &staffRepository{}
}

func (r *staffRepository) FindAll(db *gorm.DB, filter *entity.StaffFilter, page, limit int) ([]entity.Staff, int64, error) {
	return listPage[entity.Staff](db, func(q *gorm.DB) *gorm.DB {
		if filter == nil {
			return q
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			q = q.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
		}
		if filter.Designation != "" {
			q = q.Where("designation = ?", filter.Designation)
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

type attendanceRepository struct {
	crudRepository[entity.Attendance]
}

func NewAttendanceRepository() domainRepo.AttendanceRepository {
	return &attendanceRepository{}
}

func (r *attendanceRepository) FindAll(db *gorm.DB, filter *entity.AttendanceFilter, page, limit int) ([]entity.Attendance, int64, error) {
	return listPage[entity.Attendance](db, func(q *gorm.DB) *gorm.DB {
		q = q.Preload("Staff")
		if filter == nil {
			return q
		}
		if filter.StaffID != uuid.Nil {
			q = q.Where("staff_id = ?", filter.StaffID)
		}
		if filter.Date != "" {
			q = q.Where("date = ?", filter.Date)
		}
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
		return q
	}, page, limit, "")
}

func (r *attendanceRepository) CountByStaffID(db *gorm.DB, staffID uuid.UUID) (int64, error) {
	var total int64
	err := db.Model(&entity.Attendance{}).Where("staff_id = ?", staffID).Count(&total).Error
	return total, err
}
