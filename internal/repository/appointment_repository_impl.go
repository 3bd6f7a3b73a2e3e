package repository

import (
	"errors"

	"clinic-management-service/internal/domain/entity"
	domainRepo "clinic-management-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	crudRepository[entity.Appointment]
}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient").Preload("Doctor").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter, page, limit int) ([]entity.Appointment, int64, error) {
	return listPage[entity.Appointment](db, func(q *gorm.DB) *gorm.DB {
		q = q.Preload("Patient").Preload("Doctor")
		if filter == nil {
			return q
		}
		if filter.Search != "" {
			q = q.Where("reason ILIKE ?", "%"+filter.Search+"%")
		}
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
		if filter.PatientID != uuid.Nil {
			q = q.Where("patient_id = ?", filter.PatientID)
		}
		if filter.DoctorID != uuid.Nil {
			q = q.Where("doctor_id = ?", filter.DoctorID)
		}
		if filter.Date != "" {
			q = q.Where("date = ?", filter.Date)
		}
		return q
	}, page, limit, "")
}

func (r *appointmentRepository) FindRecent(db *gorm.DB, limit int) ([]entity.Appointment, error) {
	appointments := make([]entity.Appointment, 0, limit)
	err := db.Preload("Patient").Preload("Doctor").
		Order("created_at DESC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountByDate(db *gorm.DB, date string) (int64, error) {
	var total int64
	err := db.Model(&entity.Appointment{}).Where("date = ?", date).Count(&total).Error
	return total, err
}

func (r *appointmentRepository) CountByPatientID(db *gorm.DB, patientID uuid.UUID) (int64, error) {
	var total int64
	err := db.Model(&entity.Appointment{}).Where("patient_id = ?", patientID).Count(&total).Error
	return total, err
}

func (r *appointmentRepository) CountByDoctorID(db *gorm.DB, doctorID uuid.UUID) (int64, error) {
	var total int64
	err := db.Model(&entity.Appointment{}).Where("doctor_id = ?", doctorID).Count(&total).Error
	return total, err
}
