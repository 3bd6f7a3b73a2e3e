package repository

import (
	"errors"

	"clinic-management-service/internal/domain/entity"
	domainRepo "clinic-management-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type roomRepository struct {
	crudRepository[entity.Room]
}

func NewRoomRepository() domainRepo.RoomRepository {
	return &roomRepository{}
}

func (r *roomRepository) FindAll(db *gorm.DB, filter *entity.RoomFilter, page, limit int) ([]entity.Room, int64, error) {
	return listPage[entity.Room](db, func(q *gorm.DB) *gorm.DB {
		if filter == nil {
			return q
		}
		if filter.Search != "" {
			q = q.Where("number ILIKE ?", "%"+filter.Search+"%")
		}
		if filter.Type != "" {
			q = q.Where("type = ?", filter.Type)
		}
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
		return q
	}, page, limit, "")
}

func (r *roomRepository) CountByStatus(db *gorm.DB, status string) (int64, error) {
	var total int64
	err := db.Model(&entity.Room{}).Where("status = ?", status).Count(&total).Error
	return total, err
}

type roomAllotmentRepository struct {
	crudRepository[entity.RoomAllotment]
}

func NewRoomAllotmentRepository() domainRepo.RoomAllotmentRepository {
	return &roomAllotmentRepository{}
}

func (r *roomAllotmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.RoomAllotment, error) {
	var allotment entity.RoomAllotment
	err := db.Preload("Room").Preload("Patient").Where("id = ?", id).First(&allotment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &allotment, nil
}

func (r *roomAllotmentRepository) FindAll(db *gorm.DB, filter *entity.RoomAllotmentFilter, page, limit int) ([]entity.RoomAllotment, int64, error) {
	return listPage[entity.RoomAllotment](db, func(q *gorm.DB) *gorm.DB {
		q = q.Preload("Room").Preload("Patient")
		if filter == nil {
			return q
		}
		if filter.RoomID != uuid.Nil {
			q = q.Where("room_id = ?", filter.RoomID)
		}
		if filter.PatientID != uuid.Nil {
			q = q.Where("patient_id = ?", filter.PatientID)
		}
		if filter.Active != nil {
			if *filter.Active {
				q = q.Where("discharged_at IS NULL")
			} else {
				q = q.Where("discharged_at IS NOT NULL")
			}
		}
		return q
	}, page, limit, "")
}

func (r *roomAllotmentRepository) CountActiveByRoomID(db *gorm.DB, roomID uuid.UUID) (int64, error) {
	var total int64
	err := db.Model(&entity.RoomAllotment{}).
		Where("room_id = ? AND discharged_at IS NULL", roomID).
		Count(&total).Error
	return total, err
}

func (r *roomAllotmentRepository) CountByPatientID(db *gorm.DB, patientID uuid.UUID) (int64, error) {
	var total int64
	err := db.Model(&entity.RoomAllotment{}).Where("patient_id = ?", patientID).Count(&total).Error
	return total, err
}
