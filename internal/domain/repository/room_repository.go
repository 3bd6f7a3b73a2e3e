package repository

import (
	"clinic-management-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomRepository interface {
	Create(db *gorm.DB, room *entity.Room) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Room, error)
	FindAll(db *gorm.DB, filter *entity.RoomFilter, page, limit int) ([]entity.Room, int64, error)
	Update(db *gorm.DB, room *entity.Room) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	CountByStatus(db *gorm.DB, status string) (int64, error)
}

type RoomAllotmentRepository interface {
	Create(db *gorm.DB, allotment *entity.RoomAllotment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.RoomAllotment, error)
	FindAll(db *gorm.DB, filter *entity.RoomAllotmentFilter, page, limit int) ([]entity.RoomAllotment, int64, error)
	Update(db *gorm.DB, allotment *entity.RoomAllotment) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	CountActiveByRoomID(db *gorm.DB, roomID uuid.UUID) (int64, error)
	CountByPatientID(db *gorm.DB, patientID uuid.UUID) (int64, error)
}
