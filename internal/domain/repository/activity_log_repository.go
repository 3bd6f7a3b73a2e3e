package repository

import (
	"clinic-management-service/internal/domain/entity"

	"gorm.io/gorm"
)

type ActivityLogRepository interface {
	Create(db *gorm.DB, log *entity.ActivityLog) error
	FindAll(db *gorm.DB, filter *entity.ActivityLogFilter, page, limit int) ([]entity.ActivityLog, int64, error)
}
