package repository

import (
	"clinic-management-service/internal/domain/entity"
	domainRepo "clinic-management-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type activityLogRepository struct{}

func NewActivityLogRepository() domainRepo.ActivityLogRepository {
	return &activityLogRepository{}
}

func (r *activityLogRepository) Create(db *gorm.DB, log *entity.ActivityLog) error {
	return db.Create(log).Error
}

func (r *activityLogRepository) FindAll(db *gorm.DB, filter *entity.ActivityLogFilter, page, limit int) ([]entity.ActivityLog, int64, error) {
	return listPage[entity.ActivityLog](db, func(q *gorm.DB) *gorm.DB {
		q = q.Preload("User")
		if filter == nil {
			return q
		}
		if filter.Action != "" {
			q = q.Where("action = ?", filter.Action)
		}
		if filter.UserID != uuid.Nil {
			q = q.Where("user_id = ?", filter.UserID)
		}
		return q
	}, page, limit, "")
}
