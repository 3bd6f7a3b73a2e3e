package usecase

import (
	"context"

	"clinic-management-service/internal/delivery/dto"
	"clinic-management-service/internal/domain/entity"
	"clinic-management-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ActivityLogUsecase interface {
	List(ctx context.Context, filter *entity.ActivityLogFilter, page, limit int) ([]dto.ActivityLogResponse, int64, error)
}

type activityLogUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	activityLogRepo repository.ActivityLogRepository
}

func NewActivityLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	activityLogRepo repository.ActivityLogRepository,
) ActivityLogUsecase {
	return &activityLogUsecase{
		db:              db,
		log:             log,
		activityLogRepo: activityLogRepo,
	}
}

func (u *activityLogUsecase) List(ctx context.Context, filter *entity.ActivityLogFilter, page, limit int) ([]dto.ActivityLogResponse, int64, error) {
	page, limit = normalizePage(page, limit)

	entries, total, err := u.activityLogRepo.FindAll(u.db.WithContext(ctx), filter, page, limit)
	if err != nil {
		u.log.Warnf("Failed to find activity logs: %+v", err)
		return nil, 0, err
	}

	responses := make([]dto.ActivityLogResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, *toActivityLogResponse(&entries[i]))
	}

	return responses, total, nil
}

func toActivityLogResponse(entry *entity.ActivityLog) *dto.ActivityLogResponse {
	resp := &dto.ActivityLogResponse{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Action:    entry.Action,
		Metadata:  map[string]interface{}(entry.Metadata),
		CreatedAt: entry.CreatedAt,
	}
	if entry.User != nil {
		resp.UserName = entry.User.FullName
	}
	return resp
}
