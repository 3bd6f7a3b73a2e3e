package service

import (
	"context"

	"clinic-management-service/internal/domain/entity"
	"clinic-management-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ActivityService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, entityName string, entityID string, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, entityName string, entityID string, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, entityName string, entityID string, oldValue interface{}) error
	LogAction(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error
}

type activityService struct {
	log          *logrus.Logger
	activityRepo repository.ActivityLogRepository
}

func NewActivityService(log *logrus.Logger, activityRepo repository.ActivityLogRepository) ActivityService {
	return &activityService{
		log:          log,
		activityRepo: activityRepo,
	}
}

// LogCreate logs a create action
func (s *activityService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, entityName string, entityID string, newValue interface{}) error {
	return s.write(tx, userID, entityName+"."+entity.ActionCreate, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogUpdate logs an update action with old and new values
func (s *activityService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, entityName string, entityID string, oldValue, newValue interface{}) error {
	return s.write(tx, userID, entityName+"."+entity.ActionUpdate, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

// LogDelete logs a delete action with old value
func (s *activityService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, entityName string, entityID string, oldValue interface{}) error {
	return s.write(tx, userID, entityName+"."+entity.ActionDelete, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	})
}

// LogAction logs a free-form action such as login or logout
func (s *activityService) LogAction(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
	return s.write(tx, userID, action, metadata)
}

func (s *activityService) write(tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
	activityLog := &entity.ActivityLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.activityRepo.Create(tx, activityLog); err != nil {
		s.log.Warnf("Failed to create activity log: %+v", err)
		return err
	}

	return nil
}
