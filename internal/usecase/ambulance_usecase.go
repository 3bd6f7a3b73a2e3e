package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-management-service/internal/delivery/dto"
	"clinic-management-service/internal/domain/entity"
	"clinic-management-service/internal/domain/repository"
	"clinic-management-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAmbulanceNotFound     = errors.New("ambulance not found")
	ErrAmbulanceNumberExists = errors.New("vehicle number already exists")
	ErrAmbulanceInUse        = errors.New("ambulance has emergency calls and cannot be deleted")
	ErrAmbulanceUnavailable  = errors.New("ambulance is not available for dispatch")
	ErrEmergencyCallNotFound = errors.New("emergency call not found")
)

type AmbulanceUsecase interface {
	Create(ctx context.Context, req *dto.CreateAmbulanceRequest) (*dto.AmbulanceResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.AmbulanceResponse, error)
	List(ctx context.Context, filter *entity.AmbulanceFilter, page, limit int) ([]dto.AmbulanceResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAmbulanceRequest) (*dto.AmbulanceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	CreateCall(ctx context.Context, req *dto.CreateEmergencyCallRequest) (*dto.EmergencyCallResponse, error)
	GetCall(ctx context.Context, id uuid.UUID) (*dto.EmergencyCallResponse, error)
	ListCalls(ctx context.Context, filter *entity.EmergencyCallFilter, page, limit int) ([]dto.EmergencyCallResponse, int64, error)
	UpdateCall(ctx context.Context, id uuid.UUID, req *dto.UpdateEmergencyCallRequest) (*dto.EmergencyCallResponse, error)
	DeleteCall(ctx context.Context, id uuid.UUID) error
}

type ambulanceUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	ambulanceRepo   repository.AmbulanceRepository
	callRepo        repository.EmergencyCallRepository
	activityService service.ActivityService
}

func NewAmbulanceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ambulanceRepo repository.AmbulanceRepository,
	callRepo repository.EmergencyCallRepository,
	activityService service.ActivityService,
) AmbulanceUsecase {
	return &ambulanceUsecase{
		db:              db,
		log:             log,
		ambulanceRepo:   ambulanceRepo,
		callRepo:        callRepo,
		activityService: activityService,
	}
}

func (u *ambulanceUsecase) Create(ctx context.Context, req *dto.CreateAmbulanceRequest) (*dto.AmbulanceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	ambulance := &entity.Ambulance{
		VehicleNumber: req.VehicleNumber,
		Model:         req.Model,
		DriverName:    req.DriverName,
		DriverPhone:   req.DriverPhone,
		Status:        req.Status,
	}
	if ambulance.Status == "" {
		ambulance.Status = entity.AmbulanceStatusAvailable
	}

	if err := u.ambulanceRepo.Create(tx, ambulance); err != nil {
		if isDuplicateKeyError(err, "vehicle_number") {
			return nil, ErrAmbulanceNumberExists
		}
		u.log.Warnf("Failed to create ambulance: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogCreate(ctx, tx, actorID(ctx), "ambulance", ambulance.ID.String(), toAmbulanceResponse(ambulance)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toAmbulanceResponse(ambulance), nil
}

func (u *ambulanceUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.AmbulanceResponse, error) {
	ambulance, err := u.ambulanceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find ambulance: %+v", err)
		return nil, err
	}
	if ambulance == nil {
		return nil, ErrAmbulanceNotFound
	}

	return toAmbulanceResponse(ambulance), nil
}

func (u *ambulanceUsecase) List(ctx context.Context, filter *entity.AmbulanceFilter, page, limit int) ([]dto.AmbulanceResponse, int64, error) {
	page, limit = normalizePage(page, limit)

	ambulances, total, err := u.ambulanceRepo.FindAll(u.db.WithContext(ctx), filter, page, limit)
	if err != nil {
		u.log.Warnf("Failed to find ambulances: %+v", err)
		return nil, 0, err
	}

	responses := make([]dto.AmbulanceResponse, 0, len(ambulances))
	for i := range ambulances {
		responses = append(responses, *toAmbulanceResponse(&ambulances[i]))
	}

	return responses, total, nil
}

func (u *ambulanceUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAmbulanceRequest) (*dto.AmbulanceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	ambulance, err := u.ambulanceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find ambulance: %+v", err)
		return nil, err
	}
	if ambulance == nil {
		return nil, ErrAmbulanceNotFound
	}

	oldValue := toAmbulanceResponse(ambulance)

	if req.VehicleNumber != nil {
		ambulance.VehicleNumber = *req.VehicleNumber
	}
	if req.Model != nil {
		ambulance.Model = *req.Model
	}
	if req.DriverName != nil {
		ambulance.DriverName = *req.DriverName
	}
	if req.DriverPhone != nil {
		ambulance.DriverPhone = *req.DriverPhone
	}
	if req.Status != nil {
		ambulance.Status = *req.Status
	}

	if err := u.ambulanceRepo.Update(tx, ambulance); err != nil {
		if isDuplicateKeyError(err, "vehicle_number") {
			return nil, ErrAmbulanceNumberExists
		}
		u.log.Warnf("Failed to update ambulance: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogUpdate(ctx, tx, actorID(ctx), "ambulance", id.String(), oldValue, toAmbulanceResponse(ambulance)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toAmbulanceResponse(ambulance), nil
}

func (u *ambulanceUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	ambulance, err := u.ambulanceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find ambulance: %+v", err)
		return err
	}
	if ambulance == nil {
		return ErrAmbulanceNotFound
	}

	calls, err := u.callRepo.CountByAmbulanceID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count emergency calls: %+v", err)
		return err
	}
	if calls > 0 {
		return ErrAmbulanceInUse
	}

	affectedRows, err := u.ambulanceRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete ambulance: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrAmbulanceNotFound
	}

	if err := u.activityService.LogDelete(ctx, tx, actorID(ctx), "ambulance", id.String(), toAmbulanceResponse(ambulance)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *ambulanceUsecase) CreateCall(ctx context.Context, req *dto.CreateEmergencyCallRequest) (*dto.EmergencyCallResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	call := &entity.EmergencyCall{
		CallerName: req.CallerName,
		Phone:      req.Phone,
		Location:   req.Location,
		Status:     entity.EmergencyCallStatusPending,
		ReceivedAt: time.Now(),
	}

	if err := u.callRepo.Create(tx, call); err != nil {
		u.log.Warnf("Failed to create emergency call: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogCreate(ctx, tx, actorID(ctx), "emergency_call", call.ID.String(), toEmergencyCallResponse(call)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toEmergencyCallResponse(call), nil
}

func (u *ambulanceUsecase) GetCall(ctx context.Context, id uuid.UUID) (*dto.EmergencyCallResponse, error) {
	call, err := u.callRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find emergency call: %+v", err)
		return nil, err
	}
	if call == nil {
		return nil, ErrEmergencyCallNotFound
	}

	return toEmergencyCallResponse(call), nil
}

func (u *ambulanceUsecase) ListCalls(ctx context.Context, filter *entity.EmergencyCallFilter, page, limit int) ([]dto.EmergencyCallResponse, int64, error) {
	page, limit = normalizePage(page, limit)

	calls, total, err := u.callRepo.FindAll(u.db.WithContext(ctx), filter, page, limit)
	if err != nil {
		u.log.Warnf("Failed to find emergency calls: %+v", err)
		return nil, 0, err
	}

	responses := make([]dto.EmergencyCallResponse, 0, len(calls))
	for i := range calls {
		responses = append(responses, *toEmergencyCallResponse(&calls[i]))
	}

	return responses, total, nil
}

func (u *ambulanceUsecase) UpdateCall(ctx context.Context, id uuid.UUID, req *dto.UpdateEmergencyCallRequest) (*dto.EmergencyCallResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	call, err := u.callRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find emergency call: %+v", err)
		return nil, err
	}
	if call == nil {
		return nil, ErrEmergencyCallNotFound
	}

	oldValue := toEmergencyCallResponse(call)

	if req.CallerName != nil {
		call.CallerName = *req.CallerName
	}
	if req.Phone != nil {
		call.Phone = *req.Phone
	}
	if req.Location != nil {
		call.Location = *req.Location
	}

	// Assigning an ambulance dispatches the call and takes the vehicle off
	// the available pool
	if req.AmbulanceID != nil && (call.AmbulanceID == nil || *call.AmbulanceID != *req.AmbulanceID) {
		ambulance, err := u.ambulanceRepo.FindByID(tx, *req.AmbulanceID)
		if err != nil {
			u.log.Warnf("Failed to find ambulance: %+v", err)
			return nil, err
		}
		if ambulance == nil {
			return nil, ErrAmbulanceNotFound
		}
		if ambulance.Status != entity.AmbulanceStatusAvailable {
			return nil, ErrAmbulanceUnavailable
		}

		ambulance.Status = entity.AmbulanceStatusOnCall
		if err := u.ambulanceRepo.Update(tx, ambulance); err != nil {
			u.log.Warnf("Failed to update ambulance: %+v", err)
			return nil, err
		}

		call.AmbulanceID = req.AmbulanceID
		call.Ambulance = ambulance
		call.Status = entity.EmergencyCallStatusDispatched
	}

	if req.Status != nil {
		call.Status = *req.Status
		// Closing the call releases the assigned ambulance
		if (call.Status == entity.EmergencyCallStatusCompleted || call.Status == entity.EmergencyCallStatusCancelled) && call.AmbulanceID != nil {
			ambulance, err := u.ambulanceRepo.FindByID(tx, *call.AmbulanceID)
			if err != nil {
				u.log.Warnf("Failed to find ambulance: %+v", err)
				return nil, err
			}
			if ambulance != nil && ambulance.Status == entity.AmbulanceStatusOnCall {
				ambulance.Status = entity.AmbulanceStatusAvailable
				if err := u.ambulanceRepo.Update(tx, ambulance); err != nil {
					u.log.Warnf("Failed to update ambulance: %+v", err)
					return nil, err
				}
				call.Ambulance = ambulance
			}
		}
	}

	if err := u.callRepo.Update(tx, call); err != nil {
		u.log.Warnf("Failed to update emergency call: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogUpdate(ctx, tx, actorID(ctx), "emergency_call", id.String(), oldValue, toEmergencyCallResponse(call)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toEmergencyCallResponse(call), nil
}

func (u *ambulanceUsecase) DeleteCall(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	call, err := u.callRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find emergency call: %+v", err)
		return err
	}
	if call == nil {
		return ErrEmergencyCallNotFound
	}

	affectedRows, err := u.callRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete emergency call: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrEmergencyCallNotFound
	}

	if err := u.activityService.LogDelete(ctx, tx, actorID(ctx), "emergency_call", id.String(), toEmergencyCallResponse(call)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func toAmbulanceResponse(ambulance *entity.Ambulance) *dto.AmbulanceResponse {
	return &dto.AmbulanceResponse{
		ID:            ambulance.ID,
		VehicleNumber: ambulance.VehicleNumber,
		Model:         ambulance.Model,
		DriverName:    ambulance.DriverName,
		DriverPhone:   ambulance.DriverPhone,
		Status:        ambulance.Status,
		CreatedAt:     ambulance.CreatedAt,
		UpdatedAt:     ambulance.UpdatedAt,
	}
}

func toEmergencyCallResponse(call *entity.EmergencyCall) *dto.EmergencyCallResponse {
	resp := &dto.EmergencyCallResponse{
		ID:          call.ID,
		CallerName:  call.CallerName,
		Phone:       call.Phone,
		Location:    call.Location,
		AmbulanceID: call.AmbulanceID,
		Status:      call.Status,
		ReceivedAt:  call.ReceivedAt,
		CreatedAt:   call.CreatedAt,
		UpdatedAt:   call.UpdatedAt,
	}
	if call.Ambulance != nil {
		resp.VehicleNumber = call.Ambulance.VehicleNumber
	}
	return resp
}
