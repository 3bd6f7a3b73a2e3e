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
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomNumberExists    = errors.New("room number already exists")
	ErrRoomInUse           = errors.New("room has allotments and cannot be deleted")
	ErrRoomUnavailable     = errors.New("room is not available")
	ErrAllotmentNotFound   = errors.New("room allotment not found")
	ErrAllotmentDischarged = errors.New("room allotment has already been discharged")
)

type RoomUsecase interface {
	Create(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.RoomResponse, error)
	List(ctx context.Context, filter *entity.RoomFilter, page, limit int) ([]dto.RoomResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Allot(ctx context.Context, req *dto.CreateRoomAllotmentRequest) (*dto.RoomAllotmentResponse, error)
	GetAllotment(ctx context.Context, id uuid.UUID) (*dto.RoomAllotmentResponse, error)
	ListAllotments(ctx context.Context, filter *entity.RoomAllotmentFilter, page, limit int) ([]dto.RoomAllotmentResponse, int64, error)
	UpdateAllotment(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomAllotmentRequest) (*dto.RoomAllotmentResponse, error)
	DeleteAllotment(ctx context.Context, id uuid.UUID) error
}

type roomUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	roomRepo        repository.RoomRepository
	allotmentRepo   repository.RoomAllotmentRepository
	patientRepo     repository.PatientRepository
	activityService service.ActivityService
}

func NewRoomUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roomRepo repository.RoomRepository,
	allotmentRepo repository.RoomAllotmentRepository,
	patientRepo repository.PatientRepository,
	activityService service.ActivityService,
) RoomUsecase {
	return &roomUsecase{
		db:              db,
		log:             log,
		roomRepo:        roomRepo,
		allotmentRepo:   allotmentRepo,
		patientRepo:     patientRepo,
		activityService: activityService,
	}
}

func (u *roomUsecase) Create(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room := &entity.Room{
		Number:       req.Number,
		Type:         req.Type,
		Floor:        req.Floor,
		BedCount:     req.BedCount,
		ChargePerDay: req.ChargePerDay,
		Status:       req.Status,
	}
	if room.BedCount == 0 {
		room.BedCount = 1
	}
	if room.Status == "" {
		room.Status = entity.RoomStatusAvailable
	}

	if err := u.roomRepo.Create(tx, room); err != nil {
		if isDuplicateKeyError(err, "number") {
			return nil, ErrRoomNumberExists
		}
		u.log.Warnf("Failed to create room: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogCreate(ctx, tx, actorID(ctx), "room", room.ID.String(), toRoomResponse(room)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toRoomResponse(room), nil
}

func (u *roomUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.RoomResponse, error) {
	room, err := u.roomRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find room: %+v", err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	return toRoomResponse(room), nil
}

func (u *roomUsecase) List(ctx context.Context, filter *entity.RoomFilter, page, limit int) ([]dto.RoomResponse, int64, error) {
	page, limit = normalizePage(page, limit)

	rooms, total, err := u.roomRepo.FindAll(u.db.WithContext(ctx), filter, page, limit)
	if err != nil {
		u.log.Warnf("Failed to find rooms: %+v", err)
		return nil, 0, err
	}

	responses := make([]dto.RoomResponse, 0, len(rooms))
	for i := range rooms {
		responses = append(responses, *toRoomResponse(&rooms[i]))
	}

	return responses, total, nil
}

func (u *roomUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room, err := u.roomRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find room: %+v", err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	oldValue := toRoomResponse(room)

	if req.Number != nil {
		room.Number = *req.Number
	}
	if req.Type != nil {
		room.Type = *req.Type
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.BedCount != nil {
		room.BedCount = *req.BedCount
	}
	if req.ChargePerDay != nil {
		room.ChargePerDay = *req.ChargePerDay
	}
	if req.Status != nil {
		room.Status = *req.Status
	}

	if err := u.roomRepo.Update(tx, room); err != nil {
		if isDuplicateKeyError(err, "number") {
			return nil, ErrRoomNumberExists
		}
		u.log.Warnf("Failed to update room: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogUpdate(ctx, tx, actorID(ctx), "room", id.String(), oldValue, toRoomResponse(room)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toRoomResponse(room), nil
}

func (u *roomUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room, err := u.roomRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find room: %+v", err)
		return err
	}
	if room == nil {
		return ErrRoomNotFound
	}

	activeAllotments, err := u.allotmentRepo.CountActiveByRoomID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count room allotments: %+v", err)
		return err
	}
	if activeAllotments > 0 {
		return ErrRoomInUse
	}

	affectedRows, err := u.roomRepo.Delete(tx, id)
	if err != nil {
		// Historical allotments keep RESTRICT references
		if isForeignKeyViolation(err) {
			return ErrRoomInUse
		}
		u.log.Warnf("Failed to delete room: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrRoomNotFound
	}

	if err := u.activityService.LogDelete(ctx, tx, actorID(ctx), "room", id.String(), toRoomResponse(room)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *roomUsecase) Allot(ctx context.Context, req *dto.CreateRoomAllotmentRequest) (*dto.RoomAllotmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	room, err := u.roomRepo.FindByID(tx, req.RoomID)
	if err != nil {
		u.log.Warnf("Failed to find room: %+v", err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if room.Status != entity.RoomStatusAvailable {
		return nil, ErrRoomUnavailable
	}

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	room.Status = entity.RoomStatusOccupied
	if err := u.roomRepo.Update(tx, room); err != nil {
		u.log.Warnf("Failed to update room: %+v", err)
		return nil, err
	}

	allotment := &entity.RoomAllotment{
		RoomID:     req.RoomID,
		PatientID:  req.PatientID,
		AllottedAt: time.Now(),
		Notes:      req.Notes,
	}

	if err := u.allotmentRepo.Create(tx, allotment); err != nil {
		u.log.Warnf("Failed to create room allotment: %+v", err)
		return nil, err
	}
	allotment.Room = room
	allotment.Patient = patient

	if err := u.activityService.LogCreate(ctx, tx, actorID(ctx), "room_allotment", allotment.ID.String(), toRoomAllotmentResponse(allotment)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toRoomAllotmentResponse(allotment), nil
}

func (u *roomUsecase) GetAllotment(ctx context.Context, id uuid.UUID) (*dto.RoomAllotmentResponse, error) {
	allotment, err := u.allotmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find room allotment: %+v", err)
		return nil, err
	}
	if allotment == nil {
		return nil, ErrAllotmentNotFound
	}

	return toRoomAllotmentResponse(allotment), nil
}

func (u *roomUsecase) ListAllotments(ctx context.Context, filter *entity.RoomAllotmentFilter, page, limit int) ([]dto.RoomAllotmentResponse, int64, error) {
	page, limit = normalizePage(page, limit)

	allotments, total, err := u.allotmentRepo.FindAll(u.db.WithContext(ctx), filter, page, limit)
	if err != nil {
		u.log.Warnf("Failed to find room allotments: %+v", err)
		return nil, 0, err
	}

	responses := make([]dto.RoomAllotmentResponse, 0, len(allotments))
	for i := range allotments {
		responses = append(responses, *toRoomAllotmentResponse(&allotments[i]))
	}

	return responses, total, nil
}

func (u *roomUsecase) UpdateAllotment(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomAllotmentRequest) (*dto.RoomAllotmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	allotment, err := u.allotmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find room allotment: %+v", err)
		return nil, err
	}
	if allotment == nil {
		return nil, ErrAllotmentNotFound
	}

	oldValue := toRoomAllotmentResponse(allotment)

	if req.Notes != nil {
		allotment.Notes = *req.Notes
	}

	// Discharging frees the room for the next patient
	if req.Discharge != nil && *req.Discharge {
		if allotment.DischargedAt != nil {
			return nil, ErrAllotmentDischarged
		}
		now := time.Now()
		allotment.DischargedAt = &now

		room, err := u.roomRepo.FindByID(tx, allotment.RoomID)
		if err != nil {
			u.log.Warnf("Failed to find room: %+v", err)
			return nil, err
		}
		if room != nil && room.Status == entity.RoomStatusOccupied {
			room.Status = entity.RoomStatusAvailable
			if err := u.roomRepo.Update(tx, room); err != nil {
				u.log.Warnf("Failed to update room: %+v", err)
				return nil, err
			}
			allotment.Room = room
		}
	}

	if err := u.allotmentRepo.Update(tx, allotment); err != nil {
		u.log.Warnf("Failed to update room allotment: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogUpdate(ctx, tx, actorID(ctx), "room_allotment", id.String(), oldValue, toRoomAllotmentResponse(allotment)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toRoomAllotmentResponse(allotment), nil
}

func (u *roomUsecase) DeleteAllotment(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	allotment, err := u.allotmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find room allotment: %+v", err)
		return err
	}
	if allotment == nil {
		return ErrAllotmentNotFound
	}

	// An active allotment still holds the room
	if allotment.DischargedAt == nil {
		room, err := u.roomRepo.FindByID(tx, allotment.RoomID)
		if err != nil {
			u.log.Warnf("Failed to find room: %+v", err)
			return err
		}
		if room != nil && room.Status == entity.RoomStatusOccupied {
			room.Status = entity.RoomStatusAvailable
			if err := u.roomRepo.Update(tx, room); err != nil {
				u.log.Warnf("Failed to update room: %+v", err)
				return err
			}
		}
	}

	affectedRows, err := u.allotmentRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete room allotment: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrAllotmentNotFound
	}

	if err := u.activityService.LogDelete(ctx, tx, actorID(ctx), "room_allotment", id.String(), toRoomAllotmentResponse(allotment)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func toRoomResponse(room *entity.Room) *dto.RoomResponse {
	return &dto.RoomResponse{
		ID:           room.ID,
		Number:       room.Number,
		Type:         room.Type,
		Floor:        room.Floor,
		BedCount:     room.BedCount,
		ChargePerDay: room.ChargePerDay,
		Status:       room.Status,
		CreatedAt:    room.CreatedAt,
		UpdatedAt:    room.UpdatedAt,
	}
}

func toRoomAllotmentResponse(allotment *entity.RoomAllotment) *dto.RoomAllotmentResponse {
	resp := &dto.RoomAllotmentResponse{
		ID:           allotment.ID,
		RoomID:       allotment.RoomID,
		PatientID:    allotment.PatientID,
		AllottedAt:   allotment.AllottedAt,
		DischargedAt: allotment.DischargedAt,
		Notes:        allotment.Notes,
		CreatedAt:    allotment.CreatedAt,
		UpdatedAt:    allotment.UpdatedAt,
	}
	if allotment.Room != nil {
		resp.RoomNumber = allotment.Room.Number
	}
	if allotment.Patient != nil {
		resp.PatientName = allotment.Patient.Name
	}
	return resp
}
