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
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrStaffEmailExists   = errors.New("email already exists")
	ErrStaffInUse         = errors.New("staff member has attendance records and cannot be deleted")
	ErrAttendanceNotFound = errors.New("attendance entry not found")
	ErrAttendanceExists   = errors.New("attendance entry already exists for this date")
	ErrInvalidTimestamp   = errors.New("invalid timestamp format, use RFC 3339")
)

type StaffUsecase interface {
	Create(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.StaffResponse, error)
	List(ctx context.Context, filter *entity.StaffFilter, page, limit int) ([]dto.StaffResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	CreateAttendance(ctx context.Context, req *dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error)
	GetAttendance(ctx context.Context, id uuid.UUID) (*dto.AttendanceResponse, error)
	ListAttendance(ctx context.Context, filter *entity.AttendanceFilter, page, limit int) ([]dto.AttendanceResponse, int64, error)
	UpdateAttendance(ctx context.Context, id uuid.UUID, req *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error)
	DeleteAttendance(ctx context.Context, id uuid.UUID) error
}

type staffUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	staffRepo       repository.StaffRepository
	attendanceRepo  repository.AttendanceRepository
	activityService service.ActivityService
}

func NewStaffUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	staffRepo repository.StaffRepository,
	attendanceRepo repository.AttendanceRepository,
	activityService service.ActivityService,
) StaffUsecase {
	return &staffUsecase{
		db:              db,
		log:             log,
		staffRepo:       staffRepo,
		attendanceRepo:  attendanceRepo,
		activityService: activityService,
	}
}

func parseTimestampPtr(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, ErrInvalidTimestamp
	}
	return &t, nil
}

func (u *staffUsecase) Create(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	joinedAt, err := parseDatePtr(req.JoinedAt)
	if err != nil {
		return nil, err
	}

	staff := &entity.Staff{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Designation: req.Designation,
		Department:  req.Department,
		Salary:      req.Salary,
		JoinedAt:    joinedAt,
		Status:      req.Status,
	}
	if staff.Status == "" {
		staff.Status = entity.StaffStatusActive
	}

	if err := u.staffRepo.Create(tx, staff); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrStaffEmailExists
		}
		u.log.Warnf("Failed to create staff: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogCreate(ctx, tx, actorID(ctx), "staff", staff.ID.String(), toStaffResponse(staff)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toStaffResponse(staff), nil
}

func (u *staffUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.StaffResponse, error) {
	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	return toStaffResponse(staff), nil
}

func (u *staffUsecase) List(ctx context.Context, filter *entity.StaffFilter, page, limit int) ([]dto.StaffResponse, int64, error) {
	page, limit = normalizePage(page, limit)

	members, total, err := u.staffRepo.FindAll(u.db.WithContext(ctx), filter, page, limit)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return nil, 0, err
	}

	responses := make([]dto.StaffResponse, 0, len(members))
	for i := range members {
		responses = append(responses, *toStaffResponse(&members[i]))
	}

	return responses, total, nil
}

func (u *staffUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	staff, err := u.staffRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	oldValue := toStaffResponse(staff)

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.Designation != nil {
		staff.Designation = *req.Designation
	}
	if req.Department != nil {
		staff.Department = *req.Department
	}
	if req.Salary != nil {
		staff.Salary = *req.Salary
	}
	if req.JoinedAt != nil {
		joinedAt, err := parseDate(*req.JoinedAt)
		if err != nil {
			return nil, err
		}
		staff.JoinedAt = &joinedAt
	}
	if req.Status != nil {
		staff.Status = *req.Status
	}

	if err := u.staffRepo.Update(tx, staff); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrStaffEmailExists
		}
		u.log.Warnf("Failed to update staff: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogUpdate(ctx, tx, actorID(ctx), "staff", id.String(), oldValue, toStaffResponse(staff)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toStaffResponse(staff), nil
}

func (u *staffUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	staff, err := u.staffRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return err
	}
	if staff == nil {
		return ErrStaffNotFound
	}

	entries, err := u.attendanceRepo.CountByStaffID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count attendance: %+v", err)
		return err
	}
	if entries > 0 {
		return ErrStaffInUse
	}

	affectedRows, err := u.staffRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete staff: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrStaffNotFound
	}

	if err := u.activityService.LogDelete(ctx, tx, actorID(ctx), "staff", id.String(), toStaffResponse(staff)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *staffUsecase) CreateAttendance(ctx context.Context, req *dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	staff, err := u.staffRepo.FindByID(tx, req.StaffID)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	checkIn, err := parseTimestampPtr(req.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseTimestampPtr(req.CheckOut)
	if err != nil {
		return nil, err
	}

	attendance := &entity.Attendance{
		StaffID:  req.StaffID,
		Date:     date,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   req.Status,
	}
	if attendance.Status == "" {
		attendance.Status = entity.AttendanceStatusPresent
	}

	if err := u.attendanceRepo.Create(tx, attendance); err != nil {
		// One entry per staff member per day
		if isDuplicateKeyError(err, "staff_id") {
			return nil, ErrAttendanceExists
		}
		u.log.Warnf("Failed to create attendance: %+v", err)
		return nil, err
	}
	attendance.Staff = staff

	if err := u.activityService.LogCreate(ctx, tx, actorID(ctx), "attendance", attendance.ID.String(), toAttendanceResponse(attendance)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toAttendanceResponse(attendance), nil
}

func (u *staffUsecase) GetAttendance(ctx context.Context, id uuid.UUID) (*dto.AttendanceResponse, error) {
	attendance, err := u.attendanceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find attendance: %+v", err)
		return nil, err
	}
	if attendance == nil {
		return nil, ErrAttendanceNotFound
	}

	return toAttendanceResponse(attendance), nil
}

func (u *staffUsecase) ListAttendance(ctx context.Context, filter *entity.AttendanceFilter, page, limit int) ([]dto.AttendanceResponse, int64, error) {
	page, limit = normalizePage(page, limit)

	entries, total, err := u.attendanceRepo.FindAll(u.db.WithContext(ctx), filter, page, limit)
	if err != nil {
		u.log.Warnf("Failed to find attendance: %+v", err)
		return nil, 0, err
	}

	responses := make([]dto.AttendanceResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, *toAttendanceResponse(&entries[i]))
	}

	return responses, total, nil
}

func (u *staffUsecase) UpdateAttendance(ctx context.Context, id uuid.UUID, req *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	attendance, err := u.attendanceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find attendance: %+v", err)
		return nil, err
	}
	if attendance == nil {
		return nil, ErrAttendanceNotFound
	}

	oldValue := toAttendanceResponse(attendance)

	if req.CheckIn != nil {
		checkIn, err := parseTimestampPtr(*req.CheckIn)
		if err != nil {
			return nil, err
		}
		attendance.CheckIn = checkIn
	}
	if req.CheckOut != nil {
		checkOut, err := parseTimestampPtr(*req.CheckOut)
		if err != nil {
			return nil, err
		}
		attendance.CheckOut = checkOut
	}
	if req.Status != nil {
		attendance.Status = *req.Status
	}

	if err := u.attendanceRepo.Update(tx, attendance); err != nil {
		u.log.Warnf("Failed to update attendance: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogUpdate(ctx, tx, actorID(ctx), "attendance", id.String(), oldValue, toAttendanceResponse(attendance)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toAttendanceResponse(attendance), nil
}

func (u *staffUsecase) DeleteAttendance(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	attendance, err := u.attendanceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find attendance: %+v", err)
		return err
	}
	if attendance == nil {
		return ErrAttendanceNotFound
	}

	affectedRows, err := u.attendanceRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete attendance: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrAttendanceNotFound
	}

	if err := u.activityService.LogDelete(ctx, tx, actorID(ctx), "attendance", id.String(), toAttendanceResponse(attendance)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func toStaffResponse(staff *entity.Staff) *dto.StaffResponse {
	return &dto.StaffResponse{
		ID:          staff.ID,
		Name:        staff.Name,
		Email:       staff.Email,
		Phone:       staff.Phone,
		Designation: staff.Designation,
		Department:  staff.Department,
		Salary:      staff.Salary,
		JoinedAt:    formatDatePtr(staff.JoinedAt),
		Status:      staff.Status,
		CreatedAt:   staff.CreatedAt,
		UpdatedAt:   staff.UpdatedAt,
	}
}

func toAttendanceResponse(attendance *entity.Attendance) *dto.AttendanceResponse {
	resp := &dto.AttendanceResponse{
		ID:        attendance.ID,
		StaffID:   attendance.StaffID,
		Date:      formatDate(attendance.Date),
		CheckIn:   attendance.CheckIn,
		CheckOut:  attendance.CheckOut,
		Status:    attendance.Status,
		CreatedAt: attendance.CreatedAt,
		UpdatedAt: attendance.UpdatedAt,
	}
	if attendance.Staff != nil {
		resp.StaffName = attendance.Staff.Name
	}
	return resp
}
