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
	ErrDonorNotFound        = errors.New("blood donor not found")
	ErrDonorInUse           = errors.New("blood donor has collected units and cannot be deleted")
	ErrBloodUnitNotFound    = errors.New("blood unit not found")
	ErrBloodUnitInUse       = errors.New("blood unit has been issued and cannot be deleted")
	ErrBloodUnitUnavailable = errors.New("blood unit is not available for issue")
	ErrBloodIssueNotFound   = errors.New("blood issue not found")
)

type BloodBankUsecase interface {
	CreateDonor(ctx context.Context, req *dto.CreateBloodDonorRequest) (*dto.BloodDonorResponse, error)
	GetDonor(ctx context.Context, id uuid.UUID) (*dto.BloodDonorResponse, error)
	ListDonors(ctx context.Context, filter *entity.BloodDonorFilter, page, limit int) ([]dto.BloodDonorResponse, int64, error)
	UpdateDonor(ctx context.Context, id uuid.UUID, req *dto.UpdateBloodDonorRequest) (*dto.BloodDonorResponse, error)
	DeleteDonor(ctx context.Context, id uuid.UUID) error

	CreateUnit(ctx context.Context, req *dto.CreateBloodUnitRequest) (*dto.BloodUnitResponse, error)
	GetUnit(ctx context.Context, id uuid.UUID) (*dto.BloodUnitResponse, error)
	ListUnits(ctx context.Context, filter *entity.BloodUnitFilter, page, limit int) ([]dto.BloodUnitResponse, int64, error)
	UpdateUnit(ctx context.Context, id uuid.UUID, req *dto.UpdateBloodUnitRequest) (*dto.BloodUnitResponse, error)
	DeleteUnit(ctx context.Context, id uuid.UUID) error
	Stock(ctx context.Context) (*dto.BloodStockResponse, error)
	StockByType(ctx context.Context, bloodType string) (*dto.BloodStockByTypeResponse, error)

	IssueUnit(ctx context.Context, req *dto.CreateBloodIssueRequest) (*dto.BloodIssueResponse, error)
	ListIssues(ctx context.Context, page, limit int) ([]dto.BloodIssueResponse, int64, error)
}

type bloodBankUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	donorRepo       repository.BloodDonorRepository
	unitRepo        repository.BloodUnitRepository
	issueRepo       repository.BloodIssueRepository
	patientRepo     repository.PatientRepository
	activityService service.ActivityService
}

func NewBloodBankUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	donorRepo repository.BloodDonorRepository,
	unitRepo repository.BloodUnitRepository,
	issueRepo repository.BloodIssueRepository,
	patientRepo repository.PatientRepository,
	activityService service.ActivityService,
) BloodBankUsecase {
	return &bloodBankUsecase{
		db:              db,
		log:             log,
		donorRepo:       donorRepo,
		unitRepo:        unitRepo,
		issueRepo:       issueRepo,
		patientRepo:     patientRepo,
		activityService: activityService,
	}
}

func (u *bloodBankUsecase) CreateDonor(ctx context.Context, req *dto.CreateBloodDonorRequest) (*dto.BloodDonorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	lastDonation, err := parseDatePtr(req.LastDonationDate)
	if err != nil {
		return nil, err
	}

	donor := &entity.BloodDonor{
		Name:             req.Name,
		Phone:            req.Phone,
		Email:            req.Email,
		BloodType:        req.BloodType,
		LastDonationDate: lastDonation,
	}

	if err := u.donorRepo.Create(tx, donor); err != nil {
		u.log.Warnf("Failed to create blood donor: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogCreate(ctx, tx, actorID(ctx), "blood_donor", donor.ID.String(), toBloodDonorResponse(donor)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toBloodDonorResponse(donor), nil
}

func (u *bloodBankUsecase) GetDonor(ctx context.Context, id uuid.UUID) (*dto.BloodDonorResponse, error) {
	donor, err := u.donorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find blood donor: %+v", err)
		return nil, err
	}
	if donor == nil {
		return nil, ErrDonorNotFound
	}

	return toBloodDonorResponse(donor), nil
}

func (u *bloodBankUsecase) ListDonors(ctx context.Context, filter *entity.BloodDonorFilter, page, limit int) ([]dto.BloodDonorResponse, int64, error) {
	page, limit = normalizePage(page, limit)

	donors, total, err := u.donorRepo.FindAll(u.db.WithContext(ctx), filter, page, limit)
	if err != nil {
		u.log.Warnf("Failed to find blood donors: %+v", err)
		return nil, 0, err
	}

	responses := make([]dto.BloodDonorResponse, 0, len(donors))
	for i := range donors {
		responses = append(responses, *toBloodDonorResponse(&donors[i]))
	}

	return responses, total, nil
}

func (u *bloodBankUsecase) UpdateDonor(ctx context.Context, id uuid.UUID, req *dto.UpdateBloodDonorRequest) (*dto.BloodDonorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	donor, err := u.donorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find blood donor: %+v", err)
		return nil, err
	}
	if donor == nil {
		return nil, ErrDonorNotFound
	}

	oldValue := toBloodDonorResponse(donor)

	if req.Name != nil {
		donor.Name = *req.Name
	}
	if req.Phone != nil {
		donor.Phone = *req.Phone
	}
	if req.Email != nil {
		donor.Email = *req.Email
	}
	if req.BloodType != nil {
		donor.BloodType = *req.BloodType
	}
	if req.LastDonationDate != nil {
		lastDonation, err := parseDate(*req.LastDonationDate)
		if err != nil {
			return nil, err
		}
		donor.LastDonationDate = &lastDonation
	}
	if req.TotalDonations != nil {
		donor.TotalDonations = *req.TotalDonations
	}

	if err := u.donorRepo.Update(tx, donor); err != nil {
		u.log.Warnf("Failed to update blood donor: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogUpdate(ctx, tx, actorID(ctx), "blood_donor", id.String(), oldValue, toBloodDonorResponse(donor)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toBloodDonorResponse(donor), nil
}

func (u *bloodBankUsecase) DeleteDonor(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	donor, err := u.donorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find blood donor: %+v", err)
		return err
	}
	if donor == nil {
		return ErrDonorNotFound
	}

	affectedRows, err := u.donorRepo.Delete(tx, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrDonorInUse
		}
		u.log.Warnf("Failed to delete blood donor: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrDonorNotFound
	}

	if err := u.activityService.LogDelete(ctx, tx, actorID(ctx), "blood_donor", id.String(), toBloodDonorResponse(donor)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *bloodBankUsecase) CreateUnit(ctx context.Context, req *dto.CreateBloodUnitRequest) (*dto.BloodUnitResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	collectedAt, err := parseDate(req.CollectedAt)
	if err != nil {
		return nil, err
	}
	expiresAt, err := parseDate(req.ExpiresAt)
	if err != nil {
		return nil, err
	}

	unit := &entity.BloodUnit{
		BloodType:   req.BloodType,
		Status:      req.Status,
		DonorID:     req.DonorID,
		VolumeML:    req.VolumeML,
		CollectedAt: collectedAt,
		ExpiresAt:   expiresAt,
	}
	if unit.Status == "" {
		unit.Status = entity.BloodUnitStatusAvailable
	}
	if unit.VolumeML == 0 {
		unit.VolumeML = 450
	}

	// A collected unit counts as a donation for the referenced donor
	if req.DonorID != nil {
		donor, err := u.donorRepo.FindByID(tx, *req.DonorID)
		if err != nil {
			u.log.Warnf("Failed to find blood donor: %+v", err)
			return nil, err
		}
		if donor == nil {
			return nil, ErrDonorNotFound
		}

		donor.TotalDonations++
		if donor.LastDonationDate == nil || collectedAt.After(*donor.LastDonationDate) {
			donor.LastDonationDate = &collectedAt
		}
		if err := u.donorRepo.Update(tx, donor); err != nil {
			u.log.Warnf("Failed to update blood donor: %+v", err)
			return nil, err
		}
		unit.Donor = donor
	}

	if err := u.unitRepo.Create(tx, unit); err != nil {
		u.log.Warnf("Failed to create blood unit: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogCreate(ctx, tx, actorID(ctx), "blood_unit", unit.ID.String(), toBloodUnitResponse(unit)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toBloodUnitResponse(unit), nil
}

func (u *bloodBankUsecase) GetUnit(ctx context.Context, id uuid.UUID) (*dto.BloodUnitResponse, error) {
	unit, err := u.unitRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find blood unit: %+v", err)
		return nil, err
	}
	if unit == nil {
		return nil, ErrBloodUnitNotFound
	}

	return toBloodUnitResponse(unit), nil
}

func (u *bloodBankUsecase) ListUnits(ctx context.Context, filter *entity.BloodUnitFilter, page, limit int) ([]dto.BloodUnitResponse, int64, error) {
	page, limit = normalizePage(page, limit)

	units, total, err := u.unitRepo.FindAll(u.db.WithContext(ctx), filter, page, limit)
	if err != nil {
		u.log.Warnf("Failed to find blood units: %+v", err)
		return nil, 0, err
	}

	responses := make([]dto.BloodUnitResponse, 0, len(units))
	for i := range units {
		responses = append(responses, *toBloodUnitResponse(&units[i]))
	}

	return responses, total, nil
}

func (u *bloodBankUsecase) UpdateUnit(ctx context.Context, id uuid.UUID, req *dto.UpdateBloodUnitRequest) (*dto.BloodUnitResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	unit, err := u.unitRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find blood unit: %+v", err)
		return nil, err
	}
	if unit == nil {
		return nil, ErrBloodUnitNotFound
	}

	oldValue := toBloodUnitResponse(unit)

	if req.BloodType != nil {
		unit.BloodType = *req.BloodType
	}
	if req.Status != nil {
		unit.Status = *req.Status
	}
	if req.VolumeML != nil {
		unit.VolumeML = *req.VolumeML
	}
	if req.ExpiresAt != nil {
		expiresAt, err := parseDate(*req.ExpiresAt)
		if err != nil {
			return nil, err
		}
		unit.ExpiresAt = expiresAt
	}

	if err := u.unitRepo.Update(tx, unit); err != nil {
		u.log.Warnf("Failed to update blood unit: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogUpdate(ctx, tx, actorID(ctx), "blood_unit", id.String(), oldValue, toBloodUnitResponse(unit)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toBloodUnitResponse(unit), nil
}

func (u *bloodBankUsecase) DeleteUnit(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	unit, err := u.unitRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find blood unit: %+v", err)
		return err
	}
	if unit == nil {
		return ErrBloodUnitNotFound
	}

	affectedRows, err := u.unitRepo.Delete(tx, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrBloodUnitInUse
		}
		u.log.Warnf("Failed to delete blood unit: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrBloodUnitNotFound
	}

	if err := u.activityService.LogDelete(ctx, tx, actorID(ctx), "blood_unit", id.String(), toBloodUnitResponse(unit)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *bloodBankUsecase) Stock(ctx context.Context) (*dto.BloodStockResponse, error) {
	counts, err := u.unitRepo.StockCounts(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to count blood stock: %+v", err)
		return nil, err
	}

	items := make([]dto.BloodStockItem, 0, len(counts))
	var total int64
	for _, c := range counts {
		items = append(items, dto.BloodStockItem{BloodType: c.BloodType, TotalUnits: c.Total})
		total += c.Total
	}

	return &dto.BloodStockResponse{Items: items, TotalUnits: total}, nil
}

func (u *bloodBankUsecase) StockByType(ctx context.Context, bloodType string) (*dto.BloodStockByTypeResponse, error) {
	units, err := u.unitRepo.FindByType(u.db.WithContext(ctx), bloodType)
	if err != nil {
		u.log.Warnf("Failed to find blood units by type: %+v", err)
		return nil, err
	}

	items := make([]dto.BloodUnitResponse, 0, len(units))
	for i := range units {
		items = append(items, *toBloodUnitResponse(&units[i]))
	}

	return &dto.BloodStockByTypeResponse{
		BloodType:  bloodType,
		Items:      items,
		TotalUnits: int64(len(items)),
	}, nil
}

func (u *bloodBankUsecase) IssueUnit(ctx context.Context, req *dto.CreateBloodIssueRequest) (*dto.BloodIssueResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	unit, err := u.unitRepo.FindByID(tx, req.UnitID)
	if err != nil {
		u.log.Warnf("Failed to find blood unit: %+v", err)
		return nil, err
	}
	if unit == nil {
		return nil, ErrBloodUnitNotFound
	}
	if unit.Status != entity.BloodUnitStatusAvailable && unit.Status != entity.BloodUnitStatusReserved {
		return nil, ErrBloodUnitUnavailable
	}

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	unit.Status = entity.BloodUnitStatusIssued
	if err := u.unitRepo.Update(tx, unit); err != nil {
		u.log.Warnf("Failed to update blood unit: %+v", err)
		return nil, err
	}

	issue := &entity.BloodIssue{
		UnitID:    req.UnitID,
		PatientID: req.PatientID,
		IssuedAt:  time.Now(),
		Notes:     req.Notes,
	}

	if err := u.issueRepo.Create(tx, issue); err != nil {
		u.log.Warnf("Failed to create blood issue: %+v", err)
		return nil, err
	}
	issue.Unit = unit
	issue.Patient = patient

	if err := u.activityService.LogCreate(ctx, tx, actorID(ctx), "blood_issue", issue.ID.String(), toBloodIssueResponse(issue)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toBloodIssueResponse(issue), nil
}

func (u *bloodBankUsecase) ListIssues(ctx context.Context, page, limit int) ([]dto.BloodIssueResponse, int64, error) {
	page, limit = normalizePage(page, limit)

	issues, total, err := u.issueRepo.FindAll(u.db.WithContext(ctx), page, limit)
	if err != nil {
		u.log.Warnf("Failed to find blood issues: %+v", err)
		return nil, 0, err
	}

	responses := make([]dto.BloodIssueResponse, 0, len(issues))
	for i := range issues {
		responses = append(responses, *toBloodIssueResponse(&issues[i]))
	}

	return responses, total, nil
}

func toBloodDonorResponse(donor *entity.BloodDonor) *dto.BloodDonorResponse {
	return &dto.BloodDonorResponse{
		ID:               donor.ID,
		Name:             donor.Name,
		Phone:            donor.Phone,
		Email:            donor.Email,
		BloodType:        donor.BloodType,
		LastDonationDate: formatDatePtr(donor.LastDonationDate),
		TotalDonations:   donor.TotalDonations,
		CreatedAt:        donor.CreatedAt,
		UpdatedAt:        donor.UpdatedAt,
	}
}

func toBloodUnitResponse(unit *entity.BloodUnit) *dto.BloodUnitResponse {
	resp := &dto.BloodUnitResponse{
		ID:          unit.ID,
		BloodType:   unit.BloodType,
		Status:      unit.Status,
		DonorID:     unit.DonorID,
		VolumeML:    unit.VolumeML,
		CollectedAt: formatDate(unit.CollectedAt),
		ExpiresAt:   formatDate(unit.ExpiresAt),
		CreatedAt:   unit.CreatedAt,
		UpdatedAt:   unit.UpdatedAt,
	}
	if unit.Donor != nil {
		resp.DonorName = unit.Donor.Name
	}
	return resp
}

func toBloodIssueResponse(issue *entity.BloodIssue) *dto.BloodIssueResponse {
	resp := &dto.BloodIssueResponse{
		ID:        issue.ID,
		UnitID:    issue.UnitID,
		PatientID: issue.PatientID,
		IssuedAt:  issue.IssuedAt,
		Notes:     issue.Notes,
		CreatedAt: issue.CreatedAt,
		UpdatedAt: issue.UpdatedAt,
	}
	if issue.Unit != nil {
		resp.BloodType = issue.Unit.BloodType
	}
	if issue.Patient != nil {
		resp.PatientName = issue.Patient.Name
	}
	return resp
}
