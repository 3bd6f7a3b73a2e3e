package usecase

import (
	"context"
	"errors"

	"clinic-management-service/internal/delivery/dto"
	"clinic-management-service/internal/domain/entity"
	"clinic-management-service/internal/domain/repository"
	"clinic-management-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrTemplateNotFound = errors.New("prescription template not found")

type PrescriptionTemplateUsecase interface {
	Create(ctx context.Context, req *dto.CreatePrescriptionTemplateRequest) (*dto.PrescriptionTemplateResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PrescriptionTemplateResponse, error)
	List(ctx context.Context, filter *entity.PrescriptionTemplateFilter, page, limit int) ([]dto.PrescriptionTemplateResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePrescriptionTemplateRequest) (*dto.PrescriptionTemplateResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type prescriptionTemplateUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	templateRepo    repository.PrescriptionTemplateRepository
	doctorRepo      repository.DoctorRepository
	activityService service.ActivityService
}

func NewPrescriptionTemplateUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	templateRepo repository.PrescriptionTemplateRepository,
	doctorRepo repository.DoctorRepository,
	activityService service.ActivityService,
) PrescriptionTemplateUsecase {
	return &prescriptionTemplateUsecase{
		db:              db,
		log:             log,
		templateRepo:    templateRepo,
		doctorRepo:      doctorRepo,
		activityService: activityService,
	}
}

func (u *prescriptionTemplateUsecase) Create(ctx context.Context, req *dto.CreatePrescriptionTemplateRequest) (*dto.PrescriptionTemplateResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	template := &entity.PrescriptionTemplate{
		Name:        req.Name,
		DoctorID:    req.DoctorID,
		Diagnosis:   req.Diagnosis,
		Medications: entity.JSON(req.Medications),
		Notes:       req.Notes,
	}

	if req.DoctorID != nil {
		doctor, err := u.doctorRepo.FindByID(tx, *req.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
		template.Doctor = doctor
	}

	if err := u.templateRepo.Create(tx, template); err != nil {
		u.log.Warnf("Failed to create prescription template: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogCreate(ctx, tx, actorID(ctx), "prescription_template", template.ID.String(), toPrescriptionTemplateResponse(template)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toPrescriptionTemplateResponse(template), nil
}

func (u *prescriptionTemplateUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.PrescriptionTemplateResponse, error) {
	template, err := u.templateRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find prescription template: %+v", err)
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	return toPrescriptionTemplateResponse(template), nil
}

func (u *prescriptionTemplateUsecase) List(ctx context.Context, filter *entity.PrescriptionTemplateFilter, page, limit int) ([]dto.PrescriptionTemplateResponse, int64, error) {
	page, limit = normalizePage(page, limit)

	templates, total, err := u.templateRepo.FindAll(u.db.WithContext(ctx), filter, page, limit)
	if err != nil {
		u.log.Warnf("Failed to find prescription templates: %+v", err)
		return nil, 0, err
	}

	responses := make([]dto.PrescriptionTemplateResponse, 0, len(templates))
	for i := range templates {
		responses = append(responses, *toPrescriptionTemplateResponse(&templates[i]))
	}

	return responses, total, nil
}

func (u *prescriptionTemplateUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePrescriptionTemplateRequest) (*dto.PrescriptionTemplateResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	template, err := u.templateRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription template: %+v", err)
		return nil, err
	}
	if template == nil {
		return nil, ErrTemplateNotFound
	}

	oldValue := toPrescriptionTemplateResponse(template)

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Diagnosis != nil {
		template.Diagnosis = *req.Diagnosis
	}
	if req.Medications != nil {
		template.Medications = entity.JSON(req.Medications)
	}
	if req.Notes != nil {
		template.Notes = *req.Notes
	}

	if err := u.templateRepo.Update(tx, template); err != nil {
		u.log.Warnf("Failed to update prescription template: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogUpdate(ctx, tx, actorID(ctx), "prescription_template", id.String(), oldValue, toPrescriptionTemplateResponse(template)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toPrescriptionTemplateResponse(template), nil
}

func (u *prescriptionTemplateUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	template, err := u.templateRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find prescription template: %+v", err)
		return err
	}
	if template == nil {
		return ErrTemplateNotFound
	}

	affectedRows, err := u.templateRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete prescription template: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrTemplateNotFound
	}

	if err := u.activityService.LogDelete(ctx, tx, actorID(ctx), "prescription_template", id.String(), toPrescriptionTemplateResponse(template)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func toPrescriptionTemplateResponse(template *entity.PrescriptionTemplate) *dto.PrescriptionTemplateResponse {
	resp := &dto.PrescriptionTemplateResponse{
		ID:          template.ID,
		Name:        template.Name,
		DoctorID:    template.DoctorID,
		Diagnosis:   template.Diagnosis,
		Medications: map[string]interface{}(template.Medications),
		Notes:       template.Notes,
		CreatedAt:   template.CreatedAt,
		UpdatedAt:   template.UpdatedAt,
	}
	if template.Doctor != nil {
		resp.DoctorName = template.Doctor.Name
	}
	return resp
}
