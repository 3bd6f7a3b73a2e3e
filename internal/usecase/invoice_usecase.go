package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clinic-management-service/internal/delivery/dto"
	"clinic-management-service/internal/domain/entity"
	"clinic-management-service/internal/domain/repository"
	"clinic-management-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

type InvoiceUsecase interface {
	Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error)
	List(ctx context.Context, filter *entity.InvoiceFilter, page, limit int) ([]dto.InvoiceResponse, int64, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type invoiceUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	invoiceRepo     repository.InvoiceRepository
	patientRepo     repository.PatientRepository
	activityService service.ActivityService
}

func NewInvoiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	invoiceRepo repository.InvoiceRepository,
	patientRepo repository.PatientRepository,
	activityService service.ActivityService,
) InvoiceUsecase {
	return &invoiceUsecase{
		db:              db,
		log:             log,
		invoiceRepo:     invoiceRepo,
		patientRepo:     patientRepo,
		activityService: activityService,
	}
}

// newInvoiceNumber builds a unique human-readable invoice number, e.g.
// INV-20250901-3F2A8C1D.
func newInvoiceNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("INV-%s-%s", time.Now().Format("20060102"), suffix)
}

func (u *invoiceUsecase) Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	dueDate, err := parseDatePtr(req.DueDate)
	if err != nil {
		return nil, err
	}

	invoice := &entity.Invoice{
		InvoiceNumber: newInvoiceNumber(),
		PatientID:     req.PatientID,
		Amount:        req.Amount,
		Tax:           req.Tax,
		Discount:      req.Discount,
		Total:         req.Amount.Add(req.Tax).Sub(req.Discount),
		Status:        req.Status,
		DueDate:       dueDate,
	}
	if invoice.Status == "" {
		invoice.Status = entity.InvoiceStatusPending
	}
	if invoice.Status == entity.InvoiceStatusPaid {
		now := time.Now()
		invoice.PaidAt = &now
	}

	if err := u.invoiceRepo.Create(tx, invoice); err != nil {
		u.log.Warnf("Failed to create invoice: %+v", err)
		return nil, err
	}
	invoice.Patient = patient

	if err := u.activityService.LogCreate(ctx, tx, actorID(ctx), "invoice", invoice.ID.String(), toInvoiceResponse(invoice)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toInvoiceResponse(invoice), nil
}

func (u *invoiceUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.InvoiceResponse, error) {
	invoice, err := u.invoiceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find invoice: %+v", err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	return toInvoiceResponse(invoice), nil
}

func (u *invoiceUsecase) List(ctx context.Context, filter *entity.InvoiceFilter, page, limit int) ([]dto.InvoiceResponse, int64, error) {
	page, limit = normalizePage(page, limit)

	invoices, total, err := u.invoiceRepo.FindAll(u.db.WithContext(ctx), filter, page, limit)
	if err != nil {
		u.log.Warnf("Failed to find invoices: %+v", err)
		return nil, 0, err
	}

	responses := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		responses = append(responses, *toInvoiceResponse(&invoices[i]))
	}

	return responses, total, nil
}

func (u *invoiceUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	invoice, err := u.invoiceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find invoice: %+v", err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	oldValue := toInvoiceResponse(invoice)

	if req.Amount != nil {
		invoice.Amount = *req.Amount
	}
	if req.Tax != nil {
		invoice.Tax = *req.Tax
	}
	if req.Discount != nil {
		invoice.Discount = *req.Discount
	}
	if req.DueDate != nil {
		dueDate, err := parseDate(*req.DueDate)
		if err != nil {
			return nil, err
		}
		invoice.DueDate = &dueDate
	}
	if req.Status != nil && *req.Status != invoice.Status {
		invoice.Status = *req.Status
		if invoice.Status == entity.InvoiceStatusPaid {
			now := time.Now()
			invoice.PaidAt = &now
		} else {
			invoice.PaidAt = nil
		}
	}

	// Total always derives from the amount fields
	invoice.Total = invoice.Amount.Add(invoice.Tax).Sub(invoice.Discount)

	if err := u.invoiceRepo.Update(tx, invoice); err != nil {
		u.log.Warnf("Failed to update invoice: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogUpdate(ctx, tx, actorID(ctx), "invoice", id.String(), oldValue, toInvoiceResponse(invoice)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toInvoiceResponse(invoice), nil
}

func (u *invoiceUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	invoice, err := u.invoiceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find invoice: %+v", err)
		return err
	}
	if invoice == nil {
		return ErrInvoiceNotFound
	}

	affectedRows, err := u.invoiceRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete invoice: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrInvoiceNotFound
	}

	if err := u.activityService.LogDelete(ctx, tx, actorID(ctx), "invoice", id.String(), toInvoiceResponse(invoice)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func toInvoiceResponse(invoice *entity.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:            invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		PatientID:     invoice.PatientID,
		Amount:        invoice.Amount,
		Tax:           invoice.Tax,
		Discount:      invoice.Discount,
		Total:         invoice.Total,
		Status:        invoice.Status,
		DueDate:       formatDatePtr(invoice.DueDate),
		PaidAt:        invoice.PaidAt,
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
	}
	if invoice.Patient != nil {
		resp.PatientName = invoice.Patient.Name
	}
	return resp
}
