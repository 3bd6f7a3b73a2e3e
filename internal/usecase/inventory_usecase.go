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

var (
	ErrSupplierNotFound       = errors.New("supplier not found")
	ErrSupplierInUse          = errors.New("supplier has inventory items and cannot be deleted")
	ErrInventoryAlertNotFound = errors.New("inventory item not found")
)

type InventoryUsecase interface {
	CreateSupplier(ctx context.Context, req *dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	GetSupplier(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error)
	ListSuppliers(ctx context.Context, filter *entity.SupplierFilter, page, limit int) ([]dto.SupplierResponse, int64, error)
	UpdateSupplier(ctx context.Context, id uuid.UUID, req *dto.UpdateSupplierRequest) (*dto.SupplierResponse, error)
	DeleteSupplier(ctx context.Context, id uuid.UUID) error

	CreateAlert(ctx context.Context, req *dto.CreateInventoryAlertRequest) (*dto.InventoryAlertResponse, error)
	GetAlert(ctx context.Context, id uuid.UUID) (*dto.InventoryAlertResponse, error)
	ListAlerts(ctx context.Context, filter *entity.InventoryAlertFilter, page, limit int) ([]dto.InventoryAlertResponse, int64, error)
	UpdateAlert(ctx context.Context, id uuid.UUID, req *dto.UpdateInventoryAlertRequest) (*dto.InventoryAlertResponse, error)
	DeleteAlert(ctx context.Context, id uuid.UUID) error
}

type inventoryUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	supplierRepo    repository.SupplierRepository
	alertRepo       repository.InventoryAlertRepository
	activityService service.ActivityService
}

func NewInventoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	supplierRepo repository.SupplierRepository,
	alertRepo repository.InventoryAlertRepository,
	activityService service.ActivityService,
) InventoryUsecase {
	return &inventoryUsecase{
		db:              db,
		log:             log,
		supplierRepo:    supplierRepo,
		alertRepo:       alertRepo,
		activityService: activityService,
	}
}

// stockStatus derives the alert status from quantity against the reorder
// threshold.
func stockStatus(quantity, threshold int) string {
	switch {
	case quantity <= 0:
		return entity.InventoryStatusOutOfStock
	case quantity <= threshold:
		return entity.InventoryStatusLowStock
	default:
		return entity.InventoryStatusOK
	}
}

func (u *inventoryUsecase) CreateSupplier(ctx context.Context, req *dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	supplier := &entity.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
	}

	if err := u.supplierRepo.Create(tx, supplier); err != nil {
		u.log.Warnf("Failed to create supplier: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogCreate(ctx, tx, actorID(ctx), "supplier", supplier.ID.String(), toSupplierResponse(supplier)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toSupplierResponse(supplier), nil
}

func (u *inventoryUsecase) GetSupplier(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error) {
	supplier, err := u.supplierRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find supplier: %+v", err)
		return nil, err
	}
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}

	return toSupplierResponse(supplier), nil
}

func (u *inventoryUsecase) ListSuppliers(ctx context.Context, filter *entity.SupplierFilter, page, limit int) ([]dto.SupplierResponse, int64, error) {
	page, limit = normalizePage(page, limit)

	suppliers, total, err := u.supplierRepo.FindAll(u.db.WithContext(ctx), filter, page, limit)
	if err != nil {
		u.log.Warnf("Failed to find suppliers: %+v", err)
		return nil, 0, err
	}

	responses := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		responses = append(responses, *toSupplierResponse(&suppliers[i]))
	}

	return responses, total, nil
}

func (u *inventoryUsecase) UpdateSupplier(ctx context.Context, id uuid.UUID, req *dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	supplier, err := u.supplierRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find supplier: %+v", err)
		return nil, err
	}
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}

	oldValue := toSupplierResponse(supplier)

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.ContactPerson != nil {
		supplier.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}

	if err := u.supplierRepo.Update(tx, supplier); err != nil {
		u.log.Warnf("Failed to update supplier: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogUpdate(ctx, tx, actorID(ctx), "supplier", id.String(), oldValue, toSupplierResponse(supplier)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toSupplierResponse(supplier), nil
}

func (u *inventoryUsecase) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	supplier, err := u.supplierRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find supplier: %+v", err)
		return err
	}
	if supplier == nil {
		return ErrSupplierNotFound
	}

	items, err := u.alertRepo.CountBySupplierID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to count inventory items: %+v", err)
		return err
	}
	if items > 0 {
		return ErrSupplierInUse
	}

	affectedRows, err := u.supplierRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete supplier: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrSupplierNotFound
	}

	if err := u.activityService.LogDelete(ctx, tx, actorID(ctx), "supplier", id.String(), toSupplierResponse(supplier)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *inventoryUsecase) CreateAlert(ctx context.Context, req *dto.CreateInventoryAlertRequest) (*dto.InventoryAlertResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	alert := &entity.InventoryAlert{
		ItemName:   req.ItemName,
		Category:   req.Category,
		Quantity:   req.Quantity,
		Threshold:  req.Threshold,
		Status:     stockStatus(req.Quantity, req.Threshold),
		SupplierID: req.SupplierID,
	}

	if req.SupplierID != nil {
		supplier, err := u.supplierRepo.FindByID(tx, *req.SupplierID)
		if err != nil {
			u.log.Warnf("Failed to find supplier: %+v", err)
			return nil, err
		}
		if supplier == nil {
			return nil, ErrSupplierNotFound
		}
		alert.Supplier = supplier
	}

	if err := u.alertRepo.Create(tx, alert); err != nil {
		u.log.Warnf("Failed to create inventory item: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogCreate(ctx, tx, actorID(ctx), "inventory_alert", alert.ID.String(), toInventoryAlertResponse(alert)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toInventoryAlertResponse(alert), nil
}

func (u *inventoryUsecase) GetAlert(ctx context.Context, id uuid.UUID) (*dto.InventoryAlertResponse, error) {
	alert, err := u.alertRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find inventory item: %+v", err)
		return nil, err
	}
	if alert == nil {
		return nil, ErrInventoryAlertNotFound
	}

	return toInventoryAlertResponse(alert), nil
}

func (u *inventoryUsecase) ListAlerts(ctx context.Context, filter *entity.InventoryAlertFilter, page, limit int) ([]dto.InventoryAlertResponse, int64, error) {
	page, limit = normalizePage(page, limit)

	alerts, total, err := u.alertRepo.FindAll(u.db.WithContext(ctx), filter, page, limit)
	if err != nil {
		u.log.Warnf("Failed to find inventory items: %+v", err)
		return nil, 0, err
	}

	responses := make([]dto.InventoryAlertResponse, 0, len(alerts))
	for i := range alerts {
		responses = append(responses, *toInventoryAlertResponse(&alerts[i]))
	}

	return responses, total, nil
}

func (u *inventoryUsecase) UpdateAlert(ctx context.Context, id uuid.UUID, req *dto.UpdateInventoryAlertRequest) (*dto.InventoryAlertResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	alert, err := u.alertRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find inventory item: %+v", err)
		return nil, err
	}
	if alert == nil {
		return nil, ErrInventoryAlertNotFound
	}

	oldValue := toInventoryAlertResponse(alert)

	if req.ItemName != nil {
		alert.ItemName = *req.ItemName
	}
	if req.Category != nil {
		alert.Category = *req.Category
	}
	if req.Quantity != nil {
		alert.Quantity = *req.Quantity
	}
	if req.Threshold != nil {
		alert.Threshold = *req.Threshold
	}
	if req.SupplierID != nil {
		supplier, err := u.supplierRepo.FindByID(tx, *req.SupplierID)
		if err != nil {
			u.log.Warnf("Failed to find supplier: %+v", err)
			return nil, err
		}
		if supplier == nil {
			return nil, ErrSupplierNotFound
		}
		alert.SupplierID = req.SupplierID
		alert.Supplier = supplier
	}

	// Status always derives from the current quantity and threshold
	alert.Status = stockStatus(alert.Quantity, alert.Threshold)

	if err := u.alertRepo.Update(tx, alert); err != nil {
		u.log.Warnf("Failed to update inventory item: %+v", err)
		return nil, err
	}

	if err := u.activityService.LogUpdate(ctx, tx, actorID(ctx), "inventory_alert", id.String(), oldValue, toInventoryAlertResponse(alert)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return toInventoryAlertResponse(alert), nil
}

func (u *inventoryUsecase) DeleteAlert(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	alert, err := u.alertRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find inventory item: %+v", err)
		return err
	}
	if alert == nil {
		return ErrInventoryAlertNotFound
	}

	affectedRows, err := u.alertRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete inventory item: %+v", err)
		return err
	}
	if affectedRows == 0 {
		return ErrInventoryAlertNotFound
	}

	if err := u.activityService.LogDelete(ctx, tx, actorID(ctx), "inventory_alert", id.String(), toInventoryAlertResponse(alert)); err != nil {
		u.log.Warnf("Failed to create activity log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func toSupplierResponse(supplier *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:            supplier.ID,
		Name:          supplier.Name,
		ContactPerson: supplier.ContactPerson,
		Phone:         supplier.Phone,
		Email:         supplier.Email,
		Address:       supplier.Address,
		CreatedAt:     supplier.CreatedAt,
		UpdatedAt:     supplier.UpdatedAt,
	}
}

func toInventoryAlertResponse(alert *entity.InventoryAlert) *dto.InventoryAlertResponse {
	resp := &dto.InventoryAlertResponse{
		ID:         alert.ID,
		ItemName:   alert.ItemName,
		Category:   alert.Category,
		Quantity:   alert.Quantity,
		Threshold:  alert.Threshold,
		Status:     alert.Status,
		SupplierID: alert.SupplierID,
		CreatedAt:  alert.CreatedAt,
		UpdatedAt:  alert.UpdatedAt,
	}
	if alert.Supplier != nil {
		resp.SupplierName = alert.Supplier.Name
	}
	return resp
}
