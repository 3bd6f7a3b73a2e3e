package repository

import (
	"errors"

	"clinic-management-service/internal/domain/entity"
	domainRepo "clinic-management-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	crudRepository[entity.Invoice]
}

func NewInvoiceRepository() domainRepo.InvoiceRepository {
	return &invoiceRepository{}
}

func (r *invoiceRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := db.Preload("Patient").Where("id = ?", id).First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) FindAll(db *gorm.DB, filter *entity.InvoiceFilter, page, limit int) ([]entity.Invoice, int64, error) {
	return listPage[entity.Invoice](db, func(q *gorm.DB) *gorm.DB {
		q = q.Preload("Patient")
		if filter == nil {
			return q
		}
		if filter.Search != "" {
			q = q.Where("invoice_number ILIKE ?", "%"+filter.Search+"%")
		}
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
		if filter.PatientID != uuid.Nil {
			q = q.Where("patient_id = ?", filter.PatientID)
		}
		return q
	}, page, limit, "")
}

func (r *invoiceRepository) CountByStatus(db *gorm.DB, status string) (int64, error) {
	var total int64
	err := db.Model(&entity.Invoice{}).Where("status = ?", status).Count(&total).Error
	return total, err
}

func (r *invoiceRepository) CountByPatientID(db *gorm.DB, patientID uuid.UUID) (int64, error) {
	var total int64
	err := db.Model(&entity.Invoice{}).Where("patient_id = ?", patientID).Count(&total).Error
	return total, err
}

func (r *invoiceRepository) SumTotalByStatus(db *gorm.DB, status string) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := db.Model(&entity.Invoice{}).
		Where("status = ?", status).
		Select("SUM(total)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !sum.Valid {
		return decimal.Zero, nil
	}
	return sum.Decimal, nil
}
