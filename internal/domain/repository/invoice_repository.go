package repository

import (
	"clinic-management-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(db *gorm.DB, invoice *entity.Invoice) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Invoice, error)
	FindAll(db *gorm.DB, filter *entity.InvoiceFilter, page, limit int) ([]entity.Invoice, int64, error)
	Update(db *gorm.DB, invoice *entity.Invoice) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	CountByStatus(db *gorm.DB, status string) (int64, error)
	CountByPatientID(db *gorm.DB, patientID uuid.UUID) (int64, error)
	SumTotalByStatus(db *gorm.DB, status string) (decimal.Decimal, error)
}
