package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateInvoiceRequest struct {
	PatientID uuid.UUID       `json:"patient_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	Tax       decimal.Decimal `json:"tax" validate:"omitempty"`
	Discount  decimal.Decimal `json:"discount" validate:"omitempty"`
	Status    string          `json:"status" validate:"omitempty,oneof=Pending Paid Cancelled"`
	DueDate   string          `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateInvoiceRequest struct {
	Amount   *decimal.Decimal `json:"amount" validate:"omitempty"`
	Tax      *decimal.Decimal `json:"tax" validate:"omitempty"`
	Discount *decimal.Decimal `json:"discount" validate:"omitempty"`
	Status   *string          `json:"status" validate:"omitempty,oneof=Pending Paid Cancelled"`
	DueDate  *string          `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

// Response DTOs

type InvoiceResponse struct {
	ID            uuid.UUID       `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	PatientID     uuid.UUID       `json:"patient_id"`
	PatientName   string          `json:"patient_name,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Tax           decimal.Decimal `json:"tax"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	DueDate       string          `json:"due_date,omitempty"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
