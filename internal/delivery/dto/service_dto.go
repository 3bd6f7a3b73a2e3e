package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateServiceRequest struct {
	Name        string          `json:"name" validate:"required,min=2"`
	Category    string          `json:"category" validate:"omitempty"`
	Description string          `json:"description" validate:"omitempty"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Status      string          `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type UpdateServiceRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=2"`
	Category    *string          `json:"category" validate:"omitempty"`
	Description *string          `json:"description" validate:"omitempty"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty"`
	Status      *string          `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// Response DTOs

type ServiceResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
