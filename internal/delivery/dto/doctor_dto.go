package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateDoctorRequest struct {
	Name            string          `json:"name" validate:"required,min=2"`
	Email           string          `json:"email" validate:"required,email"`
	Phone           string          `json:"phone" validate:"omitempty,min=7"`
	Specialization  string          `json:"specialization" validate:"required"`
	Department      string          `json:"department" validate:"omitempty"`
	Qualification   string          `json:"qualification" validate:"omitempty"`
	ConsultationFee decimal.Decimal `json:"consultation_fee" validate:"omitempty"`
	Status          string          `json:"status" validate:"omitempty,oneof=Active Inactive 'On Leave'"`
}

type UpdateDoctorRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=2"`
	Email           *string          `json:"email" validate:"omitempty,email"`
	Phone           *string          `json:"phone" validate:"omitempty,min=7"`
	Specialization  *string          `json:"specialization" validate:"omitempty"`
	Department      *string          `json:"department" validate:"omitempty"`
	Qualification   *string          `json:"qualification" validate:"omitempty"`
	ConsultationFee *decimal.Decimal `json:"consultation_fee" validate:"omitempty"`
	Status          *string          `json:"status" validate:"omitempty,oneof=Active Inactive 'On Leave'"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone,omitempty"`
	Specialization  string          `json:"specialization"`
	Department      string          `json:"department,omitempty"`
	Qualification   string          `json:"qualification,omitempty"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
