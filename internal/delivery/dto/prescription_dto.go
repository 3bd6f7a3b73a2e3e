package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePrescriptionTemplateRequest struct {
	Name        string                 `json:"name" validate:"required,min=2"`
	DoctorID    *uuid.UUID             `json:"doctor_id" validate:"omitempty"`
	Diagnosis   string                 `json:"diagnosis" validate:"omitempty"`
	Medications map[string]interface{} `json:"medications" validate:"omitempty"`
	Notes       string                 `json:"notes" validate:"omitempty"`
}

type UpdatePrescriptionTemplateRequest struct {
	Name        *string                `json:"name" validate:"omitempty,min=2"`
	Diagnosis   *string                `json:"diagnosis" validate:"omitempty"`
	Medications map[string]interface{} `json:"medications" validate:"omitempty"`
	Notes       *string                `json:"notes" validate:"omitempty"`
}

// Response DTOs

type PrescriptionTemplateResponse struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	DoctorID    *uuid.UUID             `json:"doctor_id,omitempty"`
	DoctorName  string                 `json:"doctor_name,omitempty"`
	Diagnosis   string                 `json:"diagnosis,omitempty"`
	Medications map[string]interface{} `json:"medications,omitempty"`
	Notes       string                 `json:"notes,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
