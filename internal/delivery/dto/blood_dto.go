package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBloodDonorRequest struct {
	Name             string `json:"name" validate:"required,min=2"`
	Phone            string `json:"phone" validate:"omitempty,min=7"`
	Email            string `json:"email" validate:"omitempty,email"`
	BloodType        string `json:"blood_type" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	LastDonationDate string `json:"last_donation_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateBloodDonorRequest struct {
	Name             *string `json:"name" validate:"omitempty,min=2"`
	Phone            *string `json:"phone" validate:"omitempty,min=7"`
	Email            *string `json:"email" validate:"omitempty,email"`
	BloodType        *string `json:"blood_type" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	LastDonationDate *string `json:"last_donation_date" validate:"omitempty,datetime=2006-01-02"`
	TotalDonations   *int    `json:"total_donations" validate:"omitempty,gte=0"`
}

type CreateBloodUnitRequest struct {
	BloodType   string     `json:"blood_type" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Status      string     `json:"status" validate:"omitempty,oneof=Available Reserved Issued Expired"`
	DonorID     *uuid.UUID `json:"donor_id" validate:"omitempty"`
	VolumeML    int        `json:"volume_ml" validate:"omitempty,gte=1"`
	CollectedAt string     `json:"collected_at" validate:"required,datetime=2006-01-02"`
	ExpiresAt   string     `json:"expires_at" validate:"required,datetime=2006-01-02"`
}

type UpdateBloodUnitRequest struct {
	BloodType *string `json:"blood_type" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Status    *string `json:"status" validate:"omitempty,oneof=Available Reserved Issued Expired"`
	VolumeML  *int    `json:"volume_ml" validate:"omitempty,gte=1"`
	ExpiresAt *string `json:"expires_at" validate:"omitempty,datetime=2006-01-02"`
}

type CreateBloodIssueRequest struct {
	UnitID    uuid.UUID `json:"unit_id" validate:"required"`
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	Notes     string    `json:"notes" validate:"omitempty"`
}

// Response DTOs

type BloodDonorResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone,omitempty"`
	Email            string    `json:"email,omitempty"`
	BloodType        string    `json:"blood_type"`
	LastDonationDate string    `json:"last_donation_date,omitempty"`
	TotalDonations   int       `json:"total_donations"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type BloodUnitResponse struct {
	ID          uuid.UUID  `json:"id"`
	BloodType   string     `json:"blood_type"`
	Status      string     `json:"status"`
	DonorID     *uuid.UUID `json:"donor_id,omitempty"`
	DonorName   string     `json:"donor_name,omitempty"`
	VolumeML    int        `json:"volume_ml"`
	CollectedAt string     `json:"collected_at"`
	ExpiresAt   string     `json:"expires_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type BloodIssueResponse struct {
	ID          uuid.UUID `json:"id"`
	UnitID      uuid.UUID `json:"unit_id"`
	BloodType   string    `json:"blood_type,omitempty"`
	PatientID   uuid.UUID `json:"patient_id"`
	PatientName string    `json:"patient_name,omitempty"`
	IssuedAt    time.Time `json:"issued_at"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BloodStockItem struct {
	BloodType  string `json:"blood_type"`
	TotalUnits int64  `json:"totalUnits"`
}

type BloodStockResponse struct {
	Items      []BloodStockItem `json:"items"`
	TotalUnits int64            `json:"totalUnits"`
}

type BloodStockByTypeResponse struct {
	BloodType  string              `json:"blood_type"`
	Items      []BloodUnitResponse `json:"items"`
	TotalUnits int64               `json:"totalUnits"`
}
