package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateRoomRequest struct {
	Number       string          `json:"number" validate:"required"`
	Type         string          `json:"type" validate:"required,oneof=General Private ICU"`
	Floor        int             `json:"floor" validate:"omitempty,gte=0"`
	BedCount     int             `json:"bed_count" validate:"omitempty,gte=1"`
	ChargePerDay decimal.Decimal `json:"charge_per_day" validate:"omitempty"`
	Status       string          `json:"status" validate:"omitempty,oneof=Available Occupied Maintenance"`
}

type UpdateRoomRequest struct {
	Number       *string          `json:"number" validate:"omitempty"`
	Type         *string          `json:"type" validate:"omitempty,oneof=General Private ICU"`
	Floor        *int             `json:"floor" validate:"omitempty,gte=0"`
	BedCount     *int             `json:"bed_count" validate:"omitempty,gte=1"`
	ChargePerDay *decimal.Decimal `json:"charge_per_day" validate:"omitempty"`
	Status       *string          `json:"status" validate:"omitempty,oneof=Available Occupied Maintenance"`
}

type CreateRoomAllotmentRequest struct {
	RoomID    uuid.UUID `json:"room_id" validate:"required"`
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	Notes     string    `json:"notes" validate:"omitempty"`
}

type UpdateRoomAllotmentRequest struct {
	Notes     *string `json:"notes" validate:"omitempty"`
	Discharge *bool   `json:"discharge" validate:"omitempty"`
}

// Response DTOs

type RoomResponse struct {
	ID           uuid.UUID       `json:"id"`
	Number       string          `json:"number"`
	Type         string          `json:"type"`
	Floor        int             `json:"floor"`
	BedCount     int             `json:"bed_count"`
	ChargePerDay decimal.Decimal `json:"charge_per_day"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type RoomAllotmentResponse struct {
	ID           uuid.UUID  `json:"id"`
	RoomID       uuid.UUID  `json:"room_id"`
	RoomNumber   string     `json:"room_number,omitempty"`
	PatientID    uuid.UUID  `json:"patient_id"`
	PatientName  string     `json:"patient_name,omitempty"`
	AllottedAt   time.Time  `json:"allotted_at"`
	DischargedAt *time.Time `json:"discharged_at,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
