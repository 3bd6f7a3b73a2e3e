package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot  string    `json:"time_slot" validate:"required"`
	Status    string    `json:"status" validate:"omitempty,oneof=Scheduled Confirmed Completed Cancelled"`
	Reason    string    `json:"reason" validate:"omitempty"`
	Notes     string    `json:"notes" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	Date     *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	TimeSlot *string `json:"time_slot" validate:"omitempty"`
	Status   *string `json:"status" validate:"omitempty,oneof=Scheduled Confirmed Completed Cancelled"`
	Reason   *string `json:"reason" validate:"omitempty"`
	Notes    *string `json:"notes" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	PatientName string    `json:"patient_name,omitempty"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	DoctorName  string    `json:"doctor_name,omitempty"`
	Date        string    `json:"date"`
	TimeSlot    string    `json:"time_slot"`
	Status      string    `json:"status"`
	Reason      string    `json:"reason,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
