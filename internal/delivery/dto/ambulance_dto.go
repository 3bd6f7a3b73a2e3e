package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAmbulanceRequest struct {
	VehicleNumber string `json:"vehicle_number" validate:"required"`
	Model         string `json:"model" validate:"omitempty"`
	DriverName    string `json:"driver_name" validate:"omitempty"`
	DriverPhone   string `json:"driver_phone" validate:"omitempty,min=7"`
	Status        string `json:"status" validate:"omitempty,oneof=Available 'On Call' Maintenance"`
}

type UpdateAmbulanceRequest struct {
	VehicleNumber *string `json:"vehicle_number" validate:"omitempty"`
	Model         *string `json:"model" validate:"omitempty"`
	DriverName    *string `json:"driver_name" validate:"omitempty"`
	DriverPhone   *string `json:"driver_phone" validate:"omitempty,min=7"`
	Status        *string `json:"status" validate:"omitempty,oneof=Available 'On Call' Maintenance"`
}

type CreateEmergencyCallRequest struct {
	CallerName string `json:"caller_name" validate:"required,min=2"`
	Phone      string `json:"phone" validate:"required,min=7"`
	Location   string `json:"location" validate:"required"`
}

type UpdateEmergencyCallRequest struct {
	CallerName  *string    `json:"caller_name" validate:"omitempty,min=2"`
	Phone       *string    `json:"phone" validate:"omitempty,min=7"`
	Location    *string    `json:"location" validate:"omitempty"`
	AmbulanceID *uuid.UUID `json:"ambulance_id" validate:"omitempty"`
	Status      *string    `json:"status" validate:"omitempty,oneof=Pending Dispatched Completed Cancelled"`
}

// Response DTOs

type AmbulanceResponse struct {
	ID            uuid.UUID `json:"id"`
	VehicleNumber string    `json:"vehicle_number"`
	Model         string    `json:"model,omitempty"`
	DriverName    string    `json:"driver_name,omitempty"`
	DriverPhone   string    `json:"driver_phone,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type EmergencyCallResponse struct {
	ID            uuid.UUID  `json:"id"`
	CallerName    string     `json:"caller_name"`
	Phone         string     `json:"phone"`
	Location      string     `json:"location"`
	AmbulanceID   *uuid.UUID `json:"ambulance_id,omitempty"`
	VehicleNumber string     `json:"vehicle_number,omitempty"`
	Status        string     `json:"status"`
	ReceivedAt    time.Time  `json:"received_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
