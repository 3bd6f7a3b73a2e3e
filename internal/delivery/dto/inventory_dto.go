package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateSupplierRequest struct {
	Name          string `json:"name" validate:"required,min=2"`
	ContactPerson string `json:"contact_person" validate:"omitempty"`
	Phone         string `json:"phone" validate:"omitempty,min=7"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address" validate:"omitempty"`
}

type UpdateSupplierRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=2"`
	ContactPerson *string `json:"contact_person" validate:"omitempty"`
	Phone         *string `json:"phone" validate:"omitempty,min=7"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Address       *string `json:"address" validate:"omitempty"`
}

type CreateInventoryAlertRequest struct {
	ItemName   string     `json:"item_name" validate:"required"`
	Category   string     `json:"category" validate:"omitempty"`
	Quantity   int        `json:"quantity" validate:"omitempty,gte=0"`
	Threshold  int        `json:"threshold" validate:"omitempty,gte=0"`
	SupplierID *uuid.UUID `json:"supplier_id" validate:"omitempty"`
}

type UpdateInventoryAlertRequest struct {
	ItemName   *string    `json:"item_name" validate:"omitempty"`
	Category   *string    `json:"category" validate:"omitempty"`
	Quantity   *int       `json:"quantity" validate:"omitempty,gte=0"`
	Threshold  *int       `json:"threshold" validate:"omitempty,gte=0"`
	SupplierID *uuid.UUID `json:"supplier_id" validate:"omitempty"`
}

// Response DTOs

type SupplierResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type InventoryAlertResponse struct {
	ID           uuid.UUID  `json:"id"`
	ItemName     string     `json:"item_name"`
	Category     string     `json:"category,omitempty"`
	Quantity     int        `json:"quantity"`
	Threshold    int        `json:"threshold"`
	Status       string     `json:"status"`
	SupplierID   *uuid.UUID `json:"supplier_id,omitempty"`
	SupplierName string     `json:"supplier_name,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
