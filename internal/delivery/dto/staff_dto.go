package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateStaffRequest struct {
	Name        string          `json:"name" validate:"required,min=2"`
	Email       string          `json:"email" validate:"required,email"`
	Phone       string          `json:"phone" validate:"omitempty,min=7"`
	Designation string          `json:"designation" validate:"omitempty"`
	Department  string          `json:"department" validate:"omitempty"`
	Salary      decimal.Decimal `json:"salary" validate:"omitempty"`
	JoinedAt    string          `json:"joined_at" validate:"omitempty,datetime=2006-01-02"`
	Status      string          `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type UpdateStaffRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=2"`
	Email       *string          `json:"email" validate:"omitempty,email"`
	Phone       *string          `json:"phone" validate:"omitempty,min=7"`
	Designation *string          `json:"designation" validate:"omitempty"`
	Department  *string          `json:"department" validate:"omitempty"`
	Salary      *decimal.Decimal `json:"salary" validate:"omitempty"`
	JoinedAt    *string          `json:"joined_at" validate:"omitempty,datetime=2006-01-02"`
	Status      *string          `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type CreateAttendanceRequest struct {
	StaffID  uuid.UUID `json:"staff_id" validate:"required"`
	Date     string    `json:"date" validate:"required,datetime=2006-01-02"`
	CheckIn  string    `json:"check_in" validate:"omitempty"`
	CheckOut string    `json:"check_out" validate:"omitempty"`
	Status   string    `json:"status" validate:"omitempty,oneof=Present Absent Leave"`
}

type UpdateAttendanceRequest struct {
	CheckIn  *string `json:"check_in" validate:"omitempty"`
	CheckOut *string `json:"check_out" validate:"omitempty"`
	Status   *string `json:"status" validate:"omitempty,oneof=Present Absent Leave"`
}

// Response DTOs

type StaffResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone,omitempty"`
	Designation string          `json:"designation,omitempty"`
	Department  string          `json:"department,omitempty"`
	Salary      decimal.Decimal `json:"salary"`
	JoinedAt    string          `json:"joined_at,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type AttendanceResponse struct {
	ID        uuid.UUID  `json:"id"`
	StaffID   uuid.UUID  `json:"staff_id"`
	StaffName string     `json:"staff_name,omitempty"`
	Date      string     `json:"date"`
	CheckIn   *time.Time `json:"check_in,omitempty"`
	CheckOut  *time.Time `json:"check_out,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
