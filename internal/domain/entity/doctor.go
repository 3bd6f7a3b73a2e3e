package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Doctor represents a practicing doctor record
type Doctor struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Email           string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone           string          `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Specialization  string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Department      string          `gorm:"type:varchar(100);index" json:"department,omitempty"`
	Qualification   string          `gorm:"type:varchar(255)" json:"qualification,omitempty"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"consultation_fee"`
	Status          string          `gorm:"type:varchar(20);default:'Active';index" json:"status"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Doctor statuses
const (
	DoctorStatusActive   = "Active"
	DoctorStatusInactive = "Inactive"
	DoctorStatusOnLeave  = "On Leave"
)

// DoctorFilter is a domain-level filter for querying doctors.
// Search matches name and email (ILIKE).
type DoctorFilter struct {
	Search         string
	Specialization string
	Department     string
	Status         string
}
