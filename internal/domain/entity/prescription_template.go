package entity

import (
	"time"

	"github.com/google/uuid"
)

// PrescriptionTemplate is a reusable prescription preset owned by a doctor
type PrescriptionTemplate struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	DoctorID    *uuid.UUID `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	Diagnosis   string     `gorm:"type:varchar(255)" json:"diagnosis,omitempty"`
	Medications JSON       `gorm:"type:jsonb" json:"medications,omitempty"`
	Notes       string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (PrescriptionTemplate) TableName() string {
	return "prescription_templates"
}

// PrescriptionTemplateFilter is a domain-level filter for querying templates.
// Search matches name and diagnosis (ILIKE).
type PrescriptionTemplateFilter struct {
	Search   string
	DoctorID uuid.UUID
}
