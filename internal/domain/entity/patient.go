package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a registered patient record
type Patient struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string     `gorm:"type:varchar(255);not null" json:"name"`
	Email          string     `gorm:"type:varchar(255);index" json:"email,omitempty"`
	Phone          string     `gorm:"type:varchar(30);index" json:"phone,omitempty"`
	Gender         string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	DateOfBirth    *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Address        string     `gorm:"type:text" json:"address,omitempty"`
	BloodGroup     string     `gorm:"type:varchar(5);index" json:"blood_group,omitempty"`
	MedicalHistory string     `gorm:"type:text" json:"medical_history,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// PatientFilter is a domain-level filter for querying patients.
// Search matches name, email and phone (ILIKE).
type PatientFilter struct {
	Search     string
	Gender     string
	BloodGroup string
}
