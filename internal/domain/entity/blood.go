package entity

import (
	"time"

	"github.com/google/uuid"
)

// BloodDonor represents a registered blood donor
type BloodDonor struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name             string     `gorm:"type:varchar(255);not null" json:"name"`
	Phone            string     `gorm:"type:varchar(30);index" json:"phone,omitempty"`
	Email            string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	BloodType        string     `gorm:"type:varchar(5);not null;index" json:"blood_type"`
	LastDonationDate *time.Time `gorm:"type:date" json:"last_donation_date,omitempty"`
	TotalDonations   int        `gorm:"default:0" json:"total_donations"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BloodDonor) TableName() string {
	return "blood_donors"
}

// BloodUnit represents a single collected unit in the blood bank inventory
type BloodUnit struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BloodType   string     `gorm:"type:varchar(5);not null;index" json:"blood_type"`
	Status      string     `gorm:"type:varchar(20);default:'Available';index" json:"status"`
	DonorID     *uuid.UUID `gorm:"type:uuid;index" json:"donor_id,omitempty"`
	VolumeML    int        `gorm:"default:450" json:"volume_ml"`
	CollectedAt time.Time  `gorm:"type:date;not null" json:"collected_at"`
	ExpiresAt   time.Time  `gorm:"type:date;not null" json:"expires_at"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Donor *BloodDonor `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
}

func (BloodUnit) TableName() string {
	return "blood_units"
}

// Blood unit statuses
const (
	BloodUnitStatusAvailable = "Available"
	BloodUnitStatusReserved  = "Reserved"
	BloodUnitStatusIssued    = "Issued"
	BloodUnitStatusExpired   = "Expired"
)

// BloodIssue records a blood unit issued to a patient
type BloodIssue struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UnitID    uuid.UUID `gorm:"type:uuid;not null;index" json:"unit_id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	IssuedAt  time.Time `gorm:"not null" json:"issued_at"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Unit    *BloodUnit `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	Patient *Patient   `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (BloodIssue) TableName() string {
	return "blood_issues"
}

// BloodStockCount is a grouped projection of available units per blood type.
type BloodStockCount struct {
	BloodType string `json:"blood_type"`
	Total     int64  `json:"total"`
}

// BloodDonorFilter is a domain-level filter for querying donors.
// Search matches name and phone (ILIKE).
type BloodDonorFilter struct {
	Search    string
	BloodType string
}

// BloodUnitFilter is a domain-level filter for querying blood units.
type BloodUnitFilter struct {
	BloodType string
	Status    string
}
