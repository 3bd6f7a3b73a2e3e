package entity

import (
	"time"

	"github.com/google/uuid"
)

// Ambulance represents a fleet vehicle
type Ambulance struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VehicleNumber string    `gorm:"type:varchar(30);uniqueIndex;not null" json:"vehicle_number"`
	Model         string    `gorm:"type:varchar(100)" json:"model,omitempty"`
	DriverName    string    `gorm:"type:varchar(255)" json:"driver_name,omitempty"`
	DriverPhone   string    `gorm:"type:varchar(30)" json:"driver_phone,omitempty"`
	Status        string    `gorm:"type:varchar(20);default:'Available';index" json:"status"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Ambulance) TableName() string {
	return "ambulances"
}

// Ambulance statuses
const (
	AmbulanceStatusAvailable   = "Available"
	AmbulanceStatusOnCall      = "On Call"
	AmbulanceStatusMaintenance = "Maintenance"
)

// EmergencyCall represents an incoming emergency request and its dispatch state
type EmergencyCall struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CallerName  string     `gorm:"type:varchar(255);not null" json:"caller_name"`
	Phone       string     `gorm:"type:varchar(30);not null" json:"phone"`
	Location    string     `gorm:"type:text;not null" json:"location"`
	AmbulanceID *uuid.UUID `gorm:"type:uuid;index" json:"ambulance_id,omitempty"`
	Status      string     `gorm:"type:varchar(20);default:'Pending';index" json:"status"`
	ReceivedAt  time.Time  `gorm:"not null" json:"received_at"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Ambulance *Ambulance `gorm:"foreignKey:AmbulanceID" json:"ambulance,omitempty"`
}

func (EmergencyCall) TableName() string {
	return "emergency_calls"
}

// Emergency call statuses
const (
	EmergencyCallStatusPending    = "Pending"
	EmergencyCallStatusDispatched = "Dispatched"
	EmergencyCallStatusCompleted  = "Completed"
	EmergencyCallStatusCancelled  = "Cancelled"
)

// AmbulanceFilter is a domain-level filter for querying ambulances.
// Search matches vehicle number and driver name (ILIKE).
type AmbulanceFilter struct {
	Search string
	Status string
}

// EmergencyCallFilter is a domain-level filter for querying emergency calls.
// Search matches caller name and location (ILIKE).
type EmergencyCallFilter struct {
	Search string
	Status string
}
