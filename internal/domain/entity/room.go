package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Room represents a ward or private room
type Room struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Number       string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"number"`
	Type         string          `gorm:"type:varchar(20);not null;index" json:"type"`
	Floor        int             `gorm:"default:0" json:"floor"`
	BedCount     int             `gorm:"default:1" json:"bed_count"`
	ChargePerDay decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"charge_per_day"`
	Status       string          `gorm:"type:varchar(20);default:'Available';index" json:"status"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Room) TableName() string {
	return "rooms"
}

// Room types
const (
	RoomTypeGeneral = "General"
	RoomTypePrivate = "Private"
	RoomTypeICU     = "ICU"
)

// Room statuses
const (
	RoomStatusAvailable   = "Available"
	RoomStatusOccupied    = "Occupied"
	RoomStatusMaintenance = "Maintenance"
)

// RoomAllotment assigns a patient to a room until discharge
type RoomAllotment struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoomID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"room_id"`
	PatientID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	AllottedAt   time.Time  `gorm:"not null" json:"allotted_at"`
	DischargedAt *time.Time `json:"discharged_at,omitempty"`
	Notes        string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Room    *Room    `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (RoomAllotment) TableName() string {
	return "room_allotments"
}

// RoomFilter is a domain-level filter for querying rooms.
// Search matches the room number (ILIKE).
type RoomFilter struct {
	Search string
	Type   string
	Status string
}

// RoomAllotmentFilter is a domain-level filter for querying allotments.
// Active selects allotments without a discharge date.
type RoomAllotmentFilter struct {
	RoomID    uuid.UUID
	PatientID uuid.UUID
	Active    *bool
}
