package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment links a patient with a doctor at a scheduled date and time slot
type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Date      time.Time `gorm:"type:date;not null;index" json:"date"`
	TimeSlot  string    `gorm:"type:varchar(20);not null" json:"time_slot"`
	Status    string    `gorm:"type:varchar(20);default:'Scheduled';index" json:"status"`
	Reason    string    `gorm:"type:text" json:"reason,omitempty"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Appointment statuses
const (
	AppointmentStatusScheduled = "Scheduled"
	AppointmentStatusConfirmed = "Confirmed"
	AppointmentStatusCompleted = "Completed"
	AppointmentStatusCancelled = "Cancelled"
)

// AppointmentFilter is a domain-level filter for querying appointments.
// Search matches the visit reason (ILIKE).
type AppointmentFilter struct {
	Search    string
	Status    string
	PatientID uuid.UUID
	DoctorID  uuid.UUID
	Date      string // Format: YYYY-MM-DD
}
