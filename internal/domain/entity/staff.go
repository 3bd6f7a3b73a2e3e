package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Staff represents a non-doctor employee record
type Staff struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Email       string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone       string          `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Designation string          `gorm:"type:varchar(100);index" json:"designation,omitempty"`
	Department  string          `gorm:"type:varchar(100);index" json:"department,omitempty"`
	Salary      decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"salary"`
	JoinedAt    *time.Time      `gorm:"type:date" json:"joined_at,omitempty"`
	Status      string          `gorm:"type:varchar(20);default:'Active';index" json:"status"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Staff) TableName() string {
	return "staff"
}

// Staff statuses
const (
	StaffStatusActive   = "Active"
	StaffStatusInactive = "Inactive"
)

// Attendance represents a single day attendance entry for a staff member
type Attendance struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StaffID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"staff_id"`
	Date      time.Time  `gorm:"type:date;not null;index" json:"date"`
	CheckIn   *time.Time `json:"check_in,omitempty"`
	CheckOut  *time.Time `json:"check_out,omitempty"`
	Status    string     `gorm:"type:varchar(20);default:'Present';index" json:"status"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Staff *Staff `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

func (Attendance) TableName() string {
	return "attendance"
}

// Attendance statuses
const (
	AttendanceStatusPresent = "Present"
	AttendanceStatusAbsent  = "Absent"
	AttendanceStatusLeave   = "Leave"
)

// StaffFilter is a domain-level filter for querying staff.
// Search matches name and email (ILIKE).
type StaffFilter struct {
	Search      string
	Designation string
	Department  string
	Status      string
}

// AttendanceFilter is a domain-level filter for querying attendance entries.
type AttendanceFilter struct {
	StaffID uuid.UUID
	Date    string // Format: YYYY-MM-DD
	Status  string
}
