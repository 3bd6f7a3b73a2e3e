package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service represents a billable medical service in the catalog
type Service struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Category    string          `gorm:"type:varchar(100);index" json:"category,omitempty"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Status      string          `gorm:"type:varchar(20);default:'Active';index" json:"status"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Service) TableName() string {
	return "services"
}

// Service statuses
const (
	ServiceStatusActive   = "Active"
	ServiceStatusInactive = "Inactive"
)

// ServiceFilter is a domain-level filter for querying services.
// Search matches the service name (ILIKE).
type ServiceFilter struct {
	Search   string
	Category string
	Status   string
}
