package entity

import (
	"time"

	"github.com/google/uuid"
)

// Supplier represents an inventory supplier contact
type Supplier struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	ContactPerson string    `gorm:"type:varchar(255)" json:"contact_person,omitempty"`
	Phone         string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Email         string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Address       string    `gorm:"type:text" json:"address,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

// InventoryAlert tracks a stock item against its reorder threshold
type InventoryAlert struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ItemName   string     `gorm:"type:varchar(255);not null" json:"item_name"`
	Category   string     `gorm:"type:varchar(100);index" json:"category,omitempty"`
	Quantity   int        `gorm:"default:0" json:"quantity"`
	Threshold  int        `gorm:"default:0" json:"threshold"`
	Status     string     `gorm:"type:varchar(20);default:'OK';index" json:"status"`
	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Supplier *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}

func (InventoryAlert) TableName() string {
	return "inventory_alerts"
}

// Inventory alert statuses
const (
	InventoryStatusOK         = "OK"
	InventoryStatusLowStock   = "Low Stock"
	InventoryStatusOutOfStock = "Out of Stock"
)

// SupplierFilter is a domain-level filter for querying suppliers.
// Search matches name and contact person (ILIKE).
type SupplierFilter struct {
	Search string
}

// InventoryAlertFilter is a domain-level filter for querying inventory alerts.
// Search matches the item name (ILIKE).
type InventoryAlertFilter struct {
	Search   string
	Category string
	Status   string
}
