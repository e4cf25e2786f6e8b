package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Merchant owns ornaments taken in on consignment. Merchants are created
// independently of the sale flow and never mutated by it.
type Merchant struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code      string         `gorm:"size:100;uniqueIndex;not null" json:"merchant_code"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Phone     string         `gorm:"size:50" json:"phone"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Ornaments []Ornament `gorm:"foreignKey:MerchantCode;references:Code" json:"-"`
}

// BeforeCreate generates a UUID before creating a new merchant
func (m *Merchant) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Merchant model
func (Merchant) TableName() string {
	return "merchants"
}

// MerchantStats is aggregated inventory information for a merchant.
// Not a database entity; composed at read time.
type MerchantStats struct {
	TotalOrnaments int   `json:"total_ornaments"`
	InStock        int   `json:"in_stock"`
	Sold           int   `json:"sold"`
	TotalValue     int64 `json:"total_value"`
}
