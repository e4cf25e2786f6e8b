package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/kanakraj/jewelpos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Ornament is a unique, serialized inventory item. OrnamentID is the scan
// code printed on the physical tag. IsSold transitions false -> true exactly
// once, inside the sale finalization transaction, and never reverts.
type Ornament struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	OrnamentID   string            `gorm:"size:100;uniqueIndex;not null" json:"ornament_id"`
	Type         enum.OrnamentType `gorm:"size:50;not null;index" json:"type"`
	Weight       float64           `gorm:"not null" json:"weight"`
	Purity       string            `gorm:"size:50" json:"purity"`
	CostPrice    int64             `gorm:"not null" json:"cost_price"` // whole currency units
	MerchantCode string            `gorm:"size:100;not null;index" json:"merchant_code"`
	IsSold       bool              `gorm:"not null;default:false;index" json:"is_sold"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	DeletedAt    gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Merchant Merchant `gorm:"foreignKey:MerchantCode;references:Code" json:"-"`
}

// BeforeCreate generates a UUID before creating a new ornament
func (o *Ornament) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Ornament model
func (Ornament) TableName() string {
	return "ornaments"
}

// Status returns the display status used by merchant inventory views.
func (o *Ornament) Status() string {
	if o.IsSold {
		return "sold"
	}
	return "in_stock"
}
