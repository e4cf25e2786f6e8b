package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill is an immutable record of a completed sale. It exclusively owns its
// BillItems; nothing updates a bill after the finalization transaction
// commits.
type Bill struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BillNo        string         `gorm:"size:100;uniqueIndex;not null" json:"bill_no"`
	ClientID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"client_id"`
	SubTotal      int64          `gorm:"not null" json:"sub_total"` // whole currency units
	Tax           int64          `gorm:"not null" json:"tax"`
	TotalAmount   int64          `gorm:"not null" json:"total_amount"`
	PaymentMethod string         `gorm:"size:50" json:"payment_method"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Client Client     `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Items  []BillItem `gorm:"foreignKey:BillID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// BillItem is one sold ornament on a bill. SellingPrice is the price locked
// in at commit time; later changes to the ornament's cost never touch it.
// The unique index on OrnamentRef guarantees an ornament appears on at most
// one bill across all time.
type BillItem struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BillID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"bill_id"`
	OrnamentRef  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"ornament_ref"`
	SellingPrice int64          `gorm:"not null" json:"selling_price"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Bill     Bill     `gorm:"foreignKey:BillID" json:"-"`
	Ornament Ornament `gorm:"foreignKey:OrnamentRef" json:"ornament,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bill item
func (bi *BillItem) BeforeCreate(tx *gorm.DB) error {
	if bi.ID == uuid.Nil {
		bi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}
