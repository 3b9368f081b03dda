package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PurchaseEvent is append-only: no update or delete path exists anywhere in
// the codebase. History queries order by purchase_date, then created_at, then
// id, so same-day purchases keep their insertion order.
type PurchaseEvent struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer     *Customer `gorm:"constraint:OnDelete:CASCADE;foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product      *Product  `gorm:"constraint:OnDelete:RESTRICT;foreignKey:ProductID;references:ID" json:"product,omitempty"`
	PurchaseDate time.Time `gorm:"type:date;not null;index" json:"purchase_date"`
	Amount       float64   `gorm:"not null" json:"amount"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}

func (PurchaseEvent) TableName() string { return "purchase_event" }

func (e *PurchaseEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
