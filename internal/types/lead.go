package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	UrgencyHigh   = "High"
	UrgencyMedium = "Medium"
	UrgencyLow    = "Low"
)

const (
	LeadStatusNew       = "New"
	LeadStatusContacted = "Contacted"
	LeadStatusQualified = "Qualified"
	LeadStatusConverted = "Converted"
	LeadStatusClosed    = "Closed"
)

// LeadSourcePredictive marks leads produced by the forecasting pipeline, as
// opposed to leads entered by sales staff through other channels.
const LeadSourcePredictive = "Predictive Analysis"

// Lead rows are never hard-deleted. At most one lead with IsRedundant=false
// may exist per (customer_id, product_interest, predicted_next_purchase)
// triple; the partial unique index created in internal/db enforces this.
// Suppressed duplicates are still inserted with IsRedundant=true so the
// attempt is auditable.
type Lead struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID            uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer              *Customer `gorm:"constraint:OnDelete:CASCADE;foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	ProductInterest       uuid.UUID `gorm:"type:uuid;not null;index" json:"product_interest"`
	Product               *Product  `gorm:"constraint:OnDelete:RESTRICT;foreignKey:ProductInterest;references:ID" json:"product,omitempty"`
	LastPurchaseDate      time.Time `gorm:"type:date;not null" json:"last_purchase_date"`
	PredictedNextPurchase time.Time `gorm:"type:date;not null" json:"predicted_next_purchase"`
	CycleDays             int       `gorm:"not null" json:"cycle_days"`
	UrgencyTier           string    `gorm:"not null;index" json:"urgency_tier"`
	Status                string    `gorm:"not null;default:'New';index" json:"status"`
	Source                string    `gorm:"not null" json:"source"`
	Notes                 string    `json:"notes,omitempty"`
	IsRedundant           bool      `gorm:"not null;default:false;index" json:"is_redundant"`
	CreatedAt             time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt             time.Time `gorm:"not null" json:"updated_at"`
}

func (Lead) TableName() string { return "lead" }

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// ValidStatusTransition reports whether a lead may move from one status to
// another. The sales pipeline advances New -> Contacted -> Qualified ->
// Converted; Closed is reachable from any state except Converted.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case LeadStatusNew:
		return to == LeadStatusContacted || to == LeadStatusClosed
	case LeadStatusContacted:
		return to == LeadStatusQualified || to == LeadStatusClosed
	case LeadStatusQualified:
		return to == LeadStatusConverted || to == LeadStatusClosed
	default:
		return false
	}
}
