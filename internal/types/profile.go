package types

import (
	"time"

	"github.com/google/uuid"
)

// CustomerCycleProfile is derived from a customer's ordered purchase history
// and never persisted. AverageCycleDays stays nil until the customer has at
// least two purchases, since one event yields no inter-purchase gap.
type CustomerCycleProfile struct {
	CustomerID       uuid.UUID
	LastPurchaseDate time.Time
	LastProductID    uuid.UUID
	AverageCycleDays *float64
	TotalPurchases   int
}

// Forecast is ephemeral: urgency is relative to "now", so it is recomputed at
// generation time rather than stored.
type Forecast struct {
	CustomerID            uuid.UUID
	ProductInterest       uuid.UUID
	LastPurchaseDate      time.Time
	PredictedNextPurchase time.Time
	CycleDaysUsed         int
	UrgencyTier           string
}
