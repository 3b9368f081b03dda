package services

import (
	"math"
	"time"

	"github.com/broomworks/leadgen-backend/internal/types"
	"github.com/broomworks/leadgen-backend/internal/utils"
)

const (
	urgencyHighMaxDays   = 30
	urgencyMediumMaxDays = 90
)

// ForecastNextPurchase predicts when a customer buys next: the last purchase
// date plus the rounded average cycle, with calendar-aware date arithmetic.
// Returns nil when the profile has no established cycle.
func ForecastNextPurchase(profile *types.CustomerCycleProfile, now time.Time) *types.Forecast {
	if profile == nil || profile.AverageCycleDays == nil {
		return nil
	}

	cycleDays := int(math.Round(*profile.AverageCycleDays))
	predicted := profile.LastPurchaseDate.AddDate(0, 0, cycleDays)

	return &types.Forecast{
		CustomerID:            profile.CustomerID,
		ProductInterest:       profile.LastProductID,
		LastPurchaseDate:      profile.LastPurchaseDate,
		PredictedNextPurchase: predicted,
		CycleDaysUsed:         cycleDays,
		UrgencyTier:           UrgencyTier(predicted, now),
	}
}

// UrgencyTier classifies how soon the predicted purchase lands relative to
// now: within 30 days is High, within 90 is Medium, beyond that Low. A
// prediction already in the past is High as well; an overdue cycle is the
// most urgent outreach there is.
func UrgencyTier(predicted, now time.Time) string {
	daysUntil := utils.DaysBetween(now, predicted)
	switch {
	case daysUntil <= urgencyHighMaxDays:
		return types.UrgencyHigh
	case daysUntil <= urgencyMediumMaxDays:
		return types.UrgencyMedium
	default:
		return types.UrgencyLow
	}
}
