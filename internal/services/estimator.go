package services

import (
	"github.com/broomworks/leadgen-backend/internal/types"
	"github.com/broomworks/leadgen-backend/internal/utils"
)

// EstimateCycle derives a customer's buying-cycle profile from an ordered
// purchase history. The average is the mean over every consecutive gap, not
// just the latest one, so a long consistent history smooths a single
// irregular purchase.
//
// Fewer than two events leave AverageCycleDays nil: no gap exists to average.
// A zero-day gap (two purchases on the same day) is valid and included;
// whether that indicates a data-entry duplicate is the caller's call.
func EstimateCycle(history []*types.PurchaseEvent) *types.CustomerCycleProfile {
	if len(history) == 0 {
		return nil
	}

	last := history[len(history)-1]
	profile := &types.CustomerCycleProfile{
		CustomerID:       last.CustomerID,
		LastPurchaseDate: utils.DateOnly(last.PurchaseDate),
		LastProductID:    last.ProductID,
		TotalPurchases:   len(history),
	}

	if len(history) < 2 {
		return profile
	}

	total := 0
	for i := 1; i < len(history); i++ {
		total += utils.DaysBetween(history[i-1].PurchaseDate, history[i].PurchaseDate)
	}
	avg := float64(total) / float64(len(history)-1)
	profile.AverageCycleDays = &avg
	return profile
}
