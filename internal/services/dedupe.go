package services

import (
	"github.com/broomworks/leadgen-backend/internal/types"
	"github.com/broomworks/leadgen-backend/internal/utils"
)

// IsRedundantForecast reports whether an equivalent non-redundant lead
// already exists for the forecast's (customer, product, predicted date)
// triple. Matching is exact: a forecast even one day off a prior lead's
// predicted date is NOT redundant, since it reflects newer purchase data.
//
// This is an optimistic pre-check only; the partial unique index in the
// store is the source of truth under concurrent generation.
func IsRedundantForecast(forecast *types.Forecast, existing []*types.Lead) bool {
	if forecast == nil {
		return false
	}
	predicted := utils.DateOnly(forecast.PredictedNextPurchase)
	for _, lead := range existing {
		if lead.IsRedundant {
			continue
		}
		if lead.CustomerID == forecast.CustomerID &&
			lead.ProductInterest == forecast.ProductInterest &&
			utils.DateOnly(lead.PredictedNextPurchase).Equal(predicted) {
			return true
		}
	}
	return false
}
