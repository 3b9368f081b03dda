package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/broomworks/leadgen-backend/internal/types"
)

func TestIsRedundantForecast(t *testing.T) {
	customerID := uuid.New()
	productID := uuid.New()
	otherProduct := uuid.New()
	predicted := date(2024, time.August, 15)

	forecast := &types.Forecast{
		CustomerID:            customerID,
		ProductInterest:       productID,
		PredictedNextPurchase: predicted,
	}

	cases := []struct {
		name     string
		existing []*types.Lead
		want     bool
	}{
		{
			name: "exact_triple_match",
			existing: []*types.Lead{
				{CustomerID: customerID, ProductInterest: productID, PredictedNextPurchase: predicted},
			},
			want: true,
		},
		{
			name:     "no_existing_leads",
			existing: nil,
			want:     false,
		},
		{
			name: "one_day_off_is_not_redundant",
			existing: []*types.Lead{
				{CustomerID: customerID, ProductInterest: productID, PredictedNextPurchase: predicted.AddDate(0, 0, 1)},
			},
			want: false,
		},
		{
			name: "different_product",
			existing: []*types.Lead{
				{CustomerID: customerID, ProductInterest: otherProduct, PredictedNextPurchase: predicted},
			},
			want: false,
		},
		{
			name: "different_customer",
			existing: []*types.Lead{
				{CustomerID: uuid.New(), ProductInterest: productID, PredictedNextPurchase: predicted},
			},
			want: false,
		},
		{
			name: "redundant_rows_do_not_block",
			existing: []*types.Lead{
				{CustomerID: customerID, ProductInterest: productID, PredictedNextPurchase: predicted, IsRedundant: true},
			},
			want: false,
		},
		{
			name: "match_among_several",
			existing: []*types.Lead{
				{CustomerID: customerID, ProductInterest: otherProduct, PredictedNextPurchase: predicted},
				{CustomerID: customerID, ProductInterest: productID, PredictedNextPurchase: predicted},
			},
			want: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IsRedundantForecast(forecast, tc.existing)
			if got != tc.want {
				t.Fatalf("IsRedundantForecast: want=%v got=%v", tc.want, got)
			}
		})
	}
}
