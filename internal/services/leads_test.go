package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/broomworks/leadgen-backend/internal/clock"
	"github.com/broomworks/leadgen-backend/internal/logger"
	"github.com/broomworks/leadgen-backend/internal/types"
)

func testLeadService(t *testing.T, leadRepo *fakeLeadRepo, now time.Time) *LeadService {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return NewLeadService(nil, log, leadRepo, clock.Fixed(now))
}

func TestAdvanceStatus(t *testing.T) {
	leadRepo := &fakeLeadRepo{}
	lead := &types.Lead{
		ID:                    uuid.New(),
		CustomerID:            uuid.New(),
		ProductInterest:       uuid.New(),
		PredictedNextPurchase: date(2024, time.August, 1),
		Status:                types.LeadStatusNew,
	}
	leadRepo.leads = append(leadRepo.leads, lead)
	svc := testLeadService(t, leadRepo, date(2024, time.June, 1))

	if err := svc.AdvanceStatus(context.Background(), lead.ID, types.LeadStatusContacted); err != nil {
		t.Fatalf("New -> Contacted: %v", err)
	}
	if lead.Status != types.LeadStatusContacted {
		t.Fatalf("status after advance: want=%q got=%q", types.LeadStatusContacted, lead.Status)
	}

	err := svc.AdvanceStatus(context.Background(), lead.ID, types.LeadStatusConverted)
	var invalid *types.InvalidStatusTransitionError
	if !errors.As(err, &invalid) {
		t.Fatalf("Contacted -> Converted should be rejected, got %v", err)
	}
	if lead.Status != types.LeadStatusContacted {
		t.Fatalf("status must be unchanged after rejected transition, got %q", lead.Status)
	}
}

func TestAdvanceStatusUnknownLead(t *testing.T) {
	svc := testLeadService(t, &fakeLeadRepo{}, date(2024, time.June, 1))
	if err := svc.AdvanceStatus(context.Background(), uuid.New(), types.LeadStatusContacted); err == nil {
		t.Fatalf("advancing a missing lead must fail")
	}
}

func TestActiveByProductUsesInjectedClock(t *testing.T) {
	leadRepo := &fakeLeadRepo{}
	now := date(2024, time.June, 1)
	svc := testLeadService(t, leadRepo, now)

	if _, err := svc.ActiveByProduct(context.Background(), "Honda", 30); err != nil {
		t.Fatalf("ActiveByProduct: %v", err)
	}
	if !leadRepo.byProductNow.Equal(now) {
		t.Fatalf("recency cutoff must come from the injected clock: want=%v got=%v", now, leadRepo.byProductNow)
	}
}

func TestActiveByUrgencyRejectsUnknownTier(t *testing.T) {
	svc := testLeadService(t, &fakeLeadRepo{}, date(2024, time.June, 1))
	if _, err := svc.ActiveByUrgency(context.Background(), "Critical"); err == nil {
		t.Fatalf("unknown tier must be rejected")
	}
}
