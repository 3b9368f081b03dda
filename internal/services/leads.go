package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/broomworks/leadgen-backend/internal/clock"
	"github.com/broomworks/leadgen-backend/internal/logger"
	"github.com/broomworks/leadgen-backend/internal/repos"
	"github.com/broomworks/leadgen-backend/internal/types"
)

// LeadService is the query/update surface the sales side works against. It
// never creates leads; that is the generator's job.
type LeadService struct {
	db       *gorm.DB
	log      *logger.Logger
	leadRepo repos.LeadRepo
	clk      clock.Clock
}

func NewLeadService(db *gorm.DB, baseLog *logger.Logger, leadRepo repos.LeadRepo, clk clock.Clock) *LeadService {
	serviceLog := baseLog.With("service", "LeadService")
	return &LeadService{db: db, log: serviceLog, leadRepo: leadRepo, clk: clk}
}

func (s *LeadService) GetForCustomer(ctx context.Context, customerID uuid.UUID) ([]*types.Lead, error) {
	return s.leadRepo.GetByCustomerID(ctx, nil, customerID)
}

// ActiveByProduct returns non-redundant leads whose product name contains
// productName, optionally restricted to leads created in the last sinceDays
// days (0 means no restriction).
func (s *LeadService) ActiveByProduct(ctx context.Context, productName string, sinceDays int) ([]*types.Lead, error) {
	return s.leadRepo.GetActiveByProduct(ctx, nil, productName, sinceDays, s.clk.Now())
}

func (s *LeadService) ActiveByUrgency(ctx context.Context, tier string) ([]*types.Lead, error) {
	switch tier {
	case types.UrgencyHigh, types.UrgencyMedium, types.UrgencyLow:
	default:
		return nil, fmt.Errorf("unknown urgency tier %q", tier)
	}
	return s.leadRepo.GetActiveByUrgency(ctx, nil, tier)
}

// AdvanceStatus moves a lead along the sales pipeline, enforcing the legal
// transition set. External sales tooling drives this; the lead itself is
// never deleted, only moved or closed.
func (s *LeadService) AdvanceStatus(ctx context.Context, id uuid.UUID, to string) error {
	lead, err := s.leadRepo.GetByID(ctx, nil, id)
	if err != nil {
		return fmt.Errorf("fetch lead %s: %w", id, err)
	}
	if !types.ValidStatusTransition(lead.Status, to) {
		return &types.InvalidStatusTransitionError{From: lead.Status, To: to}
	}
	if err := s.leadRepo.UpdateStatus(ctx, nil, id, to); err != nil {
		return fmt.Errorf("update lead %s status: %w", id, err)
	}
	s.log.Info("Lead status advanced", "lead_id", id, "from", lead.Status, "to", to)
	return nil
}
