package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/broomworks/leadgen-backend/internal/clock"
	"github.com/broomworks/leadgen-backend/internal/logger"
	"github.com/broomworks/leadgen-backend/internal/repos"
	"github.com/broomworks/leadgen-backend/internal/types"
)

// Ledger is the slice of LedgerService the generator needs.
type Ledger interface {
	History(ctx context.Context, customerID uuid.UUID) ([]*types.PurchaseEvent, error)
}

// GeneratorService turns purchase histories into deduplicated leads:
// history -> cycle estimate -> forecast -> redundancy check -> insert.
type GeneratorService struct {
	db       *gorm.DB
	log      *logger.Logger
	ledger   Ledger
	leadRepo repos.LeadRepo
	clk      clock.Clock
}

func NewGeneratorService(db *gorm.DB, baseLog *logger.Logger, ledger Ledger, leadRepo repos.LeadRepo, clk clock.Clock) *GeneratorService {
	serviceLog := baseLog.With("service", "GeneratorService")
	return &GeneratorService{db: db, log: serviceLog, ledger: ledger, leadRepo: leadRepo, clk: clk}
}

// Generate runs the pipeline for one customer. The returned lead is nil
// unless the outcome is OutcomeGenerated or OutcomeRedundant (the redundant
// lead is the suppressed audit row).
func (s *GeneratorService) Generate(ctx context.Context, customerID uuid.UUID) (*types.Lead, types.GenerationOutcome, error) {
	history, err := s.ledger.History(ctx, customerID)
	if err != nil {
		return nil, types.OutcomeFailed, fmt.Errorf("customer %s: %w", customerID, err)
	}

	profile := EstimateCycle(history)
	if profile == nil || profile.AverageCycleDays == nil {
		s.log.Debug("Insufficient purchase history", "customer_id", customerID, "purchases", len(history))
		return nil, types.OutcomeInsufficientHistory, nil
	}

	forecast := ForecastNextPurchase(profile, s.clk.Now())

	existing, err := s.leadRepo.GetActiveByCustomerID(ctx, nil, customerID)
	if err != nil {
		return nil, types.OutcomeFailed, fmt.Errorf("customer %s: fetch existing leads: %w", customerID, err)
	}

	if IsRedundantForecast(forecast, existing) {
		lead, err := s.insertAuditLead(ctx, forecast)
		if err != nil {
			return nil, types.OutcomeFailed, err
		}
		s.log.Debug("Suppressed redundant lead", "customer_id", customerID, "predicted", forecast.PredictedNextPurchase)
		return lead, types.OutcomeRedundant, nil
	}

	lead := buildLead(forecast)
	if _, err := s.leadRepo.Create(ctx, nil, []*types.Lead{lead}); err != nil {
		// A concurrent generator won the insert race for the same triple.
		// The unique index is the source of truth, so treat the conflict
		// exactly like the pre-check finding a duplicate.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			audit, auditErr := s.insertAuditLead(ctx, forecast)
			if auditErr != nil {
				return nil, types.OutcomeFailed, auditErr
			}
			s.log.Debug("Lost lead insert race, recorded as redundant", "customer_id", customerID)
			return audit, types.OutcomeRedundant, nil
		}
		return nil, types.OutcomeFailed, fmt.Errorf("customer %s: insert lead: %w", customerID, err)
	}

	s.log.Info("Generated lead", "customer_id", customerID, "product_interest", lead.ProductInterest,
		"predicted", lead.PredictedNextPurchase.Format("2006-01-02"), "urgency", lead.UrgencyTier)
	return lead, types.OutcomeGenerated, nil
}

// GenerateAll fans out across customers with bounded parallelism. Customers
// are independent, so one failure never aborts the batch; it is tallied as
// Failed in the summary instead. onResult, when non-nil, fires once per
// customer as results land (the CLI hangs its progress bar on it).
func (s *GeneratorService) GenerateAll(ctx context.Context, customerIDs []uuid.UUID, concurrency int, onResult func(types.CustomerGenerationResult)) (*types.GenerationSummary, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	summary := &types.GenerationSummary{}
	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)

	for _, customerID := range customerIDs {
		customerID := customerID
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			lead, outcome, err := s.Generate(groupCtx, customerID)
			result := types.CustomerGenerationResult{CustomerID: customerID, Outcome: outcome}
			if lead != nil {
				id := lead.ID
				result.LeadID = &id
			}
			if err != nil {
				result.Error = err.Error()
				s.log.Warn("Lead generation failed for customer", "customer_id", customerID, "error", err)
			}

			mu.Lock()
			summary.Add(result)
			mu.Unlock()
			if onResult != nil {
				onResult(result)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return summary, err
	}

	s.log.Info("Lead generation batch complete",
		"generated", summary.Generated, "redundant", summary.Redundant,
		"insufficient", summary.Insufficient, "failed", summary.Failed)
	return summary, nil
}

func buildLead(forecast *types.Forecast) *types.Lead {
	return &types.Lead{
		CustomerID:            forecast.CustomerID,
		ProductInterest:       forecast.ProductInterest,
		LastPurchaseDate:      forecast.LastPurchaseDate,
		PredictedNextPurchase: forecast.PredictedNextPurchase,
		CycleDays:             forecast.CycleDaysUsed,
		UrgencyTier:           forecast.UrgencyTier,
		Status:                types.LeadStatusNew,
		Source:                types.LeadSourcePredictive,
		IsRedundant:           false,
	}
}

func (s *GeneratorService) insertAuditLead(ctx context.Context, forecast *types.Forecast) (*types.Lead, error) {
	lead := buildLead(forecast)
	lead.IsRedundant = true
	if _, err := s.leadRepo.Create(ctx, nil, []*types.Lead{lead}); err != nil {
		return nil, fmt.Errorf("customer %s: insert audit lead: %w", forecast.CustomerID, err)
	}
	return lead, nil
}
