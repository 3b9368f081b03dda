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
	"github.com/broomworks/leadgen-backend/internal/utils"
)

// LedgerService owns the append-only purchase ledger. Record validates and
// appends; History returns a customer's events ordered for cycle estimation.
type LedgerService struct {
	db        *gorm.DB
	log       *logger.Logger
	eventRepo repos.PurchaseEventRepo
	clk       clock.Clock
}

func NewLedgerService(db *gorm.DB, baseLog *logger.Logger, eventRepo repos.PurchaseEventRepo, clk clock.Clock) *LedgerService {
	serviceLog := baseLog.With("service", "LedgerService")
	return &LedgerService{db: db, log: serviceLog, eventRepo: eventRepo, clk: clk}
}

func (s *LedgerService) Record(ctx context.Context, event *types.PurchaseEvent) (*types.PurchaseEvent, error) {
	if err := s.validate(event); err != nil {
		s.log.Warn("Rejected purchase event", "customer_id", event.CustomerID, "error", err)
		return nil, err
	}
	event.PurchaseDate = utils.DateOnly(event.PurchaseDate)

	created, err := s.eventRepo.Create(ctx, nil, []*types.PurchaseEvent{event})
	if err != nil {
		return nil, fmt.Errorf("append purchase event: %w", err)
	}
	s.log.Debug("Recorded purchase event", "customer_id", event.CustomerID, "product_id", event.ProductID, "purchase_date", event.PurchaseDate)
	return created[0], nil
}

func (s *LedgerService) History(ctx context.Context, customerID uuid.UUID) ([]*types.PurchaseEvent, error) {
	events, err := s.eventRepo.GetByCustomerID(ctx, nil, customerID)
	if err != nil {
		return nil, fmt.Errorf("fetch purchase history: %w", err)
	}
	return events, nil
}

func (s *LedgerService) validate(event *types.PurchaseEvent) error {
	if event.CustomerID == uuid.Nil {
		return &types.InvalidEventError{Code: types.InvalidEventMissingField, Detail: "customer_id is required"}
	}
	if event.ProductID == uuid.Nil {
		return &types.InvalidEventError{Code: types.InvalidEventMissingField, Detail: "product_id is required"}
	}
	if event.PurchaseDate.IsZero() {
		return &types.InvalidEventError{Code: types.InvalidEventMissingField, Detail: "purchase_date is required"}
	}
	if event.Amount < 0 {
		return &types.InvalidEventError{Code: types.InvalidEventBadAmount, Detail: fmt.Sprintf("amount %v is negative", event.Amount)}
	}
	today := utils.DateOnly(s.clk.Now())
	if utils.DateOnly(event.PurchaseDate).After(today) {
		return &types.InvalidEventError{
			Code:   types.InvalidEventFutureDate,
			Detail: fmt.Sprintf("purchase_date %s is after today %s", event.PurchaseDate.Format("2006-01-02"), today.Format("2006-01-02")),
		}
	}
	return nil
}
