package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/broomworks/leadgen-backend/internal/logger"
	"github.com/broomworks/leadgen-backend/internal/types"
)

// PurchaseEventRepo is append-only: the ledger never updates or deletes an
// event once recorded.
type PurchaseEventRepo interface {
	Create(ctx context.Context, tx *gorm.DB, events []*types.PurchaseEvent) ([]*types.PurchaseEvent, error)
	GetByCustomerID(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) ([]*types.PurchaseEvent, error)
	CountByCustomerID(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) (int64, error)
}

type purchaseEventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPurchaseEventRepo(db *gorm.DB, baseLog *logger.Logger) PurchaseEventRepo {
	repoLog := baseLog.With("repo", "PurchaseEventRepo")
	return &purchaseEventRepo{db: db, log: repoLog}
}

func (r *purchaseEventRepo) Create(ctx context.Context, tx *gorm.DB, events []*types.PurchaseEvent) ([]*types.PurchaseEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(events) == 0 {
		return []*types.PurchaseEvent{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *purchaseEventRepo) GetByCustomerID(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) ([]*types.PurchaseEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.PurchaseEvent
	if customerID == uuid.Nil {
		return results, nil
	}

	// Ascending by purchase date; created_at then id break same-day ties so
	// the ordering matches insertion order.
	if err := transaction.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("purchase_date ASC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *purchaseEventRepo) CountByCustomerID(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if customerID == uuid.Nil {
		return 0, nil
	}

	if err := transaction.WithContext(ctx).
		Model(&types.PurchaseEvent{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
