package repos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/broomworks/leadgen-backend/internal/logger"
	"github.com/broomworks/leadgen-backend/internal/types"
)

type LeadRepo interface {
	Create(ctx context.Context, tx *gorm.DB, leads []*types.Lead) ([]*types.Lead, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Lead, error)
	GetByCustomerID(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) ([]*types.Lead, error)
	GetActiveByCustomerID(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) ([]*types.Lead, error)
	GetActiveByProduct(ctx context.Context, tx *gorm.DB, productName string, sinceDays int, now time.Time) ([]*types.Lead, error)
	GetActiveByUrgency(ctx context.Context, tx *gorm.DB, tier string) ([]*types.Lead, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status string) error
}

type leadRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLeadRepo(db *gorm.DB, baseLog *logger.Logger) LeadRepo {
	repoLog := baseLog.With("repo", "LeadRepo")
	return &leadRepo{db: db, log: repoLog}
}

func (r *leadRepo) Create(ctx context.Context, tx *gorm.DB, leads []*types.Lead) ([]*types.Lead, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(leads) == 0 {
		return []*types.Lead{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *leadRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Lead, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Lead
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *leadRepo) GetByCustomerID(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) ([]*types.Lead, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Lead
	if customerID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *leadRepo) GetActiveByCustomerID(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) ([]*types.Lead, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Lead
	if customerID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("customer_id = ? AND is_redundant = ?", customerID, false).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *leadRepo) GetActiveByProduct(ctx context.Context, tx *gorm.DB, productName string, sinceDays int, now time.Time) ([]*types.Lead, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	query := transaction.WithContext(ctx).
		Select("lead.*").
		Joins("JOIN product ON product.id = lead.product_interest").
		Where("product.name LIKE ?", "%"+productName+"%").
		Where("lead.is_redundant = ?", false)
	if sinceDays > 0 {
		cutoff := now.AddDate(0, 0, -sinceDays)
		query = query.Where("lead.created_at >= ?", cutoff)
	}

	var results []*types.Lead
	if err := query.Order("lead.created_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *leadRepo) GetActiveByUrgency(ctx context.Context, tx *gorm.DB, tier string) ([]*types.Lead, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Lead
	if err := transaction.WithContext(ctx).
		Where("urgency_tier = ? AND is_redundant = ?", tier, false).
		Order("predicted_next_purchase ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *leadRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	result := transaction.WithContext(ctx).
		Model(&types.Lead{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("lead %s not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
