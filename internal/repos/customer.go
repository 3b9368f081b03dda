package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/broomworks/leadgen-backend/internal/logger"
	"github.com/broomworks/leadgen-backend/internal/types"
)

type CustomerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, customers []*types.Customer) ([]*types.Customer, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Customer, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Customer, error)
	GetAllIDs(ctx context.Context, tx *gorm.DB) ([]uuid.UUID, error)
}

type customerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	repoLog := baseLog.With("repo", "CustomerRepo")
	return &customerRepo{db: db, log: repoLog}
}

func (r *customerRepo) Create(ctx context.Context, tx *gorm.DB, customers []*types.Customer) ([]*types.Customer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(customers) == 0 {
		return []*types.Customer{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Customer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Customer
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *customerRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Customer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Customer
	if err := transaction.WithContext(ctx).
		Where("name = ?", name).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *customerRepo) GetAllIDs(ctx context.Context, tx *gorm.DB) ([]uuid.UUID, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var ids []uuid.UUID
	if err := transaction.WithContext(ctx).
		Model(&types.Customer{}).
		Order("created_at ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
