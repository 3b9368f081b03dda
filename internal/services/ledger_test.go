package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/broomworks/leadgen-backend/internal/clock"
	"github.com/broomworks/leadgen-backend/internal/logger"
	"github.com/broomworks/leadgen-backend/internal/types"
)

type fakePurchaseEventRepo struct {
	events []*types.PurchaseEvent
}

func (f *fakePurchaseEventRepo) Create(ctx context.Context, tx *gorm.DB, events []*types.PurchaseEvent) ([]*types.PurchaseEvent, error) {
	for _, event := range events {
		if event.ID == uuid.Nil {
			event.ID = uuid.New()
		}
	}
	f.events = append(f.events, events...)
	return events, nil
}

func (f *fakePurchaseEventRepo) GetByCustomerID(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) ([]*types.PurchaseEvent, error) {
	var out []*types.PurchaseEvent
	for _, event := range f.events {
		if event.CustomerID == customerID {
			out = append(out, event)
		}
	}
	return out, nil
}

func (f *fakePurchaseEventRepo) CountByCustomerID(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) (int64, error) {
	var count int64
	for _, event := range f.events {
		if event.CustomerID == customerID {
			count++
		}
	}
	return count, nil
}

func testLedger(t *testing.T, repo *fakePurchaseEventRepo, now time.Time) *LedgerService {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return NewLedgerService(nil, log, repo, clock.Fixed(now))
}

func TestLedgerRecordValidation(t *testing.T) {
	now := date(2024, time.June, 15)
	customerID := uuid.New()
	productID := uuid.New()

	cases := []struct {
		name     string
		event    *types.PurchaseEvent
		wantCode types.InvalidEventErrorCode
	}{
		{
			name: "future_purchase_date",
			event: &types.PurchaseEvent{
				CustomerID: customerID, ProductID: productID,
				PurchaseDate: date(2024, time.June, 16), Amount: 100,
			},
			wantCode: types.InvalidEventFutureDate,
		},
		{
			name: "missing_customer",
			event: &types.PurchaseEvent{
				ProductID: productID, PurchaseDate: now, Amount: 100,
			},
			wantCode: types.InvalidEventMissingField,
		},
		{
			name: "missing_product",
			event: &types.PurchaseEvent{
				CustomerID: customerID, PurchaseDate: now, Amount: 100,
			},
			wantCode: types.InvalidEventMissingField,
		},
		{
			name: "missing_purchase_date",
			event: &types.PurchaseEvent{
				CustomerID: customerID, ProductID: productID, Amount: 100,
			},
			wantCode: types.InvalidEventMissingField,
		},
		{
			name: "negative_amount",
			event: &types.PurchaseEvent{
				CustomerID: customerID, ProductID: productID,
				PurchaseDate: now, Amount: -1,
			},
			wantCode: types.InvalidEventBadAmount,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakePurchaseEventRepo{}
			ledger := testLedger(t, repo, now)

			_, err := ledger.Record(context.Background(), tc.event)
			var invalid *types.InvalidEventError
			if !errors.As(err, &invalid) {
				t.Fatalf("want InvalidEventError, got %v", err)
			}
			if invalid.Code != tc.wantCode {
				t.Fatalf("code: want=%q got=%q", tc.wantCode, invalid.Code)
			}
			if len(repo.events) != 0 {
				t.Fatalf("rejected event must not be appended, found %d rows", len(repo.events))
			}
		})
	}
}

func TestLedgerRecordAppends(t *testing.T) {
	now := date(2024, time.June, 15)
	customerID := uuid.New()
	productID := uuid.New()
	repo := &fakePurchaseEventRepo{}
	ledger := testLedger(t, repo, now)

	// Purchased earlier in the day; the time-of-day component must be dropped.
	event := &types.PurchaseEvent{
		CustomerID:   customerID,
		ProductID:    productID,
		PurchaseDate: time.Date(2024, time.June, 15, 14, 30, 0, 0, time.UTC),
		Amount:       21500000,
	}

	created, err := ledger.Record(context.Background(), event)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !created.PurchaseDate.Equal(date(2024, time.June, 15)) {
		t.Fatalf("PurchaseDate not truncated to date: got %v", created.PurchaseDate)
	}

	history, err := ledger.History(context.Background(), customerID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history length: want=1 got=%d", len(history))
	}
}

func TestLedgerRecordTodayIsValid(t *testing.T) {
	now := date(2024, time.June, 15)
	repo := &fakePurchaseEventRepo{}
	ledger := testLedger(t, repo, now)

	event := &types.PurchaseEvent{
		CustomerID:   uuid.New(),
		ProductID:    uuid.New(),
		PurchaseDate: now,
		Amount:       100,
	}
	if _, err := ledger.Record(context.Background(), event); err != nil {
		t.Fatalf("same-day purchase must be accepted: %v", err)
	}
}
