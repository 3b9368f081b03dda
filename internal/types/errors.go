package types

import "fmt"

type InvalidEventErrorCode string

const (
	InvalidEventFutureDate   InvalidEventErrorCode = "future_date"
	InvalidEventMissingField InvalidEventErrorCode = "missing_field"
	InvalidEventBadAmount    InvalidEventErrorCode = "bad_amount"
)

// InvalidEventError rejects a purchase event at ingestion. Events are never
// silently clamped or repaired.
type InvalidEventError struct {
	Code   InvalidEventErrorCode
	Detail string
}

func (e *InvalidEventError) Error() string {
	return fmt.Sprintf("invalid purchase event (%s): %s", e.Code, e.Detail)
}

// InvalidStatusTransitionError rejects an illegal lead status change.
type InvalidStatusTransitionError struct {
	From string
	To   string
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("invalid lead status transition %q -> %q", e.From, e.To)
}
