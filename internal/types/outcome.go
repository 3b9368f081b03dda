package types

import "github.com/google/uuid"

type GenerationOutcome string

const (
	OutcomeGenerated           GenerationOutcome = "generated"
	OutcomeRedundant           GenerationOutcome = "redundant"
	OutcomeInsufficientHistory GenerationOutcome = "insufficient_history"
	OutcomeFailed              GenerationOutcome = "failed"
)

// CustomerGenerationResult records what happened for a single customer during
// a batch run. Error holds the message for OutcomeFailed; batch runs never
// abort on a single customer.
type CustomerGenerationResult struct {
	CustomerID uuid.UUID         `json:"customer_id"`
	Outcome    GenerationOutcome `json:"outcome"`
	LeadID     *uuid.UUID        `json:"lead_id,omitempty"`
	Error      string            `json:"error,omitempty"`
}

type GenerationSummary struct {
	Generated    int                        `json:"generated"`
	Redundant    int                        `json:"redundant"`
	Insufficient int                        `json:"insufficient"`
	Failed       int                        `json:"failed"`
	Results      []CustomerGenerationResult `json:"results"`
}

func (s *GenerationSummary) Add(r CustomerGenerationResult) {
	switch r.Outcome {
	case OutcomeGenerated:
		s.Generated++
	case OutcomeRedundant:
		s.Redundant++
	case OutcomeInsufficientHistory:
		s.Insufficient++
	case OutcomeFailed:
		s.Failed++
	}
	s.Results = append(s.Results, r)
}
