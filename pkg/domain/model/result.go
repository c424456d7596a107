package model

import (
	"fmt"

	"github.com/ojhahemant/nhs-triage-app/pkg/domain/types"
)

// DefaultRationale is substituted when the classifier omits a rationale
const DefaultRationale = "No rationale provided"

// CategorizationResult is the validated outcome of one categorization
// request. Category is always one of the three triage buckets and
// Confidence is always within [0, 1].
type CategorizationResult struct {
	Category   types.Category   `json:"category"`
	Confidence types.Confidence `json:"confidence"`
	Rationale  string           `json:"rationale"`
}

// DefaultResult is returned when the classifier cannot be reached at all:
// missing credential, network failure or timeout. ROUTINE at 0.5 keeps the
// case in the normal review queue without escalating or deprioritizing it.
func DefaultResult(cause string) *CategorizationResult {
	return &CategorizationResult{
		Category:   types.CategoryRoutine,
		Confidence: 0.5,
		Rationale:  fmt.Sprintf("Default categorization applied: %s", cause),
	}
}
