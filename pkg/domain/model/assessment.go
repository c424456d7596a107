package model

import (
	"time"

	"github.com/ojhahemant/nhs-triage-app/pkg/domain/types"
)

// Assessment is a persisted record of one triage run: the submitted
// evidence, the derived indicators, the classifier verdict and the
// deterministic urgency estimate.
type Assessment struct {
	ID         types.AssessmentID   `json:"id"`
	Evidence   CaseEvidence         `json:"evidence"`
	Indicators IndicatorSet         `json:"indicators"`
	Result     CategorizationResult `json:"result"`
	Urgency    UrgencyEstimate      `json:"urgency"`
	Model      string               `json:"model,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}

// UrgencyEstimate is the rule-based cross-check computed alongside the
// classifier verdict. It never overrides the verdict; it gives reviewers a
// deterministic second opinion.
type UrgencyEstimate struct {
	Score     int    `json:"score"`
	Timeframe string `json:"timeframe"`
	Specialty string `json:"specialty"`
	Reason    string `json:"reason"`
}
