package assistant

import (
	"context"

	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
)

// Service answers clinician questions about a completed assessment
type Service interface {
	// Reply answers one free-text question grounded on the assessment
	Reply(ctx context.Context, input Input) (string, error)
}

// Input represents one question to the assistant. Assessment is optional;
// without it the assistant answers general triage-process questions only.
type Input struct {
	Question   string
	Assessment *model.Assessment
}
