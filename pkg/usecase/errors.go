package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrAssessmentNotFound   = errors.New("assessment not found")
	ErrTriageUnavailable    = errors.New("triage service is not configured")
	ErrLettersUnavailable   = errors.New("letter service is not configured")
	ErrAssistantUnavailable = errors.New("assistant backend is not configured")
	ErrEmptyBulkRequest     = errors.New("bulk request contains no cases")
	ErrBulkRequestTooLarge  = errors.New("bulk request exceeds the case limit")
)

// Context keys for error values
const (
	AssessmentIDKey = "assessment_id"
)
