package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// DocumentTextLimit bounds how much extracted document text is carried into
// the classifier prompt
const DocumentTextLimit = 1000

// CaseEvidence aggregates all textual inputs for one categorization request.
// It is built per submission and discarded after producing one result.
type CaseEvidence struct {
	ClinicalDescription   string   `json:"clinical_description"`
	PatientAge            *int     `json:"patient_age,omitempty"`
	PriorSymptoms         []string `json:"prior_symptoms,omitempty"`
	ExtractedDocumentText string   `json:"extracted_document_text,omitempty"`
	ImageDescription      string   `json:"image_description,omitempty"`
}

// Validate rejects evidence that cannot be categorized. Only the clinical
// description is mandatory; every other field is optional context.
func (e *CaseEvidence) Validate() error {
	if strings.TrimSpace(e.ClinicalDescription) == "" {
		return goerr.Wrap(ErrEmptyDescription, "clinical description is required")
	}
	return nil
}

// BoundedDocumentText returns the extracted document text truncated to
// DocumentTextLimit characters
func (e *CaseEvidence) BoundedDocumentText() string {
	if len(e.ExtractedDocumentText) <= DocumentTextLimit {
		return e.ExtractedDocumentText
	}
	return e.ExtractedDocumentText[:DocumentTextLimit]
}

// IndicatorSet holds the keyword matches found in the evidence. It is a
// rendering aid injected into the classifier prompt, never a classification
// decision by itself.
type IndicatorSet struct {
	Urgent      []string `json:"urgent,omitempty"`
	Routine     []string `json:"routine,omitempty"`
	NonPriority []string `json:"non_priority,omitempty"`
}

// IsEmpty reports whether no indicators were detected at all
func (s *IndicatorSet) IsEmpty() bool {
	return len(s.Urgent) == 0 && len(s.Routine) == 0 && len(s.NonPriority) == 0
}
