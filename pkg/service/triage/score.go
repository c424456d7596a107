package triage

import (
	"fmt"
	"strings"

	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
)

var highRiskSymptoms = []string{
	"bleeding", "ulceration", "color changes", "irregular borders",
}

var highRiskLocations = []string{
	"scalp", "face", "ear", "neck", "hand", "sole", "foot",
}

// EstimateUrgency computes the deterministic rule-based urgency estimate
// for the evidence. It mirrors the clinical scoring heuristics used before
// the classifier was introduced and serves as a cross-check alongside the
// classifier verdict, never as the verdict itself.
func EstimateUrgency(ev *model.CaseEvidence) model.UrgencyEstimate {
	text := strings.ToLower(ev.ClinicalDescription)
	if doc := ev.BoundedDocumentText(); doc != "" {
		text += "\n" + strings.ToLower(doc)
	}

	score := 0
	var reasons []string

	// Higher age increases urgency for potential skin cancers
	if ev.PatientAge != nil && *ev.PatientAge > 60 {
		score += 2
		reasons = append(reasons, "patient age increases risk of malignancy")
	}

	if strings.Contains(text, "rapid") {
		score += 3
		reasons = append(reasons, "rapid growth rate indicates potential aggressive behavior")
	}

	var present []string
	for _, symptom := range ev.PriorSymptoms {
		lower := strings.ToLower(symptom)
		for _, risk := range highRiskSymptoms {
			if strings.Contains(lower, risk) {
				present = append(present, symptom)
				break
			}
		}
	}
	switch {
	case len(present) >= 2:
		score += 3
		reasons = append(reasons, fmt.Sprintf("multiple concerning symptoms present (%s)", strings.Join(present, ", ")))
	case len(present) == 1:
		score++
		reasons = append(reasons, fmt.Sprintf("concerning symptom present (%s)", present[0]))
	}

	if strings.Contains(text, "melanoma") || strings.Contains(text, "irregular") || strings.Contains(text, "changing") {
		score += 3
		reasons = append(reasons, "clinical description suggests potentially concerning features")
	}

	for _, location := range highRiskLocations {
		if strings.Contains(text, location) {
			score++
			reasons = append(reasons, "lesion located in high-risk anatomical site")
			break
		}
	}

	if strings.Contains(text, "urgent") || strings.Contains(text, "concern") || strings.Contains(text, "malignancy") {
		score += 3
		reasons = append(reasons, "referring GP has expressed specific concerns")
	}

	var timeframe string
	switch {
	case score >= 8:
		timeframe = "2 weeks (urgent)"
	case score >= 5:
		timeframe = "4 weeks (soon)"
	case score >= 3:
		timeframe = "6 weeks (routine)"
	default:
		timeframe = "12 weeks (non-urgent)"
	}

	specialty := "Dermatology"
	if strings.Contains(text, "face") || strings.Contains(text, "head") || strings.Contains(text, "neck") {
		if strings.Contains(text, "scar") || strings.Contains(text, "cosmetic") {
			specialty = "Plastic Surgery"
		}
	}
	if strings.Contains(text, "psych") || strings.Contains(text, "distress") || strings.Contains(text, "anxiety") {
		specialty = "Dermatology with Psychology support"
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "standard assessment based on clinical presentation")
	}

	return model.UrgencyEstimate{
		Score:     score,
		Timeframe: timeframe,
		Specialty: specialty,
		Reason:    strings.Join(reasons, "; "),
	}
}
