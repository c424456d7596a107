package triage

import (
	"fmt"
	"strings"

	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model/config"
)

// ElderlyAgeThreshold marks the age at which a patient is flagged as an
// urgency indicator in its own right
const ElderlyAgeThreshold = 70

// ElderlyIndicator is the exact flag added for patients at or above the
// elderly age threshold
const ElderlyIndicator = "elderly patient (age ≥70)"

// BuildIndicators scans the evidence for clinical indicator keywords and
// returns the matched sets. Matching is case-insensitive substring search:
// the priority lists run against the clinical description concatenated with
// the bounded document text, and the visual list runs against the image
// description only. The result is a prompt enrichment aid, not a decision.
func BuildIndicators(ev *model.CaseEvidence, kw *config.KeywordConfig) model.IndicatorSet {
	var set model.IndicatorSet

	if ev.PatientAge != nil && *ev.PatientAge >= ElderlyAgeThreshold {
		set.Urgent = append(set.Urgent, ElderlyIndicator)
	}

	haystack := strings.ToLower(ev.ClinicalDescription)
	if doc := ev.BoundedDocumentText(); doc != "" {
		haystack += "\n" + strings.ToLower(doc)
	}

	for _, keyword := range kw.Urgent {
		if strings.Contains(haystack, strings.ToLower(keyword)) {
			set.Urgent = append(set.Urgent, fmt.Sprintf("referral mentions %q", keyword))
		}
	}
	for _, keyword := range kw.Routine {
		if strings.Contains(haystack, strings.ToLower(keyword)) {
			set.Routine = append(set.Routine, fmt.Sprintf("referral mentions %q", keyword))
		}
	}
	for _, keyword := range kw.NonPriority {
		if strings.Contains(haystack, strings.ToLower(keyword)) {
			set.NonPriority = append(set.NonPriority, fmt.Sprintf("referral mentions %q", keyword))
		}
	}

	if ev.ImageDescription != "" {
		image := strings.ToLower(ev.ImageDescription)
		for _, keyword := range kw.VisualUrgent {
			if strings.Contains(image, strings.ToLower(keyword)) {
				set.Urgent = append(set.Urgent, fmt.Sprintf("image shows %q features", keyword))
			}
		}
	}

	return set
}
