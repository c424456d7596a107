package triage

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
)

//go:embed prompt/system.md
var systemPrompt string

// SystemPrompt returns the fixed classifier instruction block: category
// definitions, confidence banding rules and the JSON output contract.
func SystemPrompt() string {
	return systemPrompt
}

// BuildUserPrompt renders the evidence bundle and matched indicators into
// the user portion of the classifier request. Rendering is a pure function
// of its inputs: identical evidence always yields byte-identical text.
func BuildUserPrompt(ev *model.CaseEvidence, ind *model.IndicatorSet) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Clinical Description: %s\n\n", ev.ClinicalDescription)

	if ev.PatientAge != nil {
		fmt.Fprintf(&sb, "Patient Age: %d\n", *ev.PatientAge)
	}
	if len(ev.PriorSymptoms) > 0 {
		fmt.Fprintf(&sb, "Symptoms: %s\n", strings.Join(ev.PriorSymptoms, ", "))
	}
	if doc := ev.BoundedDocumentText(); doc != "" {
		fmt.Fprintf(&sb, "Document Content: %s\n", doc)
	}
	if ev.ImageDescription != "" {
		fmt.Fprintf(&sb, "Image Description: %s\n", ev.ImageDescription)
	}

	if len(ind.Urgent) > 0 {
		fmt.Fprintf(&sb, "\nURGENT INDICATORS DETECTED: %s\n", strings.Join(ind.Urgent, ", "))
	}
	if len(ind.Routine) > 0 {
		fmt.Fprintf(&sb, "\nROUTINE INDICATORS DETECTED: %s\n", strings.Join(ind.Routine, ", "))
	}
	if len(ind.NonPriority) > 0 {
		fmt.Fprintf(&sb, "\nNON-PRIORITY INDICATORS DETECTED: %s\n", strings.Join(ind.NonPriority, ", "))
	}

	sb.WriteString(`
SPECIAL ATTENTION TO GP ASSESSMENT LANGUAGE:
- Look for phrases like "GP concerned about malignancy", "urgent", "within 2 weeks" -> URGENT
- Look for phrases like "soon", "within 4-6 weeks", "expedite" -> ROUTINE
- Look for phrases like "routine", "when convenient", "no urgency" -> NON_PRIORITY

SCORING FACTORS TO CONSIDER:
1. Clinical Description Features:
   - Mention of bleeding, ulceration, rapid growth -> URGENT
   - Large size (>6mm for pigmented lesions) -> Higher urgency
   - Irregular features, asymmetry, color variation -> URGENT
   - Fixed to underlying structures -> URGENT

2. Patient Demographics:
   - Elderly patients with suspicious lesions -> Higher urgency
   - Immunocompromised status -> Higher urgency
   - History of skin cancer -> Higher urgency

3. Functional Impact:
   - Affecting vision, breathing, speech, hearing, eating -> URGENT
   - Hand issues affecting daily activities -> URGENT
   - Cosmetic concerns only -> NON_PRIORITY

4. Location and Risk Factors:
   - Head/face lesions with high-risk features -> Higher urgency
   - History of sun exposure/tanning with suspicious features -> Higher urgency

Please categorize this clinical case and provide your response in JSON format.
`)

	return sb.String()
}
