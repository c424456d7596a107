package triage_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model/config"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/triage"
)

func TestSystemPrompt(t *testing.T) {
	sp := triage.SystemPrompt()
	gt.S(t, sp).Contains("URGENT")
	gt.S(t, sp).Contains("ROUTINE")
	gt.S(t, sp).Contains("NON_PRIORITY")
	gt.S(t, sp).Contains("JSON")
	gt.S(t, sp).Contains("confidence")
}

func TestBuildUserPrompt(t *testing.T) {
	t.Run("all fields rendered under their labels", func(t *testing.T) {
		ev := &model.CaseEvidence{
			ClinicalDescription:   "Rapidly enlarging pigmented lesion on the scalp",
			PatientAge:            intPtr(74),
			PriorSymptoms:         []string{"itching", "occasional bleeding"},
			ExtractedDocumentText: "GP letter: urgent dermatology opinion requested",
			ImageDescription:      "irregular dark lesion approximately 9mm",
		}
		ind := triage.BuildIndicators(ev, config.DefaultKeywordConfig())
		prompt := triage.BuildUserPrompt(ev, &ind)

		gt.S(t, prompt).Contains("Clinical Description: Rapidly enlarging pigmented lesion on the scalp")
		gt.S(t, prompt).Contains("Patient Age: 74")
		gt.S(t, prompt).Contains("Symptoms: itching, occasional bleeding")
		gt.S(t, prompt).Contains("Document Content: GP letter: urgent dermatology opinion requested")
		gt.S(t, prompt).Contains("Image Description: irregular dark lesion approximately 9mm")
		gt.S(t, prompt).Contains("URGENT INDICATORS DETECTED:")
		gt.S(t, prompt).Contains("Please categorize this clinical case and provide your response in JSON format.")
	})

	t.Run("optional fields omitted when absent", func(t *testing.T) {
		ev := &model.CaseEvidence{
			ClinicalDescription: "Small stable mole, present since childhood",
		}
		ind := triage.BuildIndicators(ev, config.DefaultKeywordConfig())
		prompt := triage.BuildUserPrompt(ev, &ind)

		gt.B(t, strings.Contains(prompt, "Patient Age:")).False()
		gt.B(t, strings.Contains(prompt, "Symptoms:")).False()
		gt.B(t, strings.Contains(prompt, "Document Content:")).False()
		gt.B(t, strings.Contains(prompt, "Image Description:")).False()
	})

	t.Run("elderly flag renders in the urgent indicator line", func(t *testing.T) {
		ev := &model.CaseEvidence{
			ClinicalDescription: "Small mole on the arm, present since childhood",
			PatientAge:          intPtr(81),
		}
		ind := triage.BuildIndicators(ev, config.DefaultKeywordConfig())
		prompt := triage.BuildUserPrompt(ev, &ind)

		gt.S(t, prompt).Contains("URGENT INDICATORS DETECTED: elderly patient (age ≥70)")
	})

	t.Run("indicator sections omitted when empty", func(t *testing.T) {
		ev := &model.CaseEvidence{
			ClinicalDescription: "Small mole on the arm, present since childhood",
		}
		ind := triage.BuildIndicators(ev, config.DefaultKeywordConfig())
		prompt := triage.BuildUserPrompt(ev, &ind)

		gt.B(t, strings.Contains(prompt, "URGENT INDICATORS DETECTED")).False()
		gt.B(t, strings.Contains(prompt, "ROUTINE INDICATORS DETECTED")).False()
		gt.B(t, strings.Contains(prompt, "NON-PRIORITY INDICATORS DETECTED")).False()
	})

	t.Run("document text truncated at the limit", func(t *testing.T) {
		ev := &model.CaseEvidence{
			ClinicalDescription:   "skin lesion on forearm",
			ExtractedDocumentText: strings.Repeat("a", model.DocumentTextLimit) + "TRUNCATED",
		}
		ind := triage.BuildIndicators(ev, config.DefaultKeywordConfig())
		prompt := triage.BuildUserPrompt(ev, &ind)

		gt.B(t, strings.Contains(prompt, "TRUNCATED")).False()
	})

	t.Run("rendering is deterministic", func(t *testing.T) {
		ev := &model.CaseEvidence{
			ClinicalDescription:   "Rapidly enlarging dark irregular lesion, 8mm, bleeding",
			PatientAge:            intPtr(74),
			PriorSymptoms:         []string{"itching"},
			ExtractedDocumentText: "urgent referral requested",
			ImageDescription:      "irregular dark lesion",
		}
		kw := config.DefaultKeywordConfig()

		first := triage.BuildIndicators(ev, kw)
		second := triage.BuildIndicators(ev, kw)
		gt.S(t, triage.BuildUserPrompt(ev, &second)).Equal(triage.BuildUserPrompt(ev, &first))
	})
}
