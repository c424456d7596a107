package triage_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model/config"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/triage"
)

func intPtr(v int) *int { return &v }

func TestBuildIndicators_AgeFlag(t *testing.T) {
	tests := []struct {
		name string
		age  *int
		want bool
	}{
		{name: "age 70 at threshold", age: intPtr(70), want: true},
		{name: "age 72 above threshold", age: intPtr(72), want: true},
		{name: "age 69 below threshold", age: intPtr(69), want: false},
		{name: "age absent", age: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := &model.CaseEvidence{
				ClinicalDescription: "small mole on the arm, present since childhood",
				PatientAge:          tt.age,
			}
			set := triage.BuildIndicators(ev, config.DefaultKeywordConfig())

			found := false
			for _, ind := range set.Urgent {
				if ind == triage.ElderlyIndicator {
					found = true
				}
			}
			gt.V(t, found).Equal(tt.want)
		})
	}
}

func TestBuildIndicators_KeywordScan(t *testing.T) {
	kw := config.DefaultKeywordConfig()

	t.Run("urgent keyword in description", func(t *testing.T) {
		ev := &model.CaseEvidence{
			ClinicalDescription: "Rapidly enlarging dark irregular lesion, 8mm, bleeding",
		}
		set := triage.BuildIndicators(ev, kw)
		gt.B(t, len(set.Urgent) > 0).True()
		gt.B(t, contains(set.Urgent, `referral mentions "bleeding"`)).True()
		gt.B(t, contains(set.Urgent, `referral mentions "rapid"`)).True()
	})

	t.Run("document text is scanned too", func(t *testing.T) {
		ev := &model.CaseEvidence{
			ClinicalDescription:   "skin lesion on forearm",
			ExtractedDocumentText: "GP notes: concerned about possible malignancy, urgent referral requested",
		}
		set := triage.BuildIndicators(ev, kw)
		gt.B(t, contains(set.Urgent, `referral mentions "malignancy"`)).True()
		gt.B(t, contains(set.Urgent, `referral mentions "urgent"`)).True()
	})

	t.Run("document text beyond the bound is ignored", func(t *testing.T) {
		ev := &model.CaseEvidence{
			ClinicalDescription:   "skin lesion on forearm",
			ExtractedDocumentText: strings.Repeat("x", model.DocumentTextLimit) + " melanoma",
		}
		set := triage.BuildIndicators(ev, kw)
		gt.B(t, contains(set.Urgent, `referral mentions "melanoma"`)).False()
	})

	t.Run("routine and non-priority keywords", func(t *testing.T) {
		ev := &model.CaseEvidence{
			ClinicalDescription:   "Stable lipoma, no change in 2 years",
			ExtractedDocumentText: "Patient requesting removal for cosmetic reasons when convenient",
		}
		set := triage.BuildIndicators(ev, kw)
		gt.B(t, contains(set.Routine, `referral mentions "lipoma"`)).True()
		gt.B(t, contains(set.Routine, `referral mentions "cosmetic"`)).True()
		gt.B(t, contains(set.NonPriority, `referral mentions "stable"`)).True()
		gt.B(t, contains(set.NonPriority, `referral mentions "when convenient"`)).True()
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		ev := &model.CaseEvidence{
			ClinicalDescription: "SUSPICIOUS pigmented lesion with BLEEDING",
		}
		set := triage.BuildIndicators(ev, kw)
		gt.B(t, contains(set.Urgent, `referral mentions "suspicious"`)).True()
		gt.B(t, contains(set.Urgent, `referral mentions "bleeding"`)).True()
	})

	t.Run("image description uses the visual list only", func(t *testing.T) {
		ev := &model.CaseEvidence{
			ClinicalDescription: "skin lesion on forearm",
			ImageDescription:    "large irregular dark lesion with nodular surface",
		}
		set := triage.BuildIndicators(ev, kw)
		gt.B(t, contains(set.Urgent, `image shows "irregular" features`)).True()
		gt.B(t, contains(set.Urgent, `image shows "dark" features`)).True()
		gt.B(t, contains(set.Urgent, `image shows "nodular" features`)).True()
	})

	t.Run("clean evidence yields empty set", func(t *testing.T) {
		ev := &model.CaseEvidence{
			ClinicalDescription: "small mole, present since childhood",
		}
		set := triage.BuildIndicators(ev, kw)
		gt.B(t, set.IsEmpty()).True()
	})
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
