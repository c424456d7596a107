package triage_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/triage"
)

func TestEstimateUrgency(t *testing.T) {
	t.Run("benign presentation scores zero", func(t *testing.T) {
		est := triage.EstimateUrgency(&model.CaseEvidence{
			ClinicalDescription: "small stable mole, present since birth",
		})
		gt.Number(t, est.Score).Equal(0)
		gt.V(t, est.Timeframe).Equal("12 weeks (non-urgent)")
		gt.V(t, est.Specialty).Equal("Dermatology")
		gt.V(t, est.Reason).Equal("standard assessment based on clinical presentation")
	})

	t.Run("high risk presentation hits the urgent band", func(t *testing.T) {
		est := triage.EstimateUrgency(&model.CaseEvidence{
			// age +2, rapid +3, irregular +3, GP concern +3
			ClinicalDescription: "rapidly growing irregular pigmented lesion, GP concerned",
			PatientAge:          intPtr(68),
		})
		gt.Number(t, est.Score).Equal(11)
		gt.V(t, est.Timeframe).Equal("2 weeks (urgent)")
		gt.S(t, est.Reason).Contains("rapid growth rate")
		gt.S(t, est.Reason).Contains("referring GP has expressed specific concerns")
	})

	t.Run("age over 60 adds, 60 does not", func(t *testing.T) {
		base := &model.CaseEvidence{ClinicalDescription: "small mole, no change noted previously"}

		at60 := *base
		at60.PatientAge = intPtr(60)
		gt.Number(t, triage.EstimateUrgency(&at60).Score).Equal(0)

		at61 := *base
		at61.PatientAge = intPtr(61)
		gt.Number(t, triage.EstimateUrgency(&at61).Score).Equal(2)
	})

	t.Run("symptom counting", func(t *testing.T) {
		one := triage.EstimateUrgency(&model.CaseEvidence{
			ClinicalDescription: "pigmented lesion on the back",
			PriorSymptoms:       []string{"occasional bleeding"},
		})
		gt.Number(t, one.Score).Equal(1)
		gt.S(t, one.Reason).Contains("concerning symptom present (occasional bleeding)")

		two := triage.EstimateUrgency(&model.CaseEvidence{
			ClinicalDescription: "pigmented lesion on the back",
			PriorSymptoms:       []string{"bleeding", "irregular borders", "itching"},
		})
		gt.Number(t, two.Score).Equal(3)
		gt.S(t, two.Reason).Contains("multiple concerning symptoms present")
	})

	t.Run("high risk location adds once", func(t *testing.T) {
		est := triage.EstimateUrgency(&model.CaseEvidence{
			ClinicalDescription: "lesion on the scalp extending to the ear",
		})
		gt.Number(t, est.Score).Equal(1)
		gt.S(t, est.Reason).Contains("high-risk anatomical site")
	})

	t.Run("middle bands", func(t *testing.T) {
		// rapid +3, scalp +1
		soonish := triage.EstimateUrgency(&model.CaseEvidence{
			ClinicalDescription: "rapidly appearing spot on the scalp",
		})
		gt.Number(t, soonish.Score).Equal(4)
		gt.V(t, soonish.Timeframe).Equal("6 weeks (routine)")

		// rapid +3, scalp +1, age +2
		soon := triage.EstimateUrgency(&model.CaseEvidence{
			ClinicalDescription: "rapidly appearing spot on the scalp",
			PatientAge:          intPtr(70),
		})
		gt.Number(t, soon.Score).Equal(6)
		gt.V(t, soon.Timeframe).Equal("4 weeks (soon)")
	})

	t.Run("document text contributes to the scan", func(t *testing.T) {
		est := triage.EstimateUrgency(&model.CaseEvidence{
			ClinicalDescription:   "pigmented lesion on the back",
			ExtractedDocumentText: "GP letter mentions possible melanoma, urgent review requested",
		})
		// concerning features +3, GP concern +3
		gt.Number(t, est.Score).Equal(6)
	})

	t.Run("specialty routing", func(t *testing.T) {
		plastics := triage.EstimateUrgency(&model.CaseEvidence{
			ClinicalDescription: "facial scar revision requested, face lesion excised last year",
		})
		gt.V(t, plastics.Specialty).Equal("Plastic Surgery")

		psych := triage.EstimateUrgency(&model.CaseEvidence{
			ClinicalDescription: "long-standing lesion causing significant anxiety",
		})
		gt.V(t, psych.Specialty).Equal("Dermatology with Psychology support")
	})
}
