package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/types"
	"github.com/ojhahemant/nhs-triage-app/pkg/repository/memory"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/letter"
	"github.com/ojhahemant/nhs-triage-app/pkg/usecase"
)

func seedAssessment(t *testing.T, repo *memory.Memory, category types.Category, confidence float64) {
	t.Helper()

	_, err := repo.Assessment().Create(context.Background(), &model.Assessment{
		Evidence: model.CaseEvidence{ClinicalDescription: "seeded case"},
		Result: model.CategorizationResult{
			Category:   category,
			Confidence: types.Confidence(confidence),
			Rationale:  "seed",
		},
	})
	gt.NoError(t, err).Required()
}

func TestDashboardCompute(t *testing.T) {
	ctx := context.Background()

	t.Run("empty repository", func(t *testing.T) {
		uc := usecase.New(memory.New())

		data, err := uc.Dashboard.Compute(ctx)
		gt.NoError(t, err).Required()

		gt.Number(t, data.TotalAssessments).Equal(0)
		gt.Number(t, data.LowConfidenceCount).Equal(0)
		gt.A(t, data.Alerts).Length(0)
	})

	t.Run("aggregates stored assessments", func(t *testing.T) {
		repo := memory.New()
		seedAssessment(t, repo, types.CategoryUrgent, 0.9)
		seedAssessment(t, repo, types.CategoryUrgent, 0.45)
		seedAssessment(t, repo, types.CategoryRoutine, 0.8)
		seedAssessment(t, repo, types.CategoryNonPriority, 0.3)

		uc := usecase.New(repo)
		data, err := uc.Dashboard.Compute(ctx)
		gt.NoError(t, err).Required()

		gt.Number(t, data.TotalAssessments).Equal(4)
		gt.Number(t, data.PriorityDistribution[types.CategoryUrgent]).Equal(2)
		gt.Number(t, data.PriorityDistribution[types.CategoryRoutine]).Equal(1)
		gt.Number(t, data.PriorityDistribution[types.CategoryNonPriority]).Equal(1)
		gt.Number(t, data.LowConfidenceCount).Equal(2)

		total := 0
		for _, n := range data.VolumeByWeekday {
			total += n
		}
		gt.Number(t, total).Equal(4)
	})

	t.Run("derives alerts from the data", func(t *testing.T) {
		repo := memory.New()
		seedAssessment(t, repo, types.CategoryUrgent, 0.9)
		seedAssessment(t, repo, types.CategoryRoutine, 0.4)

		uc := usecase.New(repo)
		data, err := uc.Dashboard.Compute(ctx)
		gt.NoError(t, err).Required()

		gt.A(t, data.Alerts).Length(2)
		gt.S(t, data.Alerts[0].Title).Contains("1 urgent referrals requiring review")
		gt.V(t, data.Alerts[0].Severity).Equal(model.AlertSeverityHigh)
		gt.S(t, data.Alerts[1].Title).Contains("below the confidence threshold")
		gt.V(t, data.Alerts[1].Severity).Equal(model.AlertSeverityMedium)
	})
}

func TestLetterUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("without letter service", func(t *testing.T) {
		uc := usecase.New(memory.New())

		_, err := uc.Letter.Templates(ctx)
		gt.Error(t, err)
		gt.B(t, errors.Is(err, usecase.ErrLettersUnavailable)).True()
	})

	t.Run("generates and records activity", func(t *testing.T) {
		letterSvc, err := letter.New()
		gt.NoError(t, err).Required()

		uc := usecase.New(memory.New(), usecase.WithLetters(letterSvc))

		generated, err := uc.Letter.Generate(ctx, "urgent-appointment",
			model.PatientData{
				FullName:     "Sarah Jane Wilson",
				Title:        "Mrs",
				Surname:      "Wilson",
				AddressLine1: "45 Test Avenue",
				Postcode:     "EH3 9QQ",
			},
			model.AppointmentDetails{
				Date:           "14/09/2026",
				Time:           "09:30 AM",
				Location:       "Royal Infirmary of Edinburgh",
				ClinicName:     "See and Treat Skin Lesion Clinic",
				ConsultantName: "Mr. James Richardson",
				ContactPhone:   "0131 536 1000",
				ContactEmail:   "plastic.surgery@nhslothian.scot.nhs.uk",
			}, nil)
		gt.NoError(t, err).Required()
		gt.S(t, generated.Content).Contains("Dear Mrs Wilson,")

		activities := waitForActivity(t, uc, 1)
		gt.V(t, activities[0].Type).Equal(model.ActivityLetterGenerated)
		gt.S(t, activities[0].Description).Contains(generated.Reference)
	})

	t.Run("lists templates", func(t *testing.T) {
		letterSvc, err := letter.New()
		gt.NoError(t, err).Required()

		uc := usecase.New(memory.New(), usecase.WithLetters(letterSvc))
		infos, err := uc.Letter.Templates(ctx)
		gt.NoError(t, err).Required()
		gt.A(t, infos).Length(3)
	})
}
