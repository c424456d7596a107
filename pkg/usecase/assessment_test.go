package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/types"
	"github.com/ojhahemant/nhs-triage-app/pkg/repository/memory"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/oracle"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/triage"
	"github.com/ojhahemant/nhs-triage-app/pkg/usecase"
)

type mockOracle struct {
	response string
	err      error
	calls    int
}

func (m *mockOracle) Complete(_ context.Context, req oracle.Request) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockOracle) ListModels(_ context.Context) ([]oracle.Model, error) {
	return []oracle.Model{{Name: "gpt-4o"}}, nil
}

func intPtr(v int) *int { return &v }

func testEvidence() *model.CaseEvidence {
	return &model.CaseEvidence{
		ClinicalDescription: "Rapidly enlarging dark irregular lesion, 8mm, bleeding",
		PatientAge:          intPtr(74),
	}
}

func newUseCases(t *testing.T, client oracle.Client) *usecase.UseCases {
	t.Helper()

	triageSvc, err := triage.New(client, nil)
	gt.NoError(t, err).Required()

	return usecase.New(memory.New(),
		usecase.WithTriage(triageSvc),
		usecase.WithOracle(client),
	)
}

// waitForActivity polls for async activity recording
func waitForActivity(t *testing.T, uc *usecase.UseCases, want int) []*model.Activity {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		data, err := uc.Dashboard.Compute(context.Background())
		gt.NoError(t, err).Required()
		if len(data.RecentActivity) >= want {
			out := make([]*model.Activity, 0, len(data.RecentActivity))
			for i := range data.RecentActivity {
				out = append(out, &data.RecentActivity[i])
			}
			return out
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("activity feed never reached %d entries", want)
	return nil
}

func TestAssessmentCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the classifier verdict", func(t *testing.T) {
		mock := &mockOracle{
			response: `{"category": "URGENT", "confidence": 0.92, "rationale": "bleeding and rapid growth"}`,
		}
		uc := newUseCases(t, mock)

		created, err := uc.Assessment.Create(ctx, testEvidence(), triage.Options{})
		gt.NoError(t, err).Required()

		gt.V(t, created.Result.Category).Equal(types.CategoryUrgent)
		gt.Number(t, float64(created.Result.Confidence)).Equal(0.92)
		gt.V(t, created.Model).Equal("gpt-4o")
		gt.B(t, created.ID != "").True()
		gt.B(t, len(created.Indicators.Urgent) > 0).True()
		gt.B(t, created.Urgency.Score > 0).True()

		retrieved, err := uc.Assessment.Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.V(t, retrieved.Result.Category).Equal(types.CategoryUrgent)

		activities := waitForActivity(t, uc, 1)
		gt.V(t, activities[0].Type).Equal(model.ActivityAssessmentCompleted)
		gt.S(t, activities[0].Description).Contains("URGENT")
	})

	t.Run("classifier failure falls back to the default verdict", func(t *testing.T) {
		mock := &mockOracle{err: oracle.ErrQuota}
		uc := newUseCases(t, mock)

		created, err := uc.Assessment.Create(ctx, testEvidence(), triage.Options{})
		gt.NoError(t, err).Required()

		gt.V(t, created.Result.Category).Equal(types.CategoryRoutine)
		gt.Number(t, float64(created.Result.Confidence)).Equal(0.5)
		gt.S(t, created.Result.Rationale).Contains("Default categorization applied")
		gt.S(t, created.Result.Rationale).Contains("quota")
	})

	t.Run("missing credential falls back without a call", func(t *testing.T) {
		uc := newUseCases(t, nil)

		created, err := uc.Assessment.Create(ctx, testEvidence(), triage.Options{})
		gt.NoError(t, err).Required()

		gt.V(t, created.Result.Category).Equal(types.CategoryRoutine)
		gt.S(t, created.Result.Rationale).Contains("not configured")
	})

	t.Run("empty description is rejected", func(t *testing.T) {
		uc := newUseCases(t, &mockOracle{response: "unused"})

		_, err := uc.Assessment.Create(ctx, &model.CaseEvidence{ClinicalDescription: " "}, triage.Options{})
		gt.Error(t, err)
		gt.B(t, errors.Is(err, model.ErrEmptyDescription)).True()
	})

	t.Run("without triage service", func(t *testing.T) {
		uc := usecase.New(memory.New())

		_, err := uc.Assessment.Create(ctx, testEvidence(), triage.Options{})
		gt.Error(t, err)
		gt.B(t, errors.Is(err, usecase.ErrTriageUnavailable)).True()
	})
}

func TestAssessmentGet(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t, &mockOracle{response: `{"category": "ROUTINE", "confidence": 0.8}`})

	t.Run("unknown ID maps to not found", func(t *testing.T) {
		_, err := uc.Assessment.Get(ctx, types.NewAssessmentID())
		gt.Error(t, err)
		gt.B(t, errors.Is(err, usecase.ErrAssessmentNotFound)).True()
	})

	t.Run("malformed ID maps to not found", func(t *testing.T) {
		_, err := uc.Assessment.Get(ctx, types.AssessmentID("not-a-uuid"))
		gt.Error(t, err)
		gt.B(t, errors.Is(err, usecase.ErrAssessmentNotFound)).True()
	})
}

func TestAssessmentBulkCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("triages every case", func(t *testing.T) {
		mock := &mockOracle{
			response: `{"category": "URGENT", "confidence": 0.9, "rationale": "test"}`,
		}
		uc := newUseCases(t, mock)

		evidences := []*model.CaseEvidence{
			{ClinicalDescription: "rapidly growing lesion with bleeding"},
			{ClinicalDescription: "stable lipoma, no change"},
			{ClinicalDescription: "irregular pigmented lesion on the scalp"},
		}

		created, err := uc.Assessment.BulkCreate(ctx, evidences, triage.Options{})
		gt.NoError(t, err).Required()

		gt.A(t, created).Length(3)
		gt.Number(t, mock.calls).Equal(3)
		for i, a := range created {
			gt.B(t, a.ID != "").True()
			gt.V(t, a.Evidence.ClinicalDescription).Equal(evidences[i].ClinicalDescription)
		}

		listed, err := uc.Assessment.List(ctx)
		gt.NoError(t, err).Required()
		gt.A(t, listed).Length(3)
	})

	t.Run("empty batch rejected", func(t *testing.T) {
		uc := newUseCases(t, &mockOracle{response: "unused"})

		_, err := uc.Assessment.BulkCreate(ctx, nil, triage.Options{})
		gt.Error(t, err)
		gt.B(t, errors.Is(err, usecase.ErrEmptyBulkRequest)).True()
	})

	t.Run("oversized batch rejected", func(t *testing.T) {
		uc := newUseCases(t, &mockOracle{response: "unused"})

		evidences := make([]*model.CaseEvidence, 51)
		for i := range evidences {
			evidences[i] = &model.CaseEvidence{ClinicalDescription: "lesion"}
		}

		_, err := uc.Assessment.BulkCreate(ctx, evidences, triage.Options{})
		gt.Error(t, err)
		gt.B(t, errors.Is(err, usecase.ErrBulkRequestTooLarge)).True()
	})

	t.Run("one invalid case fails the batch", func(t *testing.T) {
		uc := newUseCases(t, &mockOracle{response: `{"category": "ROUTINE", "confidence": 0.8}`})

		evidences := []*model.CaseEvidence{
			{ClinicalDescription: "stable lipoma"},
			{ClinicalDescription: "   "},
		}

		_, err := uc.Assessment.BulkCreate(ctx, evidences, triage.Options{})
		gt.Error(t, err)
		gt.B(t, errors.Is(err, model.ErrEmptyDescription)).True()
	})
}

func TestModelList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns provider models", func(t *testing.T) {
		uc := newUseCases(t, &mockOracle{})
		models := uc.Models.List(ctx)
		gt.A(t, models).Length(1)
		gt.V(t, models[0].Name).Equal("gpt-4o")
	})

	t.Run("falls back to defaults without a client", func(t *testing.T) {
		uc := usecase.New(memory.New())
		models := uc.Models.List(ctx)
		gt.B(t, len(models) >= 5).True()

		names := make([]string, 0, len(models))
		for _, m := range models {
			names = append(names, m.Name)
		}
		gt.B(t, strings.Contains(strings.Join(names, ","), "gpt-4o")).True()
	})
}
