package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/interfaces"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/types"
)

type assessmentRepository struct {
	mu          sync.RWMutex
	assessments map[types.AssessmentID]*model.Assessment
}

func newAssessmentRepository() *assessmentRepository {
	return &assessmentRepository{
		assessments: make(map[types.AssessmentID]*model.Assessment),
	}
}

func (r *assessmentRepository) Create(ctx context.Context, a *model.Assessment) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyAssessment(a)
	if created.ID == "" {
		created.ID = types.NewAssessmentID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	if _, exists := r.assessments[created.ID]; exists {
		return nil, goerr.New("assessment already exists", goerr.V("id", created.ID))
	}

	r.assessments[created.ID] = created
	return copyAssessment(created), nil
}

func (r *assessmentRepository) Get(ctx context.Context, id types.AssessmentID) (*model.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.assessments[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "assessment not found", goerr.V("id", id))
	}

	return copyAssessment(a), nil
}

func (r *assessmentRepository) List(ctx context.Context, opts ...interfaces.ListAssessmentOption) ([]*model.Assessment, error) {
	var filter interfaces.ListAssessmentFilter
	for _, opt := range opts {
		opt(&filter)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	assessments := make([]*model.Assessment, 0, len(r.assessments))
	for _, a := range r.assessments {
		if filter.Category != nil && a.Result.Category != *filter.Category {
			continue
		}
		assessments = append(assessments, copyAssessment(a))
	}

	sort.Slice(assessments, func(i, j int) bool {
		return assessments[i].CreatedAt.After(assessments[j].CreatedAt)
	})

	if filter.Limit > 0 && len(assessments) > filter.Limit {
		assessments = assessments[:filter.Limit]
	}

	return assessments, nil
}

// copyAssessment deep-copies to prevent external modification of stored data
func copyAssessment(a *model.Assessment) *model.Assessment {
	copied := *a

	if a.Evidence.PatientAge != nil {
		age := *a.Evidence.PatientAge
		copied.Evidence.PatientAge = &age
	}
	copied.Evidence.PriorSymptoms = append([]string(nil), a.Evidence.PriorSymptoms...)
	copied.Indicators.Urgent = append([]string(nil), a.Indicators.Urgent...)
	copied.Indicators.Routine = append([]string(nil), a.Indicators.Routine...)
	copied.Indicators.NonPriority = append([]string(nil), a.Indicators.NonPriority...)

	return &copied
}
