package interfaces

import (
	"context"

	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/types"
)

// ListAssessmentOption narrows an assessment listing
type ListAssessmentOption func(*ListAssessmentFilter)

// ListAssessmentFilter holds the resolved listing filters
type ListAssessmentFilter struct {
	Category *types.Category
	Limit    int
}

// WithCategory filters the listing to a single triage category
func WithCategory(c types.Category) ListAssessmentOption {
	return func(f *ListAssessmentFilter) {
		f.Category = &c
	}
}

// WithLimit bounds the number of returned assessments (most recent first)
func WithLimit(n int) ListAssessmentOption {
	return func(f *ListAssessmentFilter) {
		f.Limit = n
	}
}

// AssessmentRepository persists triage assessments
type AssessmentRepository interface {
	Create(ctx context.Context, a *model.Assessment) (*model.Assessment, error)
	Get(ctx context.Context, id types.AssessmentID) (*model.Assessment, error)
	List(ctx context.Context, opts ...ListAssessmentOption) ([]*model.Assessment, error)
}

// ActivityRepository persists dashboard activity entries
type ActivityRepository interface {
	Record(ctx context.Context, a *model.Activity) error
	Recent(ctx context.Context, limit int) ([]*model.Activity, error)
}
