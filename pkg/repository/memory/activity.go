package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
)

type activityRepository struct {
	mu         sync.RWMutex
	activities []*model.Activity
}

func newActivityRepository() *activityRepository {
	return &activityRepository{}
}

func (r *activityRepository) Record(ctx context.Context, a *model.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	recorded := *a
	if recorded.ID == "" {
		recorded.ID = uuid.NewString()
	}
	if recorded.OccurredAt.IsZero() {
		recorded.OccurredAt = time.Now().UTC()
	}

	// newest first
	r.activities = append([]*model.Activity{&recorded}, r.activities...)
	return nil
}

func (r *activityRepository) Recent(ctx context.Context, limit int) ([]*model.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.activities) {
		limit = len(r.activities)
	}

	out := make([]*model.Activity, 0, limit)
	for _, a := range r.activities[:limit] {
		copied := *a
		out = append(out, &copied)
	}

	return out, nil
}
