package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/interfaces"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/types"
)

// recentActivityLimit bounds the dashboard activity feed
const recentActivityLimit = 10

type DashboardUseCase struct {
	repo interfaces.Repository
}

func NewDashboardUseCase(repo interfaces.Repository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Compute aggregates the stored assessments into the dashboard view:
// verdict distribution, weekday intake volume, low-confidence backlog and
// the recent activity feed. Alerts are derived from the live data.
func (uc *DashboardUseCase) Compute(ctx context.Context) (*model.DashboardData, error) {
	assessments, err := uc.repo.Assessment().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load assessments for dashboard")
	}

	data := &model.DashboardData{
		TotalAssessments: len(assessments),
		PriorityDistribution: map[types.Category]int{
			types.CategoryUrgent:      0,
			types.CategoryRoutine:     0,
			types.CategoryNonPriority: 0,
		},
		VolumeByWeekday: map[string]int{},
	}

	for _, a := range assessments {
		data.PriorityDistribution[a.Result.Category]++
		data.VolumeByWeekday[a.CreatedAt.Weekday().String()[:3]]++
		if a.Result.Confidence.NeedsManualReview() {
			data.LowConfidenceCount++
		}
	}

	activities, err := uc.repo.Activity().Recent(ctx, recentActivityLimit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load recent activity")
	}
	for _, a := range activities {
		data.RecentActivity = append(data.RecentActivity, *a)
	}

	data.Alerts = buildAlerts(data)

	return data, nil
}

func buildAlerts(data *model.DashboardData) []model.Alert {
	var alerts []model.Alert

	if urgent := data.PriorityDistribution[types.CategoryUrgent]; urgent > 0 {
		alerts = append(alerts, model.Alert{
			ID:             "urgent-backlog",
			Title:          fmt.Sprintf("%d urgent referrals requiring review", urgent),
			Description:    "Priority cases need attention within 24 hours",
			Severity:       model.AlertSeverityHigh,
			ActionRequired: true,
		})
	}

	if data.LowConfidenceCount > 0 {
		alerts = append(alerts, model.Alert{
			ID:             "low-confidence-backlog",
			Title:          fmt.Sprintf("%d assessments below the confidence threshold", data.LowConfidenceCount),
			Description:    "Low-confidence verdicts need manual categorization review",
			Severity:       model.AlertSeverityMedium,
			ActionRequired: true,
		})
	}

	return alerts
}
