package model

import (
	"time"

	"github.com/ojhahemant/nhs-triage-app/pkg/domain/types"
)

// ActivityType identifies the kind of system activity recorded for
// the dashboard feed
type ActivityType string

const (
	ActivityAssessmentCompleted ActivityType = "assessment_completed"
	ActivityReferralSubmitted   ActivityType = "referral_submitted"
	ActivityLetterGenerated     ActivityType = "letter_generated"
	ActivitySystemUpdate        ActivityType = "system_update"
)

// Activity is one entry of the dashboard activity feed
type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	Actor       string       `json:"actor,omitempty"`
	OccurredAt  time.Time    `json:"occurred_at"`
}

// AlertSeverity grades a system alert
type AlertSeverity string

const (
	AlertSeverityLow    AlertSeverity = "low"
	AlertSeverityMedium AlertSeverity = "medium"
	AlertSeverityHigh   AlertSeverity = "high"
)

// Alert is an operational notice shown on the dashboard
type Alert struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Severity       AlertSeverity `json:"severity"`
	ActionRequired bool          `json:"action_required"`
}

// DashboardData aggregates triage statistics for the dashboard view
type DashboardData struct {
	TotalAssessments     int                    `json:"total_assessments"`
	PriorityDistribution map[types.Category]int `json:"priority_distribution"`
	VolumeByWeekday      map[string]int         `json:"volume_by_weekday"`
	LowConfidenceCount   int                    `json:"low_confidence_count"`
	RecentActivity       []Activity             `json:"recent_activity"`
	Alerts               []Alert                `json:"alerts"`
}
