package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/types"
)

func TestCategory_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		category types.Category
		want     bool
	}{
		{
			name:     "valid urgent",
			category: types.CategoryUrgent,
			want:     true,
		},
		{
			name:     "valid routine",
			category: types.CategoryRoutine,
			want:     true,
		},
		{
			name:     "valid non-priority",
			category: types.CategoryNonPriority,
			want:     true,
		},
		{
			name:     "invalid category",
			category: types.Category("CRITICAL"),
			want:     false,
		},
		{
			name:     "empty category",
			category: types.Category(""),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				gt.B(t, tt.category.IsValid()).True()
			} else {
				gt.B(t, tt.category.IsValid()).False()
			}
		})
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Category
	}{
		{
			name:  "exact urgent",
			input: "URGENT",
			want:  types.CategoryUrgent,
		},
		{
			name:  "lowercase urgent",
			input: "urgent",
			want:  types.CategoryUrgent,
		},
		{
			name:  "urgent with decoration",
			input: "** Urgent! **",
			want:  types.CategoryUrgent,
		},
		{
			name:  "exact routine",
			input: "ROUTINE",
			want:  types.CategoryRoutine,
		},
		{
			name:  "underscore non-priority",
			input: "NON_PRIORITY",
			want:  types.CategoryNonPriority,
		},
		{
			name:  "hyphenated non-priority",
			input: "Non-Priority",
			want:  types.CategoryNonPriority,
		},
		{
			name:  "collapsed non-priority",
			input: "nonpriority",
			want:  types.CategoryNonPriority,
		},
		{
			name:  "unknown defaults to routine",
			input: "EMERGENCY",
			want:  types.CategoryRoutine,
		},
		{
			name:  "empty defaults to routine",
			input: "",
			want:  types.CategoryRoutine,
		},
		{
			name:  "numeric noise defaults to routine",
			input: "12345",
			want:  types.CategoryRoutine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, types.NormalizeCategory(tt.input)).Equal(tt.want)
		})
	}
}

func TestParseCategory(t *testing.T) {
	t.Run("valid value", func(t *testing.T) {
		c, err := types.ParseCategory("URGENT")
		gt.NoError(t, err)
		gt.Value(t, c).Equal(types.CategoryUrgent)
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := types.ParseCategory("urgent")
		gt.Error(t, err)
	})
}

func TestConfidence_Clamp(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "in range", input: 0.92, want: 0.92},
		{name: "above range", input: 1.4, want: 1.0},
		{name: "below range", input: -0.3, want: 0.0},
		{name: "zero", input: 0, want: 0},
		{name: "one", input: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Number(t, types.ClampConfidence(tt.input).Float64()).Equal(tt.want)
		})
	}
}

func TestConfidence_Band(t *testing.T) {
	tests := []struct {
		name       string
		confidence types.Confidence
		want       types.ConfidenceBand
	}{
		{name: "high at threshold", confidence: 0.8, want: types.ConfidenceBandHigh},
		{name: "high above threshold", confidence: 0.95, want: types.ConfidenceBandHigh},
		{name: "medium at threshold", confidence: 0.5, want: types.ConfidenceBandMedium},
		{name: "medium below high", confidence: 0.79, want: types.ConfidenceBandMedium},
		{name: "low below threshold", confidence: 0.49, want: types.ConfidenceBandLow},
		{name: "low at zero", confidence: 0, want: types.ConfidenceBandLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, tt.confidence.Band()).Equal(tt.want)
		})
	}
}

func TestConfidence_NeedsManualReview(t *testing.T) {
	gt.B(t, types.Confidence(0.49).NeedsManualReview()).True()
	gt.B(t, types.Confidence(0.5).NeedsManualReview()).False()
}
