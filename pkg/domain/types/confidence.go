package types

// Confidence expresses the classifier's self-reported certainty in [0, 1]
type Confidence float64

// ConfidenceBand is the review band derived from a confidence value
type ConfidenceBand string

const (
	// ConfidenceBandHigh means clear indicators with strong clinical evidence
	ConfidenceBandHigh ConfidenceBand = "HIGH"
	// ConfidenceBandMedium means clinical review is recommended
	ConfidenceBandMedium ConfidenceBand = "MEDIUM"
	// ConfidenceBandLow means manual review is required
	ConfidenceBandLow ConfidenceBand = "LOW"
)

// ClampConfidence forces a raw value into the valid [0, 1] range
func ClampConfidence(v float64) Confidence {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return Confidence(v)
}

// Float64 returns the confidence as a plain float64
func (c Confidence) Float64() float64 {
	return float64(c)
}

// Band returns the review band for the confidence value.
// Thresholds follow the triage rubric: >=0.80 high, 0.50-0.79 medium,
// <0.50 low.
func (c Confidence) Band() ConfidenceBand {
	switch {
	case c >= 0.8:
		return ConfidenceBandHigh
	case c >= 0.5:
		return ConfidenceBandMedium
	default:
		return ConfidenceBandLow
	}
}

// NeedsManualReview reports whether the result should be flagged for
// manual clinical review
func (c Confidence) NeedsManualReview() bool {
	return c < 0.5
}
