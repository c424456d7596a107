package triage

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/types"
)

// jsonDefaultConfidence is assumed when a parsed JSON object omits the
// confidence field. The text-fallback path uses 0.8 on a keyword match
// instead; the discrepancy is inherited from the clinical rubric as
// deployed and is preserved as observed.
const jsonDefaultConfidence = 0.7

const fallbackMatchConfidence = 0.8

const rationaleExcerptLimit = 100

var confidencePattern = regexp.MustCompile(`(?i)confidence[:\s]*([0-9]*\.?[0-9]+)`)

// ParseResponse converts raw classifier output into a validated result.
// It never fails: a well-formed JSON object wins, otherwise the raw text is
// scanned for category keywords. Every path clamps confidence into [0, 1]
// and guarantees a non-empty rationale.
func ParseResponse(raw string) *model.CategorizationResult {
	if result, ok := parseJSON(raw); ok {
		return result
	}
	return parseText(raw)
}

// parseJSON extracts the first brace-delimited span from the text and
// attempts strict JSON decoding
func parseJSON(raw string) (*model.CategorizationResult, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, false
	}

	var payload struct {
		Category   string   `json:"category"`
		Confidence *float64 `json:"confidence"`
		Rationale  string   `json:"rationale"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return nil, false
	}

	confidence := jsonDefaultConfidence
	if payload.Confidence != nil {
		confidence = *payload.Confidence
	}

	rationale := payload.Rationale
	if rationale == "" {
		rationale = model.DefaultRationale
	}

	return &model.CategorizationResult{
		Category:   types.NormalizeCategory(payload.Category),
		Confidence: types.ClampConfidence(confidence),
		Rationale:  rationale,
	}, true
}

// parseText recovers a best-effort result from free-form classifier output.
// Keyword precedence is URGENT, then NON_PRIORITY, then ROUTINE; the first
// match wins and carries a fixed confidence, optionally overridden by an
// explicit "confidence: <number>" mention in the text.
func parseText(raw string) *model.CategorizationResult {
	upper := strings.ToUpper(raw)

	category := types.CategoryRoutine
	confidence := jsonDefaultConfidence

	switch {
	case strings.Contains(upper, "URGENT"):
		category = types.CategoryUrgent
		confidence = fallbackMatchConfidence
	case strings.Contains(upper, "NON-PRIORITY"), strings.Contains(upper, "NON_PRIORITY"):
		category = types.CategoryNonPriority
		confidence = fallbackMatchConfidence
	case strings.Contains(upper, "ROUTINE"):
		category = types.CategoryRoutine
		confidence = fallbackMatchConfidence
	}

	if m := confidencePattern.FindStringSubmatch(raw); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			confidence = v
		}
	}

	excerpt := raw
	if len(excerpt) > rationaleExcerptLimit {
		excerpt = excerpt[:rationaleExcerptLimit]
	}

	return &model.CategorizationResult{
		Category:   category,
		Confidence: types.ClampConfidence(confidence),
		Rationale:  fmt.Sprintf("Extracted from text response: %s...", excerpt),
	}
}
