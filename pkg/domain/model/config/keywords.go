package config

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// KeywordConfig holds the clinical indicator keyword lists used to enrich
// the classifier prompt. The lists are illustrative clinical heuristics, not
// a validated rule set, so they live in configuration rather than code and
// can be revised by clinical reviewers without a release.
type KeywordConfig struct {
	Urgent       []string
	Routine      []string
	NonPriority  []string
	VisualUrgent []string
}

// Validate checks the keyword lists for emptiness and cross-list overlap.
// The three priority lists must stay disjoint; an overlapping keyword would
// flag contradictory indicators for the same phrase.
func (c *KeywordConfig) Validate() error {
	lists := map[string][]string{
		"urgent":       c.Urgent,
		"routine":      c.Routine,
		"non_priority": c.NonPriority,
	}

	seen := map[string]string{}
	for name, list := range lists {
		if len(list) == 0 {
			return goerr.New("keyword list is empty", goerr.V("list", name))
		}
		for _, kw := range list {
			normalized := strings.ToLower(strings.TrimSpace(kw))
			if normalized == "" {
				return goerr.New("keyword is empty", goerr.V("list", name))
			}
			if prev, ok := seen[normalized]; ok && prev != name {
				return goerr.New("keyword appears in multiple lists",
					goerr.V("keyword", normalized),
					goerr.V("lists", []string{prev, name}),
				)
			}
			seen[normalized] = name
		}
	}

	return nil
}

// DefaultKeywordConfig returns the built-in keyword lists derived from the
// plastic surgery urgency categorization guidelines
func DefaultKeywordConfig() *KeywordConfig {
	return &KeywordConfig{
		Urgent: []string{
			"malignancy", "malignant", "cancer", "carcinoma", "melanoma",
			"bleeding", "ulcerat", "rapid", "growing", "chang", "enlarg",
			"urgent", "2 week", "two week", "immediately", "asap",
			"suspicious", "irregular", "asymmetr", "variegated",
			"fixed", "attach", "lymph", "node", "swelling",
			"immunocompromised", "transplant", "immunosuppress",
			"head", "face", "functional", "vision", "breathing",
			"speech", "hearing", "eating", "activities of daily living", "adl",
		},
		Routine: []string{
			"routine", "soon", "4-6 week", "6 week", "expedite",
			"cyst", "lipoma", "seborrheic", "actinic", "keratosis",
			"scar", "keloid", "cosmetic", "appearance",
		},
		NonPriority: []string{
			"cosmetic only", "appearance only", "when convenient",
			"no urgency", "stable", "long-standing", "no change",
		},
		VisualUrgent: []string{
			"irregular", "asymmetric", "bleeding", "ulcerated", "black", "dark",
			"variegated", "multiple colors", "raised", "nodular", "large",
		},
	}
}
