package types

import (
	"fmt"
	"strings"
)

// Category represents the triage priority bucket of a clinical case
type Category string

const (
	CategoryUrgent      Category = "URGENT"
	CategoryRoutine     Category = "ROUTINE"
	CategoryNonPriority Category = "NON_PRIORITY"
)

// AllCategories returns all valid categories
func AllCategories() []Category {
	return []Category{
		CategoryUrgent,
		CategoryRoutine,
		CategoryNonPriority,
	}
}

// IsValid checks if the category is valid
func (c Category) IsValid() bool {
	switch c {
	case CategoryUrgent,
		CategoryRoutine,
		CategoryNonPriority:
		return true
	default:
		return false
	}
}

// String returns the string representation of the category
func (c Category) String() string {
	return string(c)
}

// ParseCategory parses a string into a Category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}

// NormalizeCategory maps free text returned by the classifier to a Category.
// The input is upper-cased and stripped of non-letter characters before
// substring matching, so "Non-Priority", "non_priority" and "NONPRIORITY"
// all resolve to CategoryNonPriority. Unrecognized values resolve to
// CategoryRoutine: an ambiguous classification must neither escalate a case
// to URGENT nor bury it in NON_PRIORITY.
func NormalizeCategory(s string) Category {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	normalized := b.String()

	switch {
	case strings.Contains(normalized, "URGENT"):
		return CategoryUrgent
	case strings.Contains(normalized, "ROUTINE"):
		return CategoryRoutine
	case strings.Contains(normalized, "NONPRIORITY"):
		return CategoryNonPriority
	default:
		return CategoryRoutine
	}
}
