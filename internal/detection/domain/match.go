package domain

import "regexp"

// PatternRule binds a category to its recognizer and declares which tiers may
// use it. Rules live in a fixed, process-wide, read-only registry built at
// startup; the order in which rules are declared defines scan order and the
// cross-rule overlap tie-break.
type PatternRule struct {
	Category   Category
	Recognizer *regexp.Regexp
	Visibility Visibility
}

// Visibility declares which tiers a pattern rule is active for.
type Visibility string

const (
	VisibilityStandard Visibility = "standard"
	VisibilityEnhanced Visibility = "enhanced"
	VisibilityBoth     Visibility = "both"
)

// ActiveFor reports whether the rule is scanned at the given tier.
func (v Visibility) ActiveFor(tier Tier) bool {
	switch v {
	case VisibilityBoth:
		return true
	case VisibilityStandard:
		return tier == TierStandard
	case VisibilityEnhanced:
		return tier == TierEnhanced
	default:
		return false
	}
}

// Match is one detected PII occurrence. Start and End are byte offsets into
// the scanned text (End exclusive). Confidence is a synthetic value in
// [0.6, 1.0) standing in for a real recognizer's confidence.
type Match struct {
	Category   Category
	Text       string
	Start      int
	End        int
	Confidence float64
}

// Overlaps reports whether two matches share any byte offset.
func (m Match) Overlaps(other Match) bool {
	return m.Start < other.End && other.Start < m.End
}
