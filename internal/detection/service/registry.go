// Package service implements the pattern registry, the detector, and the risk
// scorer. Detection is deterministic regex matching over a fixed rule table;
// no entity-recognition models are involved.
package service

import (
	"regexp"

	detectionDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/detection/domain"
)

// recognizers holds the compiled recognizer for each scannable category.
// date_of_birth is a declared category without a recognizer, so it never
// appears here.
var recognizers = map[detectionDomain.Category]*regexp.Regexp{
	detectionDomain.CategorySSN:         regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
	detectionDomain.CategoryPhone:       regexp.MustCompile(`\b(\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})\b`),
	detectionDomain.CategoryEmail:       regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	detectionDomain.CategoryCreditCard:  regexp.MustCompile(`\b(?:\d{4}[-\s]?){3}\d{4}\b`),
	detectionDomain.CategoryPassport:    regexp.MustCompile(`\b[A-Z]{1,2}\d{6,9}\b`),
	detectionDomain.CategoryLicense:     regexp.MustCompile(`\b[A-Z]{1,2}\d{6,8}\b`),
	detectionDomain.CategoryMedicalID:   regexp.MustCompile(`(?i)\b(MRN|PAT|PATIENT)[-\s]?\d{6,10}`),
	detectionDomain.CategoryBankAccount: regexp.MustCompile(`\b\d{8,17}\b`),
	detectionDomain.CategoryAddress:     regexp.MustCompile(`(?i)\b\d+\s+[A-Za-z\s,]+\s+(Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Court|Ct|Place|Pl)\b`),
	detectionDomain.CategoryName:        regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`),
}

// Scan order is declared per tier. Order is contractual: it defines both the
// sequence recognizers run in and which rule wins when two categories match
// overlapping text (the earlier rule keeps its match).
var (
	standardOrder = []detectionDomain.Category{
		detectionDomain.CategoryPhone,
		detectionDomain.CategoryEmail,
		detectionDomain.CategoryAddress,
		detectionDomain.CategoryName,
		detectionDomain.CategoryCreditCard,
	}

	enhancedOrder = []detectionDomain.Category{
		detectionDomain.CategorySSN,
		detectionDomain.CategoryPhone,
		detectionDomain.CategoryEmail,
		detectionDomain.CategoryCreditCard,
		detectionDomain.CategoryPassport,
		detectionDomain.CategoryLicense,
		detectionDomain.CategoryMedicalID,
		detectionDomain.CategoryBankAccount,
		detectionDomain.CategoryAddress,
		detectionDomain.CategoryName,
	}
)

// Registry is the process-wide, read-only PII pattern table. It is built once
// at startup and safe for concurrent use.
type Registry struct {
	standard []detectionDomain.PatternRule
	enhanced []detectionDomain.PatternRule
}

// NewRegistry builds the registry from the declared rule table.
func NewRegistry() *Registry {
	return &Registry{
		standard: buildRules(standardOrder, detectionDomain.TierStandard),
		enhanced: buildRules(enhancedOrder, detectionDomain.TierEnhanced),
	}
}

// Rules returns the ordered active rules for the given tier.
func (r *Registry) Rules(tier detectionDomain.Tier) []detectionDomain.PatternRule {
	if tier == detectionDomain.TierEnhanced {
		return r.enhanced
	}
	return r.standard
}

// buildRules assembles the ordered rule slice for a tier.
func buildRules(order []detectionDomain.Category, tier detectionDomain.Tier) []detectionDomain.PatternRule {
	rules := make([]detectionDomain.PatternRule, 0, len(order))
	for _, category := range order {
		visibility := detectionDomain.VisibilityEnhanced
		if isStandardCategory(category) {
			visibility = detectionDomain.VisibilityBoth
		}
		rules = append(rules, detectionDomain.PatternRule{
			Category:   category,
			Recognizer: recognizers[category],
			Visibility: visibility,
		})
	}
	return rules
}

// isStandardCategory reports whether the category is part of the standard subset.
func isStandardCategory(category detectionDomain.Category) bool {
	for _, c := range standardOrder {
		if c == category {
			return true
		}
	}
	return false
}
