// Package domain defines the core types for PII detection: categories, scan
// tiers, pattern rules, and match records.
package domain

// Category identifies a kind of personally identifiable information.
type Category string

// Known PII categories. The set is fixed at compile time; each category
// carries a fixed base risk weight used by the risk scorer.
const (
	CategorySSN         Category = "ssn"
	CategoryCreditCard  Category = "credit_card"
	CategoryPhone       Category = "phone"
	CategoryEmail       Category = "email"
	CategoryAddress     Category = "address"
	CategoryName        Category = "name"
	CategoryPassport    Category = "passport"
	CategoryLicense     Category = "license"
	CategoryMedicalID   Category = "medical_id"
	CategoryBankAccount Category = "bank_account"
	CategoryDateOfBirth Category = "date_of_birth"
)

// baseWeights holds the fixed base risk weight per category.
//
// date_of_birth is declared but currently bound to no recognizer in either
// tier, so its weight only matters if a rule is ever added for it.
var baseWeights = map[Category]float64{
	CategorySSN:         95,
	CategoryPassport:    90,
	CategoryMedicalID:   85,
	CategoryBankAccount: 80,
	CategoryCreditCard:  75,
	CategoryLicense:     70,
	CategoryDateOfBirth: 60,
	CategoryAddress:     50,
	CategoryPhone:       40,
	CategoryEmail:       30,
	CategoryName:        20,
}

// defaultBaseWeight is used for categories without an explicit weight entry.
const defaultBaseWeight = 10

// BaseWeight returns the fixed base risk weight for the category.
func (c Category) BaseWeight() float64 {
	if w, ok := baseWeights[c]; ok {
		return w
	}
	return defaultBaseWeight
}
