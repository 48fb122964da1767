package domain

import (
	apperrors "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/errors"
)

// Tier selects which pattern subset the detector scans with and how the risk
// scorer weights breadth of exposure.
type Tier string

const (
	// TierStandard scans the consumer-grade pattern subset.
	TierStandard Tier = "standard"

	// TierEnhanced scans every registered pattern and applies a volume
	// penalty during risk scoring.
	TierEnhanced Tier = "enhanced"
)

// ErrUnknownTier indicates a tier value outside {standard, enhanced}.
var ErrUnknownTier = apperrors.Wrap(apperrors.ErrInvalidInput, "unknown tier")

// ParseTier validates and converts a string into a Tier.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierStandard:
		return TierStandard, nil
	case TierEnhanced:
		return TierEnhanced, nil
	default:
		return "", ErrUnknownTier
	}
}
