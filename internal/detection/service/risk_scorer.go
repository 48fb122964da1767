package service

import (
	detectionDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/detection/domain"
)

// RiskScorer reduces a match list to a single 0-100 risk score and a
// quarantine classification.
type RiskScorer struct{}

// NewRiskScorer creates a new risk scorer.
func NewRiskScorer() *RiskScorer {
	return &RiskScorer{}
}

// Score computes the document risk score for the given matches and tier.
//
// The score is the maximum of base_weight * confidence over all matches, so a
// single highly sensitive, high-confidence detection dominates; summing would
// let many low-grade matches mask one critical one. Enhanced-tier documents
// additionally pay 5 points per match as a breadth-of-exposure penalty. The
// result is clamped to [0, 100]; an empty match list scores 0 and completes.
func (s *RiskScorer) Score(
	matches []detectionDomain.Match,
	tier detectionDomain.Tier,
) (float64, detectionDomain.Classification) {
	if len(matches) == 0 {
		return 0, detectionDomain.ClassificationCompleted
	}

	var maxRisk float64
	for _, match := range matches {
		adjusted := match.Category.BaseWeight() * match.Confidence
		if adjusted > maxRisk {
			maxRisk = adjusted
		}
	}

	if tier == detectionDomain.TierEnhanced {
		maxRisk += float64(len(matches)) * 5
	}

	if maxRisk > 100 {
		maxRisk = 100
	}
	if maxRisk < 0 {
		maxRisk = 0
	}

	return maxRisk, detectionDomain.Classify(maxRisk)
}
