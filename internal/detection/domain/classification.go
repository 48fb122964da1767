package domain

// Classification is the handling decision derived from a document's risk score.
type Classification string

const (
	// ClassificationCompleted marks a document as processed and releasable.
	ClassificationCompleted Classification = "completed"

	// ClassificationQuarantined marks a document as requiring elevated
	// handling before release.
	ClassificationQuarantined Classification = "quarantined"
)

// QuarantineThreshold is the risk score above which (strictly) a document is
// quarantined. A score of exactly 80 completes; 81 quarantines.
const QuarantineThreshold = 80.0

// Classify maps a risk score to its classification.
func Classify(riskScore float64) Classification {
	if riskScore > QuarantineThreshold {
		return ClassificationQuarantined
	}
	return ClassificationCompleted
}
