// Package domain defines the persisted document model for processed content.
package domain

import (
	"time"

	"github.com/google/uuid"

	detectionDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/detection/domain"
)

// Status is the terminal processing state of a document.
type Status string

const (
	// StatusCompleted marks a document processed within the risk threshold.
	StatusCompleted Status = "completed"

	// StatusQuarantined marks a document whose risk score exceeded the
	// quarantine threshold. Content is stored but flagged for review.
	StatusQuarantined Status = "quarantined"
)

// StatusFromClassification maps a pipeline classification to a document status.
func StatusFromClassification(c detectionDomain.Classification) Status {
	if c == detectionDomain.ClassificationQuarantined {
		return StatusQuarantined
	}
	return StatusCompleted
}

// Document is a processed document record. Content holds the tokenized text;
// raw PII never reaches storage.
type Document struct {
	ID             uuid.UUID
	Filename       string
	Tier           detectionDomain.Tier
	Status         Status
	Content        string
	MatchCount     int
	EncryptedCount int
	RiskScore      float64
	KeyFingerprint string
	Algorithm      string
	CreatedAt      time.Time
}
