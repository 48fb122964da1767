// Package domain defines the results produced by the document processing
// pipeline: the encrypted document and the per-token decryption report.
package domain

import (
	cryptoDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/domain"
	detectionDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/detection/domain"
)

// MatchOutcome records the fate of one detected match during encryption.
//
// A failed match is left as original plaintext in the transformed text, so
// callers can see exactly what residual exposure remains.
type MatchOutcome struct {
	Category   detectionDomain.Category
	Confidence float64
	Encrypted  bool
	Err        error
}

// EncryptedDocument is the immutable result of one processing run.
//
// Key ownership transfers to the caller with this struct; the pipeline keeps
// no copy of the key material after returning.
type EncryptedDocument struct {
	TransformedText string
	Key             cryptoDomain.EncryptionKey
	Fingerprint     string
	Tier            detectionDomain.Tier
	MatchCount      int
	EncryptedCount  int
	RiskScore       float64
	Classification  detectionDomain.Classification
	Matches         []MatchOutcome
}

// TokenOutcome records the fate of one token during decryption. Failed
// tokens keep their literal form in the restored text.
type TokenOutcome struct {
	TokenLiteral string
	Success      bool
	Recovered    string
	Err          error
}

// DecryptionReport is the result of one decryption run. Outcomes follow the
// order of token appearance in the input text.
type DecryptionReport struct {
	RestoredText string
	Outcomes     []TokenOutcome
	SuccessCount int
	TotalCount   int
}
