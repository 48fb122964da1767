// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	auditDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/audit/domain"
	documentsDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/documents/domain"
	documentsUseCase "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/documents/usecase"
	pipelineDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/pipeline/domain"
)

// DocumentResponse represents a stored document in API responses. Content
// carries the tokenized text, never the original plaintext.
type DocumentResponse struct {
	ID             string    `json:"id"`
	Filename       string    `json:"filename"`
	Tier           string    `json:"tier"`
	Status         string    `json:"status"`
	Content        string    `json:"content,omitempty"`
	MatchCount     int       `json:"match_count"`
	EncryptedCount int       `json:"encrypted_count"`
	RiskScore      float64   `json:"risk_score"`
	KeyFingerprint string    `json:"key_fingerprint"`
	Algorithm      string    `json:"algorithm"`
	CreatedAt      time.Time `json:"created_at"`
}

// MatchOutcomeResponse represents the fate of one detected match.
type MatchOutcomeResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Encrypted  bool    `json:"encrypted"`
	Error      string  `json:"error,omitempty"`
}

// ProcessDocumentResponse is the one-time response of a processing run.
// SECURITY: Key is only returned here; afterwards it is available solely
// through the key download endpoint. Must be transmitted over HTTPS.
type ProcessDocumentResponse struct {
	Document DocumentResponse       `json:"document"`
	Key      string                 `json:"key"`
	Outcomes []MatchOutcomeResponse `json:"outcomes"`
}

// TokenOutcomeResponse represents the fate of one token during decryption.
type TokenOutcomeResponse struct {
	Token     string `json:"token"`
	Success   bool   `json:"success"`
	Recovered string `json:"recovered,omitempty"`
	Error     string `json:"error,omitempty"`
}

// DecryptDocumentResponse represents the result of a decryption run.
// KeyFingerprint identifies the key the document was processed with, so
// callers can compare it against the fingerprint of the key they supplied.
type DecryptDocumentResponse struct {
	RestoredText   string                 `json:"restored_text"`
	KeyFingerprint string                 `json:"key_fingerprint"`
	Outcomes       []TokenOutcomeResponse `json:"outcomes"`
	SuccessCount   int                    `json:"success_count"`
	TotalCount     int                    `json:"total_count"`
}

// AuditEntryResponse represents one audit trail entry.
type AuditEntryResponse struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	Action     string    `json:"action"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"created_at"`
}

// ListDocumentsResponse represents a paginated list of documents.
type ListDocumentsResponse struct {
	Data []DocumentResponse `json:"data"`
}

// ListAuditResponse represents a document's audit trail.
type ListAuditResponse struct {
	Data []AuditEntryResponse `json:"data"`
}

// MapDocumentToResponse converts a domain document to an API response.
func MapDocumentToResponse(document *documentsDomain.Document) DocumentResponse {
	return DocumentResponse{
		ID:             document.ID.String(),
		Filename:       document.Filename,
		Tier:           string(document.Tier),
		Status:         string(document.Status),
		Content:        document.Content,
		MatchCount:     document.MatchCount,
		EncryptedCount: document.EncryptedCount,
		RiskScore:      document.RiskScore,
		KeyFingerprint: document.KeyFingerprint,
		Algorithm:      document.Algorithm,
		CreatedAt:      document.CreatedAt,
	}
}

// MapProcessResultToResponse converts a processing result to an API response.
func MapProcessResultToResponse(result *documentsUseCase.ProcessResult) ProcessDocumentResponse {
	outcomes := make([]MatchOutcomeResponse, 0, len(result.Outcomes))
	for _, outcome := range result.Outcomes {
		mapped := MatchOutcomeResponse{
			Category:   string(outcome.Category),
			Confidence: outcome.Confidence,
			Encrypted:  outcome.Encrypted,
		}
		if outcome.Err != nil {
			mapped.Error = outcome.Err.Error()
		}
		outcomes = append(outcomes, mapped)
	}

	return ProcessDocumentResponse{
		Document: MapDocumentToResponse(result.Document),
		Key:      result.ExportedKey,
		Outcomes: outcomes,
	}
}

// MapReportToResponse converts a decryption report to an API response.
// keyFingerprint is the fingerprint recorded on the stored document.
func MapReportToResponse(report *pipelineDomain.DecryptionReport, keyFingerprint string) DecryptDocumentResponse {
	outcomes := make([]TokenOutcomeResponse, 0, len(report.Outcomes))
	for _, outcome := range report.Outcomes {
		mapped := TokenOutcomeResponse{
			Token:     outcome.TokenLiteral,
			Success:   outcome.Success,
			Recovered: outcome.Recovered,
		}
		if outcome.Err != nil {
			mapped.Error = outcome.Err.Error()
		}
		outcomes = append(outcomes, mapped)
	}

	return DecryptDocumentResponse{
		RestoredText:   report.RestoredText,
		KeyFingerprint: keyFingerprint,
		Outcomes:       outcomes,
		SuccessCount:   report.SuccessCount,
		TotalCount:     report.TotalCount,
	}
}

// MapDocumentsToListResponse converts domain documents to a list response.
// Content is excluded from list responses.
func MapDocumentsToListResponse(documents []*documentsDomain.Document) ListDocumentsResponse {
	data := make([]DocumentResponse, 0, len(documents))
	for _, document := range documents {
		mapped := MapDocumentToResponse(document)
		mapped.Content = ""
		data = append(data, mapped)
	}

	return ListDocumentsResponse{
		Data: data,
	}
}

// MapEntriesToListResponse converts audit entries to a list response.
func MapEntriesToListResponse(entries []*auditDomain.Entry) ListAuditResponse {
	data := make([]AuditEntryResponse, 0, len(entries))
	for _, entry := range entries {
		data = append(data, AuditEntryResponse{
			ID:         entry.ID.String(),
			DocumentID: entry.DocumentID.String(),
			Action:     string(entry.Action),
			Detail:     entry.Detail,
			CreatedAt:  entry.CreatedAt,
		})
	}

	return ListAuditResponse{
		Data: data,
	}
}
