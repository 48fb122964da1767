// Package usecase implements business logic orchestration for document
// processing: running the tokenization pipeline, persisting results and
// wrapped keys transactionally, and recording the audit trail.
package usecase

import (
	"context"

	"github.com/google/uuid"

	auditDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/audit/domain"
	detectionDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/detection/domain"
	documentsDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/documents/domain"
	keysDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/keys/domain"
	pipelineDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/pipeline/domain"
)

// DocumentRepository defines the interface for Document persistence operations.
type DocumentRepository interface {
	Create(ctx context.Context, document *documentsDomain.Document) error
	Get(ctx context.Context, documentID uuid.UUID) (*documentsDomain.Document, error)
	List(ctx context.Context, offset, limit int) ([]*documentsDomain.Document, error)
}

// WrappedKeyRepository defines the interface for WrappedKey persistence operations.
type WrappedKeyRepository interface {
	Create(ctx context.Context, key *keysDomain.WrappedKey) error
}

// AuditRepository defines the interface for audit trail persistence operations.
type AuditRepository interface {
	Create(ctx context.Context, entry *auditDomain.Entry) error
	ListByDocument(
		ctx context.Context,
		documentID uuid.UUID,
		offset, limit int,
	) ([]*auditDomain.Entry, error)
}

// DocumentPipeline defines the tokenization pipeline operations consumed here.
type DocumentPipeline interface {
	EncryptDocument(
		ctx context.Context,
		text string,
		tier detectionDomain.Tier,
	) (pipelineDomain.EncryptedDocument, error)
	DecryptDocument(
		ctx context.Context,
		encryptedText string,
		exportedKey string,
	) (pipelineDomain.DecryptionReport, error)
}

// ProcessResult is the one-time response of a processing run.
//
// ExportedKey is returned here and never again in this form; afterwards the
// key is only available through the key download flow.
type ProcessResult struct {
	Document    *documentsDomain.Document
	ExportedKey string
	Outcomes    []pipelineDomain.MatchOutcome
}

// DocumentUseCase defines the interface for document management business logic.
type DocumentUseCase interface {
	// Process runs the pipeline over content and persists the resulting
	// document, its wrapped key, and an audit entry in one transaction.
	Process(
		ctx context.Context,
		filename, content string,
		tier detectionDomain.Tier,
	) (*ProcessResult, error)

	// Get retrieves a stored document by ID.
	Get(ctx context.Context, documentID uuid.UUID) (*documentsDomain.Document, error)

	// List retrieves stored documents with pagination, newest first.
	List(ctx context.Context, offset, limit int) ([]*documentsDomain.Document, error)

	// Decrypt runs token decryption over a stored document's content with a
	// caller-supplied exported key.
	Decrypt(
		ctx context.Context,
		documentID uuid.UUID,
		exportedKey string,
	) (*pipelineDomain.DecryptionReport, error)

	// ListAudit retrieves the audit trail of a document, newest first.
	ListAudit(
		ctx context.Context,
		documentID uuid.UUID,
		offset, limit int,
	) ([]*auditDomain.Entry, error)
}
