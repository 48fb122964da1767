// Package usecase implements the key recovery flow: unwrapping a stored
// document key and handing it back to an authorized caller exactly as the
// processing run exported it.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/audit/domain"
	keysDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/keys/domain"
)

// WrappedKeyRepository defines the persistence operations consumed here.
type WrappedKeyRepository interface {
	GetByDocumentID(ctx context.Context, documentID uuid.UUID) (*keysDomain.WrappedKey, error)
	MarkDownloaded(ctx context.Context, keyID uuid.UUID) error
}

// AuditRepository records key access in the document's audit trail.
type AuditRepository interface {
	Create(ctx context.Context, entry *auditDomain.Entry) error
}

// KeyDownload is the response of a key download. ExportedKey carries the
// unwrapped document key in the same base64 form the processing run returned.
type KeyDownload struct {
	ExportedKey  string
	Fingerprint  string
	Provider     string
	DownloadedAt time.Time
}

// KeyUseCase defines the interface for wrapped key business logic.
type KeyUseCase interface {
	// Download unwraps the stored key of a document and returns it in
	// exported form. The first download time is recorded and kept.
	Download(ctx context.Context, documentID uuid.UUID) (*KeyDownload, error)

	// Get retrieves wrapped key metadata for a document. The key material
	// itself is never exposed through this operation.
	Get(ctx context.Context, documentID uuid.UUID) (*keysDomain.WrappedKey, error)
}
