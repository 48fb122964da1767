// Package domain defines the append-only audit trail for document operations.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Action identifies what happened to a document.
type Action string

const (
	ActionDocumentProcessed Action = "document.processed"
	ActionDocumentDecrypted Action = "document.decrypted"
	ActionKeyDownloaded     Action = "key.downloaded"
)

// Entry is one audit record. Entries are insert-only; there is no update or
// delete path anywhere in the codebase.
type Entry struct {
	ID         uuid.UUID
	DocumentID uuid.UUID
	Action     Action
	Detail     string
	CreatedAt  time.Time
}
