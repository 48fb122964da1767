// Package domain defines the stored form of document keys.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wrap providers.
const (
	// ProviderLocal wraps document keys with a configured 32-byte wrap key
	// using an in-process AEAD cipher.
	ProviderLocal = "local"

	// ProviderKMS wraps document keys with an external KMS keeper.
	ProviderKMS = "kms"
)

// WrappedKey is a document key at rest. The exported key bytes are sealed by
// a wrap provider before insert; the raw key never touches the database.
//
// Nonce is only set for the local provider. KMS keepers manage their own
// nonces inside the opaque ciphertext.
type WrappedKey struct {
	ID           uuid.UUID
	DocumentID   uuid.UUID
	Fingerprint  string
	Ciphertext   []byte
	Nonce        []byte
	Provider     string
	CreatedAt    time.Time
	DownloadedAt *time.Time
}
