// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	keysDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/keys/domain"
	keysUseCase "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/keys/usecase"
)

// KeyDownloadResponse carries an unwrapped document key in exported form.
// SECURITY: Must be transmitted over HTTPS in production.
type KeyDownloadResponse struct {
	Key          string    `json:"key"`
	Fingerprint  string    `json:"fingerprint"`
	Provider     string    `json:"provider"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

// KeyMetadataResponse represents wrapped key metadata. The key material
// itself is never included.
type KeyMetadataResponse struct {
	ID           string     `json:"id"`
	DocumentID   string     `json:"document_id"`
	Fingerprint  string     `json:"fingerprint"`
	Provider     string     `json:"provider"`
	CreatedAt    time.Time  `json:"created_at"`
	DownloadedAt *time.Time `json:"downloaded_at,omitempty"`
}

// MapDownloadToResponse converts a key download result to an API response.
func MapDownloadToResponse(download *keysUseCase.KeyDownload) KeyDownloadResponse {
	return KeyDownloadResponse{
		Key:          download.ExportedKey,
		Fingerprint:  download.Fingerprint,
		Provider:     download.Provider,
		DownloadedAt: download.DownloadedAt,
	}
}

// MapKeyToMetadataResponse converts a wrapped key to a metadata response.
func MapKeyToMetadataResponse(key *keysDomain.WrappedKey) KeyMetadataResponse {
	return KeyMetadataResponse{
		ID:           key.ID.String(),
		DocumentID:   key.DocumentID.String(),
		Fingerprint:  key.Fingerprint,
		Provider:     key.Provider,
		CreatedAt:    key.CreatedAt,
		DownloadedAt: key.DownloadedAt,
	}
}
