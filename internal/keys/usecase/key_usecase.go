package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/audit/domain"
	cryptoDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/domain"
	cryptoService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/service"
	keysDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/keys/domain"
	keysService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/keys/service"
)

// keyUseCase implements the KeyUseCase interface.
type keyUseCase struct {
	keyRepo    WrappedKeyRepository
	auditRepo  AuditRepository
	keyManager cryptoService.KeyManager
	keyWrapper keysService.KeyWrapper
}

// NewKeyUseCase creates a new key use case instance with the provided dependencies.
func NewKeyUseCase(
	keyRepo WrappedKeyRepository,
	auditRepo AuditRepository,
	keyManager cryptoService.KeyManager,
	keyWrapper keysService.KeyWrapper,
) KeyUseCase {
	return &keyUseCase{
		keyRepo:    keyRepo,
		auditRepo:  auditRepo,
		keyManager: keyManager,
		keyWrapper: keyWrapper,
	}
}

// Download unwraps the stored key of a document and returns it in exported form.
func (k *keyUseCase) Download(ctx context.Context, documentID uuid.UUID) (*KeyDownload, error) {
	wrapped, err := k.keyRepo.GetByDocumentID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	plaintext, err := k.keyWrapper.Unwrap(ctx, wrapped.Ciphertext, wrapped.Nonce)
	if err != nil {
		return nil, err
	}

	key := cryptoDomain.EncryptionKey{Bytes: plaintext, Algorithm: cryptoDomain.AESGCM}
	defer key.Zero()
	exportedKey := k.keyManager.Export(key)

	if err := k.keyRepo.MarkDownloaded(ctx, wrapped.ID); err != nil {
		return nil, err
	}

	downloadedAt := time.Now().UTC()
	entry := &auditDomain.Entry{
		ID:         uuid.Must(uuid.NewV7()),
		DocumentID: documentID,
		Action:     auditDomain.ActionKeyDownloaded,
		Detail: fmt.Sprintf(
			"key_fingerprint=%s provider=%s", wrapped.Fingerprint, wrapped.Provider,
		),
		CreatedAt: downloadedAt,
	}
	if err := k.auditRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return &KeyDownload{
		ExportedKey:  exportedKey,
		Fingerprint:  wrapped.Fingerprint,
		Provider:     wrapped.Provider,
		DownloadedAt: downloadedAt,
	}, nil
}

// Get retrieves wrapped key metadata for a document with the key material
// stripped out.
func (k *keyUseCase) Get(ctx context.Context, documentID uuid.UUID) (*keysDomain.WrappedKey, error) {
	wrapped, err := k.keyRepo.GetByDocumentID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	metadata := *wrapped
	metadata.Ciphertext = nil
	metadata.Nonce = nil
	return &metadata, nil
}
