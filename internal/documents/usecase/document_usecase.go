package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/audit/domain"
	cryptoDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/domain"
	cryptoService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/crypto/service"
	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/database"
	detectionDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/detection/domain"
	documentsDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/documents/domain"
	keysDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/keys/domain"
	keysService "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/keys/service"
	pipelineDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/pipeline/domain"
)

// documentUseCase implements the DocumentUseCase interface.
type documentUseCase struct {
	txManager    database.TxManager
	documentRepo DocumentRepository
	keyRepo      WrappedKeyRepository
	auditRepo    AuditRepository
	pipeline     DocumentPipeline
	keyManager   cryptoService.KeyManager
	keyWrapper   keysService.KeyWrapper
}

// NewDocumentUseCase creates a new document use case instance with the provided dependencies.
func NewDocumentUseCase(
	txManager database.TxManager,
	documentRepo DocumentRepository,
	keyRepo WrappedKeyRepository,
	auditRepo AuditRepository,
	pipeline DocumentPipeline,
	keyManager cryptoService.KeyManager,
	keyWrapper keysService.KeyWrapper,
) DocumentUseCase {
	return &documentUseCase{
		txManager:    txManager,
		documentRepo: documentRepo,
		keyRepo:      keyRepo,
		auditRepo:    auditRepo,
		pipeline:     pipeline,
		keyManager:   keyManager,
		keyWrapper:   keyWrapper,
	}
}

// Process runs the pipeline over content and persists the result.
func (d *documentUseCase) Process(
	ctx context.Context,
	filename, content string,
	tier detectionDomain.Tier,
) (*ProcessResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, documentsDomain.ErrEmptyContent
	}

	encrypted, err := d.pipeline.EncryptDocument(ctx, content, tier)
	if err != nil {
		return nil, err
	}
	defer encrypted.Key.Zero()

	exportedKey := d.keyManager.Export(encrypted.Key)

	wrappedCiphertext, wrapNonce, err := d.keyWrapper.Wrap(ctx, encrypted.Key.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to wrap document key: %w", err)
	}

	document := &documentsDomain.Document{
		ID:             uuid.Must(uuid.NewV7()),
		Filename:       filename,
		Tier:           tier,
		Status:         documentsDomain.StatusFromClassification(encrypted.Classification),
		Content:        encrypted.TransformedText,
		MatchCount:     encrypted.MatchCount,
		EncryptedCount: encrypted.EncryptedCount,
		RiskScore:      encrypted.RiskScore,
		KeyFingerprint: encrypted.Fingerprint,
		Algorithm:      encrypted.Key.Algorithm.Label(),
		CreatedAt:      time.Now().UTC(),
	}

	wrappedKey := &keysDomain.WrappedKey{
		ID:          uuid.Must(uuid.NewV7()),
		DocumentID:  document.ID,
		Fingerprint: encrypted.Fingerprint,
		Ciphertext:  wrappedCiphertext,
		Nonce:       wrapNonce,
		Provider:    d.keyWrapper.Provider(),
		CreatedAt:   document.CreatedAt,
	}

	entry := &auditDomain.Entry{
		ID:         uuid.Must(uuid.NewV7()),
		DocumentID: document.ID,
		Action:     auditDomain.ActionDocumentProcessed,
		Detail: fmt.Sprintf(
			"tier=%s status=%s matches=%d encrypted=%d risk_score=%.1f",
			tier, document.Status, document.MatchCount, document.EncryptedCount, document.RiskScore,
		),
		CreatedAt: document.CreatedAt,
	}

	err = d.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := d.documentRepo.Create(txCtx, document); err != nil {
			return err
		}
		if err := d.keyRepo.Create(txCtx, wrappedKey); err != nil {
			return err
		}
		return d.auditRepo.Create(txCtx, entry)
	})
	if err != nil {
		return nil, err
	}

	return &ProcessResult{
		Document:    document,
		ExportedKey: exportedKey,
		Outcomes:    encrypted.Matches,
	}, nil
}

// Get retrieves a stored document by ID.
func (d *documentUseCase) Get(
	ctx context.Context,
	documentID uuid.UUID,
) (*documentsDomain.Document, error) {
	return d.documentRepo.Get(ctx, documentID)
}

// List retrieves stored documents with pagination, newest first.
func (d *documentUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*documentsDomain.Document, error) {
	return d.documentRepo.List(ctx, offset, limit)
}

// Decrypt runs token decryption over a stored document's content.
//
// A wrong key is not an error at this level: the report carries the
// per-token authentication failures and the audit trail records the attempt
// either way.
func (d *documentUseCase) Decrypt(
	ctx context.Context,
	documentID uuid.UUID,
	exportedKey string,
) (*pipelineDomain.DecryptionReport, error) {
	document, err := d.documentRepo.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}

	report, err := d.pipeline.DecryptDocument(ctx, document.Content, exportedKey)
	if err != nil {
		return nil, err
	}

	// Record the supplied key's fingerprint, not the key, in the trail.
	suppliedKey, err := d.keyManager.Import(exportedKey, cryptoDomain.AESGCM)
	if err != nil {
		return nil, err
	}
	defer suppliedKey.Zero()

	entry := &auditDomain.Entry{
		ID:         uuid.Must(uuid.NewV7()),
		DocumentID: document.ID,
		Action:     auditDomain.ActionDocumentDecrypted,
		Detail: fmt.Sprintf(
			"key_fingerprint=%s tokens=%d recovered=%d",
			d.keyManager.Fingerprint(suppliedKey), report.TotalCount, report.SuccessCount,
		),
		CreatedAt: time.Now().UTC(),
	}
	if err := d.auditRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return &report, nil
}

// ListAudit retrieves the audit trail of a document, newest first.
func (d *documentUseCase) ListAudit(
	ctx context.Context,
	documentID uuid.UUID,
	offset, limit int,
) ([]*auditDomain.Entry, error) {
	if _, err := d.documentRepo.Get(ctx, documentID); err != nil {
		return nil, err
	}
	return d.auditRepo.ListByDocument(ctx, documentID, offset, limit)
}
