package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	keysDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/keys/domain"
	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/metrics"
)

// keyUseCaseWithMetrics decorates KeyUseCase with metrics instrumentation.
type keyUseCaseWithMetrics struct {
	next    KeyUseCase
	metrics metrics.BusinessMetrics
}

// NewKeyUseCaseWithMetrics wraps a KeyUseCase with metrics recording.
func NewKeyUseCaseWithMetrics(useCase KeyUseCase, m metrics.BusinessMetrics) KeyUseCase {
	return &keyUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Download records metrics for key download operations.
func (k *keyUseCaseWithMetrics) Download(
	ctx context.Context,
	documentID uuid.UUID,
) (*KeyDownload, error) {
	start := time.Now()
	download, err := k.next.Download(ctx, documentID)

	status := "success"
	if err != nil {
		status = "error"
	}

	k.metrics.RecordOperation(ctx, "keys", "key_download", status)
	k.metrics.RecordDuration(ctx, "keys", "key_download", time.Since(start), status)

	return download, err
}

// Get records metrics for key metadata retrieval operations.
func (k *keyUseCaseWithMetrics) Get(
	ctx context.Context,
	documentID uuid.UUID,
) (*keysDomain.WrappedKey, error) {
	start := time.Now()
	key, err := k.next.Get(ctx, documentID)

	status := "success"
	if err != nil {
		status = "error"
	}

	k.metrics.RecordOperation(ctx, "keys", "key_get", status)
	k.metrics.RecordDuration(ctx, "keys", "key_get", time.Since(start), status)

	return key, err
}
