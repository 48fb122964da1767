package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	auditDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/audit/domain"
	detectionDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/detection/domain"
	documentsDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/documents/domain"
	"github.com/PrakritiSharma17/pii-guardian-pro-67/internal/metrics"
	pipelineDomain "github.com/PrakritiSharma17/pii-guardian-pro-67/internal/pipeline/domain"
)

// documentUseCaseWithMetrics decorates DocumentUseCase with metrics instrumentation.
type documentUseCaseWithMetrics struct {
	next    DocumentUseCase
	metrics metrics.BusinessMetrics
}

// NewDocumentUseCaseWithMetrics wraps a DocumentUseCase with metrics recording.
func NewDocumentUseCaseWithMetrics(useCase DocumentUseCase, m metrics.BusinessMetrics) DocumentUseCase {
	return &documentUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Process records metrics for document processing operations, including
// per-category detection counts and the risk score distribution.
func (d *documentUseCaseWithMetrics) Process(
	ctx context.Context,
	filename, content string,
	tier detectionDomain.Tier,
) (*ProcessResult, error) {
	start := time.Now()
	result, err := d.next.Process(ctx, filename, content, tier)

	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, "documents", "document_process", status)
	d.metrics.RecordDuration(ctx, "documents", "document_process", time.Since(start), status)

	if err == nil {
		perCategory := make(map[detectionDomain.Category]int64)
		for _, outcome := range result.Outcomes {
			perCategory[outcome.Category]++
		}
		for category, count := range perCategory {
			d.metrics.RecordDetection(ctx, string(tier), string(category), count)
		}
		d.metrics.RecordRiskScore(
			ctx, string(tier), string(result.Document.Status), result.Document.RiskScore,
		)
	}

	return result, err
}

// Get records metrics for document retrieval operations.
func (d *documentUseCaseWithMetrics) Get(
	ctx context.Context,
	documentID uuid.UUID,
) (*documentsDomain.Document, error) {
	start := time.Now()
	document, err := d.next.Get(ctx, documentID)

	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, "documents", "document_get", status)
	d.metrics.RecordDuration(ctx, "documents", "document_get", time.Since(start), status)

	return document, err
}

// List records metrics for document listing operations.
func (d *documentUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*documentsDomain.Document, error) {
	start := time.Now()
	documents, err := d.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, "documents", "document_list", status)
	d.metrics.RecordDuration(ctx, "documents", "document_list", time.Since(start), status)

	return documents, err
}

// Decrypt records metrics for document decryption operations.
func (d *documentUseCaseWithMetrics) Decrypt(
	ctx context.Context,
	documentID uuid.UUID,
	exportedKey string,
) (*pipelineDomain.DecryptionReport, error) {
	start := time.Now()
	report, err := d.next.Decrypt(ctx, documentID, exportedKey)

	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, "documents", "document_decrypt", status)
	d.metrics.RecordDuration(ctx, "documents", "document_decrypt", time.Since(start), status)

	return report, err
}

// ListAudit records metrics for audit trail listing operations.
func (d *documentUseCaseWithMetrics) ListAudit(
	ctx context.Context,
	documentID uuid.UUID,
	offset, limit int,
) ([]*auditDomain.Entry, error) {
	start := time.Now()
	entries, err := d.next.ListAudit(ctx, documentID, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	d.metrics.RecordOperation(ctx, "documents", "document_audit_list", status)
	d.metrics.RecordDuration(ctx, "documents", "document_audit_list", time.Since(start), status)

	return entries, err
}
