package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics defines the interface for recording document processing metrics.
// Implementations track operation counts and durations plus detection results
// across the documents and keys domains.
type BusinessMetrics interface {
	// RecordOperation records a business operation with its status.
	// Domain examples: "documents", "keys"
	// Operation examples: "document_process", "document_decrypt", "key_download"
	// Status examples: "success", "error"
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration records the duration of a business operation with its status.
	// Duration is recorded in seconds as a histogram for percentile calculations.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordDetection records how many PII matches a processing run produced
	// per category, labeled by tier.
	RecordDetection(ctx context.Context, tier, category string, count int64)

	// RecordRiskScore records the risk score of a processed document,
	// labeled by tier and final classification.
	RecordRiskScore(ctx context.Context, tier, classification string, score float64)
}

// businessMetrics implements BusinessMetrics using OpenTelemetry metrics.
type businessMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
	detectionCounter metric.Int64Counter
	riskScoreHisto   metric.Float64Histogram
}

// NewBusinessMetrics creates a new BusinessMetrics implementation using the provided meter provider.
// The namespace parameter is used as a prefix for all metric names.
// Returns error if meters cannot be initialized.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of business operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of business operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	detectionCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_pii_matches_total", namespace),
		metric.WithDescription("Total number of PII matches detected per category"),
		metric.WithUnit("{match}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create detection counter: %w", err)
	}

	riskScoreHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_risk_score", namespace),
		metric.WithDescription("Risk score distribution of processed documents"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create risk score histogram: %w", err)
	}

	return &businessMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
		detectionCounter: detectionCounter,
		riskScoreHisto:   riskScoreHisto,
	}, nil
}

// RecordOperation increments the operation counter with domain, operation, and status labels.
func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operationCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("domain", domain),
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

// RecordDuration records the operation duration in seconds with domain, operation, and status labels.
func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durationHisto.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("domain", domain),
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

// RecordDetection increments the PII match counter with tier and category labels.
func (b *businessMetrics) RecordDetection(ctx context.Context, tier, category string, count int64) {
	b.detectionCounter.Add(ctx, count,
		metric.WithAttributes(
			attribute.String("tier", tier),
			attribute.String("category", category),
		),
	)
}

// RecordRiskScore records a document risk score with tier and classification labels.
func (b *businessMetrics) RecordRiskScore(
	ctx context.Context,
	tier, classification string,
	score float64,
) {
	b.riskScoreHisto.Record(ctx, score,
		metric.WithAttributes(
			attribute.String("tier", tier),
			attribute.String("classification", classification),
		),
	)
}

// NoOpBusinessMetrics is a no-op implementation of BusinessMetrics for when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

// RecordOperation does nothing when metrics are disabled.
func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	// No-op
}

// RecordDuration does nothing when metrics are disabled.
func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	// No-op
}

// RecordDetection does nothing when metrics are disabled.
func (n *NoOpBusinessMetrics) RecordDetection(ctx context.Context, tier, category string, count int64) {
	// No-op
}

// RecordRiskScore does nothing when metrics are disabled.
func (n *NoOpBusinessMetrics) RecordRiskScore(
	ctx context.Context,
	tier, classification string,
	score float64,
) {
	// No-op
}
