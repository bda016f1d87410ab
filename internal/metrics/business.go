package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Label values for the search signals.
const (
	SkipReasonDecryptFailed      = "decrypt_failed"
	DegradeReasonEmbeddingFailed = "embedding_failed"
)

// searchResultBuckets spans the accepted search limits (1..100).
var searchResultBuckets = []float64{0, 1, 2, 5, 10, 20, 50, 100}

// BusinessMetrics records per-operation counts and latencies.
type BusinessMetrics interface {
	// RecordOperation counts one operation. Domain is "vault" or "embedding",
	// status is "success" or "error".
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration observes the latency of one operation in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)
}

// SearchMetrics records what the retrieval pipeline did with a search beyond success or failure.
type SearchMetrics interface {
	// RecordSearchResults observes how many results a successful search returned.
	RecordSearchResults(ctx context.Context, count int)

	// RecordSkippedCandidate counts a ranked candidate dropped from the results.
	RecordSkippedCandidate(ctx context.Context, reason string)

	// RecordSearchDegraded counts a search answered with no results instead of an error.
	RecordSearchDegraded(ctx context.Context, reason string)
}

// VaultMetrics is the full set of signals the vault records.
type VaultMetrics interface {
	BusinessMetrics
	SearchMetrics
}

type businessMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
	resultsHisto     metric.Int64Histogram
	skippedCounter   metric.Int64Counter
	degradedCounter  metric.Int64Counter
}

// NewBusinessMetrics creates the vault's OpenTelemetry instruments. Every name is
// prefixed with namespace (e.g. "vault_api").
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (VaultMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of vault and embedding operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of vault and embedding operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	resultsHisto, err := meter.Int64Histogram(
		fmt.Sprintf("%s_search_results", namespace),
		metric.WithDescription("Number of results returned by a search"),
		metric.WithUnit("{result}"),
		metric.WithExplicitBucketBoundaries(searchResultBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create search results histogram: %w", err)
	}

	skippedCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_search_candidates_skipped_total", namespace),
		metric.WithDescription("Ranked search candidates dropped from the results"),
		metric.WithUnit("{candidate}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create skipped candidates counter: %w", err)
	}

	degradedCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_search_degraded_total", namespace),
		metric.WithDescription("Searches answered with no results because the query could not be embedded"),
		metric.WithUnit("{search}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create degraded search counter: %w", err)
	}

	return &businessMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
		resultsHisto:     resultsHisto,
		skippedCounter:   skippedCounter,
		degradedCounter:  degradedCounter,
	}, nil
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operationCounter.Add(ctx, 1, metric.WithAttributes(operationAttrs(domain, operation, status)...))
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durationHisto.Record(ctx, duration.Seconds(), metric.WithAttributes(operationAttrs(domain, operation, status)...))
}

func (b *businessMetrics) RecordSearchResults(ctx context.Context, count int) {
	b.resultsHisto.Record(ctx, int64(count))
}

func (b *businessMetrics) RecordSkippedCandidate(ctx context.Context, reason string) {
	b.skippedCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func (b *businessMetrics) RecordSearchDegraded(ctx context.Context, reason string) {
	b.degradedCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func operationAttrs(domain, operation, status string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("status", status),
	}
}

// NoOpBusinessMetrics discards every signal. Used when METRICS_ENABLED is false.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op VaultMetrics.
func NewNoOpBusinessMetrics() VaultMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(context.Context, string, string, string) {}

func (n *NoOpBusinessMetrics) RecordDuration(context.Context, string, string, time.Duration, string) {}

func (n *NoOpBusinessMetrics) RecordSearchResults(context.Context, int) {}

func (n *NoOpBusinessMetrics) RecordSkippedCandidate(context.Context, string) {}

func (n *NoOpBusinessMetrics) RecordSearchDegraded(context.Context, string) {}
