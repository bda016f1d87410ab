package service

import (
	"context"
	"time"

	"github.com/abderrahimghazali/vault-api/internal/metrics"
)

// encoderWithMetrics decorates Encoder with metrics instrumentation.
type encoderWithMetrics struct {
	next    Encoder
	metrics metrics.BusinessMetrics
}

// NewEncoderWithMetrics wraps an Encoder with metrics recording under the "embedding" domain.
func NewEncoderWithMetrics(encoder Encoder, m metrics.BusinessMetrics) Encoder {
	return &encoderWithMetrics{
		next:    encoder,
		metrics: m,
	}
}

func (e *encoderWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "embedding", operation, status)
	e.metrics.RecordDuration(ctx, "embedding", operation, time.Since(start), status)
}

// Embed records metrics for single text embedding.
func (e *encoderWithMetrics) Embed(ctx context.Context, text string) ([]float32, error) {
	start := time.Now()
	vector, err := e.next.Embed(ctx, text)
	e.record(ctx, "embed", start, err)
	return vector, err
}

// EmbedMany records metrics for batch embedding.
func (e *encoderWithMetrics) EmbedMany(ctx context.Context, texts []string) ([][]float32, error) {
	start := time.Now()
	vectors, err := e.next.EmbedMany(ctx, texts)
	e.record(ctx, "embed_many", start, err)
	return vectors, err
}

func (e *encoderWithMetrics) Dimensions() int {
	return e.next.Dimensions()
}
