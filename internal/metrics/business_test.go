package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine checks that the Prometheus output contains a business metric
// matching the given name, partial label pattern, and value. Uses regex to handle
// extra OTel scope labels injected by the Prometheus exporter.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func TestNewBusinessMetrics(t *testing.T) {
	t.Run("Success_CreateBusinessMetrics", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)

		businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")

		require.NoError(t, err)
		assert.NotNil(t, businessMetrics)
	})
}

func TestBusinessMetrics_RecordOperation(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	t.Run("Success_RecordSuccessfulOperation", func(t *testing.T) {
		// Should not panic
		bm.RecordOperation(context.Background(), "vault", "record_create", "success")
	})

	t.Run("Success_RecordFailedOperation", func(t *testing.T) {
		// Should not panic
		bm.RecordOperation(context.Background(), "vault", "record_create", "error")
	})

	t.Run("Success_RecordMultipleDomains", func(t *testing.T) {
		bm.RecordOperation(context.Background(), "vault", "record_create", "success")
		bm.RecordOperation(context.Background(), "embedding", "embed", "success")
		bm.RecordOperation(context.Background(), "vault", "record_search", "error")
	})
}

func TestBusinessMetrics_RecordDuration(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	t.Run("Success_RecordSuccessfulDuration", func(t *testing.T) {
		// Should not panic
		bm.RecordDuration(context.Background(), "vault", "record_create", 123*time.Millisecond, "success")
	})

	t.Run("Success_RecordFailedDuration", func(t *testing.T) {
		// Should not panic
		bm.RecordDuration(context.Background(), "vault", "record_create", 456*time.Millisecond, "error")
	})

	t.Run("Success_RecordMultipleDomains", func(t *testing.T) {
		bm.RecordDuration(context.Background(), "vault", "record_create", 100*time.Millisecond, "success")
		bm.RecordDuration(context.Background(), "embedding", "embed", 200*time.Millisecond, "success")
		bm.RecordDuration(context.Background(), "vault", "record_search", 300*time.Millisecond, "error")
	})
}

func TestNewNoOpBusinessMetrics(t *testing.T) {
	noOpMetrics := NewNoOpBusinessMetrics()

	assert.NotNil(t, noOpMetrics)
	assert.IsType(t, &NoOpBusinessMetrics{}, noOpMetrics)

	t.Run("NoOp_RecordOperationDoesNotPanic", func(t *testing.T) {
		// Should not panic or do anything
		noOpMetrics.RecordOperation(context.Background(), "vault", "record_create", "success")
		noOpMetrics.RecordOperation(context.Background(), "embedding", "embed", "error")
	})

	t.Run("NoOp_SearchSignalsDoNotPanic", func(t *testing.T) {
		noOpMetrics.RecordSearchResults(context.Background(), 3)
		noOpMetrics.RecordSkippedCandidate(context.Background(), SkipReasonDecryptFailed)
		noOpMetrics.RecordSearchDegraded(context.Background(), DegradeReasonEmbeddingFailed)
	})

	t.Run("NoOp_RecordDurationDoesNotPanic", func(t *testing.T) {
		// Should not panic or do anything
		noOpMetrics.RecordDuration(
			context.Background(),
			"vault",
			"record_create",
			100*time.Millisecond,
			"success",
		)
		noOpMetrics.RecordDuration(context.Background(), "embedding", "embed", 200*time.Millisecond, "error")
	})
}

func TestBusinessMetrics_Integration(t *testing.T) {
	provider, err := NewProvider("integration_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "integration_test")
	require.NoError(t, err)

	// Record various operations
	ctx := context.Background()

	// Record operation counts
	bm.RecordOperation(ctx, "vault", "record_create", "success")
	bm.RecordOperation(ctx, "vault", "record_create", "success")
	bm.RecordOperation(ctx, "vault", "record_create", "error")
	bm.RecordOperation(ctx, "embedding", "embed", "success")
	bm.RecordOperation(ctx, "vault", "record_get", "success")
	bm.RecordOperation(ctx, "vault", "record_search", "success")

	// Record operation durations
	bm.RecordDuration(ctx, "vault", "record_create", 50*time.Millisecond, "success")
	bm.RecordDuration(ctx, "vault", "record_create", 60*time.Millisecond, "success")
	bm.RecordDuration(ctx, "vault", "record_create", 100*time.Millisecond, "error")
	bm.RecordDuration(ctx, "embedding", "embed", 10*time.Millisecond, "success")
	bm.RecordDuration(ctx, "vault", "record_get", 20*time.Millisecond, "success")
	bm.RecordDuration(ctx, "vault", "record_search", 150*time.Millisecond, "success")

	output := scrape(t, provider)

	// Check operation counts
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="vault".*operation="record_create".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="vault".*operation="record_create".*status="error"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="embedding".*operation="embed".*status="success"`,
		`1`,
	)

	// Check durations (existence)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_count`,
		`domain="vault".*operation="record_create".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_sum`,
		`domain="vault".*operation="record_create".*status="success"`,
		``,
	)
}

func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestBusinessMetrics_SearchSignals(t *testing.T) {
	provider, err := NewProvider("search_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "search_test")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordSearchResults(ctx, 0)
	bm.RecordSearchResults(ctx, 4)
	bm.RecordSearchResults(ctx, 10)
	bm.RecordSkippedCandidate(ctx, SkipReasonDecryptFailed)
	bm.RecordSkippedCandidate(ctx, SkipReasonDecryptFailed)
	bm.RecordSearchDegraded(ctx, DegradeReasonEmbeddingFailed)

	output := scrape(t, provider)

	assertBizMetricLine(t, output, `search_test_search_results_count`, ``, `3`)
	assertBizMetricLine(t, output, `search_test_search_results_sum`, ``, `14`)
	assertBizMetricLine(t, output, `search_test_search_results_bucket`, `le="0"`, `1`)
	assertBizMetricLine(t, output, `search_test_search_results_bucket`, `le="5"`, `2`)
	assertBizMetricLine(t, output, `search_test_search_results_bucket`, `le="10"`, `3`)
	assertBizMetricLine(
		t,
		output,
		`search_test_search_candidates_skipped_total`,
		`reason="decrypt_failed"`,
		`2`,
	)
	assertBizMetricLine(t, output, `search_test_search_degraded_total`, `reason="embedding_failed"`, `1`)
}
