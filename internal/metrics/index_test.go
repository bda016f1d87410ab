package metrics

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIndex struct {
	entries atomic.Int64
	trained atomic.Bool
}

func (s *stubIndex) Len() int      { return int(s.entries.Load()) }
func (s *stubIndex) Trained() bool { return s.trained.Load() }

func TestRegisterIndexMetrics(t *testing.T) {
	provider, err := NewProvider("index_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	idx := &stubIndex{}
	idx.entries.Store(3)
	require.NoError(t, RegisterIndexMetrics(provider.MeterProvider(), "index_test", idx))

	output := scrape(t, provider)
	assertBizMetricLine(t, output, `index_test_vector_index_entries`, ``, `3`)
	assertBizMetricLine(t, output, `index_test_vector_index_trained`, ``, `0`)

	// read at scrape time
	idx.entries.Store(1200)
	idx.trained.Store(true)

	output = scrape(t, provider)
	assertBizMetricLine(t, output, `index_test_vector_index_entries`, ``, `1200`)
	assertBizMetricLine(t, output, `index_test_vector_index_trained`, ``, `1`)
}
