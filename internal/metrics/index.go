package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// IndexStats is the read side of an in-process vector index.
type IndexStats interface {
	Len() int
	Trained() bool
}

// RegisterIndexMetrics exports the size of idx and whether it has left the flat phase.
// Values are read at scrape time.
func RegisterIndexMetrics(meterProvider metric.MeterProvider, namespace string, idx IndexStats) error {
	meter := meterProvider.Meter(namespace)

	entries, err := meter.Int64ObservableGauge(
		fmt.Sprintf("%s_vector_index_entries", namespace),
		metric.WithDescription("Vectors held by the in-process index"),
		metric.WithUnit("{vector}"),
	)
	if err != nil {
		return fmt.Errorf("failed to create index entries gauge: %w", err)
	}

	trained, err := meter.Int64ObservableGauge(
		fmt.Sprintf("%s_vector_index_trained", namespace),
		metric.WithDescription("1 once the index partitions vectors into lists, 0 while it scans flat"),
	)
	if err != nil {
		return fmt.Errorf("failed to create index trained gauge: %w", err)
	}

	_, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(entries, int64(idx.Len()))
		var t int64
		if idx.Trained() {
			t = 1
		}
		o.ObserveInt64(trained, t)
		return nil
	}, entries, trained)
	if err != nil {
		return fmt.Errorf("failed to register index callback: %w", err)
	}
	return nil
}
