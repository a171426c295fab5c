// Package telemetry records solver metrics and traces.
// Metrics live in a private registry and can be written to a textfile for a
// node exporter style collector.
package telemetry

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ribbit/core/internal/search"
)

func TestMetrics(t *testing.T) {
	t.Run("observe solve", func(t *testing.T) {
		m := NewMetrics()

		m.ObserveSolve(search.Stats{Steps: 40, Pruned: 12, Duration: time.Millisecond}, 3, nil)
		m.ObserveSolve(search.Stats{Steps: 10, Pruned: 2}, 1, errors.New("budget"))

		assert.Equal(t, 1.0, testutil.ToFloat64(m.solves.WithLabelValues("ok")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.solves.WithLabelValues("error")))
		assert.Equal(t, 50.0, testutil.ToFloat64(m.searchSteps))
		assert.Equal(t, 14.0, testutil.ToFloat64(m.searchPruned))
		assert.Equal(t, 4.0, testutil.ToFloat64(m.wordsFound))
	})

	t.Run("observe dictionary and graph", func(t *testing.T) {
		m := NewMetrics()

		m.ObserveDictionary(1234, 0.5)
		m.ObserveGraph(16, 24)

		assert.Equal(t, 1234.0, testutil.ToFloat64(m.dictionaryWords))
		assert.Equal(t, 16.0, testutil.ToFloat64(m.graphNodes))
		assert.Equal(t, 24.0, testutil.ToFloat64(m.graphEdges))
	})

	t.Run("registries are independent", func(t *testing.T) {
		a := NewMetrics()
		b := NewMetrics()

		a.ObserveGraph(5, 5)

		assert.Equal(t, 0.0, testutil.ToFloat64(b.graphNodes))
	})

	t.Run("write textfile", func(t *testing.T) {
		m := NewMetrics()
		m.ObserveSolve(search.Stats{Steps: 7}, 2, nil)
		path := filepath.Join(t.TempDir(), "ribbit.prom")

		require.NoError(t, m.WriteTextfile(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "ribbit_search_steps_total 7")
		assert.Contains(t, string(data), `ribbit_solves_total{result="ok"} 1`)
	})
}

func TestTracing(t *testing.T) {
	t.Run("spans without sdk are no-ops", func(t *testing.T) {
		ctx, span := Start(context.Background(), "test", attribute.Int("n", 1))

		assert.NotNil(t, ctx)
		assert.NotPanics(t, func() { End(span, nil) })
	})

	t.Run("error spans", func(t *testing.T) {
		_, span := Start(context.Background(), "test")

		assert.NotPanics(t, func() { End(span, errors.New("boom")) })
	})
}
