// Package telemetry records solver metrics and traces.
// Metrics live in a private registry and can be written to a textfile for a
// node exporter style collector.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ribbit/core/internal/search"
)

type Metrics struct {
	registry *prometheus.Registry

	solves          *prometheus.CounterVec
	solveDuration   prometheus.Histogram
	searchSteps     prometheus.Counter
	searchPruned    prometheus.Counter
	wordsFound      prometheus.Counter
	dictionaryWords prometheus.Gauge
	dictionaryLoad  prometheus.Histogram
	graphNodes      prometheus.Gauge
	graphEdges      prometheus.Gauge
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ribbit_solves_total",
			Help: "Total solves by result",
		}, []string{"result"}),
		solveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ribbit_solve_duration_seconds",
			Help:    "Path search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}),
		searchSteps: factory.NewCounter(prometheus.CounterOpts{
			Name: "ribbit_search_steps_total",
			Help: "Path extensions attempted by the search",
		}),
		searchPruned: factory.NewCounter(prometheus.CounterOpts{
			Name: "ribbit_search_pruned_total",
			Help: "Path extensions cut because no word has that prefix",
		}),
		wordsFound: factory.NewCounter(prometheus.CounterOpts{
			Name: "ribbit_words_found_total",
			Help: "Distinct words found across solves",
		}),
		dictionaryWords: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ribbit_dictionary_words",
			Help: "Words in the loaded dictionary",
		}),
		dictionaryLoad: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ribbit_dictionary_load_duration_seconds",
			Help:    "Dictionary load and index build duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
		graphNodes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ribbit_graph_nodes",
			Help: "Nodes in the last solved puzzle",
		}),
		graphEdges: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ribbit_graph_edges",
			Help: "Edges in the last solved puzzle",
		}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveSolve records one search. err is the error Solve returned.
func (m *Metrics) ObserveSolve(stats search.Stats, words int, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.solves.WithLabelValues(result).Inc()
	m.solveDuration.Observe(stats.Duration.Seconds())
	m.searchSteps.Add(float64(stats.Steps))
	m.searchPruned.Add(float64(stats.Pruned))
	m.wordsFound.Add(float64(words))
}

func (m *Metrics) ObserveDictionary(words int, seconds float64) {
	m.dictionaryWords.Set(float64(words))
	m.dictionaryLoad.Observe(seconds)
}

func (m *Metrics) ObserveGraph(nodes, edges int) {
	m.graphNodes.Set(float64(nodes))
	m.graphEdges.Set(float64(edges))
}

// WriteTextfile writes all metrics in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
