package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/harun/pbrctl/pkg/pbr"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for one pbrctl invocation
type Metrics struct {
	registry *prometheus.Registry

	// Backend query metrics
	QueriesTotal  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec

	// Command metrics
	CommandsTotal *prometheus.CounterVec

	// Dump metrics
	DumpedBytesTotal prometheus.Counter
}

// NewMetrics creates and registers all metrics
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pbr_backend_queries_total",
				Help: "Total number of PBR backend queries by operation and status",
			},
			[]string{"operation", "status"},
		),
		QueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pbr_backend_query_duration_seconds",
				Help:    "Duration of PBR backend queries in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		CommandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pbr_commands_total",
				Help: "Total number of pbrctl commands by name and status",
			},
			[]string{"command", "status"},
		),
		DumpedBytesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "pbr_dumped_bytes_total",
				Help: "Total number of session buffer bytes dumped to files",
			},
		),
	}

	m.registry.MustRegister(m.QueriesTotal)
	m.registry.MustRegister(m.QueryDuration)
	m.registry.MustRegister(m.CommandsTotal)
	m.registry.MustRegister(m.DumpedBytesTotal)

	return m
}

// Registry returns the registry holding every metric
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordQuery records one backend query
func (m *Metrics) RecordQuery(operation string, duration time.Duration, err error) {
	m.QueriesTotal.WithLabelValues(operation, Status(err)).Inc()
	m.QueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordCommand records the outcome of a CLI command
func (m *Metrics) RecordCommand(command string, err error) {
	m.CommandsTotal.WithLabelValues(command, Status(err)).Inc()
}

// RecordDump records bytes written by a dump
func (m *Metrics) RecordDump(bytes int) {
	m.DumpedBytesTotal.Add(float64(bytes))
}

// WriteTextfile writes every metric to path in the text exposition format
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

// Status maps an error onto the status label
func Status(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, pbr.ErrNotFound):
		return "not_found"
	case errors.Is(err, pbr.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, pbr.ErrOutOfMemory):
		return "out_of_memory"
	default:
		return "aborted"
	}
}
