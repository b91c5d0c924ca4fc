package catalog

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK        = "ok"
	outcomeNotFound  = "not_found"
	outcomeTransient = "transient"
	outcomeError     = "error"
)

// StubMetrics counts simulated reads by operation and outcome. A nil *StubMetrics is a no-op.
type StubMetrics struct {
	Reads   *prometheus.CounterVec
	Latency *prometheus.HistogramVec
}

func NewStubMetrics(reg prometheus.Registerer) *StubMetrics {
	m := &StubMetrics{
		Reads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_reads_total",
				Help: "Catalog reads by operation and outcome",
			},
			[]string{"op", "outcome"},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_read_duration_seconds",
				Help:    "Catalog read latency including simulated delay",
				Buckets: []float64{.05, .1, .25, .5, .75, 1, 1.5, 2, 5},
			},
			[]string{"op"},
		),
	}

	reg.MustRegister(m.Reads, m.Latency)
	return m
}

func (m *StubMetrics) observe(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.Latency.WithLabelValues(op).Observe(time.Since(start).Seconds())
	m.Reads.WithLabelValues(op, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, ErrTransientFetch):
		return outcomeTransient
	default:
		return outcomeError
	}
}
