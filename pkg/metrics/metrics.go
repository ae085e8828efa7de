// Package metrics exposes Prometheus collectors for customer record traffic.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cseboard"

// Outcome labels for upserts.
const (
	OutcomeInserted = "inserted"
	OutcomeUpdated  = "updated"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Recorder is the narrow interface the use case depends on.
type Recorder interface {
	RecordUpsert(outcome string)
	RecordLookup(operation, result string)
	ObserveStore(operation string, d time.Duration)
}

// Metrics holds every collector registered by this service.
type Metrics struct {
	UpsertCounter *prometheus.CounterVec
	LookupCounter *prometheus.CounterVec
	StoreDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		UpsertCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upserts_total",
			Help:      "Customer record upserts by outcome.",
		}, []string{"outcome"}),
		LookupCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Customer record lookups by operation and result.",
		}, []string{"operation", "result"}),
		StoreDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_duration_seconds",
			Help:      "Record store round-trip latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	for _, c := range []prometheus.Collector{m.UpsertCounter, m.LookupCounter, m.StoreDuration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) RecordUpsert(outcome string) {
	m.UpsertCounter.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordLookup(operation, result string) {
	m.LookupCounter.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) ObserveStore(operation string, d time.Duration) {
	m.StoreDuration.WithLabelValues(operation).Observe(d.Seconds())
}

type nop struct{}

// Nop returns a Recorder that does nothing.
func Nop() Recorder { return nop{} }

func (nop) RecordUpsert(string)                {}
func (nop) RecordLookup(string, string)        {}
func (nop) ObserveStore(string, time.Duration) {}
