package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestMetrics_UpsertCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}

	m.RecordUpsert(OutcomeInserted)
	m.RecordUpsert(OutcomeUpdated)
	m.RecordUpsert(OutcomeUpdated)

	if val := getCounterValue(t, m.UpsertCounter, OutcomeInserted); val != 1 {
		t.Errorf("expected 1 inserted, got %f", val)
	}
	if val := getCounterValue(t, m.UpsertCounter, OutcomeUpdated); val != 2 {
		t.Errorf("expected 2 updated, got %f", val)
	}
}

func TestMetrics_StoreDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := New(reg)
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}

	m.ObserveStore("exists", 250*time.Millisecond)
	m.ObserveStore("exists", 750*time.Millisecond)

	var out dto.Metric
	if err := m.StoreDuration.WithLabelValues("exists").(prometheus.Metric).Write(&out); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if got := out.GetHistogram().GetSampleCount(); got != 2 {
		t.Errorf("expected 2 samples, got %d", got)
	}
	if got := out.GetHistogram().GetSampleSum(); got != 1.0 {
		t.Errorf("expected sum 1.0, got %f", got)
	}
}

func TestMetrics_DoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := New(reg); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := New(reg); err == nil {
		t.Error("expected error registering twice on the same registry")
	}
}

func getCounterValue(t *testing.T, counter *prometheus.CounterVec, label string) float64 {
	t.Helper()
	var m dto.Metric
	if err := counter.WithLabelValues(label).(prometheus.Metric).Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.GetCounter().GetValue()
}
