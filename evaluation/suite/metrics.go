/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package suite

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments of suite runs.
type Metrics struct {
	cases    *prometheus.CounterVec
	failures *prometheus.CounterVec
	grade    *prometheus.GaugeVec
}

// NewMetrics registers the suite instruments on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		cases: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "listify_evaluation_cases_total",
			Help: "Total number of cases evaluated",
		}, []string{"namespace"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "listify_evaluation_failures_total",
			Help: "Total number of cases that did not pass",
		}, []string{"namespace"}),
		grade: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "listify_evaluation_grade",
			Help: "Most recent score (0.0-1.0)",
		}, []string{"namespace"}),
	}
}

// Observer returns the observer of one namespace. Use it as a
// NamespacedObserver factory.
func (m *Metrics) Observer(namespace string) *MetricsObserver {
	labels := prometheus.Labels{"namespace": namespace}
	return &MetricsObserver{
		cases:    m.cases.With(labels),
		failures: m.failures.With(labels),
		grade:    m.grade.With(labels),
	}
}

// MetricsObserver exports observations as Prometheus metrics.
type MetricsObserver struct {
	cases    prometheus.Counter
	failures prometheus.Counter
	grade    prometheus.Gauge
}

// Increment implements Observer.
func (m *MetricsObserver) Increment() {
	m.cases.Inc()
}

// Fail implements Observer.
func (m *MetricsObserver) Fail(string) {
	m.failures.Inc()
}

// Grade implements Observer.
func (m *MetricsObserver) Grade(score float64, _ string) {
	m.grade.Set(score)
}

// Log implements Observer. Messages are not exported.
func (m *MetricsObserver) Log(string) {}

// Total implements Observer. Counts live in Prometheus.
func (m *MetricsObserver) Total() int64 {
	return 0
}
