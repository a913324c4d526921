// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package metrics holds the Prometheus collectors of the bimapbench driver.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "bimap"
	subsystem = "bench"
)

// Results of an operation.
const (
	ResultHit      = "hit"      // key found, pair inserted or erased
	ResultMiss     = "miss"     // key absent, duplicate insert
	ResultMismatch = "mismatch" // differs from the reference model
)

// Metrics are registered on their own registry,
// use [Metrics.Handler] to expose them.
type Metrics struct {
	registry *prometheus.Registry

	// OpsTotal counts operations by kind and result.
	OpsTotal *prometheus.CounterVec

	// OpDuration measures the latency of operations by kind.
	OpDuration *prometheus.HistogramVec

	// VerifyTotal counts invariant checks by result (ok, failed).
	VerifyTotal *prometheus.CounterVec

	// Size is the current number of pairs.
	Size prometheus.Gauge

	// Height is the current tree height by side (left, right).
	Height *prometheus.GaugeVec
}

// New returns Metrics on a fresh registry, including the Go runtime collector.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		OpsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "operations_total",
			Help:      "Operations applied to the map by kind and result.",
		}, []string{"kind", "result"}),

		OpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "operation_duration_seconds",
			Help:      "Latency of map operations by kind.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 10),
		}, []string{"kind"}),

		VerifyTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "verify_total",
			Help:      "Invariant checks by result.",
		}, []string{"result"}),

		Size: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "size",
			Help:      "Number of pairs in the map.",
		}),

		Height: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "height",
			Help:      "Height of the tree by side.",
		}, []string{"side"}),
	}
}

// Observe records one operation.
func (m *Metrics) Observe(kind, result string, d time.Duration) {
	m.OpsTotal.WithLabelValues(kind, result).Inc()
	m.OpDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// Verified records the result of an invariant check.
func (m *Metrics) Verified(err error) {
	result := "ok"
	if err != nil {
		result = "failed"
	}
	m.VerifyTotal.WithLabelValues(result).Inc()
}

// Shape records size and heights.
func (m *Metrics) Shape(size, leftHeight, rightHeight int) {
	m.Size.Set(float64(size))
	m.Height.WithLabelValues("left").Set(float64(leftHeight))
	m.Height.WithLabelValues("right").Set(float64(rightHeight))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Gatherer returns the registry for tests and pushes.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
