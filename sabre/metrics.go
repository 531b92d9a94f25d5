// SPDX-License-Identifier: MIT
// Package: qmap/sabre
//
// metrics.go - Prometheus instrumentation.

package sabre

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Route outcomes, the "result" label of qmap_sabre_routes_total.
const (
	ResultOK          = "ok"
	ResultTimeout     = "timeout"
	ResultTopology    = "invalid_topology"
	ResultUnsupported = "unsupported"
	ResultShape       = "shape_mismatch"
	ResultCanceled    = "canceled"
	ResultError       = "error"
)

// Metrics groups the router's collectors. A nil *Metrics records nothing.
type Metrics struct {
	routes   *prometheus.CounterVec
	swaps    *prometheus.CounterVec
	valves   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg. Registering
// twice on the same registry panics, as with promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		routes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "qmap_sabre_routes_total",
			Help: "Route calls by variant and outcome",
		}, []string{"variant", "result"}),
		swaps: f.NewCounterVec(prometheus.CounterOpts{
			Name: "qmap_sabre_swaps_inserted_total",
			Help: "SWAPs inserted into routed output",
		}, []string{"variant"}),
		valves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "qmap_sabre_release_valve_total",
			Help: "Release valve firings in routed output",
		}, []string{"variant"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "qmap_sabre_route_duration_seconds",
			Help:    "Wall time of Route calls including refinement",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"variant"}),
	}
}

func (m *Metrics) observe(variant string, res *Result, err error, d time.Duration) {
	if m == nil {
		return
	}
	m.routes.WithLabelValues(variant, outcome(err)).Inc()
	m.duration.WithLabelValues(variant).Observe(d.Seconds())
	if err == nil {
		m.swaps.WithLabelValues(variant).Add(float64(res.Swaps))
		m.valves.WithLabelValues(variant).Add(float64(res.ReleaseValves))
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, ErrRoutingTimeout):
		return ResultTimeout
	case errors.Is(err, ErrInvalidTopology):
		return ResultTopology
	case errors.Is(err, ErrUnsupportedOperation):
		return ResultUnsupported
	case errors.Is(err, ErrShapeMismatch):
		return ResultShape
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ResultCanceled
	}
	return ResultError
}
