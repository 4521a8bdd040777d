// Copyright 2026 The Kestrel Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics records dispatch counts and latencies with
// github.com/prometheus/client_golang, mirroring router/metrics.go's
// CounterVec/HistogramVec pair — one label set (method, pattern, status) per
// dispatched request.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a private Prometheus registry carrying the dispatch count
// and latency series, so embedding this module never collides with a host
// application's default registry.
type Recorder struct {
	registry *prometheus.Registry
	count    *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewRecorder constructs a Recorder with its own registry, registering both
// series immediately.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	count := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kestrel_dispatch_requests_total",
		Help: "Total requests dispatched, labeled by method, pattern, and status code.",
	}, []string{"method", "pattern", "status"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kestrel_dispatch_duration_seconds",
		Help:    "Dispatch handler latency in seconds, labeled by method and pattern.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "pattern"})

	registry.MustRegister(count, latency)

	return &Recorder{registry: registry, count: count, latency: latency}
}

// Observe records one dispatched request. pattern is empty for requests
// that never matched the trie (spec's NotFound path); an empty pattern
// still gets its own label value so unmatched-route volume is visible.
func (r *Recorder) Observe(method, pattern string, statusCode int, duration time.Duration) {
	label := pattern
	if label == "" {
		label = "<unmatched>"
	}
	r.count.WithLabelValues(method, label, strconv.Itoa(statusCode)).Inc()
	r.latency.WithLabelValues(method, label).Observe(duration.Seconds())
}

// Handler exposes the registry's series for scraping, the same
// promhttp.HandlerFor call router/metrics_providers.go wires into its own
// diagnostics endpoint.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
