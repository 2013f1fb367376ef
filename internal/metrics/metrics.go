// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics collects request outcomes of the REST client and exposes
// them for Prometheus scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RequestRecorder is the narrow view of [Collector] used by the adapter.
type RequestRecorder interface {
	RecordRequest(endpoint string, statusCode int, duration time.Duration)
	RecordTransportError(endpoint string)
	RecordUnauthorized()
}

// Collector records API calls made by the client.
type Collector struct {
	requests     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	transport    *prometheus.CounterVec
	unauthorized prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pronet_api_requests_total",
			Help: "API responses by endpoint and status class.",
		}, []string{"endpoint", "status_class"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pronet_api_request_duration_seconds",
			Help:    "API round trip latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		transport: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pronet_api_transport_errors_total",
			Help: "API calls that failed before a response was received.",
		}, []string{"endpoint"}),
		unauthorized: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pronet_api_unauthorized_total",
			Help: "401 responses that ended the session.",
		}),
	}

	reg.MustRegister(c.requests, c.latency, c.transport, c.unauthorized)

	return c
}

// RecordRequest records a completed round trip.
func (c *Collector) RecordRequest(endpoint string, statusCode int, duration time.Duration) {
	c.requests.WithLabelValues(endpoint, statusClass(statusCode)).Inc()
	c.latency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordTransportError records a call that never got a response.
func (c *Collector) RecordTransportError(endpoint string) {
	c.transport.WithLabelValues(endpoint).Inc()
}

// RecordUnauthorized records a forced logout.
func (c *Collector) RecordUnauthorized() {
	c.unauthorized.Inc()
}

func statusClass(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return strconv.Itoa(code/100) + "xx"
}

// Handler returns the Prometheus scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// NewRouter returns a router serving GET /metrics.
func NewRouter(gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Method(http.MethodGet, "/metrics", Handler(gatherer))
	return r
}

// Nop is a RequestRecorder that drops everything.
type Nop struct{}

func (Nop) RecordRequest(string, int, time.Duration) {}
func (Nop) RecordTransportError(string)              {}
func (Nop) RecordUnauthorized()                      {}
