// Package metrics provides Prometheus metrics for the storefront
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the storefront
type Metrics struct {
	// HTTP request metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Collection filter metrics
	FilterPassesTotal *prometheus.CounterVec
	FilterShownRatio  prometheus.Histogram

	// Account metrics
	OTPSentTotal     *prometheus.CounterVec
	LoginsTotal      *prometheus.CounterVec
	CartActionsTotal *prometheus.CounterVec
}

// NewMetrics creates the metrics and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{}

	m.HTTPRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	m.HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	m.HTTPRequestsInFlight = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "storefront_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	m.FilterPassesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_filter_passes_total",
			Help: "Collection pages rendered, by whether any filter was checked",
		},
		[]string{"filtered"},
	)

	m.FilterShownRatio = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "storefront_filter_shown_ratio",
			Help:    "Share of a collection page left visible by the checked filters",
			Buckets: []float64{0, .1, .25, .5, .75, .9, 1},
		},
	)

	m.OTPSentTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_otp_sent_total",
			Help: "One-time passcodes requested, by flow and outcome",
		},
		[]string{"flow", "status"},
	)

	m.LoginsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_logins_total",
			Help: "Completed sign-ins, by method",
		},
		[]string{"method"},
	)

	m.CartActionsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_actions_total",
			Help: "Cart and wishlist changes, by action and outcome",
		},
		[]string{"action", "status"},
	)

	return m
}

// RecordHTTPRequest records one handled request
func (m *Metrics) RecordHTTPRequest(method, route, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordFilterPass records how much of a page the filters left visible
func (m *Metrics) RecordFilterPass(filtered bool, shown, total int) {
	label := "false"
	if filtered {
		label = "true"
	}
	m.FilterPassesTotal.WithLabelValues(label).Inc()
	if total > 0 {
		m.FilterShownRatio.Observe(float64(shown) / float64(total))
	}
}

func (m *Metrics) RecordOTP(flow string, err error) {
	m.OTPSentTotal.WithLabelValues(flow, outcome(err)).Inc()
}

func (m *Metrics) RecordLogin(method string) {
	m.LoginsTotal.WithLabelValues(method).Inc()
}

func (m *Metrics) RecordCartAction(action string, err error) {
	m.CartActionsTotal.WithLabelValues(action, outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// Global instance

var (
	global     *Metrics
	globalOnce sync.Once
)

// Get returns the process-wide metrics, registered with the default registry
func Get() *Metrics {
	globalOnce.Do(func() {
		global = NewMetrics(prometheus.DefaultRegisterer)
	})
	return global
}
