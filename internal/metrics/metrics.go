// Package metrics collects and exposes Prometheus metrics for the auth flows.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector is the recording interface used by the service layer.
type MetricsCollector interface {
	RecordOtpIssued(purpose string)
	RecordOtpThrottled(purpose string)
	RecordOtpVerified(purpose string, outcome string)
	RecordAccountDeleted(role string)
}

// Collector is the Prometheus-backed implementation.
type Collector struct {
	otpIssued       *prometheus.CounterVec
	otpThrottled    *prometheus.CounterVec
	otpVerified     *prometheus.CounterVec
	accountsDeleted *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics on the
// given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		otpIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobportal_otp_issued_total",
			Help: "Total one-time codes issued, by purpose.",
		}, []string{"purpose"}),
		otpThrottled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobportal_otp_throttled_total",
			Help: "Total one-time code requests rejected by the rate limiter, by purpose.",
		}, []string{"purpose"}),
		otpVerified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobportal_otp_verified_total",
			Help: "Total one-time code verification attempts, by purpose and outcome.",
		}, []string{"purpose", "outcome"}),
		accountsDeleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobportal_accounts_deleted_total",
			Help: "Total accounts deleted through the cascade, by role.",
		}, []string{"role"}),
	}

	reg.MustRegister(
		c.otpIssued,
		c.otpThrottled,
		c.otpVerified,
		c.accountsDeleted,
	)

	return c
}

func (c *Collector) RecordOtpIssued(purpose string) {
	c.otpIssued.WithLabelValues(purpose).Inc()
}

func (c *Collector) RecordOtpThrottled(purpose string) {
	c.otpThrottled.WithLabelValues(purpose).Inc()
}

func (c *Collector) RecordOtpVerified(purpose string, outcome string) {
	c.otpVerified.WithLabelValues(purpose, outcome).Inc()
}

func (c *Collector) RecordAccountDeleted(role string) {
	c.accountsDeleted.WithLabelValues(role).Inc()
}

// Handler returns the scrape handler for the given gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
