// Package metrics exposes wizard activity as Prometheus series on a private registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// Collector records wizard transitions, rejected events and submitted transfers
type Collector struct {
	registry    *prometheus.Registry
	started     prometheus.Counter
	transitions *prometheus.CounterVec
	rejections  *prometheus.CounterVec
	submissions *prometheus.CounterVec
	amounts     *prometheus.HistogramVec
	active      prometheus.Gauge
}

// NewCollector registers every series on a fresh registry
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		started: factory.NewCounter(prometheus.CounterOpts{
			Name: "sendmoney_wizards_started_total",
			Help: "Total number of transfer wizards started",
		}),
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sendmoney_wizard_transitions_total",
			Help: "Accepted wizard events by event name and resulting step",
		}, []string{"event", "step"}),
		rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sendmoney_wizard_rejections_total",
			Help: "Rejected wizard events by event name and reason",
		}, []string{"event", "reason"}),
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sendmoney_transfers_submitted_total",
			Help: "Submitted transfer requests by currency and method",
		}, []string{"currency", "method"}),
		amounts: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sendmoney_transfer_amount",
			Help:    "Submitted transfer amounts in the transfer currency",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000, 100000},
		}, []string{"currency"}),
		active: factory.NewGauge(prometheus.GaugeOpts{
			Name: "sendmoney_wizards_active",
			Help: "Wizards currently held in memory",
		}),
	}
}

// WizardStarted counts a new draft
func (c *Collector) WizardStarted() {
	c.started.Inc()
	c.active.Inc()
}

// WizardClosed counts a discarded or expired draft
func (c *Collector) WizardClosed() {
	c.active.Dec()
}

// Transition counts an accepted event
func (c *Collector) Transition(event, step string) {
	c.transitions.WithLabelValues(event, step).Inc()
}

// Rejection counts an event the state machine refused
func (c *Collector) Rejection(event, reason string) {
	c.rejections.WithLabelValues(event, reason).Inc()
}

// Submitted counts a finalized transfer request
func (c *Collector) Submitted(currency, method string, amount decimal.Decimal) {
	c.submissions.WithLabelValues(currency, method).Inc()
	c.amounts.WithLabelValues(currency).Observe(amount.InexactFloat64())
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for scraping in tests
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
