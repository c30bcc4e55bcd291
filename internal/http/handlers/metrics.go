package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics are kept on a private registry so tests can build as many
// servers as they like.
type Metrics struct {
	registry *prometheus.Registry
	renders  prometheus.Counter
	reviews  *prometheus.CounterVec
	lookups  *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "biomae",
			Name:      "page_renders_total",
			Help:      "Storefront pages mounted and served.",
		}),
		reviews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "biomae",
			Name:      "review_submissions_total",
			Help:      "Review submissions by outcome.",
		}, []string{"outcome"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "biomae",
			Name:      "product_lookups_total",
			Help:      "Product descriptor lookups by result.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(m.renders, m.reviews, m.lookups)
	return m
}

func (m *Metrics) render() {
	if m != nil {
		m.renders.Inc()
	}
}

func (m *Metrics) review(outcome string) {
	if m != nil {
		m.reviews.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) lookup(result string) {
	if m != nil {
		m.lookups.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
