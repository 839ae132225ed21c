package metrics

import "github.com/prometheus/client_golang/prometheus"

// CheckoutMetrics tracks checkout attempts and their outcomes.
type CheckoutMetrics struct {
	attempts *prometheus.CounterVec
	lines    prometheus.Histogram
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_attempts_total",
		Help: "Checkout attempts by outcome.",
	}, []string{"outcome"})
	lines := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_cart_lines",
		Help:    "Cart line count per checkout attempt.",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
	})
	reg.MustRegister(attempts, lines)
	return &CheckoutMetrics{
		attempts: attempts,
		lines:    lines,
	}
}

// IncOutcome counts one checkout attempt with the given outcome label.
func (c *CheckoutMetrics) IncOutcome(outcome string) {
	if c == nil || c.attempts == nil {
		return
	}
	c.attempts.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ObserveCartLines records how many lines the attempted cart carried.
func (c *CheckoutMetrics) ObserveCartLines(count int) {
	if c == nil || c.lines == nil {
		return
	}
	c.lines.Observe(float64(count))
}
