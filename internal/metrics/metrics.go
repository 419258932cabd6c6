package metrics

import (
	"github.com/kiwari-pos/barista/internal/enum"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// Metrics holds the pricing collectors. A nil *Metrics records nothing.
type Metrics struct {
	quotes      *prometheus.CounterVec
	batches     *prometheus.CounterVec
	quoteAmount prometheus.Histogram
}

// New creates the collectors and registers them with reg
// (prometheus.DefaultRegisterer when nil).
func New(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_total",
			Help:      "Single-order quotes by outcome.",
		}, []string{"result", "code"}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_batches_total",
			Help:      "Batch quotes by outcome.",
		}, []string{"result"}),
		quoteAmount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_amount",
			Help:      "Final price of successful single-order quotes.",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 6, 7, 8},
		}),
	}
	reg.MustRegister(m.quotes, m.batches, m.quoteAmount)
	return m
}

// ObserveQuote records one quote attempt. code is the pricing error kind of
// a rejected quote; total is only observed for successful ones.
func (m *Metrics) ObserveQuote(result, code string, total decimal.Decimal) {
	if m == nil {
		return
	}
	m.quotes.WithLabelValues(result, code).Inc()
	if result == enum.ResultOK {
		m.quoteAmount.Observe(total.InexactFloat64())
	}
}

// ObserveBatch records one batch attempt.
func (m *Metrics) ObserveBatch(result string) {
	if m == nil {
		return
	}
	m.batches.WithLabelValues(result).Inc()
}
