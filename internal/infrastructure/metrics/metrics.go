package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/matchedbet/internal/domain"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Ledger metrics
	Increments      *prometheus.CounterVec
	IncrementAmount *prometheus.HistogramVec
	Balance         *prometheus.GaugeVec

	// Settlement metrics
	Settlements       *prometheus.CounterVec
	SettlementProfit  *prometheus.HistogramVec
	SettlementErrors  *prometheus.CounterVec
	SettlementRetries *prometheus.CounterVec

	// Outbox metrics
	EventsPublished *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	HTTPInFlight prometheus.Gauge

	// Rate limiting metrics
	RateLimitHits prometheus.Counter
}

// New creates all metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Increments: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchedbet_ledger_increments_total",
				Help: "Total number of ledger increments by target",
			},
			[]string{"target"},
		),
		IncrementAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "matchedbet_ledger_increment_amount",
				Help:    "Absolute size of ledger increments",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
			},
			[]string{"target"},
		),
		Balance: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "matchedbet_ledger_balance",
				Help: "Current ledger total by target",
			},
			[]string{"target"},
		),

		Settlements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchedbet_settlements_total",
				Help: "Total number of settlements",
			},
			[]string{"type", "category", "winner"},
		),
		SettlementProfit: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "matchedbet_settlement_profit",
				Help:    "Profit realised per settlement",
				Buckets: []float64{-50, -10, -5, -1, 0, 1, 5, 10, 50},
			},
			[]string{"category"},
		),
		SettlementErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchedbet_settlement_errors_total",
				Help: "Total number of failed settlements",
			},
			[]string{"type"},
		),
		SettlementRetries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchedbet_settlement_retries_total",
				Help: "Settlement transactions rerun after a transient database error",
			},
			[]string{"reason"},
		),

		EventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchedbet_outbox_events_total",
				Help: "Outbox events handed to the publisher",
			},
			[]string{"event_type", "status"},
		),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "matchedbet_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "matchedbet_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "matchedbet_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		}),

		RateLimitHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "matchedbet_rate_limit_hits_total",
			Help: "Total requests rejected by the rate limiter",
		}),
	}
}

// ObserveIncrement records one applied ledger increment.
func (m *Metrics) ObserveIncrement(target domain.BalanceTarget, amount float64) {
	if amount < 0 {
		amount = -amount
	}
	m.Increments.WithLabelValues(target.String()).Inc()
	m.IncrementAmount.WithLabelValues(target.String()).Observe(amount)
}

// ObserveBalances publishes the current totals as gauges.
func (m *Metrics) ObserveBalances(ledger domain.Ledger) {
	for _, target := range domain.BalanceTargets {
		value, err := ledger.Get(target)
		if err != nil {
			continue
		}
		m.Balance.WithLabelValues(target.String()).Set(value.InexactFloat64())
	}
}

// ObserveSettlement records a committed settlement.
func (m *Metrics) ObserveSettlement(s domain.Settlement) {
	m.Settlements.WithLabelValues(string(s.Type), string(s.Category), string(s.Winner)).Inc()
	m.SettlementProfit.WithLabelValues(string(s.Category)).Observe(s.Profit.InexactFloat64())
}

// ObserveSettlementError records a settlement that failed.
func (m *Metrics) ObserveSettlementError(kind domain.BetType) {
	m.SettlementErrors.WithLabelValues(string(kind)).Inc()
}

// ObserveEventPublished records the result of publishing one outbox event.
// ObserveSettlementRetry implements postgres.RetryObserver.
func (m *Metrics) ObserveSettlementRetry(reason string) {
	m.SettlementRetries.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveEventPublished(eventType string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.EventsPublished.WithLabelValues(eventType, status).Inc()
}

// ObserveHTTP records a finished HTTP request.
func (m *Metrics) ObserveHTTP(method, path string, status int, duration time.Duration) {
	m.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RequestStarted increments the in-flight gauge; RequestFinished decrements it.
func (m *Metrics) RequestStarted()  { m.HTTPInFlight.Inc() }
func (m *Metrics) RequestFinished() { m.HTTPInFlight.Dec() }

// ObserveRateLimited records a rejected request.
func (m *Metrics) ObserveRateLimited() {
	m.RateLimitHits.Inc()
}
