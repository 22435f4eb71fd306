// internal/metrics/metrics.go
//
// Prometheus collectors for the visualizer.
// Responsibilities:
//   - Count position lookups by outcome (ok / service_error / transport_error).
//   - Time lookups end to end.
//   - Count controller intents and blocked submissions.
//   - Track live web sessions.
//
// Collectors register on the default registry via promauto; the web front end
// exposes them on /metrics.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch outcomes.
const (
	OutcomeOK             = "ok"
	OutcomeServiceError   = "service_error"
	OutcomeTransportError = "transport_error"
)

var (
	fetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sylver_fetch_total",
		Help: "Position lookups by outcome",
	}, []string{"outcome"})

	fetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sylver_fetch_duration_seconds",
		Help:    "Position lookup latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
	}, []string{"outcome"})

	intentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sylver_intent_total",
		Help: "Controller intents by kind",
	}, []string{"intent"})

	blockedSubmits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sylver_submit_blocked_total",
		Help: "Submissions blocked before fetching, by reason",
	}, []string{"reason"})

	sessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sylver_sessions",
		Help: "Live browser sessions",
	})
)

// ObserveFetch records one finished lookup.
func ObserveFetch(outcome string, took time.Duration) {
	fetchTotal.WithLabelValues(outcome).Inc()
	fetchDuration.WithLabelValues(outcome).Observe(took.Seconds())
}

func Intent(kind string) { intentTotal.WithLabelValues(kind).Inc() }

func SubmitBlocked(reason string) { blockedSubmits.WithLabelValues(reason).Inc() }

func SessionOpened() { sessions.Inc() }

func SessionClosed() { sessions.Dec() }
