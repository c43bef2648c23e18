package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	// RecommendationRequests counts POST /api/recommendations by domain outcome.
	// The HTTP status is 200 either way, so this is the only place failures show up.
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matchmaker_recommendation_requests_total",
			Help: "Total recommendation requests by domain outcome",
		},
		[]string{"outcome"},
	)

	ProviderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "matchmaker_provider_request_duration_seconds",
			Help:    "Duration of AI provider calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"provider"},
	)

	ProviderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matchmaker_provider_errors_total",
			Help: "Total AI provider failures by stage",
		},
		[]string{"provider", "stage"}, // "generate", "decode", "validate"
	)

	ProviderTokens = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matchmaker_provider_tokens_total",
			Help: "Total tokens reported by AI providers",
		},
		[]string{"provider"},
	)
)

func RecordOutcome(success bool) {
	outcome := OutcomeFailure
	if success {
		outcome = OutcomeSuccess
	}
	RecommendationRequests.WithLabelValues(outcome).Inc()
}

func RecordProviderCall(provider string, elapsed time.Duration, tokens int) {
	ProviderDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
	if tokens > 0 {
		ProviderTokens.WithLabelValues(provider).Add(float64(tokens))
	}
}

func RecordProviderError(provider, stage string) {
	ProviderErrors.WithLabelValues(provider, stage).Inc()
}
