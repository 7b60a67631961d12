// Package metrics provides the centralized Prometheus metrics registry for
// the championship service.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	ScoringRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "f1_demo",
		Name:      "scoring_runs_total",
		Help:      "Total number of completed scoring runs",
	})
	ScoringRunsRejectedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "f1_demo",
		Name:      "scoring_runs_rejected_total",
		Help:      "Total number of scoring runs rejected for invalid input",
	})
	ResultsUpsertedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "f1_demo",
		Name:      "results_upserted_total",
		Help:      "Total number of result rows written",
	})
	StandingsRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "f1_demo",
		Name:      "standings_requests_total",
		Help:      "Total number of standings reads served",
	})
	StandingsCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "f1_demo",
		Name:      "standings_cache_hits_total",
		Help:      "Standings reads served from the snapshot cache",
	})
	StandingsRefreshesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "f1_demo",
		Name:      "standings_refreshes_total",
		Help:      "Total number of standings snapshot recomputations",
	})
	RequestsThrottledTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "f1_demo",
		Name:      "requests_throttled_total",
		Help:      "API requests rejected by the rate limiter",
	})
)

// Gauge metrics
var (
	RankedRacers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "f1_demo",
		Name:      "ranked_racers",
		Help:      "Number of racers in the latest standings snapshot",
	})
	RankedTeams = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "f1_demo",
		Name:      "ranked_teams",
		Help:      "Number of teams in the latest standings snapshot",
	})
)

// Histogram metrics
var (
	ScoringRunDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "f1_demo",
		Name:      "scoring_run_duration_seconds",
		Help:      "Duration of a scoring run including persistence in seconds",
		Buckets:   prometheus.DefBuckets,
	})
	StandingsRefreshDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "f1_demo",
		Name:      "standings_refresh_duration_seconds",
		Help:      "Duration of a full standings recomputation in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(ScoringRunsTotal)
		registry.MustRegister(ScoringRunsRejectedTotal)
		registry.MustRegister(ResultsUpsertedTotal)
		registry.MustRegister(StandingsRequestsTotal)
		registry.MustRegister(StandingsCacheHitsTotal)
		registry.MustRegister(StandingsRefreshesTotal)
		registry.MustRegister(RequestsThrottledTotal)

		registry.MustRegister(RankedRacers)
		registry.MustRegister(RankedTeams)

		registry.MustRegister(ScoringRunDuration)
		registry.MustRegister(StandingsRefreshDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordScoringRun records a completed scoring run and its duration.
func RecordScoringRun(durationSeconds float64, rows int) {
	ScoringRunsTotal.Inc()
	ScoringRunDuration.Observe(durationSeconds)
	ResultsUpsertedTotal.Add(float64(rows))
}

// RecordScoringRejected records a scoring run rejected at validation.
func RecordScoringRejected() {
	ScoringRunsRejectedTotal.Inc()
}

// RecordStandingsRequest records a standings read, cached or not.
func RecordStandingsRequest(cacheHit bool) {
	StandingsRequestsTotal.Inc()
	if cacheHit {
		StandingsCacheHitsTotal.Inc()
	}
}

// RecordStandingsRefresh records a full standings recomputation.
func RecordStandingsRefresh(durationSeconds float64, racers, teams int) {
	StandingsRefreshesTotal.Inc()
	StandingsRefreshDuration.Observe(durationSeconds)
	RankedRacers.Set(float64(racers))
	RankedTeams.Set(float64(teams))
}

// RecordThrottled records a request rejected by the rate limiter.
func RecordThrottled() {
	RequestsThrottledTotal.Inc()
}
