// internal/app/system/metrics/metrics.go
//
// Package metrics records Prometheus counters and histograms for the
// matching and directory API and serves them on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what features need from a collector. Tests pass Nop.
type Recorder interface {
	MatchingRequest(kind string)
	MatchScores(scores []int)
	ListQuery(collection string, results int)
	Transition(outcome string)
}

// Transition outcomes.
const (
	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
	OutcomeNotFound = "not_found"
)

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	matching    *prometheus.CounterVec
	scores      prometheus.Histogram
	listQueries *prometheus.CounterVec
	listResults *prometheus.HistogramVec
	transitions *prometheus.CounterVec
	httpReqs    *prometheus.CounterVec
	httpLatency *prometheus.HistogramVec
}

// NewCollector builds a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		matching: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alumni_matching_requests_total",
			Help: "Matching requests by type (recommendations, analytics).",
		}, []string{"type"}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "alumni_match_score",
			Help:    "Distribution of computed match scores.",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		}),
		listQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alumni_list_queries_total",
			Help: "Filtered list queries by collection.",
		}, []string{"collection"}),
		listResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "alumni_list_results",
			Help:    "Matching rows per list query, before paging.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6),
		}, []string{"collection"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alumni_request_transitions_total",
			Help: "Mentorship request status changes by outcome.",
		}, []string{"outcome"}),
		httpReqs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "alumni_http_requests_total",
			Help: "HTTP requests by route pattern and status code.",
		}, []string{"route", "code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "alumni_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}

	reg.MustRegister(
		c.matching,
		c.scores,
		c.listQueries,
		c.listResults,
		c.transitions,
		c.httpReqs,
		c.httpLatency,
	)
	return c
}

func (c *Collector) MatchingRequest(kind string) {
	c.matching.WithLabelValues(kind).Inc()
}

func (c *Collector) MatchScores(scores []int) {
	for _, s := range scores {
		c.scores.Observe(float64(s))
	}
}

func (c *Collector) ListQuery(collection string, results int) {
	c.listQueries.WithLabelValues(collection).Inc()
	c.listResults.WithLabelValues(collection).Observe(float64(results))
}

func (c *Collector) Transition(outcome string) {
	c.transitions.WithLabelValues(outcome).Inc()
}

// Middleware counts requests and observes latency per chi route pattern.
// Unmatched paths are grouped under "unmatched" to bound label cardinality.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		c.httpReqs.WithLabelValues(route, strconv.Itoa(code)).Inc()
		c.httpLatency.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

// Handler serves the registry in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Nop discards everything.
type Nop struct{}

func (Nop) MatchingRequest(string) {}
func (Nop) MatchScores([]int)      {}
func (Nop) ListQuery(string, int)  {}
func (Nop) Transition(string)      {}
