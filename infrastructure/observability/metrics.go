// Package observability exposes Prometheus metrics for the API process:
// HTTP traffic through the router middleware, query throughput through the
// query bus hook, and rebuild/outreach activity through a domain event
// listener. Lambda deployments report through CloudWatch instead and do not
// mount this collector.
package observability

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	querybus "accessengine-backend/application/queries/bus"
)

var (
	globalCollector *Collector
	collectorMutex  sync.Mutex
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Rebuild metrics
	Rebuilds      *prometheus.CounterVec
	PrunedMembers prometheus.Counter
	CircleSize    prometheus.Histogram

	// Outreach metrics
	OutreachDrafts      prometheus.Counter
	OutreachDraftWords  prometheus.Histogram
	OutreachTransitions *prometheus.CounterVec

	// Query bus metrics
	Queries       *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
}

// NewCollector creates the process-wide metrics collector. The instance is
// a singleton so repeated wiring in tests does not trip Prometheus duplicate
// registration.
func NewCollector(namespace string) *Collector {
	collectorMutex.Lock()
	defer collectorMutex.Unlock()

	if globalCollector != nil {
		return globalCollector
	}

	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	rebuilds := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rebuilds_total",
			Help:      "Total number of snapshot rebuilds by outcome",
		},
		[]string{"status"},
	)

	prunedMembers := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rebuild_pruned_members_total",
			Help:      "Total number of members pruned as unreachable during rebuilds",
		},
	)

	circleSize := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "circle_size_nodes",
			Help:      "Node count of rebuilt circle snapshots",
			Buckets:   []float64{5, 10, 20, 40, 80},
		},
	)

	outreachDrafts := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outreach_drafts_total",
			Help:      "Total number of outreach drafts stored",
		},
	)

	outreachDraftWords := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "outreach_draft_words",
			Help:      "Word count of generated outreach drafts",
			Buckets:   []float64{25, 50, 75, 100, 150},
		},
	)

	outreachTransitions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outreach_status_changes_total",
			Help:      "Total number of outreach status transitions by new status",
		},
		[]string{"status"},
	)

	queries := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Total number of queries dispatched by outcome",
		},
		[]string{"query", "outcome"},
	)

	queryDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Query handler duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	registry.MustRegister(
		httpRequests,
		httpDuration,
		rebuilds,
		prunedMembers,
		circleSize,
		outreachDrafts,
		outreachDraftWords,
		outreachTransitions,
		queries,
		queryDuration,
	)

	globalCollector = &Collector{
		registry:            registry,
		HTTPRequests:        httpRequests,
		HTTPDuration:        httpDuration,
		Rebuilds:            rebuilds,
		PrunedMembers:       prunedMembers,
		CircleSize:          circleSize,
		OutreachDrafts:      outreachDrafts,
		OutreachDraftWords:  outreachDraftWords,
		OutreachTransitions: outreachTransitions,
		Queries:             queries,
		QueryDuration:       queryDuration,
	}

	return globalCollector
}

// ResetForTesting resets the global collector for testing purposes
func ResetForTesting() {
	collectorMutex.Lock()
	defer collectorMutex.Unlock()
	globalCollector = nil
}

// Increment routes a query bus counter to its metric. The bus also reports
// a raw dispatch count, which is the sum of the two outcomes and is not
// recorded separately.
func (c *Collector) Increment(metric, label string) {
	switch metric {
	case "query_success":
		c.Queries.WithLabelValues(label, "success").Inc()
	case "query_errors":
		c.Queries.WithLabelValues(label, "error").Inc()
	}
}

// StartTimer begins a duration observation for the named metric
func (c *Collector) StartTimer(metric, label string) querybus.Timer {
	if metric != "query_duration" {
		return nopTimer{}
	}
	return promTimer{timer: prometheus.NewTimer(c.QueryDuration.WithLabelValues(label))}
}

type promTimer struct {
	timer *prometheus.Timer
}

func (t promTimer) Stop() {
	t.timer.ObserveDuration()
}

type nopTimer struct{}

func (nopTimer) Stop() {}

// Handler returns the scrape endpoint for this collector's registry
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// GetRegistry returns the Prometheus registry for this collector
func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}
