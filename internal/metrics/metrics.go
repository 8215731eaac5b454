// file: internal/metrics/metrics.go
// version: 1.1.0
// guid: 9f8e7d6c-5b4a-3210-9fed-cba876543210

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	authorsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "booklibrary",
		Name:      "authors_created_total",
		Help:      "Total number of authors added through the submission form",
	})
	booksCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "booklibrary",
		Name:      "books_created_total",
		Help:      "Total number of books added through the submission form",
	})
	submissionsRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "booklibrary",
		Name:      "submissions_rejected_total",
		Help:      "Total number of rejected form submissions by entity and reason",
	}, []string{"entity", "reason"})
	coverLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "booklibrary",
		Name:      "cover_lookups_total",
		Help:      "Total number of cover-image lookups by result",
	}, []string{"result"})

	authorsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "booklibrary",
		Name:      "authors_total",
		Help:      "Current total number of authors in the catalog",
	})
	booksGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "booklibrary",
		Name:      "books_total",
		Help:      "Current total number of books in the catalog",
	})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(authorsCreated, booksCreated, submissionsRejected,
			coverLookups, authorsGauge, booksGauge)
	})
}

// Counters
func IncAuthorCreated() { authorsCreated.Inc() }
func IncBookCreated()   { booksCreated.Inc() }
func IncSubmissionRejected(entity, reason string) {
	submissionsRejected.WithLabelValues(entity, reason).Inc()
}
func IncCoverLookup(result string) { coverLookups.WithLabelValues(result).Inc() }

// Gauges
func SetAuthors(n int) { authorsGauge.Set(float64(n)) }
func SetBooks(n int)   { booksGauge.Set(float64(n)) }
