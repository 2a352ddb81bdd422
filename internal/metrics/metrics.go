package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"platewatch/internal/db"
)

var (
	pendingDesc = prometheus.NewDesc(
		"platewatch_pending_submissions",
		"Submissions awaiting moderation by kind",
		[]string{"kind"},
		nil,
	)

	submissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "platewatch_submissions_total",
			Help: "Total accepted submissions by kind",
		},
		[]string{"kind"},
	)

	moderationTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "platewatch_moderation_actions_total",
			Help: "Total moderation actions by outcome",
		},
		[]string{"action"},
	)
)

// QueueCollector is a custom Prometheus collector that reads moderation
// queue depths from the database on each scrape.
type QueueCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *QueueCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- pendingDesc
}

// Collect queries the database for pending counts and emits them as gauges.
func (c *QueueCollector) Collect(ch chan<- prometheus.Metric) {
	ctx := context.Background()

	updates, err := c.db.CountPriceUpdatesByStatus(ctx)
	if err != nil {
		slog.Error("failed to collect price update metrics", "error", err)
		return
	}
	claims, err := c.db.CountClaimRequestsByStatus(ctx)
	if err != nil {
		slog.Error("failed to collect claim request metrics", "error", err)
		return
	}

	ch <- prometheus.MustNewConstMetric(pendingDesc, prometheus.GaugeValue,
		float64(updates["pending"]), "price_update")
	ch <- prometheus.MustNewConstMetric(pendingDesc, prometheus.GaugeValue,
		float64(claims["pending"]), "claim_request")
}

var (
	initialized bool
	initOnce    sync.Once
)

// Init registers the collectors and counters. Must be called once at startup.
func Init(database *db.DB) {
	initOnce.Do(func() {
		prometheus.MustRegister(&QueueCollector{db: database})
		prometheus.MustRegister(submissionsTotal, moderationTotal)
		initialized = true
	})
}

// RecordSubmission counts an accepted submission of the given kind.
func RecordSubmission(kind string) {
	if !initialized {
		return
	}
	submissionsTotal.WithLabelValues(kind).Inc()
}

// RecordModeration counts a moderation action (approved or rejected).
func RecordModeration(action string) {
	if !initialized {
		return
	}
	moderationTotal.WithLabelValues(action).Inc()
}
