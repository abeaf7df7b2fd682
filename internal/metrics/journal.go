package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	journalFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "flush_total",
		Help:      "Count of journal flushes to the sink.",
	}, []string{"status"})

	journalFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "flush_duration_seconds",
		Help:      "Duration of journal flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	journalFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "flush_size",
		Help:      "Number of entries per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	})

	journalDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "dropped_total",
		Help:      "Count of entries dropped because the journal queue was full.",
	})
)

type Journal struct{}

func NewJournal() *Journal {
	return &Journal{}
}

func (Journal) ObserveFlush(err error, size int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	journalFlushTotal.WithLabelValues(status).Inc()
	journalFlushDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	journalFlushSize.Observe(float64(size))
}

func (Journal) ObserveDropped() {
	journalDroppedTotal.Inc()
}
