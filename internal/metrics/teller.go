package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tellerApplyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "teller",
		Name:      "apply_batch_total",
		Help:      "Count of applied command batches.",
	}, []string{"status"})

	tellerApplyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "teller",
		Name:      "apply_batch_duration_seconds",
		Help:      "Duration of applying a command batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	tellerApplySize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "teller",
		Name:      "apply_batch_size",
		Help:      "Number of commands per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 15), // 1..16384
	})
)

type Teller struct{}

func NewTeller() *Teller {
	return &Teller{}
}

func (Teller) ObserveApply(err error, size int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	tellerApplyTotal.WithLabelValues(status).Inc()
	tellerApplyDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	tellerApplySize.Observe(float64(size))
}
