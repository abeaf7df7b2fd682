package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/safeaccount/internal/account"
)

const namespace = "safeaccount"

var (
	accountOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "account",
		Name:      "operations_total",
		Help:      "Count of account operations by outcome.",
	}, []string{"operation", "status"})

	accountOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "account",
		Name:      "operation_duration_seconds",
		Help:      "Duration of account operations, lock wait included.",
		Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10), // 1µs..~0.26s
	}, []string{"operation", "status"})
)

type Account struct{}

func NewAccount() *Account {
	return &Account{}
}

func (Account) ObserveOperation(operation string, err error, started time.Time) {
	status := accountStatus(err)
	accountOperationsTotal.WithLabelValues(operation, status).Inc()
	accountOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

func accountStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, account.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, account.ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, account.ErrAccountBlocked):
		return "blocked"
	default:
		return "error"
	}
}
