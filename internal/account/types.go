package account

import (
	"time"

	"github.com/goodnatureofminers/safeaccount/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records the outcome of every account operation.
	Metrics interface {
		ObserveOperation(operation string, err error, started time.Time)
	}
	// Observer is notified of every committed transaction after the account
	// lock has been released. Concurrent commits may be reported out of
	// order; Transaction.Sequence is authoritative.
	Observer interface {
		OnCommit(accountID string, tx model.Transaction)
	}
)

type noopMetrics struct{}

func (noopMetrics) ObserveOperation(string, error, time.Time) {}
