package journal

import (
	"context"
	"time"

	"github.com/goodnatureofminers/safeaccount/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveFlush(err error, size int, started time.Time)
		ObserveDropped()
	}
)

// Entry is a committed transaction together with the account it belongs to.
type Entry struct {
	AccountID   string
	Transaction model.Transaction
}

// Sink receives flushed batches ordered by account and sequence.
type Sink func(ctx context.Context, entries []Entry) error

// Stats counts entries that went through the journal.
type Stats struct {
	Recorded uint64
	Dropped  uint64
	Flushed  uint64
}
