// Package journal exports committed account transactions to a sink in the
// background.
package journal

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/safeaccount/internal/model"
	"github.com/goodnatureofminers/safeaccount/pkg/batcher"
)

// Journal buffers committed transactions and hands them to a Sink in batches.
// It implements account.Observer.
type Journal struct {
	logger  *zap.Logger
	sink    Sink
	metrics Metrics
	batcher *batcher.Batcher[Entry]

	recorded atomic.Uint64
	dropped  atomic.Uint64
	flushed  atomic.Uint64
}

// New builds a Journal. Call Start before use and Stop to flush what is left.
func New(sink Sink, metrics Metrics, cfg batcher.Config, logger *zap.Logger) (*Journal, error) {
	if sink == nil {
		return nil, errors.New("journal sink is required")
	}
	if metrics == nil {
		return nil, errors.New("journal metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	j := &Journal{
		logger:  logger.Named("journal"),
		sink:    sink,
		metrics: metrics,
	}
	j.batcher = batcher.New(j.logger, j.flush, cfg)
	return j, nil
}

// Start begins flushing in the background until ctx is done or Stop is called.
func (j *Journal) Start(ctx context.Context) {
	j.batcher.Start(ctx)
}

// Stop flushes queued entries and stops the background loop.
func (j *Journal) Stop() {
	j.batcher.Stop()
}

// OnCommit queues tx. It never blocks: when the queue is full or the journal
// has stopped the entry is dropped and counted.
func (j *Journal) OnCommit(accountID string, tx model.Transaction) {
	if !j.batcher.TryAdd(Entry{AccountID: accountID, Transaction: tx}) {
		j.dropped.Inc()
		j.metrics.ObserveDropped()
		j.logger.Warn("journal queue full, entry dropped",
			zap.String("account_id", accountID),
			zap.Uint64("sequence", tx.Sequence()),
		)
		return
	}
	j.recorded.Inc()
}

// Stats returns the journal counters.
func (j *Journal) Stats() Stats {
	return Stats{
		Recorded: j.recorded.Load(),
		Dropped:  j.dropped.Load(),
		Flushed:  j.flushed.Load(),
	}
}

func (j *Journal) flush(ctx context.Context, entries []Entry) error {
	started := time.Now()
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(a.AccountID, b.AccountID); c != 0 {
			return c
		}
		return cmp.Compare(a.Transaction.Sequence(), b.Transaction.Sequence())
	})

	err := j.sink(ctx, entries)
	j.metrics.ObserveFlush(err, len(entries), started)
	if err != nil {
		return fmt.Errorf("journal sink: %w", err)
	}
	j.flushed.Add(uint64(len(entries)))
	return nil
}

// LogSink writes every entry to logger.
func LogSink(logger *zap.Logger) Sink {
	return func(_ context.Context, entries []Entry) error {
		for _, e := range entries {
			tx := e.Transaction
			logger.Info("transaction",
				zap.String("account_id", e.AccountID),
				zap.String("kind", string(tx.Kind())),
				zap.Uint64("sequence", tx.Sequence()),
				zap.Stringer("amount", tx.Amount()),
				zap.Stringer("id", tx.ID()),
				zap.Time("timestamp", tx.Timestamp()),
			)
		}
		return nil
	}
}
