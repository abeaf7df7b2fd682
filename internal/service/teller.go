package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/safeaccount/internal/account"
	"github.com/goodnatureofminers/safeaccount/pkg/workerpool"
)

const defaultWorkerCount = 20

// Result is the outcome of a single command.
type Result struct {
	Command account.Command
	// Done is false when the command was never run because the batch was canceled.
	Done bool
	Err  error
}

// Report summarizes an applied batch. Results follow the input order.
type Report struct {
	Results             []Result
	Committed           int
	InvalidAmount       int
	InsufficientBalance int
	Blocked             int
	Failed              int
	Skipped             int
}

// Teller applies batches of commands to an account concurrently.
type Teller struct {
	account     Executor
	metrics     TellerMetrics
	workerCount int
	logger      *zap.Logger
}

// NewTeller builds a Teller. A non-positive workerCount uses the default.
// A nil *account.Account is rejected; other typed nil executors are not
// detected and fail on first use.
func NewTeller(acct Executor, metrics TellerMetrics, workerCount int, logger *zap.Logger) (*Teller, error) {
	if acct == nil {
		return nil, errors.New("teller account is required")
	}
	if a, ok := acct.(*account.Account); ok && a == nil {
		return nil, errors.New("teller account is required")
	}
	if metrics == nil {
		return nil, errors.New("teller metrics is required")
	}
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Teller{
		account:     acct,
		metrics:     metrics,
		workerCount: workerCount,
		logger:      logger.Named("teller"),
	}, nil
}

// Apply runs every command against the account. Rejected commands are
// reported, not returned as errors; only cancellation of ctx aborts the batch,
// in which case the partial report is returned with the context error.
func (t *Teller) Apply(ctx context.Context, cmds []account.Command) (Report, error) {
	started := time.Now()

	results, err := workerpool.Map(ctx, t.workerCount, cmds, func(_ context.Context, cmd account.Command) Result {
		return Result{Command: cmd, Done: true, Err: t.account.Execute(cmd)}
	})

	report := summarize(cmds, results)
	t.metrics.ObserveApply(err, len(cmds), started)
	if err != nil {
		t.logger.Warn("batch interrupted",
			zap.Int("commands", len(cmds)),
			zap.Int("skipped", report.Skipped),
			zap.Error(err),
		)
		return report, fmt.Errorf("apply batch: %w", err)
	}

	t.logger.Debug("batch applied",
		zap.Int("commands", len(cmds)),
		zap.Int("committed", report.Committed),
		zap.Int("rejected", len(cmds)-report.Committed),
	)
	return report, nil
}

func summarize(cmds []account.Command, results []Result) Report {
	report := Report{Results: results}
	for i := range results {
		r := &results[i]
		if !r.Done {
			r.Command = cmds[i]
			report.Skipped++
			continue
		}
		switch {
		case r.Err == nil:
			report.Committed++
		case errors.Is(r.Err, account.ErrInvalidAmount):
			report.InvalidAmount++
		case errors.Is(r.Err, account.ErrInsufficientBalance):
			report.InsufficientBalance++
		case errors.Is(r.Err, account.ErrAccountBlocked):
			report.Blocked++
		default:
			report.Failed++
		}
	}
	return report
}
