// Package app wires an account with its teller, journal and metrics.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/safeaccount/internal/account"
	"github.com/goodnatureofminers/safeaccount/internal/config"
	"github.com/goodnatureofminers/safeaccount/internal/journal"
	"github.com/goodnatureofminers/safeaccount/internal/metrics"
	"github.com/goodnatureofminers/safeaccount/internal/service"
)

// App owns one account and the components around it.
type App struct {
	Account *account.Account
	Teller  *service.Teller
	Journal *journal.Journal

	logger *zap.Logger
}

// New builds an App for accountID. A nil sink logs journal entries.
func New(cfg config.Config, accountID string, sink journal.Sink, logger *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("account_id", accountID))
	if sink == nil {
		sink = journal.LogSink(logger.Named("sink"))
	}

	j, err := journal.New(sink, metrics.NewJournal(), cfg.Journal(), logger)
	if err != nil {
		return nil, fmt.Errorf("init journal: %w", err)
	}

	acct := account.New(accountID,
		account.WithLogger(logger.Named("account")),
		account.WithMetrics(metrics.NewAccount()),
		account.WithObserver(j),
	)

	teller, err := service.NewTeller(acct, metrics.NewTeller(), cfg.TellerWorkers, logger)
	if err != nil {
		return nil, fmt.Errorf("init teller: %w", err)
	}

	return &App{
		Account: acct,
		Teller:  teller,
		Journal: j,
		logger:  logger,
	}, nil
}

// Start runs the background journal until ctx is done or Stop is called.
func (a *App) Start(ctx context.Context) {
	a.logger.Info("starting")
	a.Journal.Start(ctx)
}

// Stop flushes the journal.
func (a *App) Stop() {
	a.Journal.Stop()
	stats := a.Journal.Stats()
	a.logger.Info("stopped",
		zap.Uint64("journal_recorded", stats.Recorded),
		zap.Uint64("journal_flushed", stats.Flushed),
		zap.Uint64("journal_dropped", stats.Dropped),
	)
}
