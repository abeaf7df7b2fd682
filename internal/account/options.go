package account

import (
	"go.uber.org/zap"

	"github.com/goodnatureofminers/safeaccount/internal/clock"
)

// Option configures an Account.
type Option func(*Account)

// WithLogger sets the logger. Nil keeps the default no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Account) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithClock sets the source of transaction timestamps.
func WithClock(c clock.Clock) Option {
	return func(a *Account) {
		if c != nil {
			a.clock = c
		}
	}
}

// WithMetrics sets the operation metrics recorder.
func WithMetrics(m Metrics) Option {
	return func(a *Account) {
		if m != nil {
			a.metrics = m
		}
	}
}

// WithObserver registers an observer of committed transactions.
func WithObserver(o Observer) Option {
	return func(a *Account) {
		if o != nil {
			a.observers = append(a.observers, o)
		}
	}
}
