// Package config loads runtime settings from arguments and the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goodnatureofminers/safeaccount/pkg/batcher"
)

type Config struct {
	LogLevel string `long:"log-level" env:"SAFEACCOUNT_LOG_LEVEL" description:"log level (debug, info, warn, error)" default:"info"`

	TellerWorkers int `long:"teller-workers" env:"SAFEACCOUNT_TELLER_WORKERS" description:"concurrent workers applying a command batch" default:"20"`

	JournalFlushSize     int           `long:"journal-flush-size" env:"SAFEACCOUNT_JOURNAL_FLUSH_SIZE" description:"entries per journal flush" default:"100"`
	JournalFlushInterval time.Duration `long:"journal-flush-interval" env:"SAFEACCOUNT_JOURNAL_FLUSH_INTERVAL" description:"maximum time an entry waits before a flush" default:"1s"`
	JournalRPS           int           `long:"journal-rps" env:"SAFEACCOUNT_JOURNAL_RPS" description:"maximum journal flushes per second, 0 for unlimited" default:"50"`
	JournalCapacity      int           `long:"journal-capacity" env:"SAFEACCOUNT_JOURNAL_CAPACITY" description:"journal queue size; entries beyond it are dropped" default:"10000"`
}

// Load parses args (without the program name) on top of environment
// variables and defaults.
func Load(args []string) (Config, error) {
	cfg := Config{}
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TellerWorkers <= 0 {
		return errors.New("teller workers must be positive")
	}
	if c.JournalFlushSize <= 0 {
		return errors.New("journal flush size must be positive")
	}
	if c.JournalFlushInterval <= 0 {
		return errors.New("journal flush interval must be positive")
	}
	if c.JournalRPS < 0 {
		return errors.New("journal rps must not be negative")
	}
	if c.JournalCapacity < c.JournalFlushSize {
		return fmt.Errorf("journal capacity %d is below flush size %d", c.JournalCapacity, c.JournalFlushSize)
	}
	return nil
}

// Journal returns the batcher settings for the journal.
func (c Config) Journal() batcher.Config {
	return batcher.Config{
		FlushSize:     c.JournalFlushSize,
		FlushInterval: c.JournalFlushInterval,
		RPS:           c.JournalRPS,
		Capacity:      c.JournalCapacity,
	}
}

// NewLogger builds a production zap logger at the configured level.
func (c Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.TimeKey = "timestamp"

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
