// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Config controls when a Batcher flushes.
type Config struct {
	// FlushSize flushes once this many items are buffered.
	FlushSize int
	// FlushInterval flushes whatever is buffered on every tick.
	FlushInterval time.Duration
	// RPS caps flushes per second. Zero or less means unlimited.
	RPS int
	// Capacity is the size of the intake queue. Defaults to 2*FlushSize.
	Capacity int
}

// Batcher buffers items and flushes them either by size or interval.
// Every flush receives a slice the callback may keep.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once

	// mu guards closed. Senders hold it for reading while they enqueue, so
	// once run has set closed under the write lock nothing else lands in
	// itemsCh and the final drain sees every accepted item.
	mu        sync.RWMutex
	closed    bool
	started   bool
	done      chan struct{}
	closeOnce sync.Once
}

// New constructs a Batcher.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, cfg Config) *Batcher[T] {
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = 1
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = cfg.FlushSize * 2
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}

	rl := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		rl = ratelimit.New(cfg.RPS)
	}

	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		itemsCh:       make(chan T, cfg.Capacity),
		flushSize:     cfg.FlushSize,
		flushInterval: cfg.FlushInterval,
		rl:            rl,
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.mu.Lock()
	b.started = true
	b.mu.Unlock()

	b.wg.Add(1)
	go b.run(ctx)
}

// Stop stops the background flushing loop after flushing everything queued.
// It is safe to call more than once.
// A batcher that was never started flushes its queue synchronously.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })

	b.mu.RLock()
	started := b.started
	b.mu.RUnlock()
	if !started {
		b.wg.Add(1)
		b.run(context.Background())
	}
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
// It returns context.Canceled once the batcher has stopped.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return context.Canceled
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.done:
		return context.Canceled
	case b.itemsCh <- item:
		return nil
	}
}

// TryAdd queues an item without waiting. It reports false when the queue is
// full or the batcher has stopped, either through Stop or because the Start
// context was canceled. An accepted item is always flushed.
func (b *Batcher[T]) TryAdd(item T) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return false
	}

	select {
	case b.itemsCh <- item:
		return true
	default:
		return false
	}
}

// close rejects further items. Blocked Add calls are released first so the
// write lock can be taken.
func (b *Batcher[T]) close() {
	b.closeOnce.Do(func() { close(b.done) })
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		batch := buf
		buf = make([]T, 0, b.flushSize)
		err := b.flushCallback(ctx, batch)
		if err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(batch)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(batch)))
		}
	}

	drain := func(ctx context.Context) {
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.flushSize {
					flush(ctx)
				}
			default:
				flush(ctx)
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			b.close()
			drain(context.WithoutCancel(ctx))
			return

		case <-b.stop:
			b.close()
			drain(ctx)
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
