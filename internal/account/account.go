// Package account implements a single in-memory account that is safe for
// concurrent use.
//
// Balance, status and the transaction log form one unit guarded by a single
// read/write lock. Deposit, Withdraw and Block run their checks and mutation
// inside the write lock, so a check can never act on a stale balance or
// status. Readers share the read lock and always observe a fully committed
// state.
package account

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/safeaccount/internal/clock"
	"github.com/goodnatureofminers/safeaccount/internal/model"
)

// Operation names used in errors, logs and metrics.
const (
	OpDeposit  = "deposit"
	OpWithdraw = "withdraw"
	OpBlock    = "block"
)

// Account holds a balance, a status and an append-only transaction log.
type Account struct {
	id string

	mu      sync.RWMutex
	balance model.Amount
	status  model.Status
	log     []model.Transaction

	clock     clock.Clock
	logger    *zap.Logger
	metrics   Metrics
	observers []Observer
}

// New creates an open account with a zero balance and an empty log.
func New(id string, opts ...Option) *Account {
	a := &Account{
		id:      id,
		balance: decimal.Zero,
		status:  model.StatusOpen,
		clock:   clock.System,
		logger:  zap.NewNop(),
		metrics: noopMetrics{},
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With(zap.String("account_id", id))
	return a
}

// ID returns the account identifier.
func (a *Account) ID() string {
	return a.id
}

// Status returns the current status.
func (a *Account) Status() model.Status {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.status
}

// Balance returns the current balance.
func (a *Account) Balance() model.Amount {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.balance
}

// Transactions returns a copy of the log in commit order.
func (a *Account) Transactions() []model.Transaction {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.copyLog()
}

// Snapshot returns status, balance and log observed at the same instant.
func (a *Account) Snapshot() model.AccountSnapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return model.AccountSnapshot{
		ID:           a.id,
		Status:       a.status,
		Balance:      a.balance,
		Transactions: a.copyLog(),
	}
}

// Deposit adds amount to the balance and records a Deposit.
// It fails with ErrAccountBlocked or ErrInvalidAmount, checked in that order.
func (a *Account) Deposit(amount model.Amount) error {
	started := time.Now()
	tx, err := a.deposit(uuid.New(), amount)
	a.finish(OpDeposit, amount, tx, err, started)
	return err
}

// Withdraw subtracts amount from the balance and records a Withdraw.
// It fails with ErrAccountBlocked, ErrInvalidAmount or ErrInsufficientBalance,
// checked in that order.
func (a *Account) Withdraw(amount model.Amount) error {
	started := time.Now()
	tx, err := a.withdraw(uuid.New(), amount)
	a.finish(OpWithdraw, amount, tx, err, started)
	return err
}

// Block moves the account to BLOCKED. Blocking a blocked account is a no-op.
func (a *Account) Block() {
	started := time.Now()
	changed := a.block()
	a.metrics.ObserveOperation(OpBlock, nil, started)
	if changed {
		a.logger.Info("account blocked")
		return
	}
	a.logger.Debug("account already blocked")
}

func (a *Account) deposit(id uuid.UUID, amount model.Amount) (model.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.status == model.StatusBlocked {
		return nil, a.reject(OpDeposit, amount, ErrAccountBlocked)
	}
	if !amount.IsPositive() {
		return nil, a.reject(OpDeposit, amount, ErrInvalidAmount)
	}

	tx := model.NewDeposit(id, a.nextSequence(), amount, a.clock.Now())
	a.balance = a.balance.Add(amount)
	a.log = append(a.log, tx)
	return tx, nil
}

func (a *Account) withdraw(id uuid.UUID, amount model.Amount) (model.Transaction, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.status == model.StatusBlocked {
		return nil, a.reject(OpWithdraw, amount, ErrAccountBlocked)
	}
	if !amount.IsPositive() {
		return nil, a.reject(OpWithdraw, amount, ErrInvalidAmount)
	}
	if amount.GreaterThan(a.balance) {
		return nil, a.reject(OpWithdraw, amount, ErrInsufficientBalance)
	}

	tx := model.NewWithdraw(id, a.nextSequence(), amount, a.clock.Now())
	a.balance = a.balance.Sub(amount)
	a.log = append(a.log, tx)
	return tx, nil
}

func (a *Account) block() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.status == model.StatusBlocked {
		return false
	}
	a.status = model.StatusBlocked
	return true
}

// finish runs outside the lock.
func (a *Account) finish(op string, amount model.Amount, tx model.Transaction, err error, started time.Time) {
	a.metrics.ObserveOperation(op, err, started)
	if err != nil {
		a.logger.Debug("operation rejected",
			zap.String("operation", op),
			zap.Stringer("amount", amount),
			zap.Error(err),
		)
		return
	}

	a.logger.Debug("transaction committed",
		zap.String("operation", op),
		zap.Stringer("amount", amount),
		zap.Uint64("sequence", tx.Sequence()),
	)
	for _, o := range a.observers {
		o.OnCommit(a.id, tx)
	}
}

func (a *Account) reject(op string, amount model.Amount, err error) error {
	return &OperationError{Op: op, AccountID: a.id, Amount: amount, Err: err}
}

func (a *Account) nextSequence() uint64 {
	return uint64(len(a.log)) + 1
}

func (a *Account) copyLog() []model.Transaction {
	out := make([]model.Transaction, len(a.log))
	copy(out, a.log)
	return out
}
