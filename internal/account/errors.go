package account

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/safeaccount/internal/model"
)

var (
	// ErrInvalidAmount is returned when a deposit or withdrawal amount is not strictly positive.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientBalance is returned when a withdrawal exceeds the current balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrAccountBlocked is returned when a deposit or withdrawal hits a blocked account.
	ErrAccountBlocked = errors.New("account is blocked")
	// ErrUnsupportedCommand is returned by Execute for commands it does not know.
	ErrUnsupportedCommand = errors.New("unsupported command")
)

// OperationError describes a rejected deposit or withdrawal.
type OperationError struct {
	Op        string
	AccountID string
	Amount    model.Amount
	Err       error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s %s on account %q: %v", e.Op, e.Amount, e.AccountID, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }
