package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind names a transaction variant.
type TransactionKind string

var (
	// KindDeposit is the kind of a Deposit transaction.
	KindDeposit TransactionKind = "deposit"
	// KindWithdraw is the kind of a Withdraw transaction.
	KindWithdraw TransactionKind = "withdraw"
)

// Transaction is an immutable record of a committed balance movement.
// The set of implementations is closed: Deposit and Withdraw.
type Transaction interface {
	ID() uuid.UUID
	// Sequence is the 1-based position of the transaction in its account log.
	Sequence() uint64
	Kind() TransactionKind
	// Amount is the magnitude of the movement, always positive.
	Amount() Amount
	Timestamp() time.Time
	// Delta is the signed effect of the transaction on the balance.
	Delta() Amount

	transaction()
}

type record struct {
	id       uuid.UUID
	sequence uint64
	amount   Amount
	at       time.Time
}

func (r record) ID() uuid.UUID        { return r.id }
func (r record) Sequence() uint64     { return r.sequence }
func (r record) Amount() Amount       { return r.amount }
func (r record) Timestamp() time.Time { return r.at }

// Deposit credits the account.
type Deposit struct{ record }

// NewDeposit builds a Deposit record.
func NewDeposit(id uuid.UUID, sequence uint64, amount Amount, at time.Time) Deposit {
	return Deposit{record{id: id, sequence: sequence, amount: amount, at: at}}
}

func (Deposit) Kind() TransactionKind { return KindDeposit }
func (d Deposit) Delta() Amount       { return d.amount }
func (Deposit) transaction()          {}

// Withdraw debits the account.
type Withdraw struct{ record }

// NewWithdraw builds a Withdraw record.
func NewWithdraw(id uuid.UUID, sequence uint64, amount Amount, at time.Time) Withdraw {
	return Withdraw{record{id: id, sequence: sequence, amount: amount, at: at}}
}

func (Withdraw) Kind() TransactionKind { return KindWithdraw }
func (w Withdraw) Delta() Amount       { return w.amount.Neg() }
func (Withdraw) transaction()          {}

// Net sums the signed deltas of txs.
func Net(txs []Transaction) Amount {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Delta())
	}
	return total
}
