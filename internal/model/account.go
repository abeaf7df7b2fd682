// Package model defines domain models for the in-memory account.
package model

import "github.com/shopspring/decimal"

// Amount is a monetary value kept as an exact decimal.
type Amount = decimal.Decimal

// Status describes whether an account accepts balance movements.
type Status string

var (
	// StatusOpen marks an account that accepts deposits and withdrawals.
	StatusOpen Status = "OPEN"
	// StatusBlocked marks an account that rejects deposits and withdrawals.
	StatusBlocked Status = "BLOCKED"
)

// AccountSnapshot is a consistent view of an account taken at a single instant.
type AccountSnapshot struct {
	ID           string
	Status       Status
	Balance      Amount
	Transactions []Transaction
}
