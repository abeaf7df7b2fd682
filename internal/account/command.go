package account

import (
	"fmt"

	"github.com/goodnatureofminers/safeaccount/internal/model"
)

// Command is a request to change account state. The set of commands is
// closed: DepositCommand, WithdrawCommand and BlockCommand.
type Command interface {
	Name() string
	command()
}

// DepositCommand requests Deposit(Amount).
type DepositCommand struct {
	Amount model.Amount
}

// WithdrawCommand requests Withdraw(Amount).
type WithdrawCommand struct {
	Amount model.Amount
}

// BlockCommand requests Block().
type BlockCommand struct{}

func (DepositCommand) Name() string  { return OpDeposit }
func (WithdrawCommand) Name() string { return OpWithdraw }
func (BlockCommand) Name() string    { return OpBlock }

func (DepositCommand) command()  {}
func (WithdrawCommand) command() {}
func (BlockCommand) command()    {}

// Execute applies cmd to the account.
func (a *Account) Execute(cmd Command) error {
	switch c := cmd.(type) {
	case DepositCommand:
		return a.Deposit(c.Amount)
	case WithdrawCommand:
		return a.Withdraw(c.Amount)
	case BlockCommand:
		a.Block()
		return nil
	default:
		return fmt.Errorf("execute %T: %w", cmd, ErrUnsupportedCommand)
	}
}
