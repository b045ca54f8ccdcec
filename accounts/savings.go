package accounts

import "fmt"

// SavingsAccount is an Account that pays interest on every deposit and can
// keep a minimum balance on withdrawal.
type SavingsAccount struct {
	Account

	// InterestRate is a percentage added on top of each deposit.
	InterestRate float64

	// MinBalance is the balance a withdrawal must leave behind. Zero means
	// the plain account rule applies.
	MinBalance float64
}

// SavingsOption configures a SavingsAccount.
type SavingsOption func(*SavingsAccount)

// WithMinBalance makes withdrawals keep at least v in the account.
func WithMinBalance(v float64) SavingsOption {
	return func(s *SavingsAccount) {
		s.MinBalance = v
	}
}

// NewSavingsAccount returns a savings account paying rate percent on deposits.
func NewSavingsAccount(name string, balance, rate float64, opts ...SavingsOption) *SavingsAccount {
	s := &SavingsAccount{
		Account:      *NewAccount(name, balance),
		InterestRate: rate,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Deposit credits amount plus interest. The account rule still rejects
// non-positive amounts.
func (s *SavingsAccount) Deposit(amount float64) bool {
	amount += amount * s.InterestRate / 100
	return s.Account.Deposit(amount)
}

// Withdraw applies the account rule and refuses to go below MinBalance.
func (s *SavingsAccount) Withdraw(amount float64) bool {
	if s.Balance-amount < s.MinBalance {
		return false
	}
	return s.Account.Withdraw(amount)
}

func (s *SavingsAccount) String() string {
	return fmt.Sprintf("[Savings_Account: %s: %.2f, %.2f%%]", s.Name, s.Balance, s.InterestRate)
}
