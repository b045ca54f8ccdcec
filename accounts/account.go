// Package accounts models a bank account and a savings account that builds
// on it. The relationship is a capability (Holder) with exactly two
// implementations, not an inheritance chain.
package accounts

import "fmt"

const defaultName = "Unnamed Account"

// Holder is what the batch helpers need from an account.
type Holder interface {
	Deposit(amount float64) bool
	Withdraw(amount float64) bool
	String() string
}

var (
	_ Holder = (*Account)(nil)
	_ Holder = (*SavingsAccount)(nil)
)

// Account is a named balance.
type Account struct {
	Name    string
	Balance float64
}

// NewAccount returns an account; an empty name becomes "Unnamed Account".
func NewAccount(name string, balance float64) *Account {
	if name == "" {
		name = defaultName
	}
	return &Account{Name: name, Balance: balance}
}

// Deposit adds amount to the balance. Non-positive amounts are rejected.
func (a *Account) Deposit(amount float64) bool {
	if amount <= 0 {
		return false
	}
	a.Balance += amount
	return true
}

// Withdraw subtracts amount from the balance. It is rejected when amount is
// not positive or exceeds the balance.
func (a *Account) Withdraw(amount float64) bool {
	if amount <= 0 || amount > a.Balance {
		return false
	}
	a.Balance -= amount
	return true
}

func (a *Account) String() string {
	return fmt.Sprintf("[Account: %s: %.2f]", a.Name, a.Balance)
}
