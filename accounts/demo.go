package accounts

import (
	"fmt"
	"io"
)

// DemoConfig holds the amounts the demo pushes through every account.
type DemoConfig struct {
	Deposit      float64
	Withdraw     float64
	InterestRate float64
}

// DefaultDemoConfig mirrors the classic course driver.
func DefaultDemoConfig() DemoConfig {
	return DemoConfig{Deposit: 1000, Withdraw: 2000, InterestRate: 5}
}

// Demo runs the same deposit/withdraw sequence over plain accounts, savings
// accounts and a mixed []Holder.
//
// The same generic helper serves all three slices. In the mixed one, dynamic
// dispatch picks the savings rules for the savings entries.
func Demo(w io.Writer, cfg DemoConfig) {
	// ── Accounts ─────────────────────────────────────────────────────────────
	fmt.Fprintln(w, "=== Account ===")
	accs := []*Account{
		NewAccount("", 0),
		NewAccount("Larry", 0),
		NewAccount("Moe", 2000),
		NewAccount("Curly", 5000),
	}
	Display(w, accs)
	Deposit(w, accs, cfg.Deposit)
	Withdraw(w, accs, cfg.Withdraw)

	// ── Savings accounts ─────────────────────────────────────────────────────
	fmt.Fprintln(w, "\n=== Savings Account ===")
	savs := []*SavingsAccount{
		NewSavingsAccount("", 0, cfg.InterestRate),
		NewSavingsAccount("Superman", 0, cfg.InterestRate),
		NewSavingsAccount("Batman", 2000, cfg.InterestRate),
		NewSavingsAccount("Wonderwoman", 5000, cfg.InterestRate, WithMinBalance(1000)),
	}
	Display(w, savs)
	Deposit(w, savs, cfg.Deposit)
	Withdraw(w, savs, cfg.Withdraw)

	// ── Mixed ────────────────────────────────────────────────────────────────
	fmt.Fprintln(w, "\n=== Mixed []Holder ===")
	mixed := []Holder{
		NewAccount("Joe", 100),
		NewSavingsAccount("Jane", 100, cfg.InterestRate),
	}
	Deposit(w, mixed, 100)
	Withdraw(w, mixed, -5)
}
