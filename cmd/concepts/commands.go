package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcodamonte/concepts/accounts"
	"github.com/marcodamonte/concepts/algorithms"
	"github.com/marcodamonte/concepts/fixedarray"
	"github.com/marcodamonte/concepts/mystring"
)

var accountsCfg = accounts.DefaultDemoConfig()

// demo is one runnable section: a banner title and the body that prints it.
type demo struct {
	name  string
	title string
	run   func(w io.Writer)
}

func demos() []demo {
	return []demo{
		{"move-backward", "MoveBackward — relocate from the tail, overlapping and not", algorithms.DemoMoveBackward},
		{"shift-left", "ShiftLeft — move-tracking values, ints, strings", algorithms.DemoShiftLeft},
		{"accounts", "Accounts — Account, SavingsAccount, batch helpers", func(w io.Writer) { accounts.Demo(w, accountsCfg) }},
		{"string", "Owning string — copy vs move assignment, release once", mystring.Demo},
		{"array", "Fixed-length array — access, fill, swap, sort, search, accumulate", fixedarray.Demo},
	}
}

func findDemo(name string) demo {
	for _, d := range demos() {
		if d.name == name {
			return d
		}
	}
	panic("unknown demo " + name)
}

func demoCmd(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runDemo(cmd.OutOrStdout(), findDemo(name))
			return nil
		},
	}
}

var (
	moveBackwardCmd = demoCmd("move-backward", "Relocate a range into the tail of another, or of itself")
	shiftLeftCmd    = demoCmd("shift-left", "Shift elements left and show the moved-from tail")
	accountsCmd     = demoCmd("accounts", "Deposit into and withdraw from accounts and savings accounts")
	stringCmd       = demoCmd("string", "Copy and move assignment on an owning string")
	arrayCmd        = demoCmd("array", "Tour a fixed-length array")
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every demo in order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, d := range demos() {
			runDemo(cmd.OutOrStdout(), d)
		}
		return nil
	},
}

func init() {
	f := accountsCmd.Flags()
	f.Float64Var(&accountsCfg.Deposit, "deposit", accountsCfg.Deposit, "amount deposited into every account")
	f.Float64Var(&accountsCfg.Withdraw, "withdraw", accountsCfg.Withdraw, "amount withdrawn from every account")
	f.Float64Var(&accountsCfg.InterestRate, "rate", accountsCfg.InterestRate, "savings interest rate in percent")
}

func runDemo(w io.Writer, d demo) {
	log := logger
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("demo started", zap.String("demo", d.name))
	start := time.Now()

	section(w, d.title)
	d.run(w)

	log.Debug("demo finished", zap.String("demo", d.name), zap.Duration("elapsed", time.Since(start)))
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n━━━ %s ━━━\n", title)
}
