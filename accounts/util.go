package accounts

import (
	"fmt"
	"io"
)

// Display writes one line per account.
func Display[H Holder](w io.Writer, accounts []H) {
	for _, a := range accounts {
		fmt.Fprintln(w, a)
	}
}

// Deposit deposits amount into every account, reporting each outcome, and
// returns how many succeeded.
func Deposit[H Holder](w io.Writer, accounts []H, amount float64) int {
	ok := 0
	for _, a := range accounts {
		if a.Deposit(amount) {
			ok++
			fmt.Fprintf(w, "Deposited %.2f to %s\n", amount, a)
		} else {
			fmt.Fprintf(w, "Failed deposit of %.2f to %s\n", amount, a)
		}
	}
	return ok
}

// Withdraw withdraws amount from every account, reporting each outcome, and
// returns how many succeeded.
func Withdraw[H Holder](w io.Writer, accounts []H, amount float64) int {
	ok := 0
	for _, a := range accounts {
		if a.Withdraw(amount) {
			ok++
			fmt.Fprintf(w, "Withdraw %.2f from %s\n", amount, a)
		} else {
			fmt.Fprintf(w, "Failed withdraw of %.2f from %s\n", amount, a)
		}
	}
	return ok
}
