package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcodamonte/concepts/accounts"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		accountsCfg = accounts.DefaultDemoConfig()
		verbose = false
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestRunDemo_NopLogger(t *testing.T) {
	logger = zap.NewNop()
	t.Cleanup(func() { logger = nil })

	var buf bytes.Buffer
	runDemo(&buf, findDemo("array"))

	assert.Contains(t, buf.String(), "━━━ Fixed-length array")
	assert.Contains(t, buf.String(), "Found 3 matches")
}

func TestSubcommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"move-backward"}, want: "dst: qux foo bar baz"},
		{args: []string{"shift-left"}, want: "δ ε ζ η . . ."},
		{args: []string{"accounts"}, want: "Deposited 1000.00 to [Account: Larry: 1000.00]"},
		{args: []string{"string"}, want: "heap{allocs=4 frees=4 live=0}"},
		{args: []string{"array"}, want: "Sum of the elements in arr is 16"},
	}
	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			assert.Contains(t, execute(t, tt.args...), tt.want)
		})
	}
}

func TestAccountsFlags(t *testing.T) {
	out := execute(t, "accounts", "--deposit", "500", "--withdraw", "250", "--rate", "10")

	assert.Contains(t, out, "Deposited 500.00 to [Account: Larry: 500.00]")
	assert.Contains(t, out, "Withdraw 250.00 from [Account: Larry: 250.00]")
	assert.Contains(t, out, "Deposited 500.00 to [Savings_Account: Superman: 550.00, 10.00%]")
}

func TestAll(t *testing.T) {
	out := execute(t, "all", "-v")

	for _, d := range demos() {
		assert.Contains(t, out, "━━━ "+d.title+" ━━━")
	}
}

func TestUnknownArgsRejected(t *testing.T) {
	rootCmd.SetArgs([]string{"array", "extra"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	assert.Error(t, rootCmd.Execute())
}
