package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags puts every flag of c and its subcommands back to its default,
// since RootCmd is shared between runs
func resetFlags(t *testing.T, c *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(t, sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetFlags(t, RootCmd)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestShowCommand(t *testing.T) {
	out, err := run(t, "show", "--no-color", "--width", "60", "--legend", "base.power_plant")
	require.NoError(t, err)
	assert.Contains(t, out, "Card: Power Plant")
	assert.Contains(t, out, "│ [energy] │")
	assert.Contains(t, out, "Legend:")
	assert.Contains(t, out, "Energy")
}

func TestShowCommand_UnknownCard(t *testing.T) {
	_, err := run(t, "show", "base.nothing")
	assert.EqualError(t, err, "error getting card: card not found: base.nothing")
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "ls", "--tag", "venus")
	require.NoError(t, err)
	assert.Contains(t, out, "venus.dirigibles")
	assert.Contains(t, out, "venus.sulphur_exports")
	assert.NotContains(t, out, "base.birds")
}

func TestListCommand_FlagsDoNotLeak(t *testing.T) {
	_, err := run(t, "ls", "--tag", "venus")
	require.NoError(t, err)

	out, err := run(t, "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "base.birds")
	assert.Contains(t, out, "venus.dirigibles")
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog 'base' is valid")
}

func TestConfigCommands(t *testing.T) {
	out, err := run(t, "config", "set-width", "70")
	require.NoError(t, err)
	assert.Contains(t, out, "Width set to: 70")

	_, err = run(t, "config", "color", "maybe")
	assert.EqualError(t, err, `expected on or off, got "maybe"`)
}
