package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Structure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "changelint [file...]", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.NotEmpty(t, rootCmd.Example)
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		flagName string
	}{
		"config flag exists": {
			flagName: "config",
		},
		"plain flag exists": {
			flagName: "plain",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			flag := rootCmd.PersistentFlags().Lookup(tt.flagName)
			assert.NotNil(t, flag, "Flag %s should exist", tt.flagName)
		})
	}
}

func TestRootCmd_FlagShortcuts(t *testing.T) {
	t.Parallel()

	flag := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "c", flag.Shorthand)
}

func TestRootCmd_Subcommands(t *testing.T) {
	t.Parallel()

	commandNames := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		commandNames[cmd.Name()] = true
	}

	assert.True(t, commandNames["watch"], "Should have watch command")
	assert.True(t, commandNames["install-hook"], "Should have install-hook command")
	assert.True(t, commandNames["serve"], "Should have serve command")
	assert.True(t, commandNames["version"], "Should have version command")
}

func TestRootCmd_Description(t *testing.T) {
	t.Parallel()

	assert.Contains(t, rootCmd.Long, "Keep a Changelog")
	assert.Contains(t, rootCmd.Long, "exit code 1")
}

func TestRootCmd_Example(t *testing.T) {
	t.Parallel()

	assert.Contains(t, rootCmd.Example, "changelint")
	assert.Contains(t, rootCmd.Example, "changelint watch")
	assert.Contains(t, rootCmd.Example, "changelint install-hook")
}

func TestExecute_Help(t *testing.T) {
	// Cannot run in parallel due to global rootCmd state.

	require.NotPanics(t, func() {
		rootCmd.SetArgs([]string{"--help"})
		defer rootCmd.SetArgs(nil)

		var buf bytes.Buffer
		rootCmd.SetOut(&buf)
		rootCmd.SetErr(&buf)

		_ = Execute()
	})
}

func TestExitCodes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitValidationFailed)
	assert.Equal(t, 3, ExitInvalidArguments)
}

func TestExitError(t *testing.T) {
	t.Parallel()

	err := NewExitError(ExitValidationFailed)
	assert.Equal(t, ExitValidationFailed, err.Code)
	assert.Equal(t, "exit code 1", err.Error())

	var target *ExitError
	assert.True(t, asExitError(err, &target))
	assert.Equal(t, err, target)
}
