package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fencelint/fencelint/internal/cli"
)

func testBuildInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
}

func TestRootCommand_Subcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	for _, name := range []string{"check", "languages", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "%s command not found", name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	for _, name := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "%s flag should exist", name)
	}

	assert.Equal(t, "auto", cmd.PersistentFlags().Lookup("color").DefValue)
}

func TestCheckCommand_Flags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())
	checkCmd, _, err := cmd.Find([]string{"check"})
	require.NoError(t, err)

	for _, name := range []string{"exclude", "timeout", "strict", "infer"} {
		assert.NotNil(t, checkCmd.Flags().Lookup(name), "%s flag should exist", name)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cli.ExitSuccess, cli.ExitCode(nil))
	assert.Equal(t, cli.ExitLintErrors, cli.ExitCode(cli.ErrIssuesFound))
	assert.Equal(t, cli.ExitLintWarnings, cli.ExitCode(cli.ErrWarningsFound))
	assert.Equal(t, cli.ExitInternalError, cli.ExitCode(assert.AnError))
}

func TestIsSilent(t *testing.T) {
	t.Parallel()

	assert.True(t, cli.IsSilent(cli.ErrIssuesFound))
	assert.True(t, cli.IsSilent(cli.ErrWarningsFound))
	assert.False(t, cli.IsSilent(assert.AnError))
}
