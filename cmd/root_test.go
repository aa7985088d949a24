package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"preach.dev/pkg/preach/internal/domain"
)

func TestParseInt64List(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int64
		wantErr bool
	}{
		{"empty", "", []int64{}, false},
		{"spaces", "10 -11 12", []int64{10, -11, 12}, false},
		{"commas", "1,2,,3", []int64{1, 2, 3}, false},
		{"mixed", " 4,\t5\n6 ", []int64{4, 5, 6}, false},
		{"min int64", "-9223372036854775808", []int64{-9223372036854775808}, false},
		{"not a number", "1 x", nil, true},
		{"overflow", "9223372036854775808", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInt64List(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(errors.New("boom")))
	assert.Equal(t, 2, exitCode(fmt.Errorf("%w: run target: exit", domain.ErrEnvironment)))
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "preach", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{workDirFlagName, verboseFlagName, logFileFlagName, noTUIFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "concolic search engine")
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"run", "guide", "coverage", "init", "version"} {
		assert.True(t, names[name], name)
	}
}

func TestExecute(t *testing.T) {
	original := rootCmd
	t.Cleanup(func() { rootCmd = original })

	rootCmd = &cobra.Command{
		Use:  "test",
		RunE: func(*cobra.Command, []string) error { return nil },
	}
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	Execute()
}

// executeFailures are the command errors the subprocess test runs through
// Execute, keyed by the value of the selecting environment variable.
var executeFailures = map[string]error{
	"plain":       errors.New("command failed"),
	"environment": fmt.Errorf("%w: write input: read-only file system", domain.ErrEnvironment),
}

const executeFailureEnv = "PREACH_TEST_EXECUTE_FAILURE"

func TestExecute_ExitStatus(t *testing.T) {
	if name := os.Getenv(executeFailureEnv); name != "" {
		rootCmd = &cobra.Command{
			Use:  "test",
			RunE: func(*cobra.Command, []string) error { return executeFailures[name] },
		}
		rootCmd.SetOut(os.Stdout)
		rootCmd.SetErr(os.Stderr)

		Execute()

		return
	}

	tests := []struct {
		failure  string
		wantCode int
		wantOut  string
	}{
		{"plain", 1, "command failed"},
		{"environment", 2, "environment failure"},
	}

	for _, tt := range tests {
		t.Run(tt.failure, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=^TestExecute_ExitStatus$")
			cmd.Env = append(os.Environ(), executeFailureEnv+"="+tt.failure)

			output, err := cmd.CombinedOutput()

			var exitErr *exec.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tt.wantCode, exitErr.ExitCode())
			assert.Contains(t, string(output), tt.wantOut)
		})
	}
}
