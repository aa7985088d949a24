package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runInit(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	root := newRootCmd()
	root.AddCommand(newInitCmd())
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"init"}, args...))

	err := root.Execute()

	return out.String(), err
}

func TestInitCmd(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		args     []string
		wantErr  bool
		contains []string
	}{
		{
			name:     "fresh directory",
			contains: []string{"strategy:", "max_iterations:", "z3 -in -smt2", "szd_execution"},
		},
		{
			name:     "keeps existing file",
			existing: "search:\n  strategy: dfs\n",
			wantErr:  true,
			contains: []string{"strategy: dfs"},
		},
		{
			name:     "force overwrites",
			existing: "stale: true\n",
			args:     []string{"--force"},
			contains: []string{"strategy:", "cfg_branches"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())

			if tt.existing != "" {
				require.NoError(t, os.WriteFile(configFileName, []byte(tt.existing), 0o644))
			}

			out, err := runInit(t, tt.args...)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Contains(t, out, "Wrote "+configFileName)
			}

			contents, err := os.ReadFile(configFileName)
			require.NoError(t, err)

			for _, want := range tt.contains {
				assert.Contains(t, string(contents), want)
			}

			if len(tt.args) > 0 {
				assert.NotContains(t, string(contents), "stale")
			}
		})
	}
}
