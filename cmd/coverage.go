package cmd

import (
	"github.com/spf13/cobra"

	"preach.dev/pkg/preach/internal/domain"
)

// coverageCmd represents the coverage command.
var coverageCmd = newCoverageCmd()

func newCoverageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Show per-function branch coverage",
		Long: `Show the branch coverage of every listed function, read from the branch
listing and the coverage artifact written by previous runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := newWorkflow(cmd).Coverage(cmd.Context(), domain.CoverageArgs{
				Branches: artifactPath(branchesKey),
				Coverage: artifactPath(coverageKey),
			})

			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(coverageCmd)
}
