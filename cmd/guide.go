package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	pathFlagName      = "path"
	seedInputFlagName = "seed-input"
	strictFlagName    = "strict"
	retriesFlagName   = "retries"
)

var guidePathFlag string
var guideSeedInputFlag string
var guideStrictFlag bool
var guideRetriesFlag int

const guideLongDescription = `Search for an input whose execution follows the given sequence of
constrained branches.

The path lists branch ids separated by spaces or commas. A negative entry -b
stands for the other side of branch b's conditional. The search starts from
the seed input (empty by default) and prints the input of the closest
execution it found.

In strict mode the target is walked branch by branch and the search fails as
soon as a branch cannot be reached from the matched prefix.`

var guideFlagBindings = flagBindings{
	retriesFlagName: guideRetriesKey,
	iterFlagName:    maxIterationsKey,
	timeFlagName:    timeBudgetKey,
	seedFlagName:    seedKey,
	targetFlagName:  targetCommandKey,
	solverFlagName:  solverCommandKey,
}

// guideCmd represents the guide command.
var guideCmd = newGuideCmd()

func newGuideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Search for an input following a branch path",
		Long:  guideLongDescription,
		Args:  cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, _ []string) {
			guideFlagBindings.apply(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, err := parseInt64List(guidePathFlag)
			if err != nil {
				return fmt.Errorf("parse --%s: %w", pathFlagName, err)
			}

			seed, err := parseInt64List(guideSeedInputFlag)
			if err != nil {
				return fmt.Errorf("parse --%s: %w", seedInputFlagName, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			args := searchArgs()
			args.Findings = ""
			args.Options.RunID = uuid.NewString()
			args.Options.TargetPath = target
			args.Options.SeedInput = seed
			args.Options.Strict = guideStrictFlag

			result, err := newWorkflow(cmd).Guide(ctx, args)
			if err != nil {
				return err
			}

			if !result.Complete {
				cmd.PrintErrf("Matched %d of %d target branches\n", result.Matched, len(target))
			}

			return nil
		},
	}

	configureGuideFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(guideCmd)
}

func configureGuideFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&guidePathFlag, pathFlagName, "p", "", "target branch path, e.g. \"10 -11 12\"")
	cobra.CheckErr(cmd.MarkFlagRequired(pathFlagName))

	cmd.Flags().StringVar(&guideSeedInputFlag, seedInputFlagName, "", "initial input values")
	cmd.Flags().BoolVar(&guideStrictFlag, strictFlagName, false, "follow the target branch by branch")

	cmd.Flags().IntVar(&guideRetriesFlag, retriesFlagName, viper.GetInt(guideRetriesKey), "maximum number of greedy forcing rounds")

	configureBudgetFlags(cmd)
	configureTargetFlags(cmd)
}
