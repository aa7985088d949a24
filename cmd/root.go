// Package cmd provides the root command and CLI setup for preach.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"preach.dev/pkg/preach/internal/adapter"
	"preach.dev/pkg/preach/internal/controller"
	"preach.dev/pkg/preach/internal/domain"
	m "preach.dev/pkg/preach/internal/model"
)

// workflow overrides the workflow built from the configuration. Tests set it
// to a mock.
var workflow domain.Workflow

var workDirFlag string
var verboseFlag bool
var logFileFlag string
var noTUIFlag bool

const noTUIKey = "ui.no_tui"

const rootLongDescription = `Preach is a concolic search engine. It runs an instrumented target program,
records the symbolic path of every execution and asks an SMT solver for
inputs that drive the target down branches it has not covered yet.

The target, the branch listing and the CFG are produced at instrumentation
time; preach only exchanges files with the target through its working
directory.`

const runLongDescription = `Run a coverage search with the given strategy until the iteration or time
budget is spent or the search is interrupted.

Strategies:
  dfs             bounded depth-first search over the path constraints
  random          random branch negation with restarts
  random_input    pure random testing
  uniform_random  random walk that forces each branch with probability 1/2
  hybrid          random testing plus local search windows
  cfg_baseline    CFG-unaware baseline with coverage penalties
  cfg             CFG-directed search towards uncovered branches`

func init() {
	configureRootFlags(rootCmd)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "preach",
		Short:         "Concolic search engine",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a fresh root command with the persistent flags bound.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&workDirFlag, workDirFlagName, "C", viper.GetString(workDirKey), "working directory of the target and its artifacts")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(workDirFlagName), workDirKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVar(&noTUIFlag, noTUIFlagName, viper.GetBool(noTUIKey), "print plain text progress instead of the interactive view")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noTUIFlagName), noTUIKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// flagBindings maps command flag names to config keys. Commands apply them
// when they run because viper keeps a single flag per key.
type flagBindings map[string]string

func (b flagBindings) apply(cmd *cobra.Command) {
	for name, key := range b {
		bindFlagToConfig(cmd.Flags().Lookup(name), key)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps a command error to the process exit status. A broken
// environment exits with 2.
func exitCode(err error) int {
	if errors.Is(err, domain.ErrEnvironment) {
		return 2
	}

	return 1
}

// newWorkflow returns the workflow override or builds one from the
// configuration.
func newWorkflow(cmd *cobra.Command) domain.Workflow {
	if workflow != nil {
		return workflow
	}

	tty := controller.IsTTY(os.Stdout) && !viper.GetBool(noTUIKey)

	return domain.NewWorkflow(
		adapter.NewLocalArtifactFSAdapter(),
		adapter.NewLocalTargetRunnerAdapter(viper.GetString(targetCommandKey), seconds(targetTimeoutKey)),
		adapter.NewSMTSolverAdapter(viper.GetString(solverCommandKey)),
		adapter.NewYAMLStatsStore(),
		controller.NewUI(cmd, tty),
	)
}

// artifactPath resolves a configured path against the working directory.
func artifactPath(key string) m.Path {
	p := viper.GetString(key)
	if p == "" || filepath.IsAbs(p) {
		return m.Path(p)
	}

	return m.Path(filepath.Join(viper.GetString(workDirKey), p))
}

func searchOptions() domain.Options {
	opts := domain.DefaultOptions()
	opts.MaxIterations = viper.GetInt(maxIterationsKey)
	opts.TimeBudget = seconds(timeBudgetKey)
	opts.Depth = viper.GetInt(depthKey)
	opts.StepSize = viper.GetInt(stepSizeKey)
	opts.CfgDepth = viper.GetInt(cfgDepthKey)
	opts.CfgIterations = viper.GetInt(cfgIterationsKey)
	opts.BaselineIterations = viper.GetInt(baselineIterationsKey)
	opts.GuideRetries = viper.GetInt(guideRetriesKey)

	return opts
}

func searchArgs() domain.SearchArgs {
	return domain.SearchArgs{
		Strategy: viper.GetString(strategyKey),
		Branches: artifactPath(branchesKey),
		CFG:      artifactPath(cfgKey),
		Driver: domain.DriverConfig{
			WorkDir:       viper.GetString(workDirKey),
			InputPath:     artifactPath(inputKey),
			ExecutionPath: artifactPath(executionKey),
		},
		Coverage: artifactPath(coverageKey),
		Resume:   viper.GetBool(resumeKey),
		Stats:    artifactPath(statsKey),
		Findings: artifactPath(findingsKey),
		Seed:     viper.GetUint64(seedKey),
		Options:  searchOptions(),
	}
}

// parseInt64List parses integers separated by spaces or commas.
func parseInt64List(s string) ([]int64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	out := make([]int64, 0, len(fields))

	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", f, err)
		}

		out = append(out, v)
	}

	return out, nil
}
