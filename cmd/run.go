package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"preach.dev/pkg/preach/internal/domain"
)

const metricsShutdownTimeout = 5 * time.Second

var runStrategyFlag string
var iterationsFlag int
var timeBudgetFlag int64
var seedFlag uint64
var targetFlag string
var solverFlag string
var runResumeFlag bool

var runFlagBindings = flagBindings{
	strategyFlagName: strategyKey,
	resumeFlagName:   resumeKey,
	iterFlagName:     maxIterationsKey,
	timeFlagName:     timeBudgetKey,
	seedFlagName:     seedKey,
	targetFlagName:   targetCommandKey,
	solverFlagName:   solverCommandKey,
}

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a coverage search",
		Long:  runLongDescription,
		Args:  cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, _ []string) {
			runFlagBindings.apply(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			stopMetrics := startMetricsServer(viper.GetString(metricsAddrKey))
			defer stopMetrics()

			args := searchArgs()
			args.Options.RunID = uuid.NewString()

			slog.Info("Starting run", "run_id", args.Options.RunID, "strategy", args.Strategy, "workdir", args.Driver.WorkDir)

			_, err := newWorkflow(cmd).Search(ctx, args)

			return err
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runStrategyFlag, strategyFlagName, "s", viper.GetString(strategyKey),
		"search strategy ("+strings.Join(domain.StrategyNames(), ", ")+")")
	cmd.Flags().BoolVar(&runResumeFlag, resumeFlagName, viper.GetBool(resumeKey), "seed coverage from the coverage artifact")

	configureBudgetFlags(cmd)
	configureTargetFlags(cmd)
}

func configureBudgetFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&iterationsFlag, iterFlagName, "n", viper.GetInt(maxIterationsKey), "maximum number of target executions (0 for no limit)")
	cmd.Flags().Int64Var(&timeBudgetFlag, timeFlagName, viper.GetInt64(timeBudgetKey), "time budget in seconds (0 for no limit)")
	cmd.Flags().Uint64Var(&seedFlag, seedFlagName, viper.GetUint64(seedKey), "random seed (0 derives one from the clock)")
}

func configureTargetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&targetFlag, targetFlagName, "t", viper.GetString(targetCommandKey), "shell command running the instrumented target")
	cmd.Flags().StringVar(&solverFlag, solverFlagName, viper.GetString(solverCommandKey), "SMT-LIB2 solver command reading queries on stdin")
}

// startMetricsServer serves the prometheus registry on addr and returns the
// function stopping it. An empty addr disables the server.
func startMetricsServer(addr string) func() {
	if addr == "" {
		return func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: metricsShutdownTimeout,
	}

	go func() {
		slog.Info("Serving metrics", "addr", addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", "addr", addr, "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			slog.Warn("Failed to stop metrics server", "error", err)
		}
	}
}
