package cmd

import (
	"cmp"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"preach.dev/pkg/preach/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "preach"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	workDirFlagName  = "workdir"
	verboseFlagName  = "verbose"
	logFileFlagName  = "log-file"
	noTUIFlagName    = "no-tui"
	strategyFlagName = "strategy"
	iterFlagName     = "iterations"
	timeFlagName     = "time-budget"
	seedFlagName     = "seed"
	targetFlagName   = "target"
	solverFlagName   = "solver"
	resumeFlagName   = "resume"

	workDirKey = "workdir"

	targetCommandKey = "target.command"
	targetTimeoutKey = "target.timeout"

	branchesKey  = "artifacts.branches"
	cfgKey       = "artifacts.cfg"
	inputKey     = "artifacts.input"
	executionKey = "artifacts.execution"
	coverageKey  = "artifacts.coverage"

	strategyKey      = "search.strategy"
	maxIterationsKey = "search.max_iterations"
	timeBudgetKey    = "search.time_budget"
	seedKey          = "search.seed"
	depthKey         = "search.depth"
	stepSizeKey      = "search.step_size"
	resumeKey        = "search.resume"

	solverCommandKey = "solver.command"

	cfgDepthKey           = "cfg.depth"
	cfgIterationsKey      = "cfg.iterations"
	baselineIterationsKey = "baseline.iterations"

	guideRetriesKey = "guide.retries"

	findingsKey = "output.findings"
	statsKey    = "output.stats"

	metricsAddrKey = "metrics.addr"

	defaultTargetCommand = "./a.out"
	defaultTargetTimeout = 60 * time.Second

	defaultBranches  = "branches"
	defaultCFG       = "cfg_branches"
	defaultInput     = "input"
	defaultExecution = "szd_execution"
	defaultCoverage  = "coverage"

	defaultStrategy      = "cfg"
	defaultSolverCommand = "z3 -in -smt2"

	defaultFindingsDir = ".preach/findings"
	defaultStatsFile   = ".preach/stats.yaml"

	envPrefix = "PREACH"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".preach.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	// A missing preach.yaml is the common case; the defaults apply.
	_ = viper.ReadInConfig()
}

func setDefaults() {
	defaults := domain.DefaultOptions()

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(workDirKey, ".")

	viper.SetDefault(targetCommandKey, defaultTargetCommand)
	viper.SetDefault(targetTimeoutKey, int64(defaultTargetTimeout.Seconds()))

	viper.SetDefault(branchesKey, defaultBranches)
	viper.SetDefault(cfgKey, defaultCFG)
	viper.SetDefault(inputKey, defaultInput)
	viper.SetDefault(executionKey, defaultExecution)
	viper.SetDefault(coverageKey, defaultCoverage)

	viper.SetDefault(strategyKey, defaultStrategy)
	viper.SetDefault(maxIterationsKey, defaults.MaxIterations)
	viper.SetDefault(timeBudgetKey, 0)
	viper.SetDefault(seedKey, 0)
	viper.SetDefault(depthKey, defaults.Depth)
	viper.SetDefault(stepSizeKey, defaults.StepSize)
	viper.SetDefault(resumeKey, false)

	viper.SetDefault(solverCommandKey, defaultSolverCommand)

	viper.SetDefault(cfgDepthKey, defaults.CfgDepth)
	viper.SetDefault(cfgIterationsKey, defaults.CfgIterations)
	viper.SetDefault(baselineIterationsKey, defaults.BaselineIterations)

	viper.SetDefault(guideRetriesKey, defaults.GuideRetries)

	viper.SetDefault(findingsKey, defaultFindingsDir)
	viper.SetDefault(statsKey, defaultStatsFile)

	viper.SetDefault(metricsAddrKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// parseSlogLevel accepts slog level names (with offsets such as "info+2"),
// "warning" and raw numeric levels.
func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultLevel
	}

	if strings.EqualFold(value, "warning") {
		return slog.LevelWarn
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err == nil {
		return level
	}

	if n, err := strconv.Atoi(value); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// logSettings is the log.* section of the configuration.
type logSettings struct {
	Path       string
	Level      slog.Level
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

func loadLogSettings(logPath string, verbose bool) logSettings {
	settings := logSettings{
		Path:       cmp.Or(strings.TrimSpace(logPath), strings.TrimSpace(viper.GetString(logFilenameKey)), defaultLogFilename),
		Level:      parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo),
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	if verbose || viper.GetBool(logVerboseKey) {
		settings.Level = slog.LevelDebug
	}

	return settings
}

// newLogger returns a text logger writing to a size-rotated log file.
func newLogger(settings logSettings) *slog.Logger {
	return slog.New(slog.NewTextHandler(&lumberjack.Logger{
		Filename:   settings.Path,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   settings.Compress,
	}, &slog.HandlerOptions{
		AddSource: true,
		Level:     settings.Level,
	}))
}

// configureLogger installs the file logger as the slog default. It logs at
// Info unless the config or verbose asks for more.
func configureLogger(logPath string, verbose bool) {
	slog.SetDefault(newLogger(loadLogSettings(logPath, verbose)))
}

// seconds reads a duration stored as whole seconds.
func seconds(key string) time.Duration {
	return time.Duration(viper.GetInt64(key)) * time.Second
}
