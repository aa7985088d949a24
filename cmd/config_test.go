package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "preach", configBaseName)
	assert.Equal(t, "preach.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "search.strategy", strategyKey)
	assert.Equal(t, "search.max_iterations", maxIterationsKey)
	assert.Equal(t, "target.command", targetCommandKey)
	assert.Equal(t, "solver.command", solverCommandKey)
	assert.Equal(t, "cfg", defaultStrategy)
	assert.Equal(t, "z3 -in -smt2", defaultSolverCommand)
	assert.Equal(t, "PREACH", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, defaultBranches, viper.GetString(branchesKey))
	assert.Equal(t, defaultCFG, viper.GetString(cfgKey))
	assert.Equal(t, defaultInput, viper.GetString(inputKey))
	assert.Equal(t, defaultExecution, viper.GetString(executionKey))
	assert.Equal(t, 5, viper.GetInt(cfgDepthKey))
	assert.Equal(t, 30, viper.GetInt(cfgIterationsKey))
	assert.Equal(t, 250, viper.GetInt(baselineIterationsKey))
	assert.Equal(t, defaultTargetTimeout, seconds(targetTimeoutKey))
	assert.Empty(t, viper.GetString(metricsAddrKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty", "", slog.LevelInfo},
		{"debug", "debug", slog.LevelDebug},
		{"upper case", "WARN", slog.LevelWarn},
		{"warning", "warning", slog.LevelWarn},
		{"error", " error ", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"offset", "info+2", slog.LevelInfo + 2},
		{"unknown", "loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestSeconds(t *testing.T) {
	viper.Set("test.seconds", 90)
	t.Cleanup(func() { viper.Set("test.seconds", nil) })

	assert.Equal(t, 90*time.Second, seconds("test.seconds"))
}

func TestLoadLogSettings(t *testing.T) {
	viper.Set(logLevelKey, "warn")
	t.Cleanup(func() { viper.Set(logLevelKey, nil) })

	settings := loadLogSettings("", false)
	assert.Equal(t, defaultLogFilename, settings.Path)
	assert.Equal(t, slog.LevelWarn, settings.Level)
	assert.Equal(t, defaultLogMaxSize, settings.MaxSize)
	assert.True(t, settings.Compress)

	settings = loadLogSettings(" run.log ", true)
	assert.Equal(t, "run.log", settings.Path)
	assert.Equal(t, slog.LevelDebug, settings.Level)
}

func TestNewLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preach.log")

	logger := newLogger(logSettings{Path: path, Level: slog.LevelInfo, MaxSize: 1})
	logger.Debug("Hidden detail")
	logger.Info("Starting run", "run_id", "r-1")

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "Starting run")
	assert.Contains(t, string(contents), "run_id=r-1")
	assert.NotContains(t, string(contents), "Hidden detail")
}
