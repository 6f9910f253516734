package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "sabot"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName      = "output"
	excludeFlagName     = "exclude"
	runParallelFlagName = "parallel"
	timeoutFlagName     = "timeout"
	failUnderFlagName   = "fail-under"
	strategyFlagName    = "strategy"
	shardFlagName       = "shard"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"

	noOptimizeFlagName    = "no-optimize"
	minComplexityFlagName = "min-complexity"
	maxMutantsFlagName    = "max-mutants"
	keepBoundaryFlagName  = "keep-boundary"

	reportsDirConfigKey    = "run.reports_dir"
	runParallelConfigKey   = "run.parallel"
	runTimeoutConfigKey    = "run.timeout"
	runTestEnvConfigKey    = "run.test_env"
	runFailUnderConfigKey  = "run.fail_under"
	runStrategiesConfigKey = "run.strategies"
	runUIConfigKey         = "run.ui"
	excludeConfigKey       = "paths.exclude"

	optimizeEnabledKey        = "optimize.enabled"
	optimizeMinComplexityKey  = "optimize.min_complexity"
	optimizeMaxPerFunctionKey = "optimize.max_per_function"
	optimizeKeepBoundaryKey   = "optimize.keep_boundary"

	defaultMutationTimeout = time.Minute * 2

	defaultReportsDir  = ".sabot-reports"
	defaultRunParallel = 1
	defaultTestEnv     = "SABOT_ENV=test"
	defaultFailUnder   = float64(0)
	defaultRunUI       = "auto"

	envPrefix = "SABOT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".sabot.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(reportsDirConfigKey, defaultReportsDir)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(runTimeoutConfigKey, int64(defaultMutationTimeout.Seconds()))
	viper.SetDefault(runTestEnvConfigKey, defaultTestEnv)
	viper.SetDefault(runFailUnderConfigKey, defaultFailUnder)
	viper.SetDefault(runStrategiesConfigKey, []string{})
	viper.SetDefault(runUIConfigKey, defaultRunUI)
	viper.SetDefault(excludeConfigKey, []string{})

	// Optimizer defaults mirror domain.DefaultOptimizerConfig.
	viper.SetDefault(optimizeEnabledKey, true)
	viper.SetDefault(optimizeMinComplexityKey, 2)
	viper.SetDefault(optimizeMaxPerFunctionKey, 20)
	viper.SetDefault(optimizeKeepBoundaryKey, true)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	// Text handler writing to the rotating file; stdout stays free for
	// command output and the TUI.
	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
