// Package cmd provides the root command and CLI setup for sabot.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"sabot.dev/pkg/sabot/internal/adapter"
	"sabot.dev/pkg/sabot/internal/controller"
	"sabot.dev/pkg/sabot/internal/domain"
	m "sabot.dev/pkg/sabot/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var languageAdapter adapter.LanguageAdapter
var reportStore adapter.ReportStore
var testAdapter adapter.TestRunnerAdapter
var patcher domain.Patcher
var scheduler domain.Scheduler
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

var verboseFlag bool
var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, interactiveUI())
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	languageAdapter = adapter.NewGoLanguageAdapter()
	reportStore = adapter.NewYAMLReportStore()
	testAdapter = adapter.NewLocalTestRunnerAdapter(viper.GetString(runTestEnvConfigKey))
	patcher = domain.NewPatcher(fsAdapter, languageAdapter)
	scheduler = domain.NewScheduler(fsAdapter, languageAdapter, testAdapter, patcher)
	workflow = domain.NewWorkflow(
		fsAdapter,
		languageAdapter,
		reportStore,
		ui,
		scheduler,
	)
}

// interactiveUI decides between the TUI and the plain writer. The
// run.ui key forces one implementation; auto follows the terminal.
func interactiveUI() bool {
	switch viper.GetString(runUIConfigKey) {
	case "simple":
		return false
	case "tui":
		return true
	default:
		return controller.IsTTY(os.Stdout)
	}
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./pkg/...      recursively scan pkg directory
  - ./cmd ./pkg    scan multiple directories`

const rootLongDescription = `Sabot is a mutation testing tool for Go that helps you assess the quality
of your test suite by introducing small changes (mutations) to your code
and verifying that your tests catch them.

` + pathPatternsHelp

const runLongDescription = `Run mutation testing for the given paths (default: current module).

Mutants are generated per file, reduced by the optimizer, and executed
in isolated workspace clones. The resulting report is written to the
reports directory for later viewing and merging.

` + pathPatternsHelp

const listLongDescription = `List source files and the number of mutations a run would execute.

Counts are taken after the optimizer, so they match what 'sabot run'
with the same configuration would test.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sabot",
		Short: "Go mutation testing tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(reportsDirConfigKey),
			"output directory for mutation testing reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), reportsDirConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVar(&verboseFlag, verboseFlagName, viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
