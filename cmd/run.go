package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sabot.dev/pkg/sabot/internal/domain"
	m "sabot.dev/pkg/sabot/internal/model"
)

var runParallelFlag int
var runShardFlag string
var runTimeoutFlag int
var runFailUnderFlag float64
var runStrategyFlag []string
var runNoOptimizeFlag bool
var runMinComplexityFlag int
var runMaxMutantsFlag int
var runKeepBoundaryFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Run mutation testing",
		Long:  runLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			shardIndex, totalShards := parseShardFlag(runShardFlag)

			return workflow.Run(context.Background(), domain.RunArgs{
				EstimateArgs: domain.EstimateArgs{
					Paths:      parsePaths(args),
					Exclude:    viper.GetStringSlice(excludeConfigKey),
					Strategies: viper.GetStringSlice(runStrategiesConfigKey),
					Optimizer:  optimizerConfig(),
				},
				Reports:         m.Path(viper.GetString(reportsDirConfigKey)),
				Workers:         viper.GetInt(runParallelConfigKey),
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
				FailUnder:       viper.GetFloat64(runFailUnderConfigKey),
				Timeout:         time.Duration(viper.GetInt(runTimeoutConfigKey)) * time.Second,
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of parallel workers for mutation testing")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().StringVarP(&runShardFlag, shardFlagName, "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")

	cmd.Flags().IntVar(&runTimeoutFlag, timeoutFlagName, viper.GetInt(runTimeoutConfigKey), "per-mutation test timeout in seconds")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), runTimeoutConfigKey)

	cmd.Flags().Float64Var(&runFailUnderFlag, failUnderFlagName, viper.GetFloat64(runFailUnderConfigKey), "fail when the mutation score is below this percentage")
	bindFlagToConfig(cmd.Flags().Lookup(failUnderFlagName), runFailUnderConfigKey)

	cmd.Flags().StringArrayVar(&runStrategyFlag, strategyFlagName, viper.GetStringSlice(runStrategiesConfigKey), "mutation strategy to apply (can be repeated, default: all)")
	bindFlagToConfig(cmd.Flags().Lookup(strategyFlagName), runStrategiesConfigKey)

	cmd.Flags().BoolVar(&runNoOptimizeFlag, noOptimizeFlagName, false, "disable the mutant optimizer and run every candidate")

	cmd.Flags().IntVar(&runMinComplexityFlag, minComplexityFlagName, viper.GetInt(optimizeMinComplexityKey), "minimum subtree complexity for optimized mutants")
	bindFlagToConfig(cmd.Flags().Lookup(minComplexityFlagName), optimizeMinComplexityKey)

	cmd.Flags().IntVar(&runMaxMutantsFlag, maxMutantsFlagName, viper.GetInt(optimizeMaxPerFunctionKey), "maximum mutants kept per function")
	bindFlagToConfig(cmd.Flags().Lookup(maxMutantsFlagName), optimizeMaxPerFunctionKey)

	cmd.Flags().BoolVar(&runKeepBoundaryFlag, keepBoundaryFlagName, viper.GetBool(optimizeKeepBoundaryKey), "always keep boundary comparison mutants")
	bindFlagToConfig(cmd.Flags().Lookup(keepBoundaryFlagName), optimizeKeepBoundaryKey)
}

// optimizerConfig assembles the optimizer configuration from config and
// flags. The --no-optimize flag overrides the optimize.enabled key.
func optimizerConfig() domain.OptimizerConfig {
	cfg := domain.DefaultOptimizerConfig()
	cfg.Enabled = viper.GetBool(optimizeEnabledKey) && !runNoOptimizeFlag
	cfg.MinComplexity = viper.GetInt(optimizeMinComplexityKey)
	cfg.MaxPerFunction = viper.GetInt(optimizeMaxPerFunctionKey)
	cfg.KeepBoundary = viper.GetBool(optimizeKeepBoundaryKey)

	return cfg
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}
