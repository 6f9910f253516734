package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sabot.dev/pkg/sabot/internal/domain"
)

var listStrategyFlag []string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List source files and mutation counts",
		Long:  listLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			strategies := listStrategyFlag
			if len(strategies) == 0 {
				strategies = viper.GetStringSlice(runStrategiesConfigKey)
			}

			return workflow.Estimate(context.Background(), domain.EstimateArgs{
				Paths:      parsePaths(args),
				Exclude:    viper.GetStringSlice(excludeConfigKey),
				Strategies: strategies,
				Optimizer:  optimizerConfig(),
			})
		},
	}

	cmd.Flags().StringArrayVar(&listStrategyFlag, strategyFlagName, nil, "mutation strategy to count (can be repeated, default: all)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
