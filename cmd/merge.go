package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"sabot.dev/pkg/sabot/internal/domain"
	m "sabot.dev/pkg/sabot/internal/model"
)

var mergeFailUnderFlag float64

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge shard reports into a single run report",
		Long: `Merge shard_*.yaml reports from a sharded run into a single run report.
With --fail-under the merged score is gated the same way run gates its own,
so a sharded CI pipeline fails once, after all shards are in.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The run command owns the run.fail_under binding. Merge reads
			// the config key as a fallback instead of binding a second flag
			// to it.
			failUnder := mergeFailUnderFlag
			if !cmd.Flags().Changed(failUnderFlagName) {
				failUnder = viper.GetFloat64(runFailUnderConfigKey)
			}

			return workflow.Merge(context.Background(), domain.MergeArgs{
				Reports:   m.Path(viper.GetString(reportsDirConfigKey)),
				FailUnder: failUnder,
			})
		},
	}

	cmd.Flags().Float64Var(&mergeFailUnderFlag, failUnderFlagName, 0, "fail when the merged mutation score is below this percentage")

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
