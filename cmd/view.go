package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"sabot.dev/pkg/sabot/internal/domain"
	m "sabot.dev/pkg/sabot/internal/model"
)

var viewDiffFlag bool
var viewSurvivorsFlag bool

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously generated mutation reports",
		Long:  "View previously generated mutation reports from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(context.Background(), domain.ViewArgs{
				Reports:       m.Path(viper.GetString(reportsDirConfigKey)),
				ShowDiffs:     viewDiffFlag,
				SurvivorsOnly: viewSurvivorsFlag,
			})
		},
	}

	cmd.Flags().BoolVar(&viewDiffFlag, "diff", false, "show unified diffs for each mutation")
	cmd.Flags().BoolVar(&viewSurvivorsFlag, "survivors", false, "show surviving mutations only")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
