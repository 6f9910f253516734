package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the sabot build version, the Go version it was built with and the vcs revision it was built from.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("sabot version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)

			if revision, dirty := vcsRevision(info); revision != "" {
				if dirty {
					revision += " (dirty)"
				}

				cmd.Println("vcs revision\t", revision)
			}
		},
	}
}

// vcsRevision extracts the commit hash stamped by the go tool, if any.
func vcsRevision(info *debug.BuildInfo) (revision string, dirty bool) {
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	return revision, dirty
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
