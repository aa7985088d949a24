package cmd

import (
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"preach.dev/pkg/preach/internal/domain"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the Go version and the search strategies of this binary.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("preach version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)

			if rev := buildSetting(info, "vcs.revision"); rev != "" {
				cmd.Println("revision\t", rev)
			}

			cmd.Println("strategies\t", strings.Join(domain.StrategyNames(), " "))
		},
	}
}

func buildSetting(info *debug.BuildInfo, key string) string {
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}

	return ""
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
