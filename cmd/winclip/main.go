// winclip: read and write Windows clipboard text from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.klb.dev/winclip/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "winclip",
		Short: "Windows clipboard text from the command line",
		Long: `winclip reads and writes plain text (CF_TEXT) on the Windows clipboard,
and reports the API version of a host application module.

Config file search order (first found wins):
  %APPDATA%\winclip\winclip.toml   ($XDG_CONFIG_HOME/winclip elsewhere)
  path supplied via --config

All flags can be set via WINCLIP_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newPasteCmd(),
		newCopyCmd(),
		newDemoCmd(),
		newHostVersionCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "winclip %s\n", Version)
		},
	}
}

// resolveLogging sets up the global slog logger after flags are parsed.
func resolveLogging(interactive bool, formatStr, levelStr string) {
	format := logging.ParseFormat(formatStr)
	level := logging.ParseLevel(levelStr)
	if levelStr == "" {
		if interactive {
			level = logging.ParseLevel("info")
		} else {
			level = logging.ParseLevel("warn")
		}
	}
	logging.Setup(format, level)
}
