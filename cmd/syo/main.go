// syo: personal clipboard history with a rolling retention window.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/olajoao/sticky-one/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "syo",
		Short: "Clipboard manager with 12-hour history",
		Long: `syo watches the system clipboard and keeps every distinct capture for a
rolling retention window (12 hours by default). History is stored locally in
SQLite; nothing ever leaves the machine.

Run "syo daemon" to start capturing. The configured hotkey (Alt+Shift+C by
default) opens a search popup; "syo list/search/get" query and replay history
from the command line.

Config file search order (first found wins):
  /etc/sticky-one/sticky-one.toml
  $HOME/.config/sticky-one/sticky-one.toml
  path supplied via --config

All flags can be set via STICKYONE_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newDaemonCmd(),
		newStopCmd(),
		newStatusCmd(),
		newListCmd(),
		newGetCmd(),
		newSearchCmd(),
		newClearCmd(),
		newPopupCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("syo %s\n", Version)
		},
	}
}

// resolveLogging sets up the global slog logger after flags are parsed.
func resolveLogging(interactive bool, formatStr, levelStr string) {
	format := logging.ParseFormat(formatStr)
	level := logging.ParseLevel(levelStr)
	if levelStr == "" {
		if interactive {
			level = logging.ParseLevel("debug")
		} else {
			level = logging.ParseLevel("info")
		}
	}
	logging.Setup(format, level)
}
