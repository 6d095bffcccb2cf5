// Wordhunt finds every word that can be traced on a 4x4 Word Hunt board.
//
// The board is sent to a remote solver API; this program collects the
// letters, forwards them, and shows the words that come back. It offers an
// interactive terminal UI, a one-shot solve command, and a browser front end.
//
// Usage:
//
//	wordhunt [command] [flags]
//
// Running without arguments launches the terminal UI.
// See 'wordhunt --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/wordhunt/internal/logging"
	"github.com/muurk/wordhunt/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordhunt",
	Short: "Word Hunt Solver",
	Long: `Finds the possible words that can be made from a 4x4 grid of letters,
for games in the style of the iMessage game Word Hunt.

Enter the board as 16 letters read left to right, top to bottom.

If no command is specified, the interactive solver launches automatically.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runTUI,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Fprintf(cmd.OutOrStdout(), "wordhunt %s (commit: %s, %s, %s)\n",
			info.Version, info.Commit, info.GoVersion, info.Platform)
	},
}
