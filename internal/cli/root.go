// Package cli provides the Cobra command structure for tallint.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/harlowdrift/tallint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root tallint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "tallint",
		Short: "A whitespace linter for tall-form rune expressions",
		Long: `tallint checks the indentation and alignment of tall-form rune
expressions: backdented staircases, note and cell alignment, sequence
gaps, and the jogging shapes of multi-clause runes. It reports one
diagnostic per line-oriented mistake, with optional windowed source
context, and supports suppression and inclusion lists for tagging
known-acceptable whitespace.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
