package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	dbglog "github.com/davetashner/dbgreport/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for dbgreport.
var rootCmd = &cobra.Command{
	Use:   "dbgreport",
	Short: "Collect diagnostic dumps into a navigable HTML report",
	Long: `dbgreport assembles nested, titled sections of diagnostic text
(intermediate representations, traces, pass outputs) into a single
self-contained HTML document with a linked index.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		dbglog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
