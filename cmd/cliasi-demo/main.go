// Copyright 2025 dotandev
// SPDX-License-Identifier: Apache-2.0

// cliasi-demo exercises the library against a real terminal: leveled
// lines, prompts, spinners and progress bars.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	flagOneLine bool
	flagNoColor bool
	flagVerbose int
	flagUnicorn bool
)

var rootCmd = &cobra.Command{
	Use:   "cliasi-demo",
	Short: "Showcase for the cliasi terminal presentation library",
	Long: `cliasi-demo renders every output style the cliasi library supports:
leveled status lines, interactive prompts, blocking and background
spinners, and static and animated progress bars.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagOneLine, "one-line", false, "overwrite the current line instead of appending")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable ANSI colors")
	rootCmd.PersistentFlags().IntVarP(&flagVerbose, "verbose", "v", 0, "highest message verbosity to display")
	rootCmd.PersistentFlags().BoolVar(&flagUnicorn, "unicorn", false, "rainbow animation colors")
}
