package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"csfmt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "csfmt",
	Short: "Suppression-span engine for the csfmt formatter",
	Long:  `csfmt computes which token ranges of a parsed source file must keep their authored line layout`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(suppressCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("config", "", "path to a csfmt.toml options file")
	rootCmd.PersistentFlags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the persistent --color flag against f.
func useColor(cmd *cobra.Command, f *os.File) bool {
	flag, _ := cmd.Root().PersistentFlags().GetString("color")
	return flag == "on" || (flag == "auto" && isTerminal(f))
}
