package cmd

import (
	"github.com/spf13/cobra"
)

var packDir string

var rootCmd = &cobra.Command{
	Use:   "raxe-packtool",
	Short: "Developer tooling for raxe rule packs",
	Long: `raxe-packtool validates, signs, and self-tests rule packs during
development. It is not the scanning CLI; it never scans live traffic.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&packDir, "pack", ".", "path to the rule pack directory")
}
