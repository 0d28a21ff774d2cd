package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raxe-ce/raxe-go/internal/raxe/packs"
)

var strictSelfTest bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate a rule pack without publishing it",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&strictSelfTest, "strict", false, "fail the whole pack if any rule fails self-test")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	reg, errs := packs.LoadDir(packDir, strictSelfTest)
	for _, e := range errs {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", e)
	}
	if reg == nil {
		return fmt.Errorf("pack %s failed to load", packDir)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "pack %q: %d rules loaded, %d issues\n",
		reg.Manifest.Name, len(reg.GetAllRules()), len(errs))
	if len(errs) > 0 {
		return fmt.Errorf("%d validation issue(s) found", len(errs))
	}
	return nil
}
