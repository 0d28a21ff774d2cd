package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raxe-ce/raxe-go/internal/raxe/packs"
	"github.com/raxe-ce/raxe-go/internal/raxe/rules"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run every rule's should_match / should_not_match examples",
	RunE:  runSelftest,
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

func runSelftest(cmd *cobra.Command, args []string) error {
	reg, errs := packs.LoadDir(packDir, false)
	if reg == nil {
		for _, e := range errs {
			fmt.Fprintln(cmd.ErrOrStderr(), "error:", e)
		}
		return fmt.Errorf("pack %s failed to load", packDir)
	}

	failures := 0
	for _, cr := range reg.GetAllRules() {
		failedMatch, failedNoMatch := rules.SelfTest(cr)
		if len(failedMatch) > 0 || len(failedNoMatch) > 0 {
			failures++
			fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %d should_match miss, %d should_not_match hit\n",
				cr.Rule.RuleID, len(failedMatch), len(failedNoMatch))
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "PASS %s\n", cr.Rule.RuleID)
	}

	if failures > 0 {
		return fmt.Errorf("%d rule(s) failed self-test", failures)
	}
	return nil
}
