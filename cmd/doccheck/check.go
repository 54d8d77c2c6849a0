package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ygrebnov/doccheck"
	"github.com/ygrebnov/doccheck/manifest"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the sample calls of a manifest",
	Long: `Compile a checker for every function listed in the manifest and check
each sample call against it. A call passes when the checker accepts it.

The command fails when any call does not behave as its "expect" field says.

Examples:
  doccheck check
  doccheck check --manifest funcs.yaml --all`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

var checkAll bool

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkAll, "all", false, "report every failing argument instead of the first one")
}

func runCheck(cmd *cobra.Command, args []string) error {
	m, err := manifest.ParseFile(manifestPath)
	if err != nil {
		return err
	}
	logger.Debug().Str("manifest", manifestPath).Int("functions", len(m.Functions)).Msg("manifest loaded")

	outcomes, err := manifest.Run(m, checkAll, doccheck.WithLogger(logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	unmet := 0
	for _, o := range outcomes {
		mark := checkMark
		if !o.Met() {
			mark = crossMark
			unmet++
		}
		fmt.Fprintf(out, "  %s %s #%d (expect %s)\n", mark, o.Function, o.Index+1, o.Expect)
		if o.Err != nil {
			fmt.Fprintf(out, "      %v\n", o.Err)
		}
	}

	fmt.Fprintln(out)
	if unmet > 0 {
		return fmt.Errorf("%d of %d calls did not meet their expectation", unmet, len(outcomes))
	}
	fmt.Fprintf(out, "All %d calls met their expectation.\n", len(outcomes))
	return nil
}
