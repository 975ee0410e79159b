package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"phpfix/internal/diagfmt"
	"phpfix/internal/engine"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path...]",
	Short: "Report files that need fixing without touching them",
	Long:  `Check runs the same rules as fix but never writes; the exit status is non-zero when any file would change. Suited for CI.`,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("diff", true, "print a unified diff for every file that would change")
	checkCmd.Flags().String("php", "", "target PHP version, overriding the config file")
	checkCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = one per CPU)")
	checkCmd.Flags().Bool("no-cache", false, "disable the clean-file cache")
	checkCmd.Flags().String("ui", "off", "interactive progress display (auto|on|off)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts, err := buildEngineOptions(cmd)
	if err != nil {
		return err
	}
	opts.DryRun = true

	fileSet, results, err := runEngine(cmd, args, opts)
	if err != nil {
		return err
	}

	reportDiagnostics(cmd, results, fileSet)
	if showDiff, _ := cmd.Flags().GetBool("diff"); showDiff {
		diffOpts := diagfmt.DiffOpts{Color: useColor(cmd, os.Stdout), PathMode: diagfmt.PathModeRelative}
		if err := diagfmt.WriteDiffs(os.Stdout, results, fileSet, diffOpts); err != nil {
			return err
		}
	}

	sum := engine.Summarize(results)
	if sum.Errors > 0 {
		return fmt.Errorf("%d files failed", sum.Errors)
	}
	if sum.Changed > 0 {
		return fmt.Errorf("%d of %d files need fixing", sum.Changed, sum.Total)
	}
	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "all %d files clean (%d cached)\n", sum.Total, sum.Cached)
	}
	return nil
}
