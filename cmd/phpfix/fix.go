package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"phpfix/internal/config"
	"phpfix/internal/diagfmt"
	"phpfix/internal/engine"
	"phpfix/internal/phpver"
	"phpfix/internal/source"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] [path...]",
	Short: "Rewrite PHP files in place",
	Long:  `Fix applies the configured rewrite rules to the given files and directories (default: the current directory)`,
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("dry-run", false, "report changes without writing files")
	fixCmd.Flags().Bool("diff", false, "print a unified diff for every changed file")
	fixCmd.Flags().String("php", "", "target PHP version, overriding the config file")
	fixCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = one per CPU)")
	fixCmd.Flags().Bool("no-cache", false, "disable the clean-file cache")
	fixCmd.Flags().String("ui", "auto", "interactive progress display (auto|on|off)")
}

func runFix(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	showDiff, _ := cmd.Flags().GetBool("diff")

	opts, err := buildEngineOptions(cmd)
	if err != nil {
		return err
	}
	opts.DryRun = dryRun

	fileSet, results, err := runEngine(cmd, args, opts)
	if err != nil {
		return err
	}

	reportDiagnostics(cmd, results, fileSet)
	if showDiff {
		diffOpts := diagfmt.DiffOpts{Color: useColor(cmd, os.Stdout), PathMode: diagfmt.PathModeRelative}
		if err := diagfmt.WriteDiffs(os.Stdout, results, fileSet, diffOpts); err != nil {
			return err
		}
	}

	sum := engine.Summarize(results)
	if quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet"); !quiet {
		verb := "fixed"
		if dryRun {
			verb = "would fix"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d of %d files (%d cached)\n",
			verb, sum.Changed, sum.Total, sum.Cached)
	}
	if sum.Errors > 0 {
		return fmt.Errorf("%d files failed", sum.Errors)
	}
	return nil
}

// buildEngineOptions assembles engine options from the config file and the
// command's flags.
func buildEngineOptions(cmd *cobra.Command) (*engine.Options, error) {
	configPath, _ := cmd.Root().PersistentFlags().GetString("config")

	var cfg config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, _, err = config.LoadOrDefault(".")
	}
	if err != nil {
		return nil, err
	}

	target, err := cfg.Target()
	if err != nil {
		return nil, err
	}
	if phpFlag, _ := cmd.Flags().GetString("php"); phpFlag != "" {
		target, err = phpver.Parse(phpFlag)
		if err != nil {
			return nil, err
		}
	}

	rs, err := cfg.BuildRules()
	if err != nil {
		return nil, err
	}

	jobs := cfg.Fix.Jobs
	if flagJobs, _ := cmd.Flags().GetInt("jobs"); flagJobs > 0 {
		jobs = flagJobs
	}

	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	opts := &engine.Options{
		Target:         target,
		Rules:          rs,
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
		ConfigHash:     cfg.Hash(),
	}

	noCache, _ := cmd.Flags().GetBool("no-cache")
	if cfg.Fix.Cache && !noCache {
		cache, err := engine.OpenDiskCache("phpfix")
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: cache disabled: %v\n", err)
		} else {
			opts.Cache = cache
		}
	}
	return opts, nil
}

// runEngine dispatches to the parallel directory runner for a single
// directory argument, or to the sequential path runner otherwise.
func runEngine(cmd *cobra.Command, args []string, opts *engine.Options) (*source.FileSet, []engine.FileResult, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	if len(args) == 1 {
		info, err := os.Stat(args[0])
		if err != nil {
			return nil, nil, err
		}
		if info.IsDir() {
			mode, err := readUIMode(uiFlag(cmd))
			if err != nil {
				return nil, nil, err
			}
			if shouldUseTUI(mode) {
				return runFixWithUI(cmd.Context(), args[0], opts)
			}
			return engine.FixDir(cmd.Context(), args[0], opts)
		}
	}

	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, nil, err
		}
		if info.IsDir() {
			listed, err := engine.ListFiles(arg)
			if err != nil {
				return nil, nil, err
			}
			files = append(files, listed...)
			continue
		}
		if filepath.Ext(arg) != ".php" {
			return nil, nil, fmt.Errorf("%s: not a PHP file", arg)
		}
		files = append(files, arg)
	}

	fileSet, results := engine.FixPaths(files, opts)
	return fileSet, results, nil
}

func uiFlag(cmd *cobra.Command) string {
	v, _ := cmd.Flags().GetString("ui")
	return v
}

func reportDiagnostics(cmd *cobra.Command, results []engine.FileResult, fileSet *source.FileSet) {
	prettyOpts := diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		PathMode:  diagfmt.PathModeRelative,
		ShowNotes: true,
	}
	for i := range results {
		bag := results[i].Bag
		if bag == nil || (!bag.HasErrors() && !bag.HasWarnings()) {
			continue
		}
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, fileSet, prettyOpts)
	}
}
