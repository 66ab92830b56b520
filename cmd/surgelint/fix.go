package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"surgelint/internal/driver"
	"surgelint/internal/fix"
	"surgelint/internal/lint"
)

func newFixCmd() *cobra.Command {
	var all bool
	var fixID string
	var force bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Apply suggested fixes in place",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{"."}
			}

			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfg, err := loadConfig(wd)
			if err != nil {
				return err
			}

			// Fixing always works from a fresh pass; stale cached edits must
			// never touch the filesystem.
			res, err := driver.Check(cmd.Context(), paths, driver.Options{
				Lint:           lint.Config{Disabled: cfg.DisabledRules},
				Jobs:           flags.jobs,
				MaxDiagnostics: cfg.MaxDiagnostics,
				NoCache:        true,
				BaseDir:        wd,
			})
			if err != nil {
				return err
			}

			opts := fix.Options{Mode: fix.ApplyModePreferred, Force: force, DryRun: dryRun}
			switch {
			case fixID != "":
				opts.Mode = fix.ApplyModeID
				opts.FixID = fixID
			case all:
				opts.Mode = fix.ApplyModeAll
			}

			applied, err := fix.Apply(res.FileSet, res.Bag.Items(), opts)
			if err != nil {
				return err
			}

			if !flags.quiet {
				out := cmd.OutOrStdout()
				verb := "applied"
				if dryRun {
					verb = "would apply"
				}
				fmt.Fprintf(out, "%s %d fix(es), skipped %d, %d conflict(s)\n",
					verb, applied.Applied, applied.Skipped, applied.Conflict)
				paths := make([]string, 0, len(applied.Changed))
				for path := range applied.Changed {
					paths = append(paths, path)
				}
				sort.Strings(paths)
				for _, path := range paths {
					fmt.Fprintf(out, "  %s\n", path)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "apply every eligible fix, not only preferred ones")
	cmd.Flags().StringVar(&fixID, "id", "", "apply only fixes with this ID")
	cmd.Flags().BoolVar(&force, "force", false, "also apply fixes that need manual review")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing")
	return cmd
}
