package main

import (
	"os"

	"github.com/spf13/cobra"

	"surgelint/internal/diag"
	"surgelint/internal/diagfmt"
	"surgelint/internal/driver"
	"surgelint/internal/lint"
)

func newCheckCmd() *cobra.Command {
	var format string
	var pathMode string

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Lint files or directories and report findings",
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
			if format != "" {
				cfg.Format = format
			}
			if pathMode != "" {
				cfg.PathMode = pathMode
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			res, err := driver.Check(cmd.Context(), paths, driver.Options{
				Lint:           lint.Config{Disabled: cfg.DisabledRules},
				Jobs:           flags.jobs,
				MaxDiagnostics: cfg.MaxDiagnostics,
				NoCache:        !cfg.Cache,
				BaseDir:        wd,
			})
			if err != nil {
				return err
			}
			if cfg.WarningsAsErrors {
				res.Bag.Transform(func(d *diag.Diagnostic) *diag.Diagnostic {
					if d.Severity == diag.SevWarning {
						d.Severity = diag.SevError
					}
					return d
				})
			}

			if !flags.quiet {
				switch cfg.Format {
				case "json":
					err = diagfmt.JSON(cmd.OutOrStdout(), res.FileSet, res.Bag, diagfmt.JSONOpts{
						PathMode: diagfmt.PathMode(cfg.PathMode),
						BaseDir:  wd,
					})
				default:
					err = diagfmt.Pretty(cmd.OutOrStdout(), res.FileSet, res.Bag, diagfmt.PrettyOpts{
						Color:     useColor(cfg.Color),
						PathMode:  diagfmt.PathMode(cfg.PathMode),
						BaseDir:   wd,
						ShowFixes: true,
					})
				}
				if err != nil {
					return err
				}
			}

			if res.Bag.HasWarnings() {
				return exitError(exitFindings)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "output format: pretty or json")
	cmd.Flags().StringVar(&pathMode, "path-mode", "", "path formatting: auto, absolute, relative or basename")
	return cmd
}
