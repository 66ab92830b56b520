package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"surgelint/internal/config"
)

const (
	exitOK       = 0
	exitFindings = 1
	exitUsage    = 2
)

type rootFlags struct {
	configPath     string
	color          string
	maxDiagnostics int
	jobs           int
	quiet          bool
	noCache        bool
}

var flags rootFlags

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "surgelint",
		Short:         "Layout linter for Surge source files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to surgelint.toml (discovered upward by default)")
	pf.StringVar(&flags.color, "color", "", "color output: auto, always or never")
	pf.IntVar(&flags.maxDiagnostics, "max-diagnostics", 0, "cap on reported findings, 0 for unlimited")
	pf.IntVar(&flags.jobs, "jobs", 0, "number of files checked in parallel, 0 for all CPUs")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress output, keep the exit code")
	pf.BoolVar(&flags.noCache, "no-cache", false, "disable the on-disk result cache")

	cmd.AddCommand(newCheckCmd(), newFixCmd(), newVersionCmd())
	return cmd
}

func run() int {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if code, ok := err.(exitError); ok {
			return int(code)
		}
		fmt.Fprintln(os.Stderr, "surgelint:", err)
		return exitUsage
	}
	return exitOK
}

// exitError carries a bare exit code through cobra without an error message.
type exitError int

func (e exitError) Error() string { return fmt.Sprintf("exit %d", int(e)) }

// loadConfig merges the manifest with command-line overrides.
func loadConfig(startDir string) (config.Config, error) {
	var cfg config.Config
	var err error
	if flags.configPath != "" {
		cfg, err = config.Load(flags.configPath)
	} else {
		cfg, _, err = config.Discover(startDir)
	}
	if err != nil {
		return config.Config{}, err
	}
	if flags.color != "" {
		cfg.Color = flags.color
	}
	if flags.maxDiagnostics > 0 {
		cfg.MaxDiagnostics = flags.maxDiagnostics
	}
	if flags.noCache {
		cfg.Cache = false
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// useColor resolves the color mode against the output terminal.
func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
