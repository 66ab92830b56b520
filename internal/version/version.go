// Package version carries build metadata stamped via -ldflags.
package version

import (
	"fmt"
	"io"
	"runtime"

	"github.com/fatih/color"
)

// Overridden at build time:
//
//	go build -ldflags "-X surgelint/internal/version.Version=v0.2.0 ..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the one-line version string.
func String() string {
	return fmt.Sprintf("surgelint %s (%s, %s)", Version, Commit, Date)
}

// Print writes a styled version report.
func Print(w io.Writer) {
	bold := color.New(color.Bold)
	fmt.Fprintf(w, "%s %s\n", bold.Sprint("surgelint"), Version)
	fmt.Fprintf(w, "  commit:  %s\n", Commit)
	fmt.Fprintf(w, "  built:   %s\n", Date)
	fmt.Fprintf(w, "  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
