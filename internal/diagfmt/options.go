// Package diagfmt renders diagnostic bags for humans (pretty) and tools (JSON).
package diagfmt

// PathMode selects how file paths appear in output. It mirrors the modes of
// source.File.FormatPath.
type PathMode string

const (
	PathAbsolute PathMode = "absolute"
	PathRelative PathMode = "relative"
	PathBasename PathMode = "basename"
	PathAuto     PathMode = "auto"
)

// PrettyOpts configures the human-readable renderer.
type PrettyOpts struct {
	// Color enables ANSI styling. Off by default; the CLI turns it on for
	// terminals.
	Color bool
	// PathMode controls path formatting, PathAuto when empty.
	PathMode PathMode
	// BaseDir anchors relative paths.
	BaseDir string
	// ShowFixes prints a one-line hint for every attached fix.
	ShowFixes bool
}

// JSONOpts configures the machine-readable renderer.
type JSONOpts struct {
	// Pretty indents the output for human inspection.
	Pretty bool
	// PathMode controls path formatting, PathAuto when empty.
	PathMode PathMode
	// BaseDir anchors relative paths.
	BaseDir string
}

func (m PathMode) orAuto() string {
	if m == "" {
		return string(PathAuto)
	}
	return string(m)
}
