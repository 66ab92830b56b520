package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"surgelint/internal/diag"
	"surgelint/internal/source"
)

var (
	errorLabel   = color.New(color.FgRed, color.Bold)
	warningLabel = color.New(color.FgYellow, color.Bold)
	infoLabel    = color.New(color.FgCyan, color.Bold)
	gutterStyle  = color.New(color.FgBlue)
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

// Pretty writes the bag in compiler style: a headline per diagnostic, the
// offending source line with an underline, then notes and fix hints.
func Pretty(w io.Writer, fs *source.FileSet, bag *diag.Bag, opts PrettyOpts) error {
	prev := color.NoColor
	color.NoColor = !opts.Color
	defer func() { color.NoColor = prev }()

	for _, d := range bag.Items() {
		if err := prettyOne(w, fs, d, opts); err != nil {
			return err
		}
	}
	return prettySummary(w, bag, opts)
}

func prettyOne(w io.Writer, fs *source.FileSet, d *diag.Diagnostic, opts PrettyOpts) error {
	label := severityLabel(d.Severity)
	if _, err := fmt.Fprintf(w, "%s[%s]: %s\n", label, d.Code.ID(), d.Message); err != nil {
		return err
	}

	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	path := file.FormatPath(opts.PathMode.orAuto(), opts.BaseDir)
	if _, err := fmt.Fprintf(w, "  %s %s:%d:%d\n",
		gutterStyle.Sprint("-->"), path, start.Line, start.Col); err != nil {
		return err
	}
	if err := printSnippet(w, fs, d.Primary); err != nil {
		return err
	}

	for _, note := range d.Notes {
		noteStart, _ := fs.Resolve(note.Span)
		if _, err := fmt.Fprintf(w, "  %s note: %s (%s:%d:%d)\n",
			gutterStyle.Sprint("="), note.Msg, path, noteStart.Line, noteStart.Col); err != nil {
			return err
		}
	}
	if opts.ShowFixes {
		for _, f := range d.Fixes {
			if _, err := fmt.Fprintf(w, "  %s help: %s [%s, %s]\n",
				gutterStyle.Sprint("="), f.Title, f.ID, f.Applicability); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// printSnippet prints the first line of the span with a caret underline.
func printSnippet(w io.Writer, fs *source.FileSet, span source.Span) error {
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)
	line := file.GetLine(start.Line)
	if line == "" && start.Line != 1 {
		return nil
	}
	line = strings.TrimRight(line, "\n")

	gutter := fmt.Sprintf("%4d", start.Line)
	if _, err := fmt.Fprintf(w, "%s %s %s\n",
		gutterStyle.Sprint(gutter), gutterStyle.Sprint("|"), line); err != nil {
		return err
	}

	// Underline within the first line only; multi-line spans extend to EOL.
	prefix := line
	underlined := ""
	if int(start.Col)-1 <= len(line) {
		prefix = line[:start.Col-1]
		if end.Line == start.Line && int(end.Col)-1 <= len(line) {
			underlined = line[start.Col-1 : end.Col-1]
		} else {
			underlined = line[start.Col-1:]
		}
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(prefix))
	width := runewidth.StringWidth(underlined)
	if width < 1 {
		width = 1
	}
	marks := "^" + strings.Repeat("~", width-1)
	_, err := fmt.Fprintf(w, "%s %s %s%s\n",
		gutterStyle.Sprint("    "), gutterStyle.Sprint("|"), pad, warningLabel.Sprint(marks))
	return err
}

func prettySummary(w io.Writer, bag *diag.Bag, opts PrettyOpts) error {
	if bag.Len() == 0 {
		return nil
	}
	var errors, warnings, infos int
	for _, d := range bag.Items() {
		switch d.Severity {
		case diag.SevError:
			errors++
		case diag.SevWarning:
			warnings++
		default:
			infos++
		}
	}
	var parts []string
	if errors > 0 {
		parts = append(parts, fmt.Sprintf("%d error(s)", errors))
	}
	if warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warning(s)", warnings))
	}
	if infos > 0 {
		parts = append(parts, fmt.Sprintf("%d note(s)", infos))
	}
	line := strings.Join(parts, ", ")
	if opts.Color {
		line = summaryStyle.Render(line)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

func severityLabel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return errorLabel.Sprint("error")
	case diag.SevWarning:
		return warningLabel.Sprint("warning")
	default:
		return infoLabel.Sprint("info")
	}
}
