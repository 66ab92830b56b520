package diagfmt

import (
	"encoding/json"
	"io"
	"strings"

	"surgelint/internal/diag"
	"surgelint/internal/source"
)

// LocationJSON is a resolved span: path plus 1-based line/column bounds.
type LocationJSON struct {
	Path      string `json:"path"`
	Offset    uint32 `json:"offset"`
	EndOffset uint32 `json:"end_offset"`
	Line      uint32 `json:"line"`
	Col       uint32 `json:"col"`
	EndLine   uint32 `json:"end_line"`
	EndCol    uint32 `json:"end_col"`
}

type NoteJSON struct {
	Location LocationJSON `json:"location"`
	Message  string       `json:"message"`
}

type EditJSON struct {
	Location LocationJSON `json:"location"`
	NewText  string       `json:"new_text"`
	OldText  string       `json:"old_text,omitempty"`
}

type FixJSON struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Kind          string     `json:"kind"`
	Applicability string     `json:"applicability"`
	Preferred     bool       `json:"preferred"`
	Edits         []EditJSON `json:"edits"`
}

type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Title    string       `json:"title,omitempty"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
	Fixes    []FixJSON    `json:"fixes,omitempty"`
}

type ReportJSON struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Errors      int              `json:"errors"`
	Warnings    int              `json:"warnings"`
}

// JSON writes the bag as one JSON document.
func JSON(w io.Writer, fs *source.FileSet, bag *diag.Bag, opts JSONOpts) error {
	report := ReportJSON{Diagnostics: make([]DiagnosticJSON, 0, bag.Len())}
	for _, d := range bag.Items() {
		report.Diagnostics = append(report.Diagnostics, toJSON(fs, d, opts))
		switch d.Severity {
		case diag.SevError:
			report.Errors++
		case diag.SevWarning:
			report.Warnings++
		}
	}

	enc := json.NewEncoder(w)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(report)
}

func toJSON(fs *source.FileSet, d *diag.Diagnostic, opts JSONOpts) DiagnosticJSON {
	out := DiagnosticJSON{
		Severity: strings.ToLower(d.Severity.String()),
		Code:     d.Code.ID(),
		Title:    d.Code.Title(),
		Message:  d.Message,
		Location: locJSON(fs, d.Primary, opts),
	}
	for _, n := range d.Notes {
		out.Notes = append(out.Notes, NoteJSON{
			Location: locJSON(fs, n.Span, opts),
			Message:  n.Msg,
		})
	}
	for _, f := range d.Fixes {
		fj := FixJSON{
			ID:            f.ID,
			Title:         f.Title,
			Kind:          f.Kind.String(),
			Applicability: f.Applicability.String(),
			Preferred:     f.IsPreferred,
		}
		for _, e := range f.Edits {
			fj.Edits = append(fj.Edits, EditJSON{
				Location: locJSON(fs, e.Span, opts),
				NewText:  e.NewText,
				OldText:  e.OldText,
			})
		}
		out.Fixes = append(out.Fixes, fj)
	}
	return out
}

func locJSON(fs *source.FileSet, span source.Span, opts JSONOpts) LocationJSON {
	file := fs.Get(span.File)
	start, end := fs.Resolve(span)
	return LocationJSON{
		Path:      file.FormatPath(opts.PathMode.orAuto(), opts.BaseDir),
		Offset:    span.Start,
		EndOffset: span.End,
		Line:      start.Line,
		Col:       start.Col,
		EndLine:   end.Line,
		EndCol:    end.Col,
	}
}
