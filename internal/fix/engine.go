package fix

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"surgelint/internal/diag"
	"surgelint/internal/source"
)

// ApplyMode selects which fixes of a diagnostic set the engine applies.
type ApplyMode uint8

const (
	// ApplyModePreferred applies only fixes marked IsPreferred.
	ApplyModePreferred ApplyMode = iota
	// ApplyModeAll applies every eligible fix.
	ApplyModeAll
	// ApplyModeID applies only fixes whose ID matches Options.FixID.
	ApplyModeID
)

// Options configures one engine run.
type Options struct {
	Mode  ApplyMode
	FixID string
	// Force also applies fixes below the safety threshold (ManualReview).
	Force bool
	// DryRun computes results without touching the filesystem.
	DryRun bool
}

// Result summarizes an engine run.
type Result struct {
	// Applied counts fixes whose every edit made it into a rewrite.
	Applied int
	Skipped int
	// Conflict counts edits dropped because they overlapped an accepted one.
	Conflict int
	// Changed maps file paths to their rewritten content.
	Changed map[string][]byte
}

type pendingEdit struct {
	edit  diag.TextEdit
	fixID string
	// fix indexes the selected fix this edit belongs to, so a dropped edit
	// can veto the whole fix in the applied count.
	fix int
}

// Apply selects eligible fixes from diags and rewrites the affected files.
// Edits are ordered by span; overlapping edits after the first are counted as
// conflicts and dropped, and a fix that loses any edit this way is not
// counted as applied. OldText guards are validated against the current file
// content before anything is written.
func Apply(fs *source.FileSet, diags []*diag.Diagnostic, opts Options) (*Result, error) {
	res := &Result{Changed: make(map[string][]byte)}

	perFile := make(map[source.FileID][]pendingEdit)
	selected := 0
	for _, d := range diags {
		for _, f := range d.Fixes {
			if !eligible(f, opts) {
				res.Skipped++
				continue
			}
			for _, e := range f.Edits {
				perFile[e.Span.File] = append(perFile[e.Span.File], pendingEdit{edit: e, fixID: f.ID, fix: selected})
			}
			selected++
		}
	}

	droppedFixes := make(map[int]bool)
	for fileID, edits := range perFile {
		file := fs.Get(fileID)
		content, dropped, err := applyEdits(file.Content, edits)
		if err != nil {
			return nil, fmt.Errorf("apply fixes to %s: %w", file.Path, err)
		}
		for _, idx := range dropped {
			droppedFixes[idx] = true
		}
		res.Conflict += len(dropped)
		res.Changed[file.Path] = content
	}
	res.Applied = selected - len(droppedFixes)

	if opts.DryRun {
		return res, nil
	}
	for path, content := range res.Changed {
		if err := writeAtomic(path, content); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func eligible(f diag.Fix, opts Options) bool {
	switch opts.Mode {
	case ApplyModePreferred:
		if !f.IsPreferred {
			return false
		}
	case ApplyModeID:
		if f.ID != opts.FixID {
			return false
		}
	case ApplyModeAll:
	}
	if f.Applicability == diag.FixApplicabilityManualReview && !opts.Force {
		return false
	}
	return true
}

// applyEdits rewrites content with the given edits. Edits are sorted by start
// offset (ties by fix ID for determinism); an edit overlapping an already
// accepted one is dropped, and the fix indices of dropped edits are returned.
func applyEdits(content []byte, edits []pendingEdit) ([]byte, []int, error) {
	sort.SliceStable(edits, func(i, j int) bool {
		a, b := edits[i].edit.Span, edits[j].edit.Span
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return edits[i].fixID < edits[j].fixID
	})

	out := make([]byte, 0, len(content))
	var dropped []int
	var cursor uint32
	for _, pe := range edits {
		sp := pe.edit.Span
		if sp.Start < cursor || int(sp.End) > len(content) || sp.Start > sp.End {
			dropped = append(dropped, pe.fix)
			continue
		}
		if pe.edit.OldText != "" && string(content[sp.Start:sp.End]) != pe.edit.OldText {
			return nil, nil, fmt.Errorf("fix %s: stale source at offset %d", pe.fixID, sp.Start)
		}
		out = append(out, content[cursor:sp.Start]...)
		out = append(out, pe.edit.NewText...)
		cursor = sp.End
	}
	out = append(out, content[cursor:]...)
	return out, dropped, nil
}

// writeAtomic writes content next to path and renames it into place.
func writeAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".surgelint-fix-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
