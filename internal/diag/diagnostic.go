package diag

import (
	"surgelint/internal/source"
)

// Note is a secondary span with an explanatory message.
type Note struct {
	Span source.Span
	Msg  string
}

// FixKind is a coarse classification of a fix suggestion.
type FixKind uint8

const (
	FixKindQuickFix FixKind = iota
	FixKindRefactor
	FixKindRefactorRewrite
	FixKindSourceAction
)

func (k FixKind) String() string {
	switch k {
	case FixKindQuickFix:
		return "quickfix"
	case FixKindRefactor:
		return "refactor"
	case FixKindRefactorRewrite:
		return "refactor.rewrite"
	case FixKindSourceAction:
		return "source"
	}
	return "unknown"
}

// FixApplicability is the confidence level of a fix suggestion.
type FixApplicability uint8

const (
	// FixApplicabilityAlwaysSafe marks fixes that preserve semantics.
	FixApplicabilityAlwaysSafe FixApplicability = iota
	// FixApplicabilitySafeWithHeuristics marks fixes that rely on heuristics.
	FixApplicabilitySafeWithHeuristics
	// FixApplicabilityManualReview marks fixes that may be incorrect and
	// require a human decision before applying.
	FixApplicabilityManualReview
)

func (a FixApplicability) String() string {
	switch a {
	case FixApplicabilityAlwaysSafe:
		return "always-safe"
	case FixApplicabilitySafeWithHeuristics:
		return "safe-with-heuristics"
	case FixApplicabilityManualReview:
		return "manual-review"
	}
	return "unknown"
}

// TextEdit is a single replacement of a span with new text.
// OldText, when non-empty, acts as a guard: the fix engine validates the
// current content of the span before applying the edit.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// Fix represents a possible automated correction. Data-only: producers build
// edits eagerly, the fix engine and formatters consume them.
type Fix struct {
	ID            string
	Title         string
	Kind          FixKind
	Applicability FixApplicability
	IsPreferred   bool
	Edits         []TextEdit
}

// Diagnostic is the central finding record shared by all phases.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func NewWarning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

func (d Diagnostic) WithFix(fix Fix) Diagnostic {
	d.Fixes = append(d.Fixes, fix)
	return d
}
