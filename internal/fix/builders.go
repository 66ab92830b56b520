// Package fix constructs and applies automated corrections for diagnostics.
package fix

import (
	"fmt"
	"strings"

	"surgelint/internal/diag"
	"surgelint/internal/source"
)

// Option customizes a fix built by one of the constructors below.
type Option func(*diag.Fix)

// WithID overrides the auto-derived fix ID.
func WithID(id string) Option {
	return func(f *diag.Fix) { f.ID = id }
}

// WithKind sets the fix kind (default FixKindQuickFix).
func WithKind(kind diag.FixKind) Option {
	return func(f *diag.Fix) { f.Kind = kind }
}

// WithApplicability sets the confidence level (default AlwaysSafe).
func WithApplicability(a diag.FixApplicability) Option {
	return func(f *diag.Fix) { f.Applicability = a }
}

// Preferred marks the fix as the preferred one for its diagnostic.
func Preferred() Option {
	return func(f *diag.Fix) { f.IsPreferred = true }
}

// MakeFixID derives a stable fix identifier from a diagnostic code and a slug,
// e.g. "LINT4001.add-layout-directive".
func MakeFixID(code diag.Code, slug string) string {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return code.ID()
	}
	return fmt.Sprintf("%s.%s", code.ID(), slug)
}

func build(title string, edits []diag.TextEdit, opts []Option) diag.Fix {
	f := diag.Fix{
		Title:         title,
		Kind:          diag.FixKindQuickFix,
		Applicability: diag.FixApplicabilityAlwaysSafe,
		Edits:         edits,
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// InsertText builds a fix inserting text at the start of span.
// The span is zeroided so the edit never replaces existing content.
func InsertText(title string, at source.Span, text string, opts ...Option) diag.Fix {
	return build(title, []diag.TextEdit{{
		Span:    at.ZeroideToStart(),
		NewText: text,
	}}, opts)
}

// ReplaceSpan builds a fix replacing span with newText. oldText, when
// non-empty, guards the edit against stale source.
func ReplaceSpan(title string, span source.Span, newText, oldText string, opts ...Option) diag.Fix {
	return build(title, []diag.TextEdit{{
		Span:    span,
		NewText: newText,
		OldText: oldText,
	}}, opts)
}

// DeleteSpan builds a fix removing span entirely.
func DeleteSpan(title string, span source.Span, oldText string, opts ...Option) diag.Fix {
	return build(title, []diag.TextEdit{{
		Span:    span,
		OldText: oldText,
	}}, opts)
}
