// Package diag defines the diagnostic model shared by all surgelint phases.
//
// Diagnostic is the central record: Severity, a stable numeric Code with a
// LEX/SYN/EVAL/LINT/IO identifier form, a short human message, the primary
// source.Span, optional Notes (secondary spans) and Fixes.
//
// Fix models an automated correction as data only: a Title, a Kind, an
// Applicability confidence level (AlwaysSafe, SafeWithHeuristics,
// ManualReview) and concrete TextEdits. Each TextEdit carries an optional
// OldText guard that the fix engine validates before touching a file.
//
// Producers emit through a Reporter (or a ReportBuilder when notes and fix
// suggestions are attached); BagReporter aggregates into a Bag, which
// supports sorting, deduplication, filtering and transformation. Rendering
// lives in internal/diagfmt; applying fixes lives in internal/fix.
package diag
