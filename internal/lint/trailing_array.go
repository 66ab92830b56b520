package lint

import (
	"surgelint/internal/ast"
	"surgelint/internal/consteval"
	"surgelint/internal/diag"
	"surgelint/internal/fix"
	"surgelint/internal/source"
)

// TrailingZeroArray flags struct declarations whose last field is a
// zero-length array while the type carries no layout attribute. Such a field
// is only a meaningful "rest of the allocation" marker when the layout is
// pinned; without a directive the compiler may reorder or drop it.
type TrailingZeroArray struct {
	fs   *source.FileSet
	b    *ast.Builder
	eval *consteval.Evaluator
}

func NewTrailingZeroArray(fs *source.FileSet, b *ast.Builder, eval *consteval.Evaluator) *TrailingZeroArray {
	return &TrailingZeroArray{fs: fs, b: b, eval: eval}
}

// Examine checks one type item and emits at most one finding.
func (r *TrailingZeroArray) Examine(item *ast.TypeItem, reporter diag.Reporter) {
	if item == nil || item.Kind != ast.TypeDeclStruct {
		return
	}
	fields := r.b.StructFields(item)
	if len(fields) == 0 {
		return
	}
	last := fields[len(fields)-1]
	if !r.matchesTrailingZeroArray(item, last.Type) {
		return
	}
	if hasLayoutAttr(r.b, item) {
		return
	}
	r.report(item, last, reporter)
}

// matchesTrailingZeroArray reports whether the type is a sized array whose
// length provably folds to zero. Unresolvable lengths (unknown names, generic
// parameters, overflow, cycles) never match. The item's generic parameters
// shadow same-named file consts, so a length naming one stays unresolved.
func (r *TrailingZeroArray) matchesTrailingZeroArray(item *ast.TypeItem, id ast.TypeID) bool {
	t := r.b.Types.Get(uint32(id))
	if t == nil || t.Kind != ast.TypeExprArray || t.Array != ast.ArraySized {
		return false
	}
	n, ok := r.eval.UintExcluding(t.Len, genericNames(item))
	return ok && n == 0
}

func genericNames(item *ast.TypeItem) map[source.StringID]bool {
	if len(item.Generics) == 0 {
		return nil
	}
	names := make(map[source.StringID]bool, len(item.Generics))
	for _, g := range item.Generics {
		names[g] = true
	}
	return names
}

// report builds the finding. The fix replaces the declaration prefix (start
// of the item up to the type name) with the directive, a newline, the line
// indent and the same prefix again, so its net effect is a pure insertion in
// front of the declaration.
func (r *TrailingZeroArray) report(item *ast.TypeItem, last ast.StructField, reporter diag.Reporter) {
	prefixSpan := source.Span{
		File:  item.Span.File,
		Start: item.Span.Start,
		End:   item.NameSpan.Start,
	}
	prefix := r.fs.Text(prefixSpan)
	indent := r.fs.Get(item.Span.File).LineIndent(item.Span.Start)
	newText := CanonicalDirective + "\n" + indent + prefix

	suggestion := fix.ReplaceSpan(
		"add `"+CanonicalDirective+"` before the declaration",
		prefixSpan, newText, prefix,
		fix.WithID(fix.MakeFixID(diag.LintTrailingZeroArray, "add-layout-directive")),
		fix.WithApplicability(diag.FixApplicabilityManualReview),
		fix.Preferred(),
	)

	diag.ReportWarning(reporter, diag.LintTrailingZeroArray, item.Span,
		"trailing zero-sized array in a struct with no layout attribute").
		WithNote(last.Span, "zero-sized array field declared here").
		WithNote(item.NameSpan, "annotate the type with `"+CanonicalDirective+"` if the field marks a variable-length tail").
		WithFixSuggestion(suggestion).
		Emit()
}
