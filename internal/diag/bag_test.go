package diag

import (
	"testing"

	"surgelint/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	for i := 0; i < 5; i++ {
		bag.Add(&Diagnostic{Code: LintTrailingZeroArray})
	}
	if bag.Len() != 2 {
		t.Errorf("len = %d, want 2", bag.Len())
	}
	if bag.Add(&Diagnostic{}) {
		t.Error("add over the limit must report a drop")
	}
}

func TestBagSeverityQueries(t *testing.T) {
	bag := NewBag(10)
	bag.Add(&Diagnostic{Severity: SevInfo})
	if bag.HasWarnings() || bag.HasErrors() {
		t.Error("info-only bag must not report warnings or errors")
	}
	bag.Add(&Diagnostic{Severity: SevWarning})
	if !bag.HasWarnings() || bag.HasErrors() {
		t.Error("warning must count as warning, not error")
	}
	bag.Add(&Diagnostic{Severity: SevError})
	if !bag.HasErrors() {
		t.Error("error not detected")
	}
}

func TestBagSort(t *testing.T) {
	bag := NewBag(10)
	bag.Add(&Diagnostic{Code: SynExpectSemicolon, Severity: SevError, Primary: span(1, 20, 25)})
	bag.Add(&Diagnostic{Code: LintTrailingZeroArray, Severity: SevWarning, Primary: span(0, 10, 30)})
	bag.Add(&Diagnostic{Code: LexUnknownChar, Severity: SevError, Primary: span(0, 10, 30)})
	bag.Add(&Diagnostic{Code: SynUnexpectedToken, Severity: SevError, Primary: span(0, 5, 6)})

	bag.Sort()
	items := bag.Items()
	if items[0].Code != SynUnexpectedToken {
		t.Errorf("first = %v", items[0].Code)
	}
	// Same span: higher severity first, then lower code.
	if items[1].Code != LexUnknownChar || items[2].Code != LintTrailingZeroArray {
		t.Errorf("order = %v, %v", items[1].Code, items[2].Code)
	}
	if items[3].Primary.File != 1 {
		t.Errorf("last = %+v, want file 1", items[3])
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(10)
	bag.Add(&Diagnostic{Code: LintTrailingZeroArray, Primary: span(0, 1, 2)})
	bag.Add(&Diagnostic{Code: LintTrailingZeroArray, Primary: span(0, 1, 2)})
	bag.Add(&Diagnostic{Code: LintTrailingZeroArray, Primary: span(0, 3, 4)})
	bag.Dedup()
	if bag.Len() != 2 {
		t.Errorf("len = %d, want 2", bag.Len())
	}
}

func TestBagMergeGrows(t *testing.T) {
	a := NewBag(1)
	a.Add(&Diagnostic{Code: LexUnknownChar})
	b := NewBag(2)
	b.Add(&Diagnostic{Code: SynExpectSemicolon})
	b.Add(&Diagnostic{Code: LintTrailingZeroArray})

	a.Merge(b)
	if a.Len() != 3 {
		t.Errorf("len = %d, want 3", a.Len())
	}
}

func TestBagTruncate(t *testing.T) {
	bag := NewBag(10)
	bag.Add(&Diagnostic{Code: LexUnknownChar, Primary: span(0, 0, 1)})
	bag.Add(&Diagnostic{Code: SynExpectSemicolon, Primary: span(0, 2, 3)})
	bag.Add(&Diagnostic{Code: LintTrailingZeroArray, Primary: span(0, 4, 5)})

	bag.Truncate(5)
	if bag.Len() != 3 {
		t.Errorf("len = %d after over-sized truncate, want 3", bag.Len())
	}
	bag.Truncate(2)
	if bag.Len() != 2 {
		t.Errorf("len = %d, want 2", bag.Len())
	}
	if bag.Items()[1].Code != SynExpectSemicolon {
		t.Errorf("tail dropped wrong element: %v", bag.Items()[1].Code)
	}
	bag.Truncate(-1)
	if bag.Len() != 0 {
		t.Errorf("len = %d after negative truncate, want 0", bag.Len())
	}
}

func TestReportBuilderEmitOnce(t *testing.T) {
	bag := NewBag(10)
	b := ReportWarning(BagReporter{Bag: bag}, LintTrailingZeroArray, span(0, 0, 5), "msg").
		WithNote(span(0, 2, 3), "note").
		WithFixSuggestion(Fix{ID: "f", Title: "t"})
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if len(d.Notes) != 1 || len(d.Fixes) != 1 {
		t.Errorf("notes=%d fixes=%d", len(d.Notes), len(d.Fixes))
	}
}

func TestCodeID(t *testing.T) {
	cases := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynExpectSemicolon, "SYN2002"},
		{EvalConstCycle, "EVAL3001"},
		{LintTrailingZeroArray, "LINT4001"},
		{IOLoadFileError, "IO5001"},
	}
	for _, tc := range cases {
		if got := tc.code.ID(); got != tc.want {
			t.Errorf("ID(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}
