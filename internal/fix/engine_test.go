package fix

import (
	"os"
	"path/filepath"
	"testing"

	"surgelint/internal/diag"
	"surgelint/internal/source"
)

func spanAt(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func oneDiag(fixes ...diag.Fix) []*diag.Diagnostic {
	return []*diag.Diagnostic{{
		Severity: diag.SevWarning,
		Code:     diag.LintTrailingZeroArray,
		Message:  "test",
		Fixes:    fixes,
	}}
}

func TestApplyInsert(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.sg", []byte("hello world"))

	f := InsertText("insert", spanAt(id, 5, 5), ",", Preferred())
	res, err := Apply(fs, oneDiag(f), Options{Mode: ApplyModePreferred, DryRun: true})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := string(res.Changed["a.sg"]); got != "hello, world" {
		t.Errorf("got %q", got)
	}
	if res.Applied != 1 {
		t.Errorf("applied = %d", res.Applied)
	}
}

func TestApplyReplaceWithGuard(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.sg", []byte("abc def"))

	good := ReplaceSpan("replace", spanAt(id, 0, 3), "xyz", "abc", Preferred())
	res, err := Apply(fs, oneDiag(good), Options{Mode: ApplyModePreferred, DryRun: true})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := string(res.Changed["a.sg"]); got != "xyz def" {
		t.Errorf("got %q", got)
	}
}

func TestStaleGuardFails(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.sg", []byte("abc def"))

	stale := ReplaceSpan("replace", spanAt(id, 0, 3), "xyz", "zzz", Preferred())
	if _, err := Apply(fs, oneDiag(stale), Options{Mode: ApplyModePreferred, DryRun: true}); err == nil {
		t.Fatal("expected a stale-source error")
	}
}

func TestOverlapCountsAsConflict(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.sg", []byte("abcdef"))

	first := ReplaceSpan("first", spanAt(id, 0, 4), "X", "", Preferred())
	second := ReplaceSpan("second", spanAt(id, 2, 6), "Y", "", Preferred())
	res, err := Apply(fs, oneDiag(first, second), Options{Mode: ApplyModePreferred, DryRun: true})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if res.Conflict != 1 {
		t.Errorf("conflicts = %d, want 1", res.Conflict)
	}
	// The losing fix contributed nothing to the rewrite and must not count.
	if res.Applied != 1 {
		t.Errorf("applied = %d, want 1", res.Applied)
	}
	if got := string(res.Changed["a.sg"]); got != "Xef" {
		t.Errorf("got %q", got)
	}
}

func TestConflictingFixNotCountedApplied(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.sg", []byte("abcdefgh"))

	winner := ReplaceSpan("winner", spanAt(id, 0, 4), "X", "", Preferred())
	loser := diag.Fix{
		ID:          "loser",
		Title:       "loser",
		Kind:        diag.FixKindQuickFix,
		IsPreferred: true,
		Edits: []diag.TextEdit{
			{Span: spanAt(id, 2, 3), NewText: "Y"},
			{Span: spanAt(id, 6, 7), NewText: "Z"},
		},
	}
	res, err := Apply(fs, oneDiag(winner, loser), Options{Mode: ApplyModePreferred, DryRun: true})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	// One of the loser's two edits overlaps the winner; the fix as a whole
	// did not land even though its second edit did.
	if res.Applied != 1 {
		t.Errorf("applied = %d, want 1", res.Applied)
	}
	if res.Conflict != 1 {
		t.Errorf("conflicts = %d, want 1", res.Conflict)
	}
	if got := string(res.Changed["a.sg"]); got != "XefZh" {
		t.Errorf("got %q", got)
	}
}

func TestModeFiltering(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.sg", []byte("abcdef"))

	preferred := InsertText("p", spanAt(id, 0, 0), "1", WithID("fix.p"), Preferred())
	other := InsertText("o", spanAt(id, 6, 6), "2", WithID("fix.o"))

	res, err := Apply(fs, oneDiag(preferred, other), Options{Mode: ApplyModePreferred, DryRun: true})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if res.Applied != 1 || res.Skipped != 1 {
		t.Errorf("preferred mode: applied=%d skipped=%d", res.Applied, res.Skipped)
	}
	if got := string(res.Changed["a.sg"]); got != "1abcdef" {
		t.Errorf("got %q", got)
	}

	res, err = Apply(fs, oneDiag(preferred, other), Options{Mode: ApplyModeAll, DryRun: true})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if res.Applied != 2 {
		t.Errorf("all mode: applied = %d", res.Applied)
	}
	if got := string(res.Changed["a.sg"]); got != "1abcdef2" {
		t.Errorf("got %q", got)
	}

	res, err = Apply(fs, oneDiag(preferred, other), Options{Mode: ApplyModeID, FixID: "fix.o", DryRun: true})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := string(res.Changed["a.sg"]); got != "abcdef2" {
		t.Errorf("id mode got %q", got)
	}
}

func TestManualReviewNeedsForce(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.sg", []byte("abc"))

	risky := InsertText("risky", spanAt(id, 0, 0), "!",
		Preferred(), WithApplicability(diag.FixApplicabilityManualReview))

	res, err := Apply(fs, oneDiag(risky), Options{Mode: ApplyModePreferred, DryRun: true})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if res.Applied != 0 || res.Skipped != 1 {
		t.Errorf("without force: applied=%d skipped=%d", res.Applied, res.Skipped)
	}

	res, err = Apply(fs, oneDiag(risky), Options{Mode: ApplyModePreferred, Force: true, DryRun: true})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if res.Applied != 1 {
		t.Errorf("with force: applied = %d", res.Applied)
	}
}

func TestApplyWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.sg")
	if err := os.WriteFile(path, []byte("abc"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	f := InsertText("insert", spanAt(id, 3, 3), "!", Preferred())
	if _, err := Apply(fs, oneDiag(f), Options{Mode: ApplyModePreferred}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "abc!" {
		t.Errorf("file content = %q", content)
	}
}

func TestMakeFixID(t *testing.T) {
	if got := MakeFixID(diag.LintTrailingZeroArray, "add-layout-directive"); got != "LINT4001.add-layout-directive" {
		t.Errorf("got %q", got)
	}
	if got := MakeFixID(diag.SynExpectSemicolon, ""); got != diag.SynExpectSemicolon.ID() {
		t.Errorf("got %q", got)
	}
}
