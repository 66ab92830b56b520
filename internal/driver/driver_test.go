package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"surgelint/internal/diag"
	"surgelint/internal/lint"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func countCode(bag *diag.Bag, code diag.Code) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Code == code {
			n++
		}
	}
	return n
}

func TestCheckDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "flagged.sg", "type Packet = struct { payload: u8[0] };\n")
	writeFile(t, dir, "clean.sg", "@layout(c)\ntype Packet = struct { payload: u8[0] };\n")
	writeFile(t, dir, "nested/also.sg", "type Tail = struct { rest: u8[0] };\n")
	writeFile(t, dir, "ignored.txt", "type NotSurge = struct { x: u8[0] };\n")

	res, err := Check(context.Background(), []string{dir}, Options{NoCache: true})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if got := countCode(res.Bag, diag.LintTrailingZeroArray); got != 2 {
		t.Fatalf("findings = %d, want 2: %+v", got, res.Bag.Items())
	}
	if len(res.Files) != 3 {
		t.Errorf("checked %d files, want 3", len(res.Files))
	}
}

func TestCheckExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "one.sg", "type T = struct { tail: u8[0] };\n")

	res, err := Check(context.Background(), []string{path}, Options{NoCache: true})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if got := countCode(res.Bag, diag.LintTrailingZeroArray); got != 1 {
		t.Fatalf("findings = %d, want 1", got)
	}
}

func TestCheckMissingPath(t *testing.T) {
	_, err := Check(context.Background(), []string{"/definitely/not/here.sg"}, Options{NoCache: true})
	if err == nil {
		t.Fatal("expected an error for a missing path")
	}
}

func TestCheckDeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.sg", "type B = struct { tail: u8[0] };\n")
	writeFile(t, dir, "a.sg", "type A = struct { tail: u8[0] };\n")
	writeFile(t, dir, "c.sg", "type C = struct { tail: u8[0] };\n")

	res, err := Check(context.Background(), []string{dir}, Options{NoCache: true, Jobs: 3})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	var paths []string
	for _, d := range res.Bag.Items() {
		paths = append(paths, res.FileSet.Get(d.Primary.File).Path)
	}
	for i := 1; i < len(paths); i++ {
		if paths[i-1] > paths[i] {
			t.Fatalf("diagnostics out of order: %v", paths)
		}
	}
}

func TestCheckUsesCache(t *testing.T) {
	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "cache")
	writeFile(t, dir, "one.sg", "type T = struct { tail: u8[0] };\n")

	opts := Options{CacheDir: cacheDir}
	first, err := Check(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatalf("cold check: %v", err)
	}
	second, err := Check(context.Background(), []string{dir}, opts)
	if err != nil {
		t.Fatalf("warm check: %v", err)
	}

	if first.Bag.Len() != second.Bag.Len() {
		t.Fatalf("cold and warm runs differ: %d vs %d", first.Bag.Len(), second.Bag.Len())
	}
	fd := countCode(first.Bag, diag.LintTrailingZeroArray)
	sd := countCode(second.Bag, diag.LintTrailingZeroArray)
	if fd != 1 || sd != 1 {
		t.Fatalf("findings cold=%d warm=%d, want 1 each", fd, sd)
	}

	entries, err := os.ReadDir(cacheDir)
	if err != nil || len(entries) == 0 {
		t.Errorf("cache dir not populated: %v", err)
	}
}

func TestCacheKeyedByRuleConfig(t *testing.T) {
	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "cache")
	writeFile(t, dir, "one.sg", "type T = struct { tail: u8[0] };\n")

	disabled, err := Check(context.Background(), []string{dir}, Options{
		CacheDir: cacheDir,
		Lint:     lint.Config{Disabled: []string{lint.RuleNameTrailingZeroArray}},
	})
	if err != nil {
		t.Fatalf("disabled check: %v", err)
	}
	if got := countCode(disabled.Bag, diag.LintTrailingZeroArray); got != 0 {
		t.Fatalf("findings = %d with rule disabled", got)
	}

	// Same file content, same cache dir: the disabled run's empty result
	// must not shadow the enabled run.
	enabled, err := Check(context.Background(), []string{dir}, Options{CacheDir: cacheDir})
	if err != nil {
		t.Fatalf("enabled check: %v", err)
	}
	if got := countCode(enabled.Bag, diag.LintTrailingZeroArray); got != 1 {
		t.Fatalf("findings = %d after disabled run primed the cache, want 1", got)
	}

	// And the other direction: the enabled run's finding must not replay
	// into a disabled run.
	again, err := Check(context.Background(), []string{dir}, Options{
		CacheDir: cacheDir,
		Lint:     lint.Config{Disabled: []string{lint.RuleNameTrailingZeroArray}},
	})
	if err != nil {
		t.Fatalf("second disabled check: %v", err)
	}
	if got := countCode(again.Bag, diag.LintTrailingZeroArray); got != 0 {
		t.Fatalf("findings = %d on cached disabled run, want 0", got)
	}
}

func TestMaxDiagnostics(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "many.sg",
		"type A = struct { tail: u8[0] };\n"+
			"type B = struct { tail: u8[0] };\n"+
			"type C = struct { tail: u8[0] };\n")

	res, err := Check(context.Background(), []string{dir}, Options{NoCache: true, MaxDiagnostics: 2})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.Bag.Len() != 2 {
		t.Fatalf("bag = %d, want capped at 2", res.Bag.Len())
	}
}

func TestDisabledRulePropagates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.sg", "type T = struct { tail: u8[0] };\n")

	res, err := Check(context.Background(), []string{dir}, Options{
		NoCache: true,
		Lint:    lint.Config{Disabled: []string{lint.RuleNameTrailingZeroArray}},
	})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if got := countCode(res.Bag, diag.LintTrailingZeroArray); got != 0 {
		t.Fatalf("findings = %d with rule disabled", got)
	}
}
