// Package driver wires the pipeline: load, lex, parse, evaluate, lint.
// Files are checked in parallel, each with its own arena set; results merge
// into one deterministically ordered bag.
package driver

import (
	"context"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"surgelint/internal/ast"
	"surgelint/internal/consteval"
	"surgelint/internal/diag"
	"surgelint/internal/lint"
	"surgelint/internal/parser"
	"surgelint/internal/source"
)

// SourceExt is the file extension the driver picks up when walking
// directories.
const SourceExt = ".sg"

// Options configures one check run.
type Options struct {
	Lint lint.Config
	// Jobs caps parallelism, 0 means GOMAXPROCS.
	Jobs int
	// MaxDiagnostics caps the merged bag, 0 means unlimited.
	MaxDiagnostics int
	// NoCache disables the on-disk result cache.
	NoCache bool
	// CacheDir overrides the cache location (user cache dir by default).
	CacheDir string
	// BaseDir anchors relative path output and config discovery.
	BaseDir string
}

// Result is the outcome of a check run.
type Result struct {
	FileSet *source.FileSet
	Bag     *diag.Bag
	Files   []source.FileID
}

// Check lints every source file reachable from paths. Directories are walked
// recursively for SourceExt files; explicit file arguments are taken as-is.
func Check(ctx context.Context, paths []string, opts Options) (*Result, error) {
	files, err := expandPaths(paths)
	if err != nil {
		return nil, err
	}

	fileSet := source.NewFileSetWithBase(opts.BaseDir)
	bag := diag.NewBag(bagLimit(opts.MaxDiagnostics))

	var ids []source.FileID
	for _, path := range files {
		id, loadErr := fileSet.Load(path)
		if loadErr != nil {
			// A placeholder keeps the span resolvable for rendering.
			vid := fileSet.AddVirtual(path, nil)
			bag.Add(&diag.Diagnostic{
				Severity: diag.SevError,
				Code:     diag.IOLoadFileError,
				Message:  fmt.Sprintf("cannot read %s: %v", path, loadErr),
				Primary:  source.Span{File: vid},
			})
			continue
		}
		ids = append(ids, id)
	}

	var cache *Cache
	if !opts.NoCache {
		cache = OpenCache(opts.CacheDir)
	}

	results := make([]*diag.Bag, len(ids))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(jobLimit(opts.Jobs))
	for i, id := range ids {
		i, id := i, id
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = checkOne(fileSet, id, cache, opts.Lint)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	for _, fileBag := range results {
		bag.Merge(fileBag)
	}
	bag.Sort()
	bag.Dedup()
	// Merge grows the bag past its limit; cut back after ordering so the
	// survivors are the first diagnostics in output order.
	if opts.MaxDiagnostics > 0 {
		bag.Truncate(opts.MaxDiagnostics)
	}

	return &Result{FileSet: fileSet, Bag: bag, Files: ids}, nil
}

// checkOne runs the per-file pipeline, consulting the cache first.
func checkOne(fileSet *source.FileSet, id source.FileID, cache *Cache, cfg lint.Config) *diag.Bag {
	file := fileSet.Get(id)
	key := cacheKey(file.Hash, cfg)
	if diags, ok := cache.Get(key, id); ok {
		cached := diag.NewBag(bagLimit(0))
		for _, d := range diags {
			cached.Add(d)
		}
		return cached
	}

	fileBag := diag.NewBag(bagLimit(0))
	reporter := diag.BagReporter{Bag: fileBag}

	builder := ast.NewBuilder(nil)
	p := parser.New(file, builder, reporter)
	fileID := p.ParseFile()

	eval := consteval.New(builder, reporter)
	parsed := builder.Files.Get(uint32(fileID))
	eval.CollectFile(parsed)

	lint.Run(fileSet, builder, eval, parsed, cfg, reporter)

	cache.Put(key, fileBag.Items())
	return fileBag
}

// expandPaths resolves the argument list to a sorted, deduplicated set of
// source files.
func expandPaths(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if strings.HasPrefix(d.Name(), ".") && p != path {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(p) == SourceExt {
				add(p)
			}
			return nil
		})
		if walkErr != nil {
			return nil, fmt.Errorf("walk %s: %w", path, walkErr)
		}
	}
	sort.Strings(out)
	return out, nil
}

func jobLimit(jobs int) int {
	if jobs > 0 {
		return jobs
	}
	return runtime.GOMAXPROCS(0)
}

func bagLimit(max int) int {
	if max <= 0 {
		return math.MaxInt
	}
	return max
}
