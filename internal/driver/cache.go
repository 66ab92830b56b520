package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"surgelint/internal/diag"
	"surgelint/internal/lint"
	"surgelint/internal/source"
)

// cacheSchemaVersion invalidates entries when the diagnostic layout or the
// rule set changes shape.
const cacheSchemaVersion = 1

// Cache memoizes per-file lint results keyed by content hash. Spans are
// stored as raw offsets and rebound to the current FileID on load, so entries
// survive across runs that assign IDs in a different order.
type Cache struct {
	dir string
}

// OpenCache roots the cache under dir, or the user cache directory when dir
// is empty. A nil cache (open failure) is a valid no-op cache.
func OpenCache(dir string) *Cache {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil
		}
		dir = filepath.Join(base, "surgelint")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}
	return &Cache{dir: dir}
}

type cachedSpan struct {
	Start uint32 `msgpack:"s"`
	End   uint32 `msgpack:"e"`
}

type cachedNote struct {
	Span cachedSpan `msgpack:"sp"`
	Msg  string     `msgpack:"m"`
}

type cachedEdit struct {
	Span    cachedSpan `msgpack:"sp"`
	NewText string     `msgpack:"n"`
	OldText string     `msgpack:"o"`
}

type cachedFix struct {
	ID            string       `msgpack:"id"`
	Title         string       `msgpack:"t"`
	Kind          uint8        `msgpack:"k"`
	Applicability uint8        `msgpack:"a"`
	Preferred     bool         `msgpack:"p"`
	Edits         []cachedEdit `msgpack:"e"`
}

type cachedDiag struct {
	Severity uint8        `msgpack:"sv"`
	Code     uint16       `msgpack:"c"`
	Message  string       `msgpack:"m"`
	Primary  cachedSpan   `msgpack:"sp"`
	Notes    []cachedNote `msgpack:"n"`
	Fixes    []cachedFix  `msgpack:"f"`
}

type cacheEntry struct {
	Schema int          `msgpack:"v"`
	Diags  []cachedDiag `msgpack:"d"`
}

func (c *Cache) entryPath(key [32]byte) string {
	name := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, name[:2], name[2:]+".bin")
}

// cacheKey derives the entry key from the file's content hash and the rule
// configuration. Every setting that shapes per-file results must feed in, or
// a run with one configuration would replay entries written under another.
func cacheKey(contentHash [32]byte, cfg lint.Config) [32]byte {
	h := sha256.New()
	h.Write(contentHash[:])
	disabled := append([]string(nil), cfg.Disabled...)
	sort.Strings(disabled)
	for _, name := range disabled {
		h.Write([]byte(name))
		h.Write([]byte{0})
	}
	var key [32]byte
	copy(key[:], h.Sum(nil))
	return key
}

// Get loads the cached diagnostics for a cache key, rebinding spans to file.
// The second result is false on miss or any decode problem.
func (c *Cache) Get(key [32]byte, file source.FileID) ([]*diag.Diagnostic, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := os.ReadFile(c.entryPath(key))
	if err != nil {
		return nil, false
	}
	var entry cacheEntry
	if err := msgpack.Unmarshal(raw, &entry); err != nil {
		return nil, false
	}
	if entry.Schema != cacheSchemaVersion {
		return nil, false
	}

	out := make([]*diag.Diagnostic, 0, len(entry.Diags))
	for _, cd := range entry.Diags {
		d := &diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary:  bindSpan(cd.Primary, file),
		}
		for _, n := range cd.Notes {
			d.Notes = append(d.Notes, diag.Note{Span: bindSpan(n.Span, file), Msg: n.Msg})
		}
		for _, f := range cd.Fixes {
			df := diag.Fix{
				ID:            f.ID,
				Title:         f.Title,
				Kind:          diag.FixKind(f.Kind),
				Applicability: diag.FixApplicability(f.Applicability),
				IsPreferred:   f.Preferred,
			}
			for _, e := range f.Edits {
				df.Edits = append(df.Edits, diag.TextEdit{
					Span:    bindSpan(e.Span, file),
					NewText: e.NewText,
					OldText: e.OldText,
				})
			}
			d.Fixes = append(d.Fixes, df)
		}
		out = append(out, d)
	}
	return out, true
}

// Put stores the diagnostics for a cache key. Errors are swallowed: a broken
// cache degrades to a cold one.
func (c *Cache) Put(key [32]byte, diags []*diag.Diagnostic) {
	if c == nil {
		return
	}
	entry := cacheEntry{Schema: cacheSchemaVersion}
	for _, d := range diags {
		cd := cachedDiag{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Primary:  unbindSpan(d.Primary),
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, cachedNote{Span: unbindSpan(n.Span), Msg: n.Msg})
		}
		for _, f := range d.Fixes {
			cf := cachedFix{
				ID:            f.ID,
				Title:         f.Title,
				Kind:          uint8(f.Kind),
				Applicability: uint8(f.Applicability),
				Preferred:     f.IsPreferred,
			}
			for _, e := range f.Edits {
				cf.Edits = append(cf.Edits, cachedEdit{
					Span:    unbindSpan(e.Span),
					NewText: e.NewText,
					OldText: e.OldText,
				})
			}
			cd.Fixes = append(cd.Fixes, cf)
		}
		entry.Diags = append(entry.Diags, cd)
	}

	raw, err := msgpack.Marshal(entry)
	if err != nil {
		return
	}
	path := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".entry-*")
	if err != nil {
		return
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
	}
}

func bindSpan(s cachedSpan, file source.FileID) source.Span {
	return source.Span{File: file, Start: s.Start, End: s.End}
}

func unbindSpan(s source.Span) cachedSpan {
	return cachedSpan{Start: s.Start, End: s.End}
}
