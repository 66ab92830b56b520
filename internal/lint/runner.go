package lint

import (
	"surgelint/internal/ast"
	"surgelint/internal/consteval"
	"surgelint/internal/diag"
	"surgelint/internal/source"
)

// Config toggles individual rules by their stable names.
type Config struct {
	// Disabled lists rule names to skip, e.g. "trailing-zero-array".
	Disabled []string
}

// RuleNameTrailingZeroArray is the stable config name of the trailing
// zero-sized array check.
const RuleNameTrailingZeroArray = "trailing-zero-array"

func (c Config) enabled(name string) bool {
	for _, d := range c.Disabled {
		if d == name {
			return false
		}
	}
	return true
}

// Run walks every item of a parsed file and applies the enabled rules.
func Run(fs *source.FileSet, b *ast.Builder, eval *consteval.Evaluator, file *ast.File, cfg Config, reporter diag.Reporter) {
	if file == nil {
		return
	}
	var trailing *TrailingZeroArray
	if cfg.enabled(RuleNameTrailingZeroArray) {
		trailing = NewTrailingZeroArray(fs, b, eval)
	}
	for _, itemID := range file.Items {
		item, ok := b.Type(itemID)
		if !ok {
			continue
		}
		if trailing != nil {
			trailing.Examine(item, reporter)
		}
	}
}
