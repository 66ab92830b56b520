// Package lint hosts the structural checks surgelint runs over parsed files.
package lint

import (
	"surgelint/internal/ast"
)

// CanonicalDirective is the layout directive suggested when a type has none.
// `@layout(c)` pins field order and makes trailing-array tricks well-defined.
const CanonicalDirective = "@layout(c)"

// IsLayoutAttr reports whether name is a memory-representation attribute.
func IsLayoutAttr(name string) bool {
	spec, ok := ast.LookupAttr(name)
	return ok && spec.Layout
}

// hasLayoutAttr reports whether any attribute on the type item pins its
// layout. Unknown attribute names never count.
func hasLayoutAttr(b *ast.Builder, item *ast.TypeItem) bool {
	for _, attr := range b.ItemAttrs(item) {
		spec, ok := ast.LookupAttrID(b.StringsInterner, attr.Name)
		if ok && spec.Layout {
			return true
		}
	}
	return false
}
