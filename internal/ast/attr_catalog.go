package ast

import (
	"slices"
	"strings"

	"surgelint/internal/source"
)

// AttrTargetMask describes a set of item kinds an attribute may be applied to.
type AttrTargetMask uint16

const (
	AttrTargetNone  AttrTargetMask = 0
	AttrTargetType  AttrTargetMask = 1 << iota // type declarations (struct/alias)
	AttrTargetField                            // struct fields
)

// AttrSpec describes a language attribute and its supported targets.
type AttrSpec struct {
	Name    string
	Targets AttrTargetMask
	// Layout marks memory-representation attributes: any one of them pins
	// the layout of the annotated type.
	Layout bool
}

// Allows reports whether the attribute can be applied to the provided target bit.
func (spec AttrSpec) Allows(target AttrTargetMask) bool {
	return spec.Targets&target != 0
}

var attrRegistry = map[string]AttrSpec{
	"layout":      {Name: "layout", Targets: AttrTargetType, Layout: true},
	"packed":      {Name: "packed", Targets: AttrTargetType | AttrTargetField, Layout: true},
	"align":       {Name: "align", Targets: AttrTargetType | AttrTargetField, Layout: true},
	"transparent": {Name: "transparent", Targets: AttrTargetType, Layout: true},
	"deprecated":  {Name: "deprecated", Targets: AttrTargetType | AttrTargetField},
	"hidden":      {Name: "hidden", Targets: AttrTargetType | AttrTargetField},
	"readonly":    {Name: "readonly", Targets: AttrTargetField},
	"sealed":      {Name: "sealed", Targets: AttrTargetType},
	"copy":        {Name: "copy", Targets: AttrTargetType},
}

// LookupAttr returns metadata for the given attribute name (case-insensitive).
func LookupAttr(name string) (AttrSpec, bool) {
	if name == "" {
		return AttrSpec{}, false
	}
	spec, ok := attrRegistry[strings.ToLower(name)]
	return spec, ok
}

// LookupAttrID resolves attribute metadata by string ID using the provided interner.
func LookupAttrID(interner *source.Interner, id source.StringID) (AttrSpec, bool) {
	if interner == nil || id == source.NoStringID {
		return AttrSpec{}, false
	}
	name, ok := interner.Lookup(id)
	if !ok {
		return AttrSpec{}, false
	}
	return LookupAttr(name)
}

// AttrSpecs returns a stable slice of all registered attribute specifications sorted by name.
func AttrSpecs() []AttrSpec {
	names := make([]string, 0, len(attrRegistry))
	for name := range attrRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	result := make([]AttrSpec, 0, len(names))
	for _, name := range names {
		result = append(result, attrRegistry[name])
	}
	return result
}
