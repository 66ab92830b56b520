package ast

import "surgelint/internal/source"

type TypeDeclKind uint8

const (
	TypeDeclAlias TypeDeclKind = iota
	TypeDeclStruct
)

// TypeItem is the payload of an ItemType item.
// Attributes occupy the contiguous arena range [AttrStart, AttrStart+AttrCount).
type TypeItem struct {
	Name       source.StringID
	NameSpan   source.Span
	Visibility Visibility
	Generics   []source.StringID
	AttrStart  AttrID
	AttrCount  uint32
	Kind       TypeDeclKind
	Span       source.Span

	// Alias target (TypeDeclAlias only).
	Target TypeID

	// Struct fields (TypeDeclStruct only), contiguous in the field arena.
	FieldsStart FieldID
	FieldsCount uint32
}

// StructField is one member of a struct declaration.
type StructField struct {
	Name      source.StringID
	Type      TypeID
	AttrStart AttrID
	AttrCount uint32
	Span      source.Span
}
