package ast

import (
	"surgelint/internal/source"
)

// Builder bundles the arenas for one parse and the shared string interner.
// All IDs handed out by a Builder are only meaningful against that Builder.
type Builder struct {
	StringsInterner *source.Interner

	Files     *Arena[File]
	Items     *Arena[Item]
	Consts    *Arena[ConstItem]
	TypeDecls *Arena[TypeItem]
	Fields    *Arena[StructField]
	Attrs     *Arena[Attr]
	Types     *Arena[TypeExpr]
	Exprs     *Arena[Expr]
}

func NewBuilder(interner *source.Interner) *Builder {
	if interner == nil {
		interner = source.NewInterner()
	}
	return &Builder{
		StringsInterner: interner,
		Files:           NewArena[File](1),
		Items:           NewArena[Item](16),
		Consts:          NewArena[ConstItem](8),
		TypeDecls:       NewArena[TypeItem](8),
		Fields:          NewArena[StructField](32),
		Attrs:           NewArena[Attr](8),
		Types:           NewArena[TypeExpr](32),
		Exprs:           NewArena[Expr](32),
	}
}

// NewFile allocates a file node.
func (b *Builder) NewFile(src source.FileID, items []ItemID, span source.Span) FileID {
	return FileID(b.Files.Allocate(File{Source: src, Items: items, Span: span}))
}

// NewConstItem allocates a const payload plus its wrapping item.
func (b *Builder) NewConstItem(c ConstItem) ItemID {
	payload := b.Consts.Allocate(c)
	return ItemID(b.Items.Allocate(Item{Kind: ItemConst, Payload: payload, Span: c.Span}))
}

// NewTypeItem allocates a type payload plus its wrapping item.
func (b *Builder) NewTypeItem(t TypeItem) ItemID {
	payload := b.TypeDecls.Allocate(t)
	return ItemID(b.Items.Allocate(Item{Kind: ItemType, Payload: payload, Span: t.Span}))
}

// Const returns the const payload of an item, when it is one.
func (b *Builder) Const(id ItemID) (*ConstItem, bool) {
	item := b.Items.Get(uint32(id))
	if item == nil || item.Kind != ItemConst {
		return nil, false
	}
	return b.Consts.Get(item.Payload), true
}

// Type returns the type payload of an item, when it is one.
func (b *Builder) Type(id ItemID) (*TypeItem, bool) {
	item := b.Items.Get(uint32(id))
	if item == nil || item.Kind != ItemType {
		return nil, false
	}
	return b.TypeDecls.Get(item.Payload), true
}

// ItemAttrs returns the attribute range of a type item in arena order.
func (b *Builder) ItemAttrs(t *TypeItem) []Attr {
	if t == nil || t.AttrCount == 0 {
		return nil
	}
	start := uint32(t.AttrStart) - 1
	return b.Attrs.Slice()[start : start+t.AttrCount]
}

// StructFields returns the field range of a struct type item in declaration order.
func (b *Builder) StructFields(t *TypeItem) []StructField {
	if t == nil || t.Kind != TypeDeclStruct || t.FieldsCount == 0 {
		return nil
	}
	start := uint32(t.FieldsStart) - 1
	return b.Fields.Slice()[start : start+t.FieldsCount]
}

// LookupName resolves a string ID through the builder's interner.
func (b *Builder) LookupName(id source.StringID) string {
	if b.StringsInterner == nil {
		return ""
	}
	name, _ := b.StringsInterner.Lookup(id)
	return name
}
