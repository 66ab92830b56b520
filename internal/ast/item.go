package ast

import "surgelint/internal/source"

// ItemKind discriminates top-level items.
type ItemKind uint8

const (
	ItemConst ItemKind = iota
	ItemType
)

// Visibility of a top-level item.
type Visibility uint8

const (
	VisPrivate Visibility = iota
	VisPublic
)

// Item is a top-level declaration. Payload indexes the arena selected by
// Kind (Consts for ItemConst, TypeDecls for ItemType).
//
// Span starts at the item's first declaration token (`pub`, `const`, `type`)
// and ends at the terminating ';'. Leading attributes are NOT part of the
// span; they are referenced through the payload's AttrStart/AttrCount.
type Item struct {
	Kind    ItemKind
	Payload uint32
	Span    source.Span
}
