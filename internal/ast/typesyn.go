package ast

import (
	"surgelint/internal/source"
)

type TypeExprKind uint8

const (
	// TypeExprPath is a plain or generic path: `int`, `Buffer<T>`.
	TypeExprPath TypeExprKind = iota
	// TypeExprArray is an array suffix: `T[N]` (sized) or `T[]` (slice).
	TypeExprArray
)

// ArrayKind distinguishes sized arrays from slices.
type ArrayKind uint8

const (
	ArraySized ArrayKind = iota
	ArraySlice
)

// TypeExpr is a flattened type node; the meaning of the payload fields
// depends on Kind.
type TypeExpr struct {
	Kind TypeExprKind
	Span source.Span

	// Path payload.
	Name source.StringID
	Args []TypeID

	// Array payload.
	Array ArrayKind
	Elem  TypeID
	Len   ExprID // ArraySized only; the length is an arbitrary const expression
}
