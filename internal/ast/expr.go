package ast

import (
	"surgelint/internal/source"
)

type ExprKind uint8

const (
	ExprLit ExprKind = iota
	ExprIdent
	ExprUnary
	ExprBinary
	ExprGroup
)

type ExprUnaryOp uint8

const (
	ExprUnaryPlus ExprUnaryOp = iota
	ExprUnaryMinus
)

type ExprBinaryOp uint8

const (
	ExprBinaryAdd ExprBinaryOp = iota
	ExprBinarySub
	ExprBinaryMul
	ExprBinaryDiv
	ExprBinaryMod
)

// Expr is a flattened expression node; payload fields depend on Kind.
type Expr struct {
	Kind ExprKind
	Span source.Span

	// ExprLit: raw literal text. ExprIdent: identifier name.
	Value source.StringID

	// ExprUnary.
	UnaryOp ExprUnaryOp
	Operand ExprID

	// ExprBinary.
	BinaryOp ExprBinaryOp
	Left     ExprID
	Right    ExprID

	// ExprGroup.
	Inner ExprID
}
