package ast

import "surgelint/internal/source"

// ConstItem is the payload of an ItemConst item:
// `const Name[: Type] = Value;`.
type ConstItem struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeID // optional, NoTypeID when omitted
	Value    ExprID
	Span     source.Span
}
