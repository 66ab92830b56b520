package ast

import "surgelint/internal/source"

// Attr describes a user attribute of the form `@name(args...)`.
// Span covers '@' through the closing parenthesis (or the name).
type Attr struct {
	Name source.StringID
	Args []ExprID
	Span source.Span
}
