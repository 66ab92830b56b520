// Package token defines lexical token kinds for the surgelint frontend.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Attributes are lexed as '@' (Kind: At) + Ident; no per-attribute kinds.
//   - Built-in type names (int, uint32, ...) are identifiers; the lexer does
//     not distinguish them.
package token

import (
	"surgelint/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwConst, KwType, KwStruct, KwPub:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case At, LParen, RParen, LBrace, RBrace, LBracket, RBracket,
		Lt, Gt, Comma, Colon, Semicolon, Assign, Plus, Minus, Star, Slash, Percent:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
