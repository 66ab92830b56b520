package parser

import (
	"surgelint/internal/ast"
	"surgelint/internal/diag"
	"surgelint/internal/fix"
	"surgelint/internal/token"
)

// parseTypeExpr parses a type: a (possibly generic) path followed by any
// number of array suffixes. `u8[N][M]` is an array of arrays, left to right.
func (p *Parser) parseTypeExpr() (ast.TypeID, bool) {
	base, ok := p.parseTypePath()
	if !ok {
		return ast.NoTypeID, false
	}

	for p.at(token.LBracket) {
		suffix, suffixOK := p.parseArraySuffix(base)
		if !suffixOK {
			return ast.NoTypeID, false
		}
		base = suffix
	}
	return base, true
}

func (p *Parser) parseTypePath() (ast.TypeID, bool) {
	nameTok, ok := p.expect(token.Ident, diag.SynExpectType, "expected a type", nil)
	if !ok {
		return ast.NoTypeID, false
	}
	name := p.arenas.StringsInterner.Intern(nameTok.Text)
	span := nameTok.Span

	var args []ast.TypeID
	if p.at(token.Lt) {
		p.advance()
		for {
			arg, argOK := p.parseTypeExpr()
			if !argOK {
				return ast.NoTypeID, false
			}
			args = append(args, arg)
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		closeTok, closeOK := p.expect(token.Gt, diag.SynUnexpectedToken, "expected '>' to close type arguments", nil)
		if !closeOK {
			return ast.NoTypeID, false
		}
		span = span.Cover(closeTok.Span)
	}

	id := p.arenas.Types.Allocate(ast.TypeExpr{
		Kind: ast.TypeExprPath,
		Span: span,
		Name: name,
		Args: args,
	})
	return ast.TypeID(id), true
}

// parseArraySuffix parses `[expr]` (sized) or `[]` (slice) applied to elem.
// The length is an arbitrary constant expression, resolved later by const
// evaluation.
func (p *Parser) parseArraySuffix(elem ast.TypeID) (ast.TypeID, bool) {
	p.advance() // '['
	elemSpan := p.arenas.Types.Get(uint32(elem)).Span

	if p.at(token.RBracket) {
		closeTok := p.advance()
		id := p.arenas.Types.Allocate(ast.TypeExpr{
			Kind:  ast.TypeExprArray,
			Span:  elemSpan.Cover(closeTok.Span),
			Array: ast.ArraySlice,
			Elem:  elem,
		})
		return ast.TypeID(id), true
	}

	length, ok := p.parseExpr()
	if !ok {
		return ast.NoTypeID, false
	}

	closeTok, closeOK := p.expect(token.RBracket, diag.SynExpectRightBracket,
		"expected ']' to close array length", func(b *diag.ReportBuilder) {
			b.WithFixSuggestion(fix.InsertText("insert ']'", p.lastSpan.ZeroideToEnd(), "]",
				fix.WithID(fix.MakeFixID(diag.SynExpectRightBracket, "insert-bracket")),
				fix.Preferred()))
		})
	if !closeOK {
		return ast.NoTypeID, false
	}

	id := p.arenas.Types.Allocate(ast.TypeExpr{
		Kind:  ast.TypeExprArray,
		Span:  elemSpan.Cover(closeTok.Span),
		Array: ast.ArraySized,
		Elem:  elem,
		Len:   length,
	})
	return ast.TypeID(id), true
}
