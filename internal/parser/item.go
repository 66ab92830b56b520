package parser

import (
	"fmt"

	"surgelint/internal/ast"
	"surgelint/internal/diag"
	"surgelint/internal/fix"
	"surgelint/internal/source"
	"surgelint/internal/token"
)

// ParseFile parses the whole file and returns its AST node.
// Diagnostics go to the reporter; the returned file is always valid, possibly
// with fewer items than the source declares.
func (p *Parser) ParseFile() ast.FileID {
	var items []ast.ItemID
	for !p.at(token.EOF) {
		id, ok := p.parseItem()
		if !ok {
			p.resyncTop()
			continue
		}
		items = append(items, id)
	}
	span := source.Span{File: p.file.ID, Start: 0, End: uint32(len(p.file.Content))}
	return p.arenas.NewFile(p.file.ID, items, span)
}

// parseItem parses one top-level item: leading attributes, then a const or
// type declaration.
func (p *Parser) parseItem() (ast.ItemID, bool) {
	attrStart, attrCount := p.parseAttrs()

	switch p.lx.Peek().Kind {
	case token.KwConst:
		if attrCount > 0 {
			p.err(diag.SynUnexpectedToken, "attributes cannot be applied to const items")
		}
		return p.parseConstItem()
	case token.KwPub, token.KwType:
		return p.parseTypeItem(attrStart, attrCount)
	default:
		p.err(diag.SynUnexpectedTopLevel, "expected a const or type declaration")
		return ast.NoItemID, false
	}
}

// parseAttrs consumes zero or more `@name(args)` attributes and returns their
// contiguous arena range.
func (p *Parser) parseAttrs() (ast.AttrID, uint32) {
	var start ast.AttrID
	var count uint32
	for p.at(token.At) {
		id, ok := p.parseAttr()
		if !ok {
			p.resyncUntil(token.At, token.KwConst, token.KwType, token.KwPub, token.Semicolon)
			continue
		}
		if count == 0 {
			start = id
		}
		count++
	}
	return start, count
}

func (p *Parser) parseAttr() (ast.AttrID, bool) {
	atTok := p.advance() // '@'

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected attribute name after '@'", nil)
	if !ok {
		return ast.NoAttrID, false
	}
	name := p.arenas.StringsInterner.Intern(nameTok.Text)
	span := atTok.Span.Cover(nameTok.Span)

	if _, known := ast.LookupAttr(nameTok.Text); !known {
		p.emitDiagnostic(diag.SynUnknownAttribute, diag.SevWarning, nameTok.Span,
			fmt.Sprintf("unknown attribute `%s`", nameTok.Text), nil)
	}

	var args []ast.ExprID
	if p.at(token.LParen) {
		p.advance()
		for !p.at(token.RParen) && !p.at(token.EOF) {
			arg, argOK := p.parseExpr()
			if !argOK {
				p.resyncUntil(token.Comma, token.RParen, token.Semicolon)
			} else {
				args = append(args, arg)
			}
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		closeTok, closeOK := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')' to close attribute arguments", nil)
		if !closeOK {
			return ast.NoAttrID, false
		}
		span = span.Cover(closeTok.Span)
	}

	id := p.arenas.Attrs.Allocate(ast.Attr{Name: name, Args: args, Span: span})
	return ast.AttrID(id), true
}

// parseConstItem parses `const Name[: Type] = Expr;`.
// The item span runs from `const` through the semicolon.
func (p *Parser) parseConstItem() (ast.ItemID, bool) {
	constTok := p.advance() // 'const'

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected constant name", nil)
	if !ok {
		return ast.NoItemID, false
	}
	name := p.arenas.StringsInterner.Intern(nameTok.Text)

	var typ ast.TypeID
	if p.at(token.Colon) {
		p.advance()
		t, typOK := p.parseTypeExpr()
		if !typOK {
			return ast.NoItemID, false
		}
		typ = t
	}

	if _, eqOK := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in const declaration", nil); !eqOK {
		return ast.NoItemID, false
	}

	value, valOK := p.parseExpr()
	if !valOK {
		return ast.NoItemID, false
	}

	end, semiOK := p.expectSemicolon()
	if !semiOK {
		end = p.lastSpan
	}

	span := constTok.Span.Cover(end)
	return p.arenas.NewConstItem(ast.ConstItem{
		Name:     name,
		NameSpan: nameTok.Span,
		Type:     typ,
		Value:    value,
		Span:     span,
	}), true
}

// expectSemicolon consumes ';' or reports the miss with an insertion fix-it.
func (p *Parser) expectSemicolon() (source.Span, bool) {
	if p.at(token.Semicolon) {
		return p.advance().Span, true
	}
	insertAt := p.lastSpan.ZeroideToEnd()
	p.emitDiagnostic(diag.SynExpectSemicolon, diag.SevError, p.currentErrorSpan(),
		"expected ';' after declaration", func(b *diag.ReportBuilder) {
			b.WithFixSuggestion(fix.InsertText("insert ';'", insertAt, ";",
				fix.WithID(fix.MakeFixID(diag.SynExpectSemicolon, "insert-semicolon")),
				fix.Preferred()))
		})
	return source.Span{}, false
}
