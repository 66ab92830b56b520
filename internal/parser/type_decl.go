package parser

import (
	"surgelint/internal/ast"
	"surgelint/internal/diag"
	"surgelint/internal/source"
	"surgelint/internal/token"
)

// parseTypeItem parses `[pub] type Name[<P,...>] = struct { ... };` or an
// alias `[pub] type Name = Target;`. Leading attributes were already parsed by
// the caller; the item span starts at `pub`/`type`, never at the attributes.
func (p *Parser) parseTypeItem(attrStart ast.AttrID, attrCount uint32) (ast.ItemID, bool) {
	var startSpan source.Span
	havePub := false
	vis := ast.VisPrivate
	if p.at(token.KwPub) {
		startSpan = p.advance().Span
		havePub = true
		vis = ast.VisPublic
	}

	typeTok, ok := p.expect(token.KwType, diag.SynUnexpectedToken, "expected 'type' declaration", nil)
	if !ok {
		return ast.NoItemID, false
	}
	if !havePub {
		startSpan = typeTok.Span
	}

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected type name", nil)
	if !ok {
		return ast.NoItemID, false
	}
	name := p.arenas.StringsInterner.Intern(nameTok.Text)

	generics, ok := p.parseGenericParams()
	if !ok {
		return ast.NoItemID, false
	}

	if _, eqOK := p.expect(token.Assign, diag.SynTypeExpectEquals, "expected '=' after type name", nil); !eqOK {
		return ast.NoItemID, false
	}

	item := ast.TypeItem{
		Name:       name,
		NameSpan:   nameTok.Span,
		Visibility: vis,
		Generics:   generics,
		AttrStart:  attrStart,
		AttrCount:  attrCount,
	}

	switch {
	case p.at(token.KwStruct):
		p.advance()
		fieldsStart, fieldsCount, bodyOK := p.parseStructBody()
		if !bodyOK {
			return ast.NoItemID, false
		}
		item.Kind = ast.TypeDeclStruct
		item.FieldsStart = fieldsStart
		item.FieldsCount = fieldsCount
	case p.at(token.Ident):
		target, aliasOK := p.parseTypeExpr()
		if !aliasOK {
			return ast.NoItemID, false
		}
		item.Kind = ast.TypeDeclAlias
		item.Target = target
	default:
		p.err(diag.SynTypeExpectBody, "expected 'struct' or a type after '='")
		return ast.NoItemID, false
	}

	end, semiOK := p.expectSemicolon()
	if !semiOK {
		end = p.lastSpan
	}
	item.Span = startSpan.Cover(end)
	return p.arenas.NewTypeItem(item), true
}

// parseGenericParams parses an optional `<A, B, ...>` parameter list.
func (p *Parser) parseGenericParams() ([]source.StringID, bool) {
	if !p.at(token.Lt) {
		return nil, true
	}
	p.advance()

	var params []source.StringID
	for {
		name, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		params = append(params, name)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(token.Gt, diag.SynUnexpectedToken, "expected '>' to close type parameters", nil); !ok {
		return nil, false
	}
	return params, true
}

// parseStructBody parses `{ field, field, ... }` and returns the contiguous
// field range. Fields may carry their own attributes and the list allows a
// trailing comma.
func (p *Parser) parseStructBody() (ast.FieldID, uint32, bool) {
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open struct body", nil); !ok {
		return ast.NoFieldID, 0, false
	}

	var fields []ast.StructField
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		field, ok := p.parseStructField()
		if !ok {
			p.resyncUntil(token.Comma, token.RBrace, token.Semicolon)
			if p.at(token.Comma) {
				p.advance()
			}
			continue
		}
		fields = append(fields, field)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}

	if _, ok := p.expect(token.RBrace, diag.SynUnexpectedToken, "expected '}' to close struct body", nil); !ok {
		return ast.NoFieldID, 0, false
	}

	// Allocated in one pass so the arena range stays contiguous.
	var start ast.FieldID
	for i, f := range fields {
		id := ast.FieldID(p.arenas.Fields.Allocate(f))
		if i == 0 {
			start = id
		}
	}
	return start, uint32(len(fields)), true
}

func (p *Parser) parseStructField() (ast.StructField, bool) {
	attrStart, attrCount := p.parseAttrs()

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name", nil)
	if !ok {
		return ast.StructField{}, false
	}
	name := p.arenas.StringsInterner.Intern(nameTok.Text)

	if _, colonOK := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after field name", nil); !colonOK {
		return ast.StructField{}, false
	}

	typ, typOK := p.parseTypeExpr()
	if !typOK {
		return ast.StructField{}, false
	}
	typSpan := p.arenas.Types.Get(uint32(typ)).Span

	return ast.StructField{
		Name:      name,
		Type:      typ,
		AttrStart: attrStart,
		AttrCount: attrCount,
		Span:      nameTok.Span.Cover(typSpan),
	}, true
}
