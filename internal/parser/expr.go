package parser

import (
	"surgelint/internal/ast"
	"surgelint/internal/diag"
	"surgelint/internal/token"
)

// parseExpr parses an additive expression. Precedence, low to high:
// additive (+ -), multiplicative (* / %), unary (+ -), primary.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	left, ok := p.parseMulExpr()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		var op ast.ExprBinaryOp
		switch p.lx.Peek().Kind {
		case token.Plus:
			op = ast.ExprBinaryAdd
		case token.Minus:
			op = ast.ExprBinarySub
		default:
			return left, true
		}
		p.advance()
		right, rightOK := p.parseMulExpr()
		if !rightOK {
			return ast.NoExprID, false
		}
		left = p.newBinary(op, left, right)
	}
}

func (p *Parser) parseMulExpr() (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}
	for {
		var op ast.ExprBinaryOp
		switch p.lx.Peek().Kind {
		case token.Star:
			op = ast.ExprBinaryMul
		case token.Slash:
			op = ast.ExprBinaryDiv
		case token.Percent:
			op = ast.ExprBinaryMod
		default:
			return left, true
		}
		p.advance()
		right, rightOK := p.parseUnaryExpr()
		if !rightOK {
			return ast.NoExprID, false
		}
		left = p.newBinary(op, left, right)
	}
}

func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	var op ast.ExprUnaryOp
	switch p.lx.Peek().Kind {
	case token.Plus:
		op = ast.ExprUnaryPlus
	case token.Minus:
		op = ast.ExprUnaryMinus
	default:
		return p.parsePrimaryExpr()
	}
	opTok := p.advance()
	operand, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}
	operandSpan := p.arenas.Exprs.Get(uint32(operand)).Span
	id := p.arenas.Exprs.Allocate(ast.Expr{
		Kind:    ast.ExprUnary,
		Span:    opTok.Span.Cover(operandSpan),
		UnaryOp: op,
		Operand: operand,
	})
	return ast.ExprID(id), true
}

func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	switch p.lx.Peek().Kind {
	case token.IntLit:
		tok := p.advance()
		id := p.arenas.Exprs.Allocate(ast.Expr{
			Kind:  ast.ExprLit,
			Span:  tok.Span,
			Value: p.arenas.StringsInterner.Intern(tok.Text),
		})
		return ast.ExprID(id), true
	case token.Ident:
		tok := p.advance()
		id := p.arenas.Exprs.Allocate(ast.Expr{
			Kind:  ast.ExprIdent,
			Span:  tok.Span,
			Value: p.arenas.StringsInterner.Intern(tok.Text),
		})
		return ast.ExprID(id), true
	case token.LParen:
		openTok := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		closeTok, closeOK := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')' to close expression", nil)
		if !closeOK {
			return ast.NoExprID, false
		}
		id := p.arenas.Exprs.Allocate(ast.Expr{
			Kind:  ast.ExprGroup,
			Span:  openTok.Span.Cover(closeTok.Span),
			Inner: inner,
		})
		return ast.ExprID(id), true
	default:
		p.err(diag.SynExpectExpression, "expected an expression")
		return ast.NoExprID, false
	}
}

func (p *Parser) newBinary(op ast.ExprBinaryOp, left, right ast.ExprID) ast.ExprID {
	leftSpan := p.arenas.Exprs.Get(uint32(left)).Span
	rightSpan := p.arenas.Exprs.Get(uint32(right)).Span
	id := p.arenas.Exprs.Allocate(ast.Expr{
		Kind:     ast.ExprBinary,
		Span:     leftSpan.Cover(rightSpan),
		BinaryOp: op,
		Left:     left,
		Right:    right,
	})
	return ast.ExprID(id)
}
