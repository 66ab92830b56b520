// Package parser builds the surgelint AST from a token stream.
// Recovery is resync-based: on a syntax error the parser reports, skips to a
// safe token (';', '}', next item keyword) and keeps going, so one broken
// declaration never hides diagnostics in the rest of the file.
package parser

import (
	"surgelint/internal/ast"
	"surgelint/internal/diag"
	"surgelint/internal/lexer"
	"surgelint/internal/source"
	"surgelint/internal/token"
)

type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	reporter diag.Reporter
	file     *source.File
	lastSpan source.Span
}

// New constructs a parser over file with diagnostics going to reporter.
// The builder may be shared across files; the interner must match it.
func New(file *source.File, builder *ast.Builder, reporter diag.Reporter) *Parser {
	return &Parser{
		lx:       lexer.New(file, lexer.Options{Reporter: reporter}),
		arenas:   builder,
		reporter: reporter,
		file:     file,
	}
}

// Builder returns the AST builder the parser allocates into.
func (p *Parser) Builder() *ast.Builder {
	return p.arenas
}

func (p *Parser) at(kind token.Kind) bool {
	return p.lx.Peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) expect(kind token.Kind, code diag.Code, msg string, with func(*diag.ReportBuilder)) (token.Token, bool) {
	if p.at(kind) {
		return p.advance(), true
	}
	p.emitDiagnostic(code, diag.SevError, p.currentErrorSpan(), msg, with)
	return token.Token{}, false
}

// currentErrorSpan is the span of the lookahead token, or the last consumed
// span at EOF.
func (p *Parser) currentErrorSpan() source.Span {
	tok := p.lx.Peek()
	if tok.Kind == token.EOF {
		if p.lastSpan != (source.Span{}) {
			return p.lastSpan.ZeroideToEnd()
		}
	}
	return tok.Span
}

func (p *Parser) emitDiagnostic(code diag.Code, sev diag.Severity, span source.Span, msg string, with func(*diag.ReportBuilder)) {
	b := diag.NewReportBuilder(p.reporter, sev, code, span, msg)
	if with != nil {
		with(b)
	}
	b.Emit()
}

func (p *Parser) err(code diag.Code, msg string) {
	p.emitDiagnostic(code, diag.SevError, p.currentErrorSpan(), msg, nil)
}

// resyncUntil skips tokens until one of the given kinds (or EOF) is ahead.
func (p *Parser) resyncUntil(kinds ...token.Kind) {
	for {
		tok := p.lx.Peek()
		if tok.Kind == token.EOF {
			return
		}
		for _, k := range kinds {
			if tok.Kind == k {
				return
			}
		}
		p.advance()
	}
}

// resyncTop skips to the start of the next plausible top-level item.
func (p *Parser) resyncTop() {
	p.resyncUntil(token.KwConst, token.KwType, token.KwPub, token.At, token.Semicolon)
	if p.at(token.Semicolon) {
		p.advance()
	}
}

func (p *Parser) parseIdent() (source.StringID, bool) {
	tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier", nil)
	if !ok {
		return source.NoStringID, false
	}
	return p.arenas.StringsInterner.Intern(tok.Text), true
}
