package lexer

import (
	"surgelint/internal/diag"
	"surgelint/internal/source"
	"surgelint/internal/token"
)

// Options configures lexing behavior.
type Options struct {
	// Reporter receives lexical diagnostics. Nil disables reporting.
	Reporter diag.Reporter
}

// Lexer produces significant tokens for a single file.
// Whitespace and comments are consumed as trivia and never surface;
// surgelint only reads code, it never reprints it.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // one-token lookahead buffer
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.cursor.SpanFrom(lx.cursor.Offset()),
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// skipTrivia consumes whitespace, line comments and block comments.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			lx.cursor.Bump()
		case ch == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return
			}
			switch b1 {
			case '/':
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
			case '*':
				lx.skipBlockComment()
			default:
				return
			}
		default:
			return
		}
	}
}

func (lx *Lexer) skipBlockComment() {
	start := lx.cursor.Offset()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '/' && b1 == '*' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth++
			continue
		}
		if ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth--
			continue
		}
		lx.cursor.Bump()
	}
	if depth > 0 {
		lx.report(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start),
			"unterminated block comment")
	}
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Offset()
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	text := lx.cursor.TextFrom(start)
	kind := token.Ident
	if kw, ok := token.LookupKeyword(text); ok {
		kind = kw
	}
	return token.Token{
		Kind: kind,
		Span: lx.cursor.SpanFrom(start),
		Text: text,
	}
}

// scanNumber scans an integer literal: decimal, 0x/0o/0b with '_' separators.
// Validity of digits against the base is checked later by const evaluation;
// the lexer only rejects literals that trail into identifier characters.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Offset()
	lx.cursor.Bump()
	if b0, b1, ok := lx.cursor.Peek2(); ok && lx.file.Content[start] == '0' {
		_ = b1
		switch b0 {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			lx.cursor.Bump()
		}
	}
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if isHex(ch) || ch == '_' {
			lx.cursor.Bump()
			continue
		}
		break
	}

	// "123abc" is one bad token, not IntLit followed by Ident.
	if !lx.cursor.EOF() && isIdentStart(lx.cursor.Peek()) {
		for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		span := lx.cursor.SpanFrom(start)
		lx.report(diag.LexBadNumber, span, "malformed numeric literal")
		return token.Token{Kind: token.Invalid, Span: span, Text: lx.cursor.TextFrom(start)}
	}

	return token.Token{
		Kind: token.IntLit,
		Span: lx.cursor.SpanFrom(start),
		Text: lx.cursor.TextFrom(start),
	}
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Offset()
	ch := lx.cursor.Bump()

	var kind token.Kind
	switch ch {
	case '@':
		kind = token.At
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '<':
		kind = token.Lt
	case '>':
		kind = token.Gt
	case ',':
		kind = token.Comma
	case ':':
		kind = token.Colon
	case ';':
		kind = token.Semicolon
	case '=':
		kind = token.Assign
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	default:
		span := lx.cursor.SpanFrom(start)
		lx.report(diag.LexUnknownChar, span, "unknown character")
		return token.Token{Kind: token.Invalid, Span: span, Text: lx.cursor.TextFrom(start)}
	}

	return token.Token{
		Kind: kind,
		Span: lx.cursor.SpanFrom(start),
		Text: lx.cursor.TextFrom(start),
	}
}

func (lx *Lexer) report(code diag.Code, span source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	lx.opts.Reporter.Report(code, diag.SevError, span, msg, nil, nil)
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDec(b)
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
