package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the fallback for unclassified diagnostics.
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar              Code = 1001
	LexUnterminatedBlockComment Code = 1002
	LexBadNumber                Code = 1003

	// Syntactic
	SynUnexpectedToken    Code = 2001
	SynExpectSemicolon    Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectType         Code = 2004
	SynExpectExpression   Code = 2005
	SynExpectRightBracket Code = 2006
	SynExpectColon        Code = 2007
	SynTypeExpectEquals   Code = 2008
	SynTypeExpectBody     Code = 2009
	SynUnexpectedTopLevel Code = 2010
	SynUnknownAttribute   Code = 2011

	// Const evaluation
	EvalConstCycle Code = 3001

	// Lint rules
	LintTrailingZeroArray Code = 4001

	// IO
	IOLoadFileError Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown diagnostic",
	LexUnknownChar:              "unknown character",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed numeric literal",
	SynUnexpectedToken:          "unexpected token",
	SynExpectSemicolon:          "expected ';'",
	SynExpectIdentifier:         "expected identifier",
	SynExpectType:               "expected type",
	SynExpectExpression:         "expected expression",
	SynExpectRightBracket:       "expected ']'",
	SynExpectColon:              "expected ':'",
	SynTypeExpectEquals:         "expected '=' in type declaration",
	SynTypeExpectBody:           "expected struct body",
	SynUnexpectedTopLevel:       "unexpected top-level construct",
	SynUnknownAttribute:         "unknown attribute",
	EvalConstCycle:              "cyclic const evaluation",
	LintTrailingZeroArray:       "trailing zero-sized array in a struct without a layout attribute",
	IOLoadFileError:             "failed to load file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EVAL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("LINT%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
