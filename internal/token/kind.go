package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal.
	IntLit

	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwType represents the 'type' keyword.
	KwType // type
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwPub represents the 'pub' keyword.
	KwPub // pub

	// At represents '@'. Attributes are lexed as At + Ident.
	At // @
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Lt represents '<'.
	Lt // <
	// Gt represents '>'.
	Gt // >
	// Comma represents ','.
	Comma // ,
	// Colon represents ':'.
	Colon // :
	// Semicolon represents ';'.
	Semicolon // ;
	// Assign represents '='.
	Assign // =
	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Star represents '*'.
	Star // *
	// Slash represents '/'.
	Slash // /
	// Percent represents '%'.
	Percent // %
)

var kindNames = map[Kind]string{
	Invalid:   "invalid",
	EOF:       "eof",
	Ident:     "ident",
	IntLit:    "int",
	KwConst:   "const",
	KwType:    "type",
	KwStruct:  "struct",
	KwPub:     "pub",
	At:        "@",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	LBracket:  "[",
	RBracket:  "]",
	Lt:        "<",
	Gt:        ">",
	Comma:     ",",
	Colon:     ":",
	Semicolon: ";",
	Assign:    "=",
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	Percent:   "%",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
