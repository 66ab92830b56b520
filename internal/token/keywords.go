package token

var keywords = map[string]Kind{
	"const":  KwConst,
	"type":   KwType,
	"struct": KwStruct,
	"pub":    KwPub,
}

// LookupKeyword maps a lexeme to its keyword kind.
// Matching is case-sensitive: "Const" is an identifier.
func LookupKeyword(lexeme string) (Kind, bool) {
	kind, ok := keywords[lexeme]
	return kind, ok
}
