package lexer

import "unicode"

// IsSymbolRune reports whether r may appear in a symbol.  Operator names
// such as ‘+’ and ‘=’ are ordinary symbols; ‘<’ and ‘>’ are not, as they
// delimit tuples and binding pairs.
func IsSymbolRune(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.IsDigit(r) ||
		r == '_' ||
		r == '+' ||
		r == '-' ||
		r == '*' ||
		r == '/' ||
		r == '=' ||
		r == '!' ||
		r == '?' ||
		r == '\''
}
