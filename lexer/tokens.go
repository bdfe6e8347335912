package lexer

type TokenType int

const (
	// TokError is the token emitted during a lexing error.  It signals the
	// end of lexical analysis.
	TokError TokenType = iota

	TokEof // End of file

	TokNumber // An integer literal
	TokSymbol // An identifier, keyword, or operator name

	TokParenOpen    // ‘(’
	TokParenClose   // ‘)’
	TokBracketOpen  // ‘[’
	TokBracketClose // ‘]’
	TokAngleOpen    // ‘<’
	TokAngleClose   // ‘>’

	// TokIgnore covers whitespace, element separators, and comments.  The
	// parser filters these out before applying the grammar.
	TokIgnore
)

type Token struct {
	Kind TokenType
	Val  string
}

func (t Token) String() string {
	switch t.Kind {
	case TokError:
		return "Error: " + t.Val

	case TokEof:
		return "EOF"

	case TokNumber, TokSymbol, TokIgnore:
		return t.Val

	case TokParenOpen:
		return "("
	case TokParenClose:
		return ")"
	case TokBracketOpen:
		return "["
	case TokBracketClose:
		return "]"
	case TokAngleOpen:
		return "<"
	case TokAngleClose:
		return ">"
	}

	panic("unreachable")
}
