package parser

import (
	"git.sr.ht/~mango/sel/ast"
	"git.sr.ht/~mango/sel/lexer"
)

// Parse consumes a token sequence and returns the program's top-level
// expressions.  Ignorable tokens are filtered out before the grammar is
// applied.  On failure no partial tree is returned: an expression that
// cannot be parsed, or trailing tokens after the final expression, yield a
// single terminal error.
func Parse(toks []lexer.Token) ([]ast.Node, error) {
	xs := make([]lexer.Token, 0, len(toks))
	for _, t := range toks {
		if t.Kind != lexer.TokIgnore {
			xs = append(xs, t)
		}
	}

	vals, fail, ok := runAll(expression, xs)
	if !ok {
		got := lexer.Token{Kind: lexer.TokEof}
		if !fail.done() {
			got = fail.toks[fail.pos]
		}
		return nil, errExpected{"expression", got}
	}

	prog := make([]ast.Node, len(vals))
	for i, v := range vals {
		prog[i] = v.(ast.Node)
	}
	return prog, nil
}
