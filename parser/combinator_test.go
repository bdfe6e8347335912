package parser

import (
	"testing"

	"git.sr.ht/~mango/sel/lexer"
)

func kinds(ks ...lexer.TokenType) []lexer.Token {
	toks := make([]lexer.Token, len(ks))
	for i, k := range ks {
		toks[i] = lexer.Token{Kind: k}
	}
	return toks
}

func TestMatch(t *testing.T) {
	r := tok(lexer.TokNumber)
	s := state{toks: kinds(lexer.TokNumber, lexer.TokSymbol)}

	v, next, ok := r(s)
	if !ok {
		t.Fatalf("Expected a match but got a failure")
	}
	if k := v.(lexer.Token).Kind; k != lexer.TokNumber {
		t.Fatalf("Expected a number token but got %v", k)
	}
	if next.pos != 1 {
		t.Fatalf("Expected the cursor at 1 but got %d", next.pos)
	}

	_, next, ok = r(next)
	if ok {
		t.Fatalf("Expected a failure but got a match")
	}
	if next.pos != 1 {
		t.Fatalf("Expected the cursor to stay at 1 but got %d", next.pos)
	}
}

func TestSeqBacktracks(t *testing.T) {
	r := seq(tok(lexer.TokNumber), tok(lexer.TokSymbol))
	s := state{toks: kinds(lexer.TokNumber, lexer.TokNumber)}

	_, next, ok := r(s)
	if ok {
		t.Fatalf("Expected a failure but got a match")
	}
	if next.pos != 0 {
		t.Fatalf("Expected no consumption but the cursor is at %d", next.pos)
	}
}

func TestChoiceRestoresCursor(t *testing.T) {
	// The first alternative consumes a token before failing; the second
	// must still be attempted from the original position, and a failure of
	// both must leave the cursor untouched.
	a := seq(tok(lexer.TokNumber), tok(lexer.TokSymbol))
	b := seq(tok(lexer.TokNumber), tok(lexer.TokNumber))
	s := state{toks: kinds(lexer.TokNumber, lexer.TokNumber)}

	_, next, ok := choice(a, b)(s)
	if !ok {
		t.Fatalf("Expected the second alternative to match")
	}
	if next.pos != 2 {
		t.Fatalf("Expected the cursor at 2 but got %d", next.pos)
	}

	_, next, ok = choice(a, a)(s)
	if ok {
		t.Fatalf("Expected a failure but got a match")
	}
	if next.pos != 0 {
		t.Fatalf("Expected no consumption but the cursor is at %d", next.pos)
	}
}

func TestChoiceOrder(t *testing.T) {
	first := action(tok(lexer.TokNumber), func(_ any) any { return "first" })
	second := action(tok(lexer.TokNumber), func(_ any) any { return "second" })
	s := state{toks: kinds(lexer.TokNumber)}

	v, _, ok := choice(first, second)(s)
	if !ok {
		t.Fatalf("Expected a match but got a failure")
	}
	if v != "first" {
		t.Fatalf("Expected the first alternative to win but got %v", v)
	}
}

func TestMany(t *testing.T) {
	r := many(tok(lexer.TokNumber))
	s := state{toks: kinds(lexer.TokNumber, lexer.TokNumber, lexer.TokSymbol)}

	v, next, ok := r(s)
	if !ok {
		t.Fatalf("Expected a match but got a failure")
	}
	if n := len(v.([]any)); n != 2 {
		t.Fatalf("Expected 2 results but got %d", n)
	}
	if next.pos != 2 {
		t.Fatalf("Expected the cursor at 2 but got %d", next.pos)
	}

	_, next, ok = r(next)
	if ok {
		t.Fatalf("Expected a failure but got a match")
	}
	if next.pos != 2 {
		t.Fatalf("Expected the cursor to stay at 2 but got %d", next.pos)
	}
}

func TestMany0(t *testing.T) {
	r := many0(tok(lexer.TokNumber))
	s := state{toks: kinds(lexer.TokSymbol)}

	v, next, ok := r(s)
	if !ok {
		t.Fatalf("Expected a match but got a failure")
	}
	if n := len(v.([]any)); n != 0 {
		t.Fatalf("Expected 0 results but got %d", n)
	}
	if next.pos != 0 {
		t.Fatalf("Expected no consumption but the cursor is at %d", next.pos)
	}
}

func TestLazy(t *testing.T) {
	// A self-recursive rule can only be built through lazy.
	var nested rule
	nested = choice(
		seq(
			tok(lexer.TokParenOpen),
			lazy(func() rule { return nested }),
			tok(lexer.TokParenClose),
		),
		tok(lexer.TokNumber),
	)

	toks := kinds(
		lexer.TokParenOpen,
		lexer.TokParenOpen,
		lexer.TokNumber,
		lexer.TokParenClose,
		lexer.TokParenClose,
	)
	if _, _, ok := runAll(nested, toks); !ok {
		t.Fatalf("Expected a match but got a failure")
	}
}

func TestRunAllTrailing(t *testing.T) {
	toks := kinds(lexer.TokNumber, lexer.TokParenClose)

	_, fail, ok := runAll(tok(lexer.TokNumber), toks)
	if ok {
		t.Fatalf("Expected a failure but got a match")
	}
	if fail.pos != 1 {
		t.Fatalf("Expected the failure at 1 but got %d", fail.pos)
	}
}
