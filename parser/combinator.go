package parser

import "git.sr.ht/~mango/sel/lexer"

// A state is a cursor into a read-only token sequence.  States are passed
// by value: a failed attempt simply discards its copy, which is what makes
// backtracking in choice and repetition safe.
type state struct {
	toks []lexer.Token
	pos  int
}

func (s state) done() bool {
	return s.pos >= len(s.toks)
}

// A rule consumes a prefix of the remaining input.  On success it yields a
// value and the advanced state; on failure the state it was given is
// returned untouched.
type rule func(state) (any, state, bool)

// match consumes exactly one token for which pred holds.  It is the only
// primitive that inspects raw tokens.
func match(pred func(lexer.Token) bool) rule {
	return func(s state) (any, state, bool) {
		if s.done() || !pred(s.toks[s.pos]) {
			return nil, s, false
		}
		return s.toks[s.pos], state{s.toks, s.pos + 1}, true
	}
}

// seq applies each rule in order and collects their values.  If any rule
// fails the whole sequence fails, with no consumption observable.
func seq(rules ...rule) rule {
	return func(s state) (any, state, bool) {
		vals := make([]any, 0, len(rules))
		cur := s
		for _, r := range rules {
			v, next, ok := r(cur)
			if !ok {
				return nil, s, false
			}
			vals = append(vals, v)
			cur = next
		}
		return vals, cur, true
	}
}

// choice tries each alternative from the same starting position and returns
// the first success.  The order of alternatives is load-bearing: it is the
// grammar's only disambiguation mechanism.
func choice(rules ...rule) rule {
	return func(s state) (any, state, bool) {
		for _, r := range rules {
			if v, next, ok := r(s); ok {
				return v, next, true
			}
		}
		return nil, s, false
	}
}

// many applies r as often as it matches, requiring at least one match.
// The final failing attempt consumes nothing.
func many(r rule) rule {
	return func(s state) (any, state, bool) {
		v, cur, ok := r(s)
		if !ok {
			return nil, s, false
		}
		vals := []any{v}
		for {
			v, next, ok := r(cur)
			if !ok {
				return vals, cur, true
			}
			vals = append(vals, v)
			cur = next
		}
	}
}

// many0 is many but also accepts zero matches.
func many0(r rule) rule {
	return func(s state) (any, state, bool) {
		vals := []any{}
		cur := s
		for {
			v, next, ok := r(cur)
			if !ok {
				return vals, cur, true
			}
			vals = append(vals, v)
			cur = next
		}
	}
}

// action transforms a rule's value with f.  f must be pure.
func action(r rule, f func(any) any) rule {
	return func(s state) (any, state, bool) {
		v, next, ok := r(s)
		if !ok {
			return nil, s, false
		}
		return f(v), next, true
	}
}

// lazy defers resolving a rule until it is applied, so mutually recursive
// grammar rules can refer to one another before all of them are wired.
func lazy(f func() rule) rule {
	return func(s state) (any, state, bool) {
		return f()(s)
	}
}

// runAll applies r repeatedly from the start of toks until they are
// exhausted, collecting every value.  It fails if an application fails
// before the end of the input; the returned state then points at the
// offending token.
func runAll(r rule, toks []lexer.Token) ([]any, state, bool) {
	vals := []any{}
	cur := state{toks: toks}
	for !cur.done() {
		v, next, ok := r(cur)
		if !ok {
			return nil, cur, false
		}
		vals = append(vals, v)
		cur = next
	}
	return vals, cur, true
}
