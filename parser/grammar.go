package parser

import (
	"strconv"

	"git.sr.ht/~mango/sel/ast"
	"git.sr.ht/~mango/sel/lexer"
)

// The grammar rules below are declared first and wired in init so that the
// mutually recursive ones can refer to each other through lazy.
//
// The alternative order of the expression rule is a contract, not an
// accident: earlier alternatives are structural prefixes of later ones, and
// first-match-wins is the only disambiguation the grammar performs.  The
// order is
//
//	non-empty list, empty list, tuple, number, builtin application,
//	function, if, function application, let, closure application,
//	symbol, generic list
func init() {
	expr := lazy(func() rule { return expression })

	popen := tok(lexer.TokParenOpen)
	pclose := tok(lexer.TokParenClose)

	number = action(tok(lexer.TokNumber), buildNumber)

	// Keywords never parse as symbols; otherwise the generic-list fallback
	// would swallow malformed special forms such as ‘(fun (1 2) x)’.
	symbol = action(match(func(t lexer.Token) bool {
		return t.Kind == lexer.TokSymbol && !isKeyword(t.Val)
	}), buildSymbol)

	listSome = action(seq(
		tok(lexer.TokBracketOpen),
		expr,
		many0(expr),
		tok(lexer.TokBracketClose),
	), buildListSome)

	listNone = action(seq(
		tok(lexer.TokBracketOpen),
		tok(lexer.TokBracketClose),
	), buildListNone)

	tuple = action(seq(
		tok(lexer.TokAngleOpen),
		expr,
		many(expr),
		tok(lexer.TokAngleClose),
	), buildTuple)

	// Atomic forms are everything that needs no enclosing parens.  The
	// generic-list fallback restricts its head to these.
	atomic = choice(listSome, listNone, tuple, number, symbol)

	builtinApp = action(seq(popen, builtinOp, many0(expr), pclose),
		buildBuiltinApp)

	function = action(seq(
		popen,
		word("fun"),
		popen,
		many0(action(tok(lexer.TokSymbol), buildSymbol)),
		pclose,
		expr,
		pclose,
	), buildFun)

	ifExpr = action(seq(popen, word("if"), expr, expr, expr, pclose),
		buildIf)

	funApp = action(seq(popen, function, many0(expr), pclose), buildFunApp)

	binding = action(seq(
		tok(lexer.TokAngleOpen),
		expr,
		expr,
		tok(lexer.TokAngleClose),
	), buildBinding)

	letExpr = action(seq(popen, word("let"), many0(binding), expr, pclose),
		buildLet)

	// An applied function is itself applicable: ‘(((fun (x y) e) 1) 2)’
	// supplies arguments one parenthesized step at a time.
	closureApp = action(seq(
		popen,
		choice(funApp, lazy(func() rule { return closureApp })),
		many0(expr),
		pclose,
	), buildClosureApp)

	listOther = action(seq(popen, atomic, many0(expr), pclose),
		buildListOther)

	expression = choice(
		listSome,
		listNone,
		tuple,
		number,
		builtinApp,
		function,
		ifExpr,
		funApp,
		letExpr,
		closureApp,
		symbol,
		listOther,
	)
}

var (
	expression rule
	atomic     rule

	number     rule
	symbol     rule
	listSome   rule
	listNone   rule
	tuple      rule
	builtinApp rule
	function   rule
	ifExpr     rule
	funApp     rule
	binding    rule
	letExpr    rule
	closureApp rule
	listOther  rule
)

func tok(k lexer.TokenType) rule {
	return match(func(t lexer.Token) bool { return t.Kind == k })
}

// word matches a token by its text rather than its kind, so that operator
// names which lex structurally (‘<’, ‘>’) still participate in word-sets.
func word(s string) rule {
	return match(func(t lexer.Token) bool { return t.Val == s })
}

func isKeyword(s string) bool {
	switch s {
	case "fun", "if", "let":
		return true
	}
	return false
}

// builtinOp matches any operator name known to the ast builtin table.  The
// word-set and the name-to-builtin mapping share that table, so a matched
// token always resolves.
var builtinOp = action(
	match(func(t lexer.Token) bool {
		_, ok := ast.BuiltinFromName(t.Val)
		return ok
	}),
	func(v any) any {
		op, ok := ast.BuiltinFromName(v.(lexer.Token).Val)
		if !ok {
			panic("unreachable")
		}
		return op
	},
)

func buildNumber(v any) any {
	n, _ := strconv.ParseInt(v.(lexer.Token).Val, 10, 64)
	return ast.Number(n)
}

func buildSymbol(v any) any {
	return ast.Symbol(v.(lexer.Token).Val)
}

func buildListSome(v any) any {
	xs := v.([]any)
	return ast.List(append([]ast.Node{xs[1].(ast.Node)}, nodes(xs[2])...))
}

func buildListNone(_ any) any {
	return ast.List{}
}

func buildTuple(v any) any {
	xs := v.([]any)
	return ast.Tuple(append([]ast.Node{xs[1].(ast.Node)}, nodes(xs[2])...))
}

func buildBuiltinApp(v any) any {
	xs := v.([]any)
	return ast.BuiltinApp{
		Op:   xs[1].(ast.Builtin),
		Args: nodes(xs[2]),
	}
}

func buildFun(v any) any {
	xs := v.([]any)
	ps := xs[3].([]any)
	params := make([]ast.Symbol, len(ps))
	for i, p := range ps {
		params[i] = p.(ast.Symbol)
	}
	return ast.Fun{Params: params, Body: xs[5].(ast.Node)}
}

func buildIf(v any) any {
	xs := v.([]any)
	return ast.If{
		Cond: xs[2].(ast.Node),
		Then: xs[3].(ast.Node),
		Else: xs[4].(ast.Node),
	}
}

// buildFunApp records how many arguments the function still wants: zero
// means saturated, positive means this application yields a closure.
func buildFunApp(v any) any {
	xs := v.([]any)
	fn := xs[1].(ast.Fun)
	args := nodes(xs[2])
	return ast.FunApp{
		Fn:       fn,
		Args:     args,
		ArgCount: len(fn.Params) - len(args),
	}
}

func buildBinding(v any) any {
	xs := v.([]any)
	return ast.Binding{
		Pattern: xs[1].(ast.Node),
		Value:   xs[2].(ast.Node),
	}
}

func buildLet(v any) any {
	xs := v.([]any)
	bs := xs[2].([]any)
	bindings := make([]ast.Binding, len(bs))
	for i, b := range bs {
		bindings[i] = b.(ast.Binding)
	}
	return ast.Let{Bindings: bindings, Body: xs[3].(ast.Node)}
}

// buildClosureApp decrements the inner application's remaining argument
// count by the number of newly supplied arguments.
func buildClosureApp(v any) any {
	xs := v.([]any)
	fn := xs[1].(ast.Node)
	args := nodes(xs[2])

	var n int
	switch f := fn.(type) {
	case ast.FunApp:
		n = f.ArgCount
	case ast.ClosureApp:
		n = f.ArgCount
	default:
		panic("unreachable")
	}

	return ast.ClosureApp{Fn: fn, Args: args, ArgCount: n - len(args)}
}

func buildListOther(v any) any {
	xs := v.([]any)
	return ast.List(append([]ast.Node{xs[1].(ast.Node)}, nodes(xs[2])...))
}

func nodes(v any) []ast.Node {
	xs := v.([]any)
	ns := make([]ast.Node, len(xs))
	for i, x := range xs {
		ns[i] = x.(ast.Node)
	}
	return ns
}
