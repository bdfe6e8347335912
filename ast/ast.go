package ast

import "fmt"

// Node is any expression the parser can produce.  Nodes are built during
// parsing and never mutated afterwards.  The Stringer implementations
// re-serialize a node to surface syntax; see print.go.
type Node interface {
	fmt.Stringer
	isNode()
}

// Number is an integer literal
type Number int64

// Symbol is a bare identifier
type Symbol string

// Fun is an anonymous function: ‘(fun (x y) body)’
type Fun struct {
	Params []Symbol
	Body   Node
}

// FunApp is an anonymous function applied to arguments at its definition
// site.  ArgCount is the number of arguments still required before the
// function is saturated: zero means fully applied, positive means the
// application yields a closure.
type FunApp struct {
	Fn       Fun
	Args     []Node
	ArgCount int
}

// ClosureApp applies further arguments to an already partially-applied
// function.  Fn is a FunApp or another ClosureApp; ArgCount follows the
// same convention as FunApp.
type ClosureApp struct {
	Fn       Node
	Args     []Node
	ArgCount int
}

// BuiltinApp is a builtin operator applied to arguments
type BuiltinApp struct {
	Op   Builtin
	Args []Node
}

// If is ‘(if cond then else)’
type If struct {
	Cond, Then, Else Node
}

// Binding is a single ‘<pattern value>’ pair in a let-expression.  What
// constitutes a valid pattern is left to the evaluator; the parser accepts
// any expression.
type Binding struct {
	Pattern, Value Node
}

// Let is ‘(let <pat val>* body)’
type Let struct {
	Bindings []Binding
	Body     Node
}

// Tuple is ‘<e, e, …>’ with at least two elements
type Tuple []Node

// List is ‘[e, …]’, possibly empty.  Generic parenthesized forms that
// match no more specific production also parse to a List.
type List []Node

func (_ Number) isNode()     {}
func (_ Symbol) isNode()     {}
func (_ Fun) isNode()        {}
func (_ FunApp) isNode()     {}
func (_ ClosureApp) isNode() {}
func (_ BuiltinApp) isNode() {}
func (_ If) isNode()         {}
func (_ Let) isNode()        {}
func (_ Tuple) isNode()      {}
func (_ List) isNode()       {}
