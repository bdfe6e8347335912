package ast

type Builtin int

const (
	BuiltinAdd Builtin = iota
	BuiltinSub
	BuiltinMul
	BuiltinDiv
	BuiltinLt
	BuiltinGt
	BuiltinEq
	BuiltinAnd
	BuiltinOr
	BuiltinNot
)

// builtins is the single source of truth for operator names.  The parser
// derives its operator word-set from this table, so a name that lexes as an
// operator always resolves here.
var builtins = map[string]Builtin{
	"+":   BuiltinAdd,
	"-":   BuiltinSub,
	"*":   BuiltinMul,
	"/":   BuiltinDiv,
	"<":   BuiltinLt,
	">":   BuiltinGt,
	"=":   BuiltinEq,
	"and": BuiltinAnd,
	"or":  BuiltinOr,
	"not": BuiltinNot,
}

// BuiltinFromName resolves an operator name to its builtin
func BuiltinFromName(s string) (Builtin, bool) {
	b, ok := builtins[s]
	return b, ok
}

// Arity is the number of arguments the builtin requires.  All builtins are
// binary except ‘not’.
func (b Builtin) Arity() int {
	switch b {
	case BuiltinAdd, BuiltinSub, BuiltinMul, BuiltinDiv,
		BuiltinLt, BuiltinGt, BuiltinEq, BuiltinAnd, BuiltinOr:
		return 2
	case BuiltinNot:
		return 1
	}
	panic("unreachable")
}

func (b Builtin) String() string {
	switch b {
	case BuiltinAdd:
		return "+"
	case BuiltinSub:
		return "-"
	case BuiltinMul:
		return "*"
	case BuiltinDiv:
		return "/"
	case BuiltinLt:
		return "<"
	case BuiltinGt:
		return ">"
	case BuiltinEq:
		return "="
	case BuiltinAnd:
		return "and"
	case BuiltinOr:
		return "or"
	case BuiltinNot:
		return "not"
	}
	panic("unreachable")
}
