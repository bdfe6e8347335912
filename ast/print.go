package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// The String methods re-serialize a node to the surface syntax it was
// parsed from.  Printing a parsed program and parsing it again yields a
// structurally equal tree.

func (n Number) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (s Symbol) String() string {
	return string(s)
}

func (f Fun) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = string(p)
	}
	return "(fun (" + strings.Join(params, " ") + ") " + f.Body.String() + ")"
}

func (a FunApp) String() string {
	return appString(a.Fn, a.Args)
}

func (a ClosureApp) String() string {
	return appString(a.Fn, a.Args)
}

func (a BuiltinApp) String() string {
	return appString(a.Op, a.Args)
}

func (i If) String() string {
	return "(if " + i.Cond.String() + " " + i.Then.String() + " " +
		i.Else.String() + ")"
}

func (b Binding) String() string {
	return "<" + b.Pattern.String() + " " + b.Value.String() + ">"
}

func (l Let) String() string {
	sb := strings.Builder{}
	sb.WriteString("(let")
	for _, b := range l.Bindings {
		sb.WriteString(" " + b.String())
	}
	sb.WriteString(" " + l.Body.String() + ")")
	return sb.String()
}

func (t Tuple) String() string {
	return "<" + elemString(t) + ">"
}

func (l List) String() string {
	return "[" + elemString(l) + "]"
}

func appString(head fmt.Stringer, args []Node) string {
	sb := strings.Builder{}
	sb.WriteByte('(')
	sb.WriteString(head.String())
	for _, a := range args {
		sb.WriteString(" " + a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func elemString(ns []Node) string {
	xs := make([]string, len(ns))
	for i, n := range ns {
		xs[i] = n.String()
	}
	return strings.Join(xs, ", ")
}
