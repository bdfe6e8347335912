package ast

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{Number(42), "42"},
		{Symbol("x"), "x"},
		{List{}, "[]"},
		{List{Number(1), Number(2)}, "[1, 2]"},
		{Tuple{Number(1), Symbol("y")}, "<1, y>"},
		{BuiltinApp{
			Op:   BuiltinAdd,
			Args: []Node{Number(1), Number(2)},
		}, "(+ 1 2)"},
		{If{Number(1), Number(2), Number(3)}, "(if 1 2 3)"},
		{Fun{
			Params: []Symbol{"x", "y"},
			Body:   Symbol("x"),
		}, "(fun (x y) x)"},
		{Let{
			Bindings: []Binding{{Symbol("x"), Number(5)}},
			Body:     Symbol("x"),
		}, "(let <x 5> x)"},
		{FunApp{
			Fn:       Fun{Params: []Symbol{"x"}, Body: Symbol("x")},
			Args:     []Node{Number(1)},
			ArgCount: 0,
		}, "((fun (x) x) 1)"},
	}

	for _, tt := range tests {
		if s := tt.node.String(); s != tt.want {
			t.Fatalf("Expected ‘%s’ but got ‘%s’", tt.want, s)
		}
	}
}
