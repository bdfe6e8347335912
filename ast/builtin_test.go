package ast

import "testing"

func TestBuiltinFromName(t *testing.T) {
	for name, want := range builtins {
		b, ok := BuiltinFromName(name)
		if !ok {
			t.Fatalf("Expected ‘%s’ to resolve but it didn’t", name)
		}
		if b != want {
			t.Fatalf("Expected %v but got %v", want, b)
		}
		if s := b.String(); s != name {
			t.Fatalf("Expected ‘%s’ but got ‘%s’", name, s)
		}
	}

	if b, ok := BuiltinFromName("frobnicate"); ok {
		t.Fatalf("Expected no builtin but got %v", b)
	}
}

func TestArity(t *testing.T) {
	for name, b := range builtins {
		want := 2
		if b == BuiltinNot {
			want = 1
		}
		if a := b.Arity(); a != want {
			t.Fatalf("Expected ‘%s’ to have arity %d but got %d",
				name, want, a)
		}
	}
}
