package symexpr

import (
	"math"
	"reflect"
	"testing"
)

func TestRender(t *testing.T) {
	cases := []struct {
		name    string
		e       Expr
		prefix  string
		postfix string
	}{
		{"const", Num(2), "2", "2"},
		{"frac", Num(0.5), "0.5", "0.5"},
		{"neg-const", Num(-3), "-3", "-3"},
		{"big", Num(1e21), "1e+21", "1e+21"},
		{"inf", Num(math.Inf(-1)), "-Inf", "-Inf"},
		{"var", X, "x", "x"},
		{"negate", Negate(Y), "(negate y)", "(y negate)"},
		{"add", Add(Num(2), X), "(+ 2 x)", "(2 x +)"},
		{"nested", Mul(Sub(X, Y), Div(Z, Num(4))), "(* (- x y) (/ z 4))", "((x y -) (z 4 /) *)"},
		{"atan", Atan(Z), "(atan z)", "(z atan)"},
		{"atan2", Atan2(Y, X), "(atan2 y x)", "(y x atan2)"},
		{"sumexp", Sumexp(X, Y, Z), "(sumexp x y z)", "(x y z sumexp)"},
		{"softmax1", Softmax(X), "(softmax x)", "(x softmax)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.e.Prefix(); got != c.prefix {
				t.Errorf("wrong prefix: want %q, got %q", c.prefix, got)
			}
			if got := c.e.Postfix(); got != c.postfix {
				t.Errorf("wrong postfix: want %q, got %q", c.postfix, got)
			}
			if got := c.e.String(); got != c.prefix {
				t.Errorf("String should be prefix %q, got %q", c.prefix, got)
			}
			if got := Prefix.Format(c.e); got != c.prefix {
				t.Errorf("Prefix.Format: want %q, got %q", c.prefix, got)
			}
			if got := Postfix.Format(c.e); got != c.postfix {
				t.Errorf("Postfix.Format: want %q, got %q", c.postfix, got)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b Expr
		eq   bool
	}{
		{"const", Num(1), Num(1), true},
		{"const-ne", Num(1), Num(2), false},
		{"nan", Num(math.NaN()), Num(math.NaN()), true},
		{"var", X, Var("x"), true},
		{"var-ne", X, Y, false},
		{"const-var", Num(0), X, false},
		{"op", Add(X, Num(1)), Add(X, Num(1)), true},
		{"op-kind", Add(X, Num(1)), Sub(X, Num(1)), false},
		{"op-args", Add(X, Num(1)), Add(Num(1), X), false},
		{"op-len", Sumexp(X, Y), Sumexp(X), false},
		{"deep", Div(Negate(X), Atan(Y)), Div(Negate(X), Atan(Y)), true},
		{"deep-ne", Div(Negate(X), Atan(Y)), Div(Negate(X), Atan(Z)), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Equal(c.a, c.b); got != c.eq {
				t.Errorf("Equal(%v, %v): want %t, got %t", c.a, c.b, c.eq, got)
			}
			if got := Equal(c.b, c.a); got != c.eq {
				t.Errorf("Equal(%v, %v): want %t, got %t", c.b, c.a, c.eq, got)
			}
		})
	}
}

func TestVars(t *testing.T) {
	cases := []struct {
		name string
		e    Expr
		r    []string
	}{
		{"const", Num(1), nil},
		{"x", X, []string{"x"}},
		{"order", Add(Z, Mul(X, Z)), []string{"x", "z"}},
		{"all", Sumexp(Y, Z, X, Y), []string{"x", "y", "z"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Vars(c.e); !reflect.DeepEqual(got, c.r) {
				t.Errorf("wrong variables in %v: want %q, got %q", c.e, c.r, got)
			}
		})
	}
}

func TestVar(t *testing.T) {
	for i, name := range []string{"x", "y", "z"} {
		v := Var(name)
		if v.Name() != name || v.Slot() != i {
			t.Errorf("Var(%q) is %s at slot %d", name, v.Name(), v.Slot())
		}
	}
	defer func() {
		if recover() == nil {
			t.Error("Var(\"w\") didn't panic")
		}
	}()
	Var("w")
}

func TestOpArgsCopy(t *testing.T) {
	e := Add(X, Y)
	a := e.Args()
	a[0] = Z
	if !Equal(e, Add(X, Y)) {
		t.Errorf("modifying Args changed the node to %v", e)
	}
	src := []Expr{X, Y}
	s := Sumexp(src...)
	src[0] = Z
	if !Equal(s, Sumexp(X, Y)) {
		t.Errorf("modifying the argument slice changed the node to %v", s)
	}
}

func TestSharedOperands(t *testing.T) {
	// One subtree used by several parents must be unaffected by anything
	// done to them.
	shared := Mul(X, Add(Y, Num(0)))
	a := Add(shared, shared)
	b := Div(shared, Num(1))
	_ = a.Diff("x")
	_ = a.Simplify()
	_ = b.Simplify()
	if got := shared.Prefix(); got != "(* x (+ y 0))" {
		t.Errorf("shared subtree changed to %s", got)
	}
}
