package symexpr

import (
	"math"
	"strconv"
	"strings"
)

// Expr is a node in an immutable expression tree. The concrete types are
// *Const, *Variable, and *Op.
type Expr interface {
	// Eval computes the value of the expression with the given variables.
	Eval(b Bindings) float64
	// Diff returns the partial derivative of the expression with respect to
	// the named variable. The result is generally not simplified.
	Diff(name string) Expr
	// Simplify returns an expression that evaluates the same as the receiver
	// for every binding, with constants folded and operator identities
	// applied once per node.
	Simplify() Expr
	// Prefix renders the expression with operators before operands.
	Prefix() string
	// Postfix renders the expression with operators after operands.
	Postfix() string
	// String is the same as Prefix.
	String() string

	fmt(b *strings.Builder, n Notation)
}

// Bindings holds the values of x, y, and z, in that order.
type Bindings [3]float64

// Const is a real number leaf.
type Const struct {
	v float64
}

// Num creates a constant.
func Num(v float64) *Const {
	return &Const{v: v}
}

var (
	zero = Num(0)
	one  = Num(1)
)

// Value returns the number the constant holds.
func (c *Const) Value() float64 {
	return c.v
}

func (c *Const) Prefix() string  { return c.String() }
func (c *Const) Postfix() string { return c.String() }

func (c *Const) String() string {
	return strconv.FormatFloat(c.v, 'g', -1, 64)
}

func (c *Const) fmt(b *strings.Builder, n Notation) {
	b.WriteString(c.String())
}

// isZero and isOne test for exact equality. They are the only predicates
// simplification uses on constants.
func isZero(e Expr) bool {
	c, ok := e.(*Const)
	return ok && c.v == 0
}

func isOne(e Expr) bool {
	c, ok := e.(*Const)
	return ok && c.v == 1
}

// Variable is a leaf naming one of x, y, or z.
type Variable struct {
	name string
	slot int
}

// The three variables. These are the only instances of Variable.
var (
	X = &Variable{name: "x", slot: 0}
	Y = &Variable{name: "y", slot: 1}
	Z = &Variable{name: "z", slot: 2}
)

var variables = [...]*Variable{X, Y, Z}

// lookupVar returns the variable with the given name, or nil if there is none.
func lookupVar(name string) *Variable {
	for _, v := range variables {
		if v.name == name {
			return v
		}
	}
	return nil
}

// Var returns the variable with the given name. Panics if name is not one of
// "x", "y", or "z".
func Var(name string) *Variable {
	v := lookupVar(name)
	if v == nil {
		panic("symexpr: no variable " + strconv.Quote(name))
	}
	return v
}

// Name returns the variable's name.
func (v *Variable) Name() string {
	return v.name
}

// Slot returns the index of the variable's value in Bindings.
func (v *Variable) Slot() int {
	return v.slot
}

func (v *Variable) Prefix() string  { return v.name }
func (v *Variable) Postfix() string { return v.name }
func (v *Variable) String() string  { return v.name }

func (v *Variable) fmt(b *strings.Builder, n Notation) {
	b.WriteString(v.name)
}

// Op is an application of a registered operator to its operands.
type Op struct {
	op   *Operator
	args []Expr
}

// Operator returns the operator the node applies.
func (o *Op) Operator() *Operator {
	return o.op
}

// Args returns a copy of the node's operands.
func (o *Op) Args() []Expr {
	return append([]Expr(nil), o.args...)
}

func (o *Op) Prefix() string {
	var b strings.Builder
	o.fmt(&b, Prefix)
	return b.String()
}

func (o *Op) Postfix() string {
	var b strings.Builder
	o.fmt(&b, Postfix)
	return b.String()
}

func (o *Op) String() string {
	return o.Prefix()
}

func (o *Op) fmt(b *strings.Builder, n Notation) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	if n == Prefix {
		b.WriteString(o.op.sym)
	}
	for i, a := range o.args {
		if i > 0 || n == Prefix {
			b.WriteByte(' ')
		}
		a.fmt(b, n)
	}
	if n == Postfix {
		b.WriteByte(' ')
		b.WriteString(o.op.sym)
	}
}

// Equal reports whether two trees have the same shape, operators, variables,
// and constants. NaN constants are equal to each other.
func Equal(a, b Expr) bool {
	switch a := a.(type) {
	case *Const:
		b, ok := b.(*Const)
		if !ok {
			return false
		}
		return a.v == b.v || math.IsNaN(a.v) && math.IsNaN(b.v)
	case *Variable:
		b, ok := b.(*Variable)
		return ok && a.slot == b.slot
	case *Op:
		b, ok := b.(*Op)
		if !ok || a.op != b.op || len(a.args) != len(b.args) {
			return false
		}
		for i := range a.args {
			if !Equal(a.args[i], b.args[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Vars returns the names of the variables used in an expression, in order.
func Vars(e Expr) []string {
	var seen [len(variables)]bool
	markvars(e, &seen)
	var r []string
	for i, ok := range seen {
		if ok {
			r = append(r, variables[i].name)
		}
	}
	return r
}

func markvars(e Expr, seen *[len(variables)]bool) {
	switch e := e.(type) {
	case *Variable:
		seen[e.slot] = true
	case *Op:
		for _, a := range e.args {
			markvars(a, seen)
		}
	}
}
