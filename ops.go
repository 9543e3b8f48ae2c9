package symexpr

import (
	"math"
	"sort"
	"strconv"
)

// Variadic is the arity of operators that accept any positive number of
// operands.
const Variadic = -1

// Operator describes an operation that can appear in expression trees. The
// set of operators is fixed when the package initializes; Lookup is the only
// way to obtain one.
type Operator struct {
	sym   string
	arity int
	// eval computes the operator's value from its operands' values.
	eval func(args []float64) float64
	// diff assembles the derivative from the operands and their derivatives.
	// Both slices have the same length.
	diff func(args, dargs []Expr) Expr
	// simplify applies the operator's identities to already simplified
	// operands, at least one of which is not a constant. If nil, the node is
	// rebuilt unchanged.
	simplify func(args []Expr) Expr
}

// Symbol returns the text that names the operator in both notations.
func (op *Operator) Symbol() string {
	return op.sym
}

// Arity returns the number of operands the operator takes, or Variadic.
func (op *Operator) Arity() int {
	return op.arity
}

// Variadic returns whether the operator accepts any positive number of
// operands.
func (op *Operator) Variadic() bool {
	return op.arity == Variadic
}

// CanCall returns whether the operator can be applied to n operands.
func (op *Operator) CanCall(n int) bool {
	if op.arity == Variadic {
		return n >= 1
	}
	return n == op.arity
}

// New applies the operator to a list of operands. Panics if the operator
// cannot be called with that many operands.
func (op *Operator) New(args ...Expr) *Op {
	if !op.CanCall(len(args)) {
		panic("symexpr: cannot apply " + op.sym + " to " + strconv.Itoa(len(args)) + " operands")
	}
	return &Op{op: op, args: append([]Expr(nil), args...)}
}

var (
	opNeg, opAdd, opSub, opMul, opDiv *Operator
	opAtan, opAtan2                   *Operator
	opSumexp, opSoftmax               *Operator

	operators map[string]*Operator
)

// The table is filled in init because the rules construct nodes that refer
// back to the operators.
func init() {
	opNeg = &Operator{
		sym:   "negate",
		arity: 1,
		eval:  func(a []float64) float64 { return -a[0] },
		diff:  diffNeg,
	}
	opAdd = &Operator{
		sym:      "+",
		arity:    2,
		eval:     func(a []float64) float64 { return a[0] + a[1] },
		diff:     diffAdd,
		simplify: simplifyAdd,
	}
	opSub = &Operator{
		sym:      "-",
		arity:    2,
		eval:     func(a []float64) float64 { return a[0] - a[1] },
		diff:     diffSub,
		simplify: simplifySub,
	}
	opMul = &Operator{
		sym:      "*",
		arity:    2,
		eval:     func(a []float64) float64 { return a[0] * a[1] },
		diff:     diffMul,
		simplify: simplifyMul,
	}
	opDiv = &Operator{
		sym:      "/",
		arity:    2,
		eval:     func(a []float64) float64 { return a[0] / a[1] },
		diff:     diffDiv,
		simplify: simplifyDiv,
	}
	opAtan = &Operator{
		sym:   "atan",
		arity: 1,
		eval:  func(a []float64) float64 { return math.Atan(a[0]) },
		diff:  diffAtan,
	}
	opAtan2 = &Operator{
		sym:   "atan2",
		arity: 2,
		eval:  func(a []float64) float64 { return math.Atan2(a[0], a[1]) },
		diff:  diffAtan2,
	}
	opSumexp = &Operator{
		sym:   "sumexp",
		arity: Variadic,
		eval:  sumexp,
		diff:  diffSumexp,
	}
	opSoftmax = &Operator{
		sym:   "softmax",
		arity: Variadic,
		eval:  func(a []float64) float64 { return math.Exp(a[0]) / sumexp(a) },
		diff:  diffSoftmax,
	}

	all := []*Operator{opNeg, opAdd, opSub, opMul, opDiv, opAtan, opAtan2, opSumexp, opSoftmax}
	operators = make(map[string]*Operator, len(all))
	for _, op := range all {
		operators[op.sym] = op
	}
}

func sumexp(a []float64) float64 {
	var s float64
	for _, x := range a {
		s += math.Exp(x)
	}
	return s
}

// Lookup finds the operator with the given symbol.
func Lookup(symbol string) (*Operator, bool) {
	op, ok := operators[symbol]
	return op, ok
}

// Operators returns the symbols of all operators, sorted.
func Operators() []string {
	r := make([]string, 0, len(operators))
	for k := range operators {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// Negate creates -a.
func Negate(a Expr) *Op {
	return &Op{op: opNeg, args: []Expr{a}}
}

// Add creates a + b.
func Add(a, b Expr) *Op {
	return &Op{op: opAdd, args: []Expr{a, b}}
}

// Sub creates a - b.
func Sub(a, b Expr) *Op {
	return &Op{op: opSub, args: []Expr{a, b}}
}

// Mul creates a * b.
func Mul(a, b Expr) *Op {
	return &Op{op: opMul, args: []Expr{a, b}}
}

// Div creates a / b.
func Div(a, b Expr) *Op {
	return &Op{op: opDiv, args: []Expr{a, b}}
}

// Atan creates the arctangent of a.
func Atan(a Expr) *Op {
	return &Op{op: opAtan, args: []Expr{a}}
}

// Atan2 creates the arctangent of y/x using the signs of both to choose the
// quadrant, as math.Atan2.
func Atan2(y, x Expr) *Op {
	return &Op{op: opAtan2, args: []Expr{y, x}}
}

// Sumexp creates the sum of exp(a) over all arguments. Sumexp of a single
// argument is the exponential function. Panics if there are no arguments.
func Sumexp(args ...Expr) *Op {
	return opSumexp.New(args...)
}

// Softmax creates exp(args[0]) divided by the Sumexp of all arguments. Panics
// if there are no arguments.
func Softmax(args ...Expr) *Op {
	return opSoftmax.New(args...)
}
