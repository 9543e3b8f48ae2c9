package symexpr

import "strings"

func (c *Const) Eval(Bindings) float64 {
	return c.v
}

func (v *Variable) Eval(b Bindings) float64 {
	return b[v.slot]
}

// Eval evaluates every operand with the same bindings, then applies the
// operator to the results in order.
func (o *Op) Eval(b Bindings) float64 {
	// buf fits the operands of every fixed-arity operator.
	var buf [4]float64
	vals := buf[:0]
	for _, a := range o.args {
		vals = append(vals, a.Eval(b))
	}
	return o.op.eval(vals)
}

// EvalString is a shortcut to parse an expression in the given notation and
// evaluate it.
func EvalString(src string, n Notation, b Bindings) (float64, error) {
	e, err := Parse(strings.NewReader(src), n)
	if err != nil {
		return 0, err
	}
	return e.Eval(b), nil
}
