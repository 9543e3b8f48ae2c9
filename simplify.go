package symexpr

func (c *Const) Simplify() Expr {
	return c
}

func (v *Variable) Simplify() Expr {
	return v
}

// Simplify simplifies the operands first. If they are all constants, the
// node folds to a constant. Otherwise the operator's identities run once on
// the simplified operands; their results are not simplified again, so
// Simplify does not necessarily reach a fixed point.
func (o *Op) Simplify() Expr {
	args := make([]Expr, len(o.args))
	folds := true
	for i, a := range o.args {
		args[i] = a.Simplify()
		if _, ok := args[i].(*Const); !ok {
			folds = false
		}
	}
	if folds {
		vals := make([]float64, len(args))
		for i, a := range args {
			vals[i] = a.(*Const).v
		}
		return Num(o.op.eval(vals))
	}
	if o.op.simplify != nil {
		return o.op.simplify(args)
	}
	return &Op{op: o.op, args: args}
}

func simplifyAdd(a []Expr) Expr {
	switch {
	case isZero(a[0]):
		return a[1]
	case isZero(a[1]):
		return a[0]
	}
	return &Op{op: opAdd, args: a}
}

func simplifySub(a []Expr) Expr {
	switch {
	case isZero(a[0]):
		return Negate(a[1])
	case isZero(a[1]):
		return a[0]
	}
	return &Op{op: opSub, args: a}
}

func simplifyMul(a []Expr) Expr {
	switch {
	case isZero(a[0]), isZero(a[1]):
		return zero
	case isOne(a[0]):
		return a[1]
	case isOne(a[1]):
		return a[0]
	}
	return &Op{op: opMul, args: a}
}

func simplifyDiv(a []Expr) Expr {
	switch {
	case isZero(a[0]):
		return zero
	case isOne(a[1]):
		return a[0]
	}
	return &Op{op: opDiv, args: a}
}
