package symexpr

func (c *Const) Diff(string) Expr {
	return zero
}

func (v *Variable) Diff(name string) Expr {
	if v.name == name {
		return one
	}
	return zero
}

// Diff differentiates every operand, then lets the operator assemble the
// chain rule from the operands and their derivatives.
func (o *Op) Diff(name string) Expr {
	d := make([]Expr, len(o.args))
	for i, a := range o.args {
		d[i] = a.Diff(name)
	}
	return o.op.diff(o.args, d)
}

func diffNeg(x, dx []Expr) Expr {
	return Negate(dx[0])
}

func diffAdd(x, dx []Expr) Expr {
	return Add(dx[0], dx[1])
}

func diffSub(x, dx []Expr) Expr {
	return Sub(dx[0], dx[1])
}

// (uv)' = u'v + uv'
func diffMul(x, dx []Expr) Expr {
	return Add(Mul(dx[0], x[1]), Mul(x[0], dx[1]))
}

// (u/v)' = (u'v - uv') / v²
func diffDiv(x, dx []Expr) Expr {
	return Div(
		Sub(Mul(dx[0], x[1]), Mul(x[0], dx[1])),
		Mul(x[1], x[1]),
	)
}

// atan(u)' = u' / (1 + u²)
func diffAtan(x, dx []Expr) Expr {
	return Div(dx[0], Add(one, Mul(x[0], x[0])))
}

// atan2(u, v)' = (u'v - uv') / (u² + v²)
func diffAtan2(x, dx []Expr) Expr {
	return Div(
		Sub(Mul(dx[0], x[1]), Mul(x[0], dx[1])),
		Add(Mul(x[0], x[0]), Mul(x[1], x[1])),
	)
}

// Σexp(uᵢ)' = Σ exp(uᵢ)·uᵢ'. Each exp(uᵢ) is written as a one-argument
// sumexp so that the derivative stays within the registered operators.
func diffSumexp(x, dx []Expr) Expr {
	var r Expr = Mul(Sumexp(x[0]), dx[0])
	for i := 1; i < len(x); i++ {
		r = Add(r, Mul(Sumexp(x[i]), dx[i]))
	}
	return r
}

// With S = Σexp(uᵢ), softmax = exp(u₀)/S, so its derivative is
// (exp(u₀)'·S - exp(u₀)·S') / S².
func diffSoftmax(x, dx []Expr) Expr {
	s := &Op{op: opSumexp, args: x}
	e0 := Sumexp(x[0])
	de0 := diffSumexp(x[:1], dx[:1])
	ds := diffSumexp(x, dx)
	return Div(
		Sub(Mul(de0, s), Mul(e0, ds)),
		Mul(s, s),
	)
}
