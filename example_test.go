package symexpr_test

import (
	"fmt"

	"github.com/zephyrtronium/symexpr"
)

func Example() {
	e, err := symexpr.ParsePrefix("(+ (* x x) (negate y))")
	if err != nil {
		panic(err)
	}
	fmt.Println(e.Eval(symexpr.Bindings{3, 4, 0}))
	fmt.Println(e.Postfix())
	d := e.Diff("x")
	fmt.Println(d)
	fmt.Println(d.Simplify())

	// Output:
	// 5
	// ((x x *) (y negate) +)
	// (+ (+ (* 1 x) (* x 1)) (negate 0))
	// (+ x x)
}

func ExampleParseError() {
	_, err := symexpr.ParsePostfix("(x y z +)")
	fmt.Println(err)
	_, err = symexpr.ParsePrefix("(+ 1 2) 3")
	fmt.Println(err)

	// Output:
	// Expected 2 operands for operation + at position 8, found 3 operands
	// Expected end of expression, found '3' at position 9
}
