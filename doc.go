// Package symexpr implements symbolic arithmetic expression trees over the
// variables x, y, and z.
//
// Expressions are written fully parenthesized, with the operator either first
// or last in each group. "(+ x (* 2 y))" in prefix notation is the same tree
// as "(x (2 y *) +)" in postfix. Trees can be evaluated for any binding of
// the three variables, differentiated with respect to one of them, simplified,
// and rendered back to either notation.
//
// Trees are immutable. Diff and Simplify always build new trees, so a tree
// can be shared freely, including between goroutines.
//
package symexpr
