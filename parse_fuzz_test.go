//go:build go1.18
// +build go1.18

package symexpr_test

import (
	"testing"

	"github.com/zephyrtronium/symexpr"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("(+ x 1)")
	f.Add("(x 1 +)")
	f.Add("(softmax x (atan2 y z) 1e3)")
	f.Add("((+ 1 2) 3")
	f.Fuzz(func(t *testing.T, s string) {
		for _, n := range []symexpr.Notation{symexpr.Prefix, symexpr.Postfix} {
			e, err := symexpr.ParseString(s, n)
			if err != nil {
				if e != nil {
					t.Errorf("%v %q gave both %v and %v", n, s, e, err)
				}
				continue
			}
			r := n.Format(e)
			a, err := symexpr.ParseString(r, n)
			if err != nil {
				t.Fatalf("%v %q rendered as %q which failed to parse: %v", n, s, r, err)
			}
			if !symexpr.Equal(a, e) {
				t.Errorf("%v %q rendered as %q which parsed as %v", n, s, r, a)
			}
		}
	})
}
