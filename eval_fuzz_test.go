package arith_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/arith"
)

func FuzzEval(f *testing.F) {
	f.Add("2+3*4")
	f.Add("(2+3")
	f.Add("1.2.3")
	f.Add(" ( 1 + 2 ) * 3 ")
	f.Fuzz(func(t *testing.T, s string) {
		for _, ev := range []*arith.Evaluator{
			arith.New(),
			arith.New(arith.SkipSpace()),
			arith.New(arith.AllowTrailing(), arith.MaxDepth(8)),
		} {
			r, err := ev.Eval(s)
			if err == nil {
				if r < 0 {
					t.Errorf("%q: negative result %g", s, r)
				}
				continue
			}
			var ie arith.InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%q: error %v is not an InputError", s, err)
			}
			if p := ie.Pos(); p < 0 || p > len(s) {
				t.Errorf("%q: error position %d out of range", s, p)
			}
		}
	})
}
