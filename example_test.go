package arith_test

import (
	"errors"
	"fmt"

	"github.com/zephyrtronium/arith"
)

func ExampleEval() {
	for _, src := range []string{"2+3*4", "(2+3)*4", "2*(3+4)*(5+6)", "1.5+2.5*3"} {
		r, err := arith.Eval(src)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(src, "=", r)
	}

	// Output:
	// 2+3*4 = 14
	// (2+3)*4 = 20
	// 2*(3+4)*(5+6) = 154
	// 1.5+2.5*3 = 9
}

func ExampleInputError() {
	_, err := arith.Eval("(2+3")
	var ie arith.InputError
	if errors.As(err, &ie) {
		fmt.Println("position", ie.Pos())
	}
	fmt.Println(err)

	// Output:
	// position 4
	// 4: open bracket ( with no close bracket
}

func ExampleEvaluator_EvalAll() {
	ev := arith.New(arith.SkipSpace())
	for _, r := range ev.EvalAll([]string{"2 + 3 * (4 + 5)", "2 + 3 * (4 + 5", "(1 + 2) * (3 + 4)"}) {
		if r.Err != nil {
			fmt.Printf("%s: error: %v\n", r.Src, r.Err)
			continue
		}
		fmt.Printf("%s: %g\n", r.Src, r.Value)
	}

	// Output:
	// 2 + 3 * (4 + 5): 29
	// 2 + 3 * (4 + 5: error: 14: open bracket ( with no close bracket
	// (1 + 2) * (3 + 4): 21
}

func ExamplePreset() {
	lenient := arith.Preset(arith.SkipSpace(), arith.AllowTrailing())
	r, err := arith.Eval(" 6 * 7 ) ignored", lenient)
	fmt.Println(r, err)

	// Output:
	// 42 <nil>
}
