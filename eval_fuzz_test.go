//go:build go1.18
// +build go1.18

package calculator_test

import (
	"testing"

	calc "github.com/qazwsxedcasddc-tech/formula-calculator-sub000"
)

func FuzzEval(f *testing.F) {
	f.Add("x")
	f.Add("3+4*2")
	f.Add("1×2")
	f.Add("√(a²+b²)")
	f.Add("F = m × a")
	f.Fuzz(func(t *testing.T, s string) {
		calc.EvalString(s, calc.SetVar("x", 0))
	})
}

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("y = 2^3^2")
	f.Add("sin(x) + v_0")
	f.Add("1÷0")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := calc.ParseString(s)
		if err != nil {
			if _, ok := err.(calc.InputError); !ok {
				t.Errorf("%q gave error %#v that is not an InputError", s, err)
			}
			return
		}
		_ = a.String()
	})
}
