package preset

import (
	"testing"

	calculator "github.com/qazwsxedcasddc-tech/formula-calculator-sub000"
	"github.com/qazwsxedcasddc-tech/formula-calculator-sub000/tree"
)

func TestToElements(t *testing.T) {
	cases := []struct {
		name    string
		formula string
		want    string
	}{
		{"product", "F = m × a", "m × a"},
		{"fraction", "E = m × v² ÷ 2", "{m × v^2}/{2}"},
		{"subscript", "v = v_0 + a × t", "v₀ + a × t"},
		{"function", "c = √(a² + b²)", "√ ( a^2 + b^2 )"},
		{"no-equals", "a ÷ b ÷ c", "{a}/{b ÷ c}"},
		{"no-rhs", "x =", "x ="},
		{"leading-divide", "÷ a", "÷ a"},
		{"trailing-divide", "a ÷", "a ÷"},
		{"number-superscript", "2³", "2^3"},
		{"caret-dropped", "x ^ 2", "x 2"},
		{"ascii", "y = a * b - c", "a × b − c"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := calculator.ScanString(c.formula)
			if err != nil {
				t.Fatalf("couldn't scan %q: %v", c.formula, err)
			}
			if got := tree.Format(ToElements(toks)); got != c.want {
				t.Errorf("wrong conversion of %q: want %q, got %q", c.formula, c.want, got)
			}
		})
	}
}

func TestConvertTokens(t *testing.T) {
	cases := []struct {
		name string
		toks []calculator.Token
		want string
	}{
		{"empty", nil, ""},
		{"empty-superscript", []calculator.Token{calculator.Sup("x", "")}, "x^2"},
		{"unknown-operator", []calculator.Token{calculator.Var("x"), calculator.Op("%"), calculator.Var("y")}, "x y"},
		{"parentheses", []calculator.Token{calculator.Open(), calculator.Var("x"), calculator.Close()}, "( x )"},
		{"equals", []calculator.Token{calculator.Var("x"), calculator.Op("="), calculator.Num("1")}, "x = 1"},
		{"only-divide", []calculator.Token{calculator.Op("/")}, "÷"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := tree.Format(ConvertTokens(c.toks)); got != c.want {
				t.Errorf("wrong conversion of %v: want %q, got %q", c.toks, c.want, got)
			}
		})
	}
}

func TestConvertSubscriptValue(t *testing.T) {
	got := ConvertTokens([]calculator.Token{calculator.Sub("m", "1")})
	v, ok := got[0].(tree.Variable)
	if !ok || len(got) != 1 {
		t.Fatalf("expected one variable, got %s", tree.Format(got))
	}
	if v.Value != "m1" || v.Display != "m₁" {
		t.Errorf("wrong subscript variable: value %q, display %q", v.Value, v.Display)
	}
}
