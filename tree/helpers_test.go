package tree

import (
	"math/rand"
	"testing"

	"github.com/alecthomas/repr"
)

func vr(s string) Variable             { return NewVariable(s) }
func op(k OperatorKind) Operator       { return NewOperator(k) }
func ell() Ellipsis                    { return NewEllipsis() }
func eqs() Equals                      { return NewEquals() }
func sq(es ...Element) []Element       { return es }
func par(es ...Element) Parentheses    { return NewParentheses(es) }
func frac(num, den []Element) Fraction { return NewFraction(num, den) }

// checkFormat fails the test if seq does not format as want.
func checkFormat(t *testing.T, seq []Element, want string) {
	t.Helper()
	if got := Format(seq); got != want {
		t.Errorf("wrong formula: want %q, got %q\n%s", want, got, repr.String(seq, repr.Indent("  ")))
	}
}

// genConfig selects which elements genSeq may produce.
type genConfig struct {
	// equals allows Equals elements.
	equals bool
	// parens allows bare parenthesis operators.
	parens bool
	// full makes both sides of every fraction hold content.
	full bool
}

var varNames = []string{"x", "y", "m", "2", "3.5"}

// genSeq generates a random, generally unnormalized sequence.
func genSeq(r *rand.Rand, cfg genConfig, depth int) []Element {
	n := r.Intn(6)
	s := make([]Element, 0, n+1)
	for i := 0; i < n; i++ {
		s = append(s, genElement(r, cfg, depth))
	}
	return s
}

// genContentSeq generates a random sequence with at least one variable.
func genContentSeq(r *rand.Rand, cfg genConfig, depth int) []Element {
	s := genSeq(r, cfg, depth)
	i := r.Intn(len(s) + 1)
	s = append(s, nil)
	copy(s[i+1:], s[i:])
	s[i] = genVariable(r)
	return s
}

func genVariable(r *rand.Rand) Variable {
	v := NewVariable(varNames[r.Intn(len(varNames))])
	switch r.Intn(6) {
	case 0:
		v.Exponent = SimpleExponent("2")
	case 1:
		v.Exponent = FractionExponent("1", "2")
	}
	return v
}

func genElement(r *rand.Rand, cfg genConfig, depth int) Element {
	switch r.Intn(9) {
	case 0, 1, 2:
		return genVariable(r)
	case 3, 4:
		return NewOperator(Plus + OperatorKind(r.Intn(4)))
	case 5:
		return NewEllipsis()
	case 6:
		switch {
		case cfg.equals && (!cfg.parens || r.Intn(2) == 0):
			return NewEquals()
		case cfg.parens:
			return NewOperator(OpenParen + OperatorKind(r.Intn(2)))
		}
	case 7:
		if depth > 0 {
			if cfg.full {
				return NewFraction(genContentSeq(r, cfg, depth-1), genContentSeq(r, cfg, depth-1))
			}
			return NewFraction(genSeq(r, cfg, depth-1), genSeq(r, cfg, depth-1))
		}
	case 8:
		if depth > 0 {
			return NewParentheses(genSeq(r, cfg, depth-1))
		}
	}
	return genVariable(r)
}
