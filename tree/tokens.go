package tree

import (
	calculator "github.com/qazwsxedcasddc-tech/formula-calculator-sub000"
)

// PlaceholderError is returned when a formula still contains an Ellipsis, so
// it cannot be evaluated until the user picks an operator.
type PlaceholderError struct {
	ID ID
}

func (err *PlaceholderError) Error() string {
	return "operator not chosen at element " + err.ID.String()
}

// Tokens converts a formula tree to calculator tokens so that it can be
// parsed and evaluated. Fractions become parenthesized divisions. A
// placeholder directly after a function name is read as applying the
// function; any other placeholder is a *PlaceholderError.
func Tokens(seq []Element) ([]calculator.Token, error) {
	return appendTokens(nil, seq)
}

func appendTokens(r []calculator.Token, seq []Element) ([]calculator.Token, error) {
	var err error
	for i, e := range seq {
		switch e := e.(type) {
		case Variable:
			r = append(r, valueToken(e.Value))
			switch x := e.Exponent; {
			case x == nil:
			case x.Kind == ExponentFraction:
				r = append(r, calculator.Op("^"), calculator.Open(),
					valueToken(x.Numerator), calculator.Op("÷"), valueToken(x.Denominator),
					calculator.Close())
			default:
				r = append(r, calculator.Op("^"), valueToken(x.Text))
			}
		case Operator:
			switch e.Op {
			case OpenParen:
				r = append(r, calculator.Open())
			case CloseParen:
				r = append(r, calculator.Close())
			default:
				r = append(r, calculator.Op(e.Op.Symbol()))
			}
		case Equals:
			r = append(r, calculator.Op("="))
		case Ellipsis:
			if i > 0 {
				if v, ok := seq[i-1].(Variable); ok && calculator.IsFunc(v.Value) {
					continue
				}
			}
			return nil, &PlaceholderError{ID: e.ID()}
		case Fraction:
			r = append(r, calculator.Open())
			if r, err = appendTokens(r, e.Numerator); err != nil {
				return nil, err
			}
			r = append(r, calculator.Close(), calculator.Op("÷"), calculator.Open())
			if r, err = appendTokens(r, e.Denominator); err != nil {
				return nil, err
			}
			r = append(r, calculator.Close())
		case Parentheses:
			r = append(r, calculator.Open())
			if r, err = appendTokens(r, e.Children); err != nil {
				return nil, err
			}
			r = append(r, calculator.Close())
		default:
			panic("tree: unknown element type " + kindOf(e))
		}
	}
	return r, nil
}

// valueToken chooses the token kind for a variable's value.
func valueToken(v string) calculator.Token {
	if calculator.IsNumeral(v) {
		return calculator.Num(v)
	}
	if calculator.IsFunc(v) {
		return calculator.Fn(v)
	}
	return calculator.Var(v)
}
