package tree

import "strings"

// Format renders seq as text for display and debugging. Elements are
// separated by spaces, an Ellipsis is "···", a Fraction is "{num}/{den}",
// Parentheses are "(children)", and exponents follow a "^".
func Format(seq []Element) string {
	var b strings.Builder
	format(&b, seq)
	return b.String()
}

func format(b *strings.Builder, seq []Element) {
	for i, e := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch e := e.(type) {
		case Variable:
			b.WriteString(e.Display)
			if x := e.Exponent; x != nil {
				b.WriteByte('^')
				if x.Kind == ExponentFraction {
					b.WriteString("(" + x.String() + ")")
				} else {
					b.WriteString(x.Text)
				}
			}
		case Operator:
			b.WriteString(e.Op.Symbol())
		case Equals:
			b.WriteByte('=')
		case Ellipsis:
			b.WriteString("···")
		case Fraction:
			b.WriteByte('{')
			format(b, e.Numerator)
			b.WriteString("}/{")
			format(b, e.Denominator)
			b.WriteByte('}')
		case Parentheses:
			b.WriteByte('(')
			format(b, e.Children)
			b.WriteByte(')')
		default:
			panic("tree: unknown element type " + kindOf(e))
		}
	}
}

// Equal reports whether a and b have the same structure and content,
// ignoring IDs.
func Equal(a, b []Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equal(a, b Element) bool {
	switch a := a.(type) {
	case Variable:
		b, ok := b.(Variable)
		if !ok || a.Value != b.Value || a.Display != b.Display {
			return false
		}
		if a.Exponent == nil || b.Exponent == nil {
			return a.Exponent == b.Exponent
		}
		return *a.Exponent == *b.Exponent
	case Operator:
		b, ok := b.(Operator)
		return ok && a.Op == b.Op
	case Equals:
		_, ok := b.(Equals)
		return ok
	case Ellipsis:
		_, ok := b.(Ellipsis)
		return ok
	case Fraction:
		b, ok := b.(Fraction)
		return ok && Equal(a.Numerator, b.Numerator) && Equal(a.Denominator, b.Denominator)
	case Parentheses:
		b, ok := b.(Parentheses)
		return ok && Equal(a.Children, b.Children)
	default:
		panic("tree: unknown element type " + kindOf(a))
	}
}

// IDs returns the IDs of every element of seq in pre-order.
func IDs(seq []Element) []ID {
	var r []ID
	walk(seq, func(e Element) { r = append(r, e.ID()) })
	return r
}

// walk calls f for every element of seq in pre-order.
func walk(seq []Element, f func(Element)) {
	for _, e := range seq {
		f(e)
		switch e := e.(type) {
		case Fraction:
			walk(e.Numerator, f)
			walk(e.Denominator, f)
		case Parentheses:
			walk(e.Children, f)
		}
	}
}
