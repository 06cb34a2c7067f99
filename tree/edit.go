package tree

import "strconv"

// Side is where InsertAt places a new element relative to its target.
type Side int8

const (
	// Left and Right insert beside the target in the same sequence.
	Left Side = iota + 1
	Right
	// Top and Bottom replace the target with a Fraction. The new element
	// becomes the numerator for Top and the denominator for Bottom.
	Top
	Bottom
)

func (s Side) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	default:
		return "Side(" + strconv.Itoa(int(s)) + ")"
	}
}

// replace finds the element with the given ID and substitutes the elements
// returned by f. If fix is not nil, it is applied to the sequence that held
// the element. Only the branches leading to the element are rebuilt. The
// second result reports whether the ID was found; if not, seq is returned.
func replace(seq []Element, id ID, f func(Element) []Element, fix func([]Element) []Element) ([]Element, bool) {
	for i, e := range seq {
		if e.ID() == id {
			sub := f(e)
			r := make([]Element, 0, len(seq)-1+len(sub))
			r = append(r, seq[:i]...)
			r = append(r, sub...)
			r = append(r, seq[i+1:]...)
			if fix != nil {
				r = fix(r)
			}
			return r, true
		}
		switch c := e.(type) {
		case Fraction:
			if num, ok := replace(c.Numerator, id, f, fix); ok {
				c.Numerator = num
				return with(seq, i, c), true
			}
			if den, ok := replace(c.Denominator, id, f, fix); ok {
				c.Denominator = den
				return with(seq, i, c), true
			}
		case Parentheses:
			if ch, ok := replace(c.Children, id, f, fix); ok {
				c.Children = ch
				return with(seq, i, c), true
			}
		}
	}
	return seq, false
}

// with returns a copy of seq with the element at i replaced by e.
func with(seq []Element, i int, e Element) []Element {
	r := make([]Element, len(seq))
	copy(r, seq)
	r[i] = e
	return r
}

// one is a shortcut for a single-element sequence.
func one(e Element) []Element {
	return []Element{e}
}

// InsertAt places e relative to the element with ID target, at whatever depth
// it is, and normalizes the sequence that held the target. Left and Right
// splice e beside the target. Top and Bottom replace the target with a
// Fraction of clones of e and the target.
func InsertAt(seq []Element, e Element, target ID, side Side) []Element {
	var f func(Element) []Element
	switch side {
	case Left:
		f = func(t Element) []Element { return []Element{e, t} }
	case Right:
		f = func(t Element) []Element { return []Element{t, e} }
	case Top:
		f = func(t Element) []Element {
			return one(NewFraction(one(Clone(e)), one(Clone(t))))
		}
	case Bottom:
		f = func(t Element) []Element {
			return one(NewFraction(one(Clone(t)), one(Clone(e))))
		}
	default:
		panic("tree: invalid side " + side.String())
	}
	r, _ := replace(seq, target, f, Normalize)
	return r
}

// AppendElements appends es to seq and normalizes the result. If seq has no
// content, it is discarded.
func AppendElements(seq, es []Element) []Element {
	if !hasContent(seq) {
		return Normalize(es)
	}
	r := make([]Element, 0, len(seq)+len(es))
	r = append(r, seq...)
	r = append(r, es...)
	return Normalize(r)
}

// ReplaceEllipsis replaces the Ellipsis with ID target by a new operator. The
// result is not normalized; a placeholder always stands where an operator may.
func ReplaceEllipsis(seq []Element, target ID, op OperatorKind) []Element {
	r, _ := replace(seq, target, func(t Element) []Element {
		if _, ok := t.(Ellipsis); !ok {
			return one(t)
		}
		return one(NewOperator(op))
	}, nil)
	return r
}

// UpdateExponent sets the exponent of the Variable with ID target. A nil exp
// clears it.
func UpdateExponent(seq []Element, target ID, exp *Exponent) []Element {
	r, _ := replace(seq, target, func(t Element) []Element {
		v, ok := t.(Variable)
		if !ok {
			return one(t)
		}
		if exp != nil {
			x := *exp
			exp = &x
		}
		v.Exponent = exp
		return one(v)
	}, nil)
	return r
}

// ReplaceOperator changes the kind of the Operator with ID target.
func ReplaceOperator(seq []Element, target ID, op OperatorKind) []Element {
	r, _ := replace(seq, target, func(t Element) []Element {
		o, ok := t.(Operator)
		if !ok {
			return one(t)
		}
		o.Op = op
		return one(o)
	}, nil)
	return r
}

// WrapInParentheses replaces the element with ID target by Parentheses
// containing a clone of it.
func WrapInParentheses(seq []Element, target ID) []Element {
	r, _ := replace(seq, target, func(t Element) []Element {
		return one(NewParentheses(one(Clone(t))))
	}, Normalize)
	return r
}

// WrapRangeInParentheses replaces the root-level elements from start to end
// inclusive by Parentheses containing clones of them. Out of range indexes
// leave seq unchanged.
func WrapRangeInParentheses(seq []Element, start, end int) []Element {
	if start < 0 || start > end || end >= len(seq) {
		return seq
	}
	r := make([]Element, 0, len(seq)-(end-start))
	r = append(r, seq[:start]...)
	r = append(r, NewParentheses(CloneAll(seq[start:end+1])))
	r = append(r, seq[end+1:]...)
	return Normalize(r)
}

// UnwrapParentheses replaces the Parentheses with ID target by clones of its
// children.
func UnwrapParentheses(seq []Element, target ID) []Element {
	r, _ := replace(seq, target, func(t Element) []Element {
		p, ok := t.(Parentheses)
		if !ok {
			return one(t)
		}
		return CloneAll(p.Children)
	}, Normalize)
	return r
}

// AddToParentheses appends e to the children of the Parentheses with ID
// target and normalizes the children.
func AddToParentheses(seq []Element, target ID, e Element) []Element {
	r, _ := replace(seq, target, func(t Element) []Element {
		p, ok := t.(Parentheses)
		if !ok {
			return one(t)
		}
		ch := make([]Element, 0, len(p.Children)+1)
		ch = append(ch, p.Children...)
		ch = append(ch, e)
		p.Children = Normalize(ch)
		return one(p)
	}, nil)
	return r
}
