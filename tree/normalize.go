package tree

// Normalize rewrites seq into canonical form:
//
//  1. No two arithmetic operators are adjacent, and no arithmetic operator is
//     adjacent to an Ellipsis.
//  2. Two content elements, or a close parenthesis followed by content, always
//     have an operator or an Ellipsis between them.
//  3. An Ellipsis only follows content or a close parenthesis.
//  4. The sequence neither begins nor ends with an arithmetic operator or an
//     Ellipsis. Bare parentheses and Equals are never trimmed.
//
// The same rules apply independently inside every Fraction and Parentheses.
// Normalize is idempotent.
func Normalize(seq []Element) []Element {
	r := make([]Element, 0, len(seq))
	for _, e := range seq {
		var last Element
		if len(r) > 0 {
			last = r[len(r)-1]
		}
		switch e := e.(type) {
		case Variable:
			r = appendContent(r, last, e)
		case Fraction:
			e.Numerator = Normalize(e.Numerator)
			e.Denominator = Normalize(e.Denominator)
			r = appendContent(r, last, e)
		case Parentheses:
			e.Children = Normalize(e.Children)
			r = appendContent(r, last, e)
		case Operator:
			switch {
			case e.Op == OpenParen:
				r = appendContent(r, last, e)
			case !e.Op.IsMath():
				r = append(r, e)
			case isMathOp(last):
				// Two operators in a row. If an Ellipsis may stand where the
				// first one is, the pair becomes a placeholder. Otherwise the
				// first operator is kept, so that a second pass cannot drop
				// the placeholder and change the result.
				if len(r) >= 2 && isAnchor(r[len(r)-2]) {
					r[len(r)-1] = NewEllipsis()
				}
			case isEllipsis(last):
				// The placeholder already stands for the operator.
			default:
				r = append(r, e)
			}
		case Ellipsis:
			if last != nil && isAnchor(last) {
				r = append(r, e)
			}
		case Equals:
			r = append(r, e)
		default:
			panic("tree: unknown element type " + kindOf(e))
		}
	}
	return Trim(r, TrimBoth)
}

// appendContent appends a content element or open parenthesis, inserting a
// placeholder if the previous element needs an operator after it.
func appendContent(r []Element, last, e Element) []Element {
	if last != nil && isAnchor(last) {
		r = append(r, NewEllipsis())
	}
	return append(r, e)
}

func isEllipsis(e Element) bool {
	_, ok := e.(Ellipsis)
	return ok
}

// TrimPolicy selects which ends of a sequence Trim cleans.
type TrimPolicy int8

const (
	// TrimBoth removes leading and trailing operators and placeholders. It is
	// the policy of Normalize.
	TrimBoth TrimPolicy = iota
	// TrimTrailing removes only trailing operators and placeholders. It is
	// the policy of CleanOrphanedOperators.
	TrimTrailing
)

// Trim removes runs of arithmetic operators and Ellipsis elements from the
// ends of seq selected by policy. The result shares seq's backing array.
func Trim(seq []Element, policy TrimPolicy) []Element {
	if policy == TrimBoth {
		for len(seq) > 0 && isOrphanable(seq[0]) {
			seq = seq[1:]
		}
	}
	for len(seq) > 0 && isOrphanable(seq[len(seq)-1]) {
		seq = seq[:len(seq)-1]
	}
	return seq
}

// CleanOrphanedOperators removes operators and placeholders left without a
// neighbor by a deletion. It is lighter than Normalize: it drops operators and
// placeholders at the start, merges adjacent ones, and trims the end, but it
// does not insert placeholders between content.
//
// When an arithmetic operator meets a placeholder, the operator is kept. Two
// arithmetic operators merge into a placeholder.
func CleanOrphanedOperators(seq []Element) []Element {
	r := make([]Element, 0, len(seq))
	for _, e := range seq {
		if isParenOp(e, OpenParen) || isParenOp(e, CloseParen) {
			r = append(r, e)
			continue
		}
		if !isOrphanable(e) {
			r = append(r, e)
			continue
		}
		if len(r) == 0 {
			// Leading orphan.
			continue
		}
		last := r[len(r)-1]
		switch {
		case !isOrphanable(last):
			r = append(r, e)
		case isEllipsis(last) && isMathOp(e):
			r[len(r)-1] = e
		case isMathOp(last) && isMathOp(e):
			r[len(r)-1] = NewEllipsis()
		}
	}
	return Trim(r, TrimTrailing)
}
