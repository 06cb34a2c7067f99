package tree

import "strconv"

// InvariantError describes an element that breaks a structural rule of
// normalized formulas.
type InvariantError struct {
	// ID is the offending element.
	ID ID
	// Rule is the number of the broken rule, as listed on Normalize.
	Rule int
	// Reason explains the violation.
	Reason string
}

func (err *InvariantError) Error() string {
	return "element " + err.ID.String() + " breaks rule " + strconv.Itoa(err.Rule) + ": " + err.Reason
}

// Validate checks that seq and every nested sequence are in the canonical
// form produced by Normalize. It returns the first violation found.
func Validate(seq []Element) error {
	if len(seq) > 0 {
		if e := seq[0]; isOrphanable(e) {
			return &InvariantError{ID: e.ID(), Rule: 4, Reason: "sequence starts with " + describe(e)}
		}
		if e := seq[len(seq)-1]; isOrphanable(e) {
			return &InvariantError{ID: e.ID(), Rule: 4, Reason: "sequence ends with " + describe(e)}
		}
	}
	for i, e := range seq {
		var prev Element
		if i > 0 {
			prev = seq[i-1]
		}
		switch {
		case prev != nil && isOrphanable(prev) && isOrphanable(e):
			return &InvariantError{ID: e.ID(), Rule: 1, Reason: describe(e) + " follows " + describe(prev)}
		case isEllipsis(e) && (prev == nil || !isAnchor(prev)):
			return &InvariantError{ID: e.ID(), Rule: 3, Reason: "placeholder does not follow content"}
		case prev != nil && isAnchor(prev) && (isContent(e) || isParenOp(e, OpenParen)):
			return &InvariantError{ID: e.ID(), Rule: 2, Reason: describe(e) + " follows " + describe(prev) + " with no operator"}
		}
		switch e := e.(type) {
		case Fraction:
			if err := Validate(e.Numerator); err != nil {
				return err
			}
			if err := Validate(e.Denominator); err != nil {
				return err
			}
		case Parentheses:
			if err := Validate(e.Children); err != nil {
				return err
			}
		}
	}
	return nil
}

// describe names an element for messages.
func describe(e Element) string {
	if op, ok := e.(Operator); ok {
		return "operator " + op.Op.Symbol()
	}
	return kindOf(e)
}
