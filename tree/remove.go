package tree

// RemoveByID removes the element with the given ID at any depth. Containers
// that lose their content collapse:
//
//   - A Fraction with content on neither side disappears. A Fraction with
//     content on only one side is replaced by that side's content elements,
//     without its operators.
//   - Parentheses whose children have no content disappear.
//
// Every rebuilt sequence gets CleanOrphanedOperators, and the result is then
// normalized.
func RemoveByID(seq []Element, id ID) []Element {
	r, ok := remove(seq, id)
	if !ok {
		return seq
	}
	return Normalize(r)
}

func remove(seq []Element, id ID) ([]Element, bool) {
	r := make([]Element, 0, len(seq))
	found := false
	for _, e := range seq {
		if e.ID() == id {
			found = true
			continue
		}
		switch c := e.(type) {
		case Fraction:
			num, nok := remove(c.Numerator, id)
			den, dok := remove(c.Denominator, id)
			if !nok && !dok {
				r = append(r, e)
				continue
			}
			found = true
			r = append(r, collapseFraction(c, num, den)...)
		case Parentheses:
			ch, ok := remove(c.Children, id)
			if !ok {
				r = append(r, e)
				continue
			}
			found = true
			if hasContent(ch) {
				c.Children = ch
				r = append(r, c)
			}
		default:
			r = append(r, e)
		}
	}
	if !found {
		return seq, false
	}
	return CleanOrphanedOperators(r), true
}

// collapseFraction decides what replaces a Fraction whose sides are now num
// and den.
func collapseFraction(f Fraction, num, den []Element) []Element {
	numOK, denOK := hasContent(num), hasContent(den)
	switch {
	case !numOK && !denOK:
		return nil
	case !numOK:
		return contentOf(den)
	case !denOK:
		return contentOf(num)
	}
	f.Numerator = num
	f.Denominator = den
	return one(f)
}

// contentOf returns the content elements of seq.
func contentOf(seq []Element) []Element {
	var r []Element
	for _, e := range seq {
		if isContent(e) {
			r = append(r, e)
		}
	}
	return r
}
