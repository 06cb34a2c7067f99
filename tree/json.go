package tree

import (
	"encoding/json"
	"strconv"
)

// wire is the JSON shape of an element: a kind tag plus the fields of that
// kind.
type wire struct {
	Kind        string   `json:"kind"`
	Value       string   `json:"value,omitempty"`
	Display     string   `json:"display,omitempty"`
	Exponent    *wireExp `json:"exponent,omitempty"`
	Op          string   `json:"op,omitempty"`
	Numerator   []wire   `json:"numerator,omitempty"`
	Denominator []wire   `json:"denominator,omitempty"`
	Children    []wire   `json:"children,omitempty"`
}

type wireExp struct {
	Kind        string `json:"kind"`
	Text        string `json:"text,omitempty"`
	Numerator   string `json:"numerator,omitempty"`
	Denominator string `json:"denominator,omitempty"`
}

// DecodeError is returned by Decode for JSON that is well-formed but does not
// describe a formula.
type DecodeError struct {
	// Field is the offending field, e.g. "kind" or "op".
	Field string
	// Value is the value found in the field.
	Value string
}

func (err *DecodeError) Error() string {
	return "tree: invalid " + err.Field + " " + strconv.Quote(err.Value)
}

// Encode serializes seq as a JSON array of tagged elements. IDs are not
// encoded.
func Encode(seq []Element) ([]byte, error) {
	return json.Marshal(toWire(seq))
}

// Decode parses JSON produced by Encode. Every decoded element receives a
// fresh ID.
func Decode(data []byte) ([]Element, error) {
	var w []wire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return fromWire(w)
}

func toWire(seq []Element) []wire {
	if seq == nil {
		return nil
	}
	r := make([]wire, 0, len(seq))
	for _, e := range seq {
		w := wire{Kind: e.Kind().String()}
		switch e := e.(type) {
		case Variable:
			w.Value, w.Display = e.Value, e.Display
			if x := e.Exponent; x != nil {
				w.Exponent = &wireExp{
					Kind:        x.Kind.String(),
					Text:        x.Text,
					Numerator:   x.Numerator,
					Denominator: x.Denominator,
				}
			}
		case Operator:
			w.Op = e.Op.String()
		case Equals, Ellipsis:
		case Fraction:
			w.Numerator = toWire(e.Numerator)
			w.Denominator = toWire(e.Denominator)
		case Parentheses:
			w.Children = toWire(e.Children)
		default:
			panic("tree: unknown element type " + kindOf(e))
		}
		r = append(r, w)
	}
	return r
}

func fromWire(ws []wire) ([]Element, error) {
	if ws == nil {
		return nil, nil
	}
	r := make([]Element, 0, len(ws))
	for _, w := range ws {
		var e Element
		switch w.Kind {
		case KindVariable.String():
			v := NewVariableDisplay(w.Value, w.Display, nil)
			if x := w.Exponent; x != nil {
				switch x.Kind {
				case ExponentSimple.String():
					v.Exponent = SimpleExponent(x.Text)
				case ExponentFraction.String():
					v.Exponent = FractionExponent(x.Numerator, x.Denominator)
				default:
					return nil, &DecodeError{Field: "exponent kind", Value: x.Kind}
				}
			}
			e = v
		case KindOperator.String():
			op, ok := parseOperatorKind(w.Op)
			if !ok {
				return nil, &DecodeError{Field: "op", Value: w.Op}
			}
			e = NewOperator(op)
		case KindEquals.String():
			e = NewEquals()
		case KindEllipsis.String():
			e = NewEllipsis()
		case KindFraction.String():
			num, err := fromWire(w.Numerator)
			if err != nil {
				return nil, err
			}
			den, err := fromWire(w.Denominator)
			if err != nil {
				return nil, err
			}
			e = NewFraction(num, den)
		case KindParentheses.String():
			ch, err := fromWire(w.Children)
			if err != nil {
				return nil, err
			}
			e = NewParentheses(ch)
		default:
			return nil, &DecodeError{Field: "kind", Value: w.Kind}
		}
		r = append(r, e)
	}
	return r, nil
}

func parseOperatorKind(s string) (OperatorKind, bool) {
	for k := Plus; k <= CloseParen; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}
