// Package tree implements the visual formula editor's element tree and the
// structure-preserving edits applied to it.
//
// A formula is a []Element. Fractions and parentheses own nested sequences
// with the same rules as the root. Elements are immutable: every edit returns
// a new sequence that shares untouched subtrees with the old one, and every
// element carries an ID that is unique within the process. Edits address
// elements by ID; an ID that is not in the tree leaves it unchanged.
package tree

import (
	"strconv"
	"sync/atomic"
)

// ID identifies an element. IDs are never reused, and clones receive new IDs.
type ID uint64

var lastID atomic.Uint64

// newID returns a fresh ID.
func newID() ID {
	return ID(lastID.Add(1))
}

func (id ID) String() string {
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// Kind identifies an element variant.
type Kind int8

const (
	KindVariable Kind = iota + 1
	KindOperator
	KindEquals
	KindEllipsis
	KindFraction
	KindParentheses
)

func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "Variable"
	case KindOperator:
		return "Operator"
	case KindEquals:
		return "Equals"
	case KindEllipsis:
		return "Ellipsis"
	case KindFraction:
		return "Fraction"
	case KindParentheses:
		return "Parentheses"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Element is a node of a formula tree. The set of implementations is closed:
// Variable, Operator, Equals, Ellipsis, Fraction, and Parentheses.
type Element interface {
	ID() ID
	Kind() Kind
	element()
}

// Variable is a named value or a number, optionally with an exponent.
type Variable struct {
	id ID
	// Value is the name or numeral used for evaluation.
	Value string
	// Display is the text shown on screen.
	Display string
	// Exponent is nil when the variable has no exponent.
	Exponent *Exponent
}

// Operator is an arithmetic operator or a bare parenthesis.
type Operator struct {
	id ID
	Op OperatorKind
}

// Equals is the assignment sign. Normalization never removes it.
type Equals struct {
	id ID
}

// Ellipsis stands for an operator the user has not chosen yet.
type Ellipsis struct {
	id ID
}

// Fraction is a numerator over a denominator.
type Fraction struct {
	id          ID
	Numerator   []Element
	Denominator []Element
}

// Parentheses groups a sequence of elements.
type Parentheses struct {
	id       ID
	Children []Element
}

func (e Variable) ID() ID    { return e.id }
func (e Operator) ID() ID    { return e.id }
func (e Equals) ID() ID      { return e.id }
func (e Ellipsis) ID() ID    { return e.id }
func (e Fraction) ID() ID    { return e.id }
func (e Parentheses) ID() ID { return e.id }

func (Variable) Kind() Kind    { return KindVariable }
func (Operator) Kind() Kind    { return KindOperator }
func (Equals) Kind() Kind      { return KindEquals }
func (Ellipsis) Kind() Kind    { return KindEllipsis }
func (Fraction) Kind() Kind    { return KindFraction }
func (Parentheses) Kind() Kind { return KindParentheses }

func (Variable) element()    {}
func (Operator) element()    {}
func (Equals) element()      {}
func (Ellipsis) element()    {}
func (Fraction) element()    {}
func (Parentheses) element() {}

// OperatorKind is the operation an Operator performs.
type OperatorKind int8

const (
	Plus OperatorKind = iota + 1
	Minus
	Multiply
	Divide
	OpenParen
	CloseParen
)

// IsMath reports whether k is one of the four arithmetic operators.
func (k OperatorKind) IsMath() bool {
	return k >= Plus && k <= Divide
}

// Symbol returns the glyph displayed for k.
func (k OperatorKind) Symbol() string {
	switch k {
	case Plus:
		return "+"
	case Minus:
		return "−"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	case OpenParen:
		return "("
	case CloseParen:
		return ")"
	default:
		return "?"
	}
}

func (k OperatorKind) String() string {
	switch k {
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	case OpenParen:
		return "OpenParen"
	case CloseParen:
		return "CloseParen"
	default:
		return "OperatorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ExponentKind distinguishes simple exponents from fractional ones.
type ExponentKind int8

const (
	ExponentSimple ExponentKind = iota + 1
	ExponentFraction
)

func (k ExponentKind) String() string {
	switch k {
	case ExponentSimple:
		return "Simple"
	case ExponentFraction:
		return "Fraction"
	default:
		return "ExponentKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Exponent is the exponent of a Variable: either Simple text such as "2", or
// a Fraction of two texts such as 1/2.
type Exponent struct {
	Kind ExponentKind
	// Text is the exponent of a simple exponent.
	Text string
	// Numerator and Denominator are the parts of a fractional exponent.
	Numerator   string
	Denominator string
}

// SimpleExponent creates a simple exponent.
func SimpleExponent(text string) *Exponent {
	return &Exponent{Kind: ExponentSimple, Text: text}
}

// FractionExponent creates a fractional exponent.
func FractionExponent(num, den string) *Exponent {
	return &Exponent{Kind: ExponentFraction, Numerator: num, Denominator: den}
}

func (x *Exponent) String() string {
	if x == nil {
		return ""
	}
	if x.Kind == ExponentFraction {
		return x.Numerator + "/" + x.Denominator
	}
	return x.Text
}

// NewVariable creates a variable that displays as its value.
func NewVariable(value string) Variable {
	return Variable{id: newID(), Value: value, Display: value}
}

// NewVariableDisplay creates a variable with separate value and display text
// and an optional exponent.
func NewVariableDisplay(value, display string, exp *Exponent) Variable {
	return Variable{id: newID(), Value: value, Display: display, Exponent: exp}
}

// NewOperator creates an operator.
func NewOperator(op OperatorKind) Operator {
	return Operator{id: newID(), Op: op}
}

// NewEquals creates an equals sign.
func NewEquals() Equals {
	return Equals{id: newID()}
}

// NewEllipsis creates an operator placeholder.
func NewEllipsis() Ellipsis {
	return Ellipsis{id: newID()}
}

// NewFraction creates a fraction. It does not copy its arguments.
func NewFraction(num, den []Element) Fraction {
	return Fraction{id: newID(), Numerator: num, Denominator: den}
}

// NewParentheses creates parentheses around children. It does not copy its
// argument.
func NewParentheses(children []Element) Parentheses {
	return Parentheses{id: newID(), Children: children}
}

// isContent reports whether e is a Variable, Fraction, or Parentheses.
func isContent(e Element) bool {
	switch e.(type) {
	case Variable, Fraction, Parentheses:
		return true
	}
	return false
}

// isMathOp reports whether e is an arithmetic Operator.
func isMathOp(e Element) bool {
	op, ok := e.(Operator)
	return ok && op.Op.IsMath()
}

// isParenOp reports whether e is a bare OpenParen or CloseParen Operator.
func isParenOp(e Element, kind OperatorKind) bool {
	op, ok := e.(Operator)
	return ok && op.Op == kind
}

// isOrphanable reports whether e is an arithmetic Operator or an Ellipsis,
// the elements that trimming removes.
func isOrphanable(e Element) bool {
	if _, ok := e.(Ellipsis); ok {
		return true
	}
	return isMathOp(e)
}

// isAnchor reports whether an Ellipsis may follow e.
func isAnchor(e Element) bool {
	return isContent(e) || isParenOp(e, CloseParen)
}

// hasContent reports whether seq contains a content element at its top level.
func hasContent(seq []Element) bool {
	for _, e := range seq {
		if isContent(e) {
			return true
		}
	}
	return false
}

// Find returns the first element with the given ID in a pre-order walk of
// seq, descending into numerators, denominators, and parentheses.
func Find(seq []Element, id ID) (Element, bool) {
	for _, e := range seq {
		if e.ID() == id {
			return e, true
		}
		switch e := e.(type) {
		case Fraction:
			if r, ok := Find(e.Numerator, id); ok {
				return r, true
			}
			if r, ok := Find(e.Denominator, id); ok {
				return r, true
			}
		case Parentheses:
			if r, ok := Find(e.Children, id); ok {
				return r, true
			}
		}
	}
	return nil, false
}

// Clone deep-copies e, giving every element of the copy a fresh ID.
func Clone(e Element) Element {
	switch e := e.(type) {
	case Variable:
		e.id = newID()
		if e.Exponent != nil {
			x := *e.Exponent
			e.Exponent = &x
		}
		return e
	case Operator:
		e.id = newID()
		return e
	case Equals:
		return NewEquals()
	case Ellipsis:
		return NewEllipsis()
	case Fraction:
		return NewFraction(CloneAll(e.Numerator), CloneAll(e.Denominator))
	case Parentheses:
		return NewParentheses(CloneAll(e.Children))
	default:
		panic("tree: unknown element type " + kindOf(e))
	}
}

// CloneAll clones every element of seq.
func CloneAll(seq []Element) []Element {
	if seq == nil {
		return nil
	}
	r := make([]Element, len(seq))
	for i, e := range seq {
		r[i] = Clone(e)
	}
	return r
}

// kindOf describes an element's kind for panic messages, tolerating nil.
func kindOf(e Element) string {
	if e == nil {
		return "<nil>"
	}
	return e.Kind().String()
}
