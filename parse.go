package calculator

import (
	"strconv"
	"strings"
)

// expression     = (variable '=' additive) | additive
// additive       = multiplicative { ('+' | '-') multiplicative }
// multiplicative = power { ('*' | '/') power }
// power          = unary [ '^' power ]
// unary          = '-' unary | 'sqrt' unary | function
// function       = funcname ( '(' expression ')' | atom ) | atom
// atom           = num | variable | '(' expression ')'

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the list of variable names read by the expression.
	names []string
}

type parser struct {
	toks []lexToken
	pos  int
	// names is the set of variable names that have been seen this parse.
	names map[string]bool
}

// Parse parses a token list so it can be evaluated with a context. The whole
// list must form one expression.
func Parse(toks []Token) (*Expr, error) {
	lt, err := lex(toks)
	if err != nil {
		return nil, err
	}
	p := parser{toks: lt, names: make(map[string]bool)}
	n, err := p.expression()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, unexpectedEnd(tok, "end of input")
	}
	ex := Expr{
		n:     n,
		names: make([]string, 0, len(p.names)),
	}
	for k := range p.names {
		ex.names = append(ex.names, k)
	}
	sortstrs(ex.names)
	return &ex, nil
}

// ParseString is a shortcut to scan and parse calculator text.
func ParseString(src string, opts ...ScanOption) (*Expr, error) {
	toks, err := ScanString(src, opts...)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// peek returns the current token without consuming it. The EOF token is
// returned forever once reached.
func (p *parser) peek() lexToken {
	return p.toks[p.pos]
}

// next consumes and returns the current token.
func (p *parser) next() lexToken {
	tok := p.toks[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

// isOp reports whether the current token is one of the given operators.
func (p *parser) isOp(ops ...string) bool {
	tok := p.peek()
	if tok.kind != tokenOp {
		return false
	}
	for _, op := range ops {
		if tok.text == op {
			return true
		}
	}
	return false
}

func (p *parser) expression() (*node, error) {
	if p.peek().kind == tokenIdent {
		// Tentative assignment. Restore the position if no '=' follows.
		save := p.pos
		name := p.next()
		if p.peek().kind == tokenEquals {
			p.next()
			rhs, err := p.additive()
			if err != nil {
				return nil, err
			}
			return &node{kind: nodeAssign, name: name.text, left: rhs}, nil
		}
		p.pos = save
	}
	return p.additive()
}

func (p *parser) additive() (*node, error) {
	n, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for p.isOp("+", "-") {
		op := p.next()
		rhs, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		kind := nodeAdd
		if op.text == "-" {
			kind = nodeSub
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
	return n, nil
}

func (p *parser) multiplicative() (*node, error) {
	n, err := p.power()
	if err != nil {
		return nil, err
	}
	for p.isOp("*", "/") {
		op := p.next()
		rhs, err := p.power()
		if err != nil {
			return nil, err
		}
		kind := nodeMul
		if op.text == "/" {
			kind = nodeDiv
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
	return n, nil
}

func (p *parser) power() (*node, error) {
	n, err := p.unary()
	if err != nil {
		return nil, err
	}
	if !p.isOp("^") {
		return n, nil
	}
	p.next()
	// Recursing on power rather than looping makes ^ right-associative.
	rhs, err := p.power()
	if err != nil {
		return nil, err
	}
	return &node{kind: nodePow, left: n, right: rhs}, nil
}

func (p *parser) unary() (*node, error) {
	tok := p.peek()
	switch {
	case tok.kind == tokenOp && tok.text == "-":
		p.next()
		n, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, left: n}, nil
	case tok.kind == tokenFunc && strings.EqualFold(tok.text, "sqrt"):
		p.next()
		n, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeCall, name: tok.text, left: n}, nil
	}
	return p.function()
}

func (p *parser) function() (*node, error) {
	tok := p.peek()
	if tok.kind != tokenFunc {
		return p.atom()
	}
	p.next()
	var arg *node
	var err error
	if p.peek().kind == tokenOpen {
		arg, err = p.group()
	} else {
		arg, err = p.atom()
	}
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeCall, name: tok.text, left: arg}, nil
}

func (p *parser) atom() (*node, error) {
	tok := p.peek()
	switch tok.kind {
	case tokenNum:
		p.next()
		// The lexer checks numbers.
		v, _ := strconv.ParseFloat(tok.text, 64)
		return &node{kind: nodeNum, name: tok.text, num: v}, nil
	case tokenIdent:
		p.next()
		p.names[tok.text] = true
		return &node{kind: nodeName, name: tok.text}, nil
	case tokenOpen:
		return p.group()
	case tokenOp:
		return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	default:
		return nil, &TokenError{Col: tok.pos, Token: tok.describe(), Want: "number, variable, or ("}
	}
}

// group parses a parenthesized expression, starting at the open parenthesis.
func (p *parser) group() (*node, error) {
	open := p.next()
	if p.peek().kind == tokenClose {
		end := p.next()
		return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
	}
	n, err := p.expression()
	if err != nil {
		return nil, err
	}
	end := p.peek()
	switch end.kind {
	case tokenClose:
		p.next()
		return n, nil
	case tokenEOF:
		return nil, &BracketError{Col: open.pos, Left: open.text}
	default:
		return nil, unexpectedEnd(end, ")")
	}
}

// unexpectedEnd returns an error appropriate for a token that ends an
// expression where want was expected.
func unexpectedEnd(tok lexToken, want string) error {
	switch tok.kind {
	case tokenClose:
		return &BracketError{Col: tok.pos, Right: tok.text}
	case tokenOp:
		return &OperatorError{Col: tok.pos, Operator: tok.text}
	default:
		return &TokenError{Col: tok.pos, Token: tok.describe(), Want: want}
	}
}

// Vars returns the variable names the expression reads, sorted.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// Target returns the name of the variable the expression assigns, or the
// empty string if the expression is not an assignment.
func (e *Expr) Target() string {
	if e.n.kind != nodeAssign {
		return ""
	}
	return e.n.name
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, false, true)
	return b.String()
}
