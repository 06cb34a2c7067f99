package calculator

import (
	"math"
	"strings"
)

// Context is a context for evaluating expressions. Evaluation never modifies
// a Context, so one may be shared between goroutines once built.
type Context struct {
	names map[string]float64
	funcs map[string]Func
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt map[string]float64
	fnopt   struct {
		name string
		fn   Func
	}
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}
func (fnopt) ctxOption()   {}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val float64) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]float64) ContextOption {
	return varsopt(vars)
}

// SetFunc adds or replaces a function in the context. Function names are
// case-insensitive. A nil fn removes a function added by an earlier option,
// but the defaults remain.
func SetFunc(name string, fn Func) ContextOption {
	return fnopt{name, fn}
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	var ctx Context
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		names: make(map[string]float64, len(ctx.names)),
		funcs: make(map[string]Func, len(ctx.funcs)),
	}
	for k, v := range ctx.names {
		n.names[k] = v
	}
	for k, v := range ctx.funcs {
		n.funcs[k] = v
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.names[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.names[k] = v
			}
		case fnopt:
			name := strings.ToLower(opt.name)
			if opt.fn == nil {
				delete(n.funcs, name)
				continue
			}
			n.funcs[name] = opt.fn
		default:
			panic("calculator: unknown option type")
		}
	}
	return &n
}

// Lookup returns the value a variable name evaluates to: the context's value
// if it has one, otherwise a named constant, otherwise 1. The second result
// reports whether the name was known.
func (ctx *Context) Lookup(name string) (float64, bool) {
	if v, ok := ctx.names[name]; ok {
		return v, true
	}
	if v, ok := constants[name]; ok {
		return v, true
	}
	return 1, false
}

// Eval evaluates an expression. An assignment evaluates to its right-hand
// side; the context is not changed.
func (ctx *Context) Eval(e *Expr) (float64, error) {
	return e.n.eval(ctx)
}

func (n *node) eval(ctx *Context) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeName:
		v, _ := ctx.Lookup(n.name)
		return v, nil
	case nodeCall:
		f := lookupFunc(ctx.funcs, n.name)
		if f == nil {
			return 0, &FuncError{Name: n.name}
		}
		x, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		return f(x)
	case nodeAssign:
		return n.left.eval(ctx)
	case nodeNeg:
		x, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		return -x, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval(ctx)
		if err != nil {
			return 0, err
		}
		switch n.kind {
		case nodeAdd:
			return l + r, nil
		case nodeSub:
			return l - r, nil
		case nodeMul:
			return l * r, nil
		case nodeDiv:
			if r == 0 {
				return 0, &DomainError{X: r, Func: "/"}
			}
			return l / r, nil
		default:
			return math.Pow(l, r), nil
		}
	default:
		panic("calculator: invalid AST node " + n.kind.String())
	}
}

// Evaluate is a shortcut to parse a token list and evaluate it with the given
// variable values.
func Evaluate(toks []Token, vars map[string]float64) (float64, error) {
	e, err := Parse(toks)
	if err != nil {
		return 0, err
	}
	return NewContext(SetVars(vars)).Eval(e)
}

// EvalString is a shortcut to scan, parse, and evaluate calculator text.
func EvalString(src string, opts ...ContextOption) (float64, error) {
	e, err := ParseString(src)
	if err != nil {
		return 0, err
	}
	return NewContext(opts...).Eval(e)
}
