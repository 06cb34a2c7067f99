package calculator

import (
	"math"
	"strconv"
	"strings"
)

// Func is a function from reals to reals. It returns an error, normally a
// *DomainError, for arguments outside its domain.
type Func func(x float64) (float64, error)

var globalfuncs = map[string]Func{
	"sin":  Monadic(math.Sin),
	"cos":  Monadic(math.Cos),
	"tan":  Monadic(math.Tan),
	"asin": Monadic(math.Asin),
	"acos": Monadic(math.Acos),
	"atan": Monadic(math.Atan),

	"ln":   Partial("ln", math.Log, positive),
	"log":  Partial("log", math.Log10, positive),
	"sqrt": Partial("sqrt", math.Sqrt, nonnegative),
	"exp":  Monadic(math.Exp),

	"abs":   Monadic(math.Abs),
	"round": Monadic(math.Round),
	"floor": Monadic(math.Floor),
	"ceil":  Monadic(math.Ceil),
}

func positive(x float64) bool    { return x > 0 }
func nonnegative(x float64) bool { return x >= 0 }

// Monadic wraps a total function of one variable into a Func.
func Monadic(f func(float64) float64) Func {
	return func(x float64) (float64, error) {
		return f(x), nil
	}
}

// Partial wraps a function of one variable into a Func that returns a
// *DomainError naming name whenever in reports false for the argument.
func Partial(name string, f func(float64) float64, in func(float64) bool) Func {
	return func(x float64) (float64, error) {
		if !in(x) {
			return 0, &DomainError{X: x, Func: name}
		}
		return f(x), nil
	}
}

// FuncNames returns the names of the default functions, sorted.
func FuncNames() []string {
	names := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// IsFunc reports whether name is a default function, ignoring case.
func IsFunc(name string) bool {
	_, ok := globalfuncs[strings.ToLower(name)]
	return ok
}

// lookupFunc finds a function by name, ignoring case. Functions in fns take
// precedence over the defaults.
func lookupFunc(fns map[string]Func, name string) Func {
	name = strings.ToLower(name)
	if f := fns[name]; f != nil {
		return f
	}
	return globalfuncs[name]
}

// DomainError is an error returned when an operation is applied to an
// argument outside its domain, including division by zero.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is a name identifying the operation, e.g. "sqrt" or "/".
	Func string
}

func (err *DomainError) Error() string {
	if err.Func == "/" {
		return "division by zero"
	}
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

// FuncError is an error from a call to a function that does not exist.
type FuncError struct {
	// Name is the function name that was called.
	Name string
}

func (err *FuncError) Error() string {
	return "unknown function: " + strconv.Quote(err.Name)
}
