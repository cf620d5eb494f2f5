package calculus

import (
	"math"
	"strconv"
	"strings"
)

// EvalOption is an option for evaluating an expression.
type EvalOption interface {
	evalOption(evalctx) evalctx
}

type atopt float64

// evalctx holds the settings for one evaluation.
type evalctx struct {
	// x is the value of the free variable if bound is true.
	x     float64
	bound bool
}

// At binds the free variable. Every variable in the expression takes the
// value x.
func At(x float64) EvalOption {
	return atopt(x)
}

func (o atopt) evalOption(c evalctx) evalctx {
	c.x = float64(o)
	c.bound = true
	return c
}

// Eval evaluates an expression with IEEE-754 double arithmetic. Division by
// zero and out-of-domain function arguments produce infinities and NaNs, not
// errors. The only errors are a variable with no binding, an unknown
// function, a call with the wrong number of arguments, or a tree containing an
// invalid node.
func Eval(n Node, opts ...EvalOption) (float64, error) {
	var c evalctx
	for _, opt := range opts {
		c = opt.evalOption(c)
	}
	return c.eval(n)
}

// EvalString is a shortcut to parse and evaluate an expression using the
// default parse options.
func EvalString(src string, opts ...EvalOption) (float64, error) {
	n, err := ParseString(src)
	if err != nil {
		return 0, err
	}
	return Eval(n, opts...)
}

func (c *evalctx) eval(n Node) (float64, error) {
	switch n := n.(type) {
	case *Number:
		return n.Value, nil
	case *Constant:
		return n.Value, nil
	case *Variable:
		if !c.bound {
			return 0, &EvalError{Kind: ErrUnbound, Name: n.Name}
		}
		return c.x, nil
	case *Unary:
		x, err := c.eval(n.X)
		if err != nil {
			return 0, err
		}
		if n.Op != OpSub {
			return 0, &EvalError{Kind: ErrBadNode, Name: n.Op.String()}
		}
		return -x, nil
	case *Binary:
		l, err := c.eval(n.Left)
		if err != nil {
			return 0, err
		}
		r, err := c.eval(n.Right)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case OpAdd:
			return l + r, nil
		case OpSub:
			return l - r, nil
		case OpMul:
			return l * r, nil
		case OpDiv:
			return l / r, nil
		case OpPow:
			return math.Pow(l, r), nil
		default:
			return 0, &EvalError{Kind: ErrBadNode, Name: n.Op.String()}
		}
	case *Call:
		f, ok := globalfuncs[n.Func]
		if !ok {
			return 0, &EvalError{Kind: ErrUnknownFunc, Name: n.Func}
		}
		if len(n.Args) != f.arity() {
			return 0, &EvalError{Kind: ErrWrongArgs, Name: n.Func}
		}
		var x [2]float64
		for i, arg := range n.Args {
			v, err := c.eval(arg)
			if err != nil {
				return 0, err
			}
			x[i] = v
		}
		if f.f2 != nil {
			return f.f2(x[0], x[1]), nil
		}
		return f.call(x[0], n.Unit), nil
	case nil:
		return 0, &EvalError{Kind: ErrBadNode, Name: "nil"}
	default:
		return 0, &EvalError{Kind: ErrBadNode, Name: n.String()}
	}
}

// Slope estimates the derivative of an expression at x by a central
// difference. It is a numeric check on Differentiate.
func Slope(n Node, x float64) (float64, error) {
	// The cube root of machine epsilon balances truncation and rounding
	// error for a central difference.
	h := 6.0554544523933395e-06 * math.Max(1, math.Abs(x))
	hi, lo := x+h, x-h
	fhi, err := Eval(n, At(hi))
	if err != nil {
		return 0, err
	}
	flo, err := Eval(n, At(lo))
	if err != nil {
		return 0, err
	}
	return (fhi - flo) / (hi - lo), nil
}

// EvalError is an error evaluating an expression tree.
type EvalError struct {
	// Kind is the kind of error.
	Kind EvalErrorKind
	// Name is the variable, function, or operator that caused the error.
	Name string
}

func (err *EvalError) Error() string {
	switch err.Kind {
	case ErrUnbound:
		return "undefined variable: " + strconv.Quote(err.Name)
	case ErrUnknownFunc:
		return "unknown function: " + strconv.Quote(err.Name)
	case ErrWrongArgs:
		return "wrong number of arguments to " + strconv.Quote(err.Name)
	default:
		var b strings.Builder
		b.WriteString("invalid expression node")
		if err.Name != "" {
			b.WriteString(": ")
			b.WriteString(strconv.Quote(err.Name))
		}
		return b.String()
	}
}

// EvalErrorKind classifies evaluation errors.
type EvalErrorKind int8

const (
	// ErrUnbound is a variable evaluated without a binding.
	ErrUnbound EvalErrorKind = iota + 1
	// ErrUnknownFunc is a call to a function that doesn't exist.
	ErrUnknownFunc
	// ErrBadNode is a nil node, a node of a type outside the package, or an
	// invalid operator.
	ErrBadNode
	// ErrWrongArgs is a call with the wrong number of arguments.
	ErrWrongArgs
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=EvalErrorKind -trimprefix=Err
//go:generate go mod tidy
