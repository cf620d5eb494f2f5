package calculus

import (
	"math"
	"strconv"
)

// Differentiate returns the derivative of an expression with respect to its
// free variable. The result is built from new nodes, sharing unchanged
// subtrees of n, and is not simplified.
//
// Powers are differentiated only when the exponent or the base is free of
// the variable; x^x and the like fail with a DiffError of kind ErrExponent.
//
// Each rule copies its operand into the result, so the derivative of a
// product, quotient, or power is a constant factor larger than its input, and
// repeated differentiation grows the tree geometrically.
func Differentiate(n Node) (Node, error) {
	return derive(n)
}

// DifferentiateN differentiates an expression k times. k == 0 returns n.
// Panics if k is negative.
func DifferentiateN(n Node, k int) (Node, error) {
	if k < 0 {
		panic("calculus: negative derivative order " + strconv.Itoa(k))
	}
	for i := 0; i < k; i++ {
		var err error
		n, err = derive(n)
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

func derive(n Node) (Node, error) {
	switch n := n.(type) {
	case *Number, *Constant:
		return num(0), nil
	case *Variable:
		return num(1), nil
	case *Unary:
		if n.Op != OpSub {
			return nil, &DiffError{Kind: ErrUnsupportedOp, Node: n}
		}
		dx, err := derive(n.X)
		if err != nil {
			return nil, err
		}
		return neg(dx), nil
	case *Binary:
		return deriveBinary(n)
	case *Call:
		return deriveCall(n)
	default:
		return nil, &DiffError{Kind: ErrUnsupportedNode, Node: n}
	}
}

func deriveBinary(n *Binary) (Node, error) {
	switch n.Op {
	case OpAdd, OpSub, OpMul, OpDiv:
	case OpPow:
		return derivePow(n)
	default:
		return nil, &DiffError{Kind: ErrUnsupportedOp, Node: n}
	}
	a, b := n.Left, n.Right
	da, err := derive(a)
	if err != nil {
		return nil, err
	}
	db, err := derive(b)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case OpAdd:
		return add(da, db), nil
	case OpSub:
		return sub(da, db), nil
	case OpMul:
		// a'b + ab'
		return add(mul(da, b), mul(a, db)), nil
	default:
		// (a'b - ab') / b^2
		return div(sub(mul(da, b), mul(a, db)), pow(b, num(2))), nil
	}
}

func derivePow(n *Binary) (Node, error) {
	base, exp := n.Left, n.Right
	if k, ok := exp.(*Number); ok {
		// k base^(k-1) base'
		db, err := derive(base)
		if err != nil {
			return nil, err
		}
		return mul(mul(k, pow(base, decr(k.Value))), db), nil
	}
	if IsConstant(exp) {
		// Same as above, but k-1 stays symbolic.
		db, err := derive(base)
		if err != nil {
			return nil, err
		}
		return mul(mul(exp, pow(base, sub(exp, num(1)))), db), nil
	}
	if IsConstant(base) {
		// c^exp ln(c) exp'
		de, err := derive(exp)
		if err != nil {
			return nil, err
		}
		return mul(pow(base, exp), mul(call("ln", Radians, base), de)), nil
	}
	return nil, &DiffError{Kind: ErrExponent, Node: n}
}

func deriveCall(n *Call) (Node, error) {
	f, ok := globalfuncs[n.Func]
	if !ok {
		return nil, &DiffError{Kind: ErrUnsupportedFunc, Node: n}
	}
	if len(n.Args) != f.arity() {
		return nil, &DiffError{Kind: ErrUnsupportedNode, Node: n}
	}
	switch n.Func {
	case "fact", "perm", "comb":
		// Defined only at whole numbers, so they have a derivative only where
		// their arguments do not vary.
		for _, arg := range n.Args {
			if !IsConstant(arg) {
				return nil, &DiffError{Kind: ErrUnsupportedFunc, Node: n}
			}
		}
		return num(0), nil
	}
	u := n.Args[0]
	var outer Node
	switch n.Func {
	case "sin":
		outer = call("cos", n.Unit, u)
	case "cos":
		outer = neg(call("sin", n.Unit, u))
	case "tan":
		outer = div(num(1), pow(call("cos", n.Unit, u), num(2)))
	case "asin":
		outer = div(num(1), call("sqrt", n.Unit, sub(num(1), pow(u, num(2)))))
	case "acos":
		outer = neg(div(num(1), call("sqrt", n.Unit, sub(num(1), pow(u, num(2))))))
	case "atan":
		outer = div(num(1), add(num(1), pow(u, num(2))))
	case "ln":
		outer = div(num(1), u)
	case "log":
		outer = div(num(1), mul(u, call("ln", n.Unit, num(10))))
	case "exp":
		outer = n
	case "exp10":
		outer = mul(n, call("ln", n.Unit, num(10)))
	case "sqrt":
		outer = div(num(1), mul(num(2), n))
	default:
		return nil, &DiffError{Kind: ErrUnsupportedFunc, Node: n}
	}
	if n.Unit == Degrees {
		// The identities above hold in radians. Scale by the derivative of
		// the unit conversion.
		switch f.trig {
		case forwardTrig:
			outer = mul(div(pi(), num(180)), outer)
		case inverseTrig:
			outer = mul(div(num(180), pi()), outer)
		}
	}
	du, err := derive(u)
	if err != nil {
		return nil, err
	}
	return mul(outer, du), nil
}

// decr returns k-1 without a negative literal, since "-" always parses as
// negation.
func decr(k float64) Node {
	if k < 1 {
		return neg(num(1 - k))
	}
	return num(k - 1)
}

func num(v float64) *Number { return &Number{Value: v} }
func pi() *Constant        { return &Constant{Name: "pi", Value: math.Pi} }
func neg(x Node) *Unary    { return &Unary{Op: OpSub, X: x} }
func add(a, b Node) Node   { return &Binary{Op: OpAdd, Left: a, Right: b} }
func sub(a, b Node) Node   { return &Binary{Op: OpSub, Left: a, Right: b} }
func mul(a, b Node) Node   { return &Binary{Op: OpMul, Left: a, Right: b} }
func div(a, b Node) Node   { return &Binary{Op: OpDiv, Left: a, Right: b} }
func pow(a, b Node) Node   { return &Binary{Op: OpPow, Left: a, Right: b} }

func call(name string, unit AngleUnit, arg Node) *Call {
	return &Call{Func: name, Unit: unit, Args: []Node{arg}}
}

// DiffError is an error differentiating an expression tree.
type DiffError struct {
	// Kind is the kind of error.
	Kind DiffErrorKind
	// Node is the subtree that could not be differentiated.
	Node Node
}

func (err *DiffError) Error() string {
	s := "nil"
	if err.Node != nil {
		s = strconv.Quote(err.Node.String())
	}
	switch err.Kind {
	case ErrUnsupportedOp:
		return "cannot differentiate operator in " + s
	case ErrUnsupportedFunc:
		if c, ok := err.Node.(*Call); ok && IsFunc(c.Func) {
			return "cannot differentiate " + s + ": function of a varying whole number"
		}
		return "cannot differentiate unknown function in " + s
	case ErrExponent:
		return "cannot differentiate " + s + ": base and exponent both vary"
	default:
		return "cannot differentiate node " + s
	}
}

// DiffErrorKind classifies differentiation errors.
type DiffErrorKind int8

const (
	// ErrUnsupportedNode is a nil node, a node of a type outside the
	// package, or a call with the wrong number of arguments.
	ErrUnsupportedNode DiffErrorKind = iota + 1
	// ErrUnsupportedOp is an invalid unary or binary operator.
	ErrUnsupportedOp
	// ErrUnsupportedFunc is a call to an unknown function, or to fact, perm,
	// or comb with an argument that varies.
	ErrUnsupportedFunc
	// ErrExponent is a power whose base and exponent both contain the
	// variable.
	ErrExponent
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=DiffErrorKind -trimprefix=Err
//go:generate go mod tidy
