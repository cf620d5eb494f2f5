package calculus

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Node is a node in the abstract syntax tree of an expression. The set of
// node types is closed: *Number, *Variable, *Constant, *Unary, *Binary, and
// *Call. Nodes are never modified after construction, so trees may share
// subtrees.
type Node interface {
	// String formats the tree as an expression with as few parentheses as
	// parsing it back requires. The angle units of calls are not shown.
	String() string

	fmt(b *strings.Builder)
	prec() prec
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// Variable is the free variable of an expression.
type Variable struct {
	Name string
}

// Constant is a named constant like pi.
type Constant struct {
	Name  string
	Value float64
}

// Unary is a prefix operation. The only unary operator is OpSub, negation.
type Unary struct {
	Op Op
	X  Node
}

// Binary is an infix operation.
type Binary struct {
	Op          Op
	Left, Right Node
}

// Call is an application of a function. Parse checks that known functions
// receive the number of arguments they take.
type Call struct {
	// Func is the name of the function.
	Func string
	// Unit is the angle unit of trigonometric functions. Other functions
	// ignore it.
	Unit AngleUnit
	Args []Node
}

// Op is an arithmetic operator.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
	OpPow Op = '^'
)

func (op Op) String() string {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpPow:
		return string(rune(op))
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

// AngleUnit is the unit in which a trigonometric function measures angles.
type AngleUnit int8

const (
	// Radians is the default angle unit.
	Radians AngleUnit = iota
	// Degrees makes forward trig functions take degrees and inverse trig
	// functions return degrees.
	Degrees
)

func (u AngleUnit) String() string {
	switch u {
	case Radians:
		return "radians"
	case Degrees:
		return "degrees"
	default:
		return "AngleUnit(" + strconv.Itoa(int(u)) + ")"
	}
}

// prec is the binding strength of a node when formatted. Higher binds
// tighter.
type prec int8

const (
	precSum prec = iota + 1
	precProduct
	precUnary
	precPower
	precAtom
)

func (*Number) prec() prec   { return precAtom }
func (*Variable) prec() prec { return precAtom }
func (*Constant) prec() prec { return precAtom }
func (*Unary) prec() prec    { return precUnary }
func (*Call) prec() prec     { return precAtom }

func (n *Binary) prec() prec {
	switch n.Op {
	case OpAdd, OpSub:
		return precSum
	case OpMul, OpDiv:
		return precProduct
	case OpPow:
		return precPower
	default:
		return precAtom
	}
}

func (n *Number) String() string   { return format(n) }
func (n *Variable) String() string { return format(n) }
func (n *Constant) String() string { return format(n) }
func (n *Unary) String() string    { return format(n) }
func (n *Binary) String() string   { return format(n) }
func (n *Call) String() string     { return format(n) }

func format(n Node) string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// group formats n, in parentheses if paren is true.
func group(b *strings.Builder, n Node, paren bool) {
	if paren {
		b.WriteByte('(')
		defer b.WriteByte(')')
	}
	n.fmt(b)
}

func (n *Number) fmt(b *strings.Builder) {
	switch {
	case math.IsNaN(n.Value):
		b.WriteString("NaN")
	case math.IsInf(n.Value, 1):
		b.WriteString("inf")
	case math.IsInf(n.Value, -1):
		b.WriteString("(-inf)")
	case n.Value < 0 || n.Value == 0 && math.Signbit(n.Value):
		// Parse and Differentiate never build negative literals, so this
		// only formats hand-built trees. The text reparses as a negation.
		b.WriteString("(-")
		b.WriteString(strconv.FormatFloat(-n.Value, 'g', -1, 64))
		b.WriteByte(')')
	default:
		b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	}
}

func (n *Variable) fmt(b *strings.Builder) {
	b.WriteString(n.Name)
}

func (n *Constant) fmt(b *strings.Builder) {
	b.WriteString(n.Name)
}

func (n *Unary) fmt(b *strings.Builder) {
	b.WriteString(n.Op.String())
	// The operand of a unary operator is itself a unary or primary.
	p := n.X.prec()
	group(b, n.X, p != precUnary && p != precAtom)
}

func (n *Binary) fmt(b *strings.Builder) {
	lp, rp := n.Left.prec(), n.Right.prec()
	switch n.Op {
	case OpAdd, OpSub:
		group(b, n.Left, lp < precSum)
		b.WriteString(" " + n.Op.String() + " ")
		group(b, n.Right, rp <= precSum)
	case OpMul, OpDiv:
		group(b, n.Left, lp < precProduct)
		b.WriteString(n.Op.String())
		group(b, n.Right, rp <= precProduct)
	case OpPow:
		// Only a primary may be the base without parentheses. A negated
		// base would parse the same way, but (-x)^2 reads better.
		group(b, n.Left, lp != precAtom)
		b.WriteString(n.Op.String())
		group(b, n.Right, rp < precUnary)
	default:
		group(b, n.Left, true)
		b.WriteString(n.Op.String())
		group(b, n.Right, true)
	}
}

func (n *Call) fmt(b *strings.Builder) {
	b.WriteString(n.Func)
	b.WriteByte('(')
	for i, arg := range n.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		arg.fmt(b)
	}
	b.WriteByte(')')
}

// Equal reports whether two trees have the same structure and values. NaN
// literals are equal to each other. Calls to functions other than trig
// functions are equal regardless of their angle units.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case *Number:
		b, ok := b.(*Number)
		if !ok {
			return false
		}
		if math.IsNaN(a.Value) {
			return math.IsNaN(b.Value)
		}
		return a.Value == b.Value
	case *Variable:
		b, ok := b.(*Variable)
		return ok && a.Name == b.Name
	case *Constant:
		b, ok := b.(*Constant)
		return ok && a.Name == b.Name && a.Value == b.Value
	case *Unary:
		b, ok := b.(*Unary)
		return ok && a.Op == b.Op && Equal(a.X, b.X)
	case *Binary:
		b, ok := b.(*Binary)
		return ok && a.Op == b.Op && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case *Call:
		b, ok := b.(*Call)
		if !ok || a.Func != b.Func || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		// Only trig functions care about units.
		return a.Unit == b.Unit || globalfuncs[a.Func].trig == notTrig
	default:
		panic("calculus: invalid node " + strconv.Quote(a.String()))
	}
}

// Walk calls fn on n and its descendants in pre-order. If fn returns false,
// Walk skips the children of that node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case *Number, *Variable, *Constant:
		// no children
	case *Unary:
		Walk(n.X, fn)
	case *Binary:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *Call:
		for _, arg := range n.Args {
			Walk(arg, fn)
		}
	default:
		panic("calculus: invalid node " + strconv.Quote(n.String()))
	}
}

// IsConstant reports whether a tree contains no variables.
func IsConstant(n Node) bool {
	c := true
	Walk(n, func(n Node) bool {
		if _, ok := n.(*Variable); ok {
			c = false
		}
		return c
	})
	return c
}

// Vars returns the sorted, distinct names of the variables in a tree.
func Vars(n Node) []string {
	seen := make(map[string]bool)
	var names []string
	Walk(n, func(n Node) bool {
		if v, ok := n.(*Variable); ok && !seen[v.Name] {
			seen[v.Name] = true
			names = append(names, v.Name)
		}
		return true
	})
	sort.Strings(names)
	return names
}
