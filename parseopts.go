package calculus

import "strconv"

// DefaultMaxDepth is the default limit on nesting while parsing. Each
// parenthesis, negation, and exponent on the right of ^ is a level.
const DefaultMaxDepth = 256

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	depthopt int
	unitopt  AngleUnit
)

// parsectx holds the settings for one parse.
type parsectx struct {
	// maxDepth is the maximum recursion depth.
	maxDepth int
	// unit is the angle unit assigned to calls.
	unit AngleUnit
}

// MaxDepth limits the nesting depth of parsed expressions. Deeper input
// fails with a ParseError of kind ErrTooDeep. Panics if n is less than 1.
func MaxDepth(n int) ParseOption {
	if n < 1 {
		panic("calculus: invalid max depth " + strconv.Itoa(n))
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxDepth = int(o)
	return p
}

// Angles sets the angle unit of every function call in the parsed
// expression.
func Angles(u AngleUnit) ParseOption {
	switch u {
	case Radians, Degrees:
	default:
		panic("calculus: invalid angle unit " + u.String())
	}
	return unitopt(u)
}

func (o unitopt) parseOption(p parsectx) parsectx {
	p.unit = AngleUnit(o)
	return p
}
