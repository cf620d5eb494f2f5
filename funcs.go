package calculus

import "math"

// function is an entry in the function table. Exactly one of f and f2 is
// set.
type function struct {
	f  func(float64) float64
	f2 func(float64, float64) float64
	// trig describes how the function treats angle units.
	trig trigKind
}

// arity is the number of arguments the function takes.
func (f function) arity() int {
	if f.f2 != nil {
		return 2
	}
	return 1
}

type trigKind int8

const (
	// notTrig functions ignore angle units.
	notTrig trigKind = iota
	// forwardTrig functions take an angle.
	forwardTrig
	// inverseTrig functions return an angle.
	inverseTrig
)

// globalfuncs is the set of functions that Tokenize recognizes and Eval
// applies. It is never modified.
var globalfuncs = map[string]function{
	"sin":   {f: math.Sin, trig: forwardTrig},
	"cos":   {f: math.Cos, trig: forwardTrig},
	"tan":   {f: math.Tan, trig: forwardTrig},
	"asin":  {f: math.Asin, trig: inverseTrig},
	"acos":  {f: math.Acos, trig: inverseTrig},
	"atan":  {f: math.Atan, trig: inverseTrig},
	"ln":    {f: math.Log},
	"log":   {f: math.Log10},
	"exp":   {f: math.Exp},
	"exp10": {f: exp10},
	"sqrt":  {f: math.Sqrt},
	"fact":  {f: factorial},
	"perm":  {f2: permutations},
	"comb":  {f2: combinations},
}

// constants is the set of named constants. It is never modified.
var constants = map[string]float64{
	"pi": math.Pi,
	"π":  math.Pi,
	"e":  math.E,
}

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

func exp10(x float64) float64 {
	return math.Pow(10, x)
}

// maxFactorial is the largest n for which n! is finite.
const maxFactorial = 170

// factorial is n! for a whole number n. It is NaN for negative, fractional, or
// NaN n and +Inf for n beyond maxFactorial.
func factorial(n float64) float64 {
	switch {
	case n < 0 || n != math.Trunc(n):
		return math.NaN()
	case n > maxFactorial:
		return math.Inf(1)
	}
	r := 1.0
	for i := 2.0; i <= n; i++ {
		r *= i
	}
	return r
}

// permutations is the number of ordered selections of r from n, n!/(n-r)!.
// Above maxFactorial the quotient of infinities is NaN.
func permutations(n, r float64) float64 {
	if !choosable(n, r) {
		return math.NaN()
	}
	return factorial(n) / factorial(n-r)
}

// combinations is the number of unordered selections of r from n,
// n!/(r!(n-r)!).
func combinations(n, r float64) float64 {
	if !choosable(n, r) {
		return math.NaN()
	}
	return factorial(n) / (factorial(r) * factorial(n-r))
}

// choosable reports whether n and r are whole numbers with n >= r >= 0.
func choosable(n, r float64) bool {
	return r >= 0 && n >= r && n == math.Trunc(n) && r == math.Trunc(r)
}

// call applies the function to x, converting angles to or from degrees as
// the unit requires.
func (f function) call(x float64, unit AngleUnit) float64 {
	if unit != Degrees {
		return f.f(x)
	}
	switch f.trig {
	case forwardTrig:
		return f.f(x * degToRad)
	case inverseTrig:
		return f.f(x) * radToDeg
	default:
		return f.f(x)
	}
}

// IsFunc reports whether name is a function that Tokenize recognizes.
func IsFunc(name string) bool {
	_, ok := globalfuncs[name]
	return ok
}

// Const returns the value of a named constant and whether it exists.
func Const(name string) (float64, bool) {
	v, ok := constants[name]
	return v, ok
}
