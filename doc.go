// Package calculus parses arithmetic and trigonometric expressions, evaluates
// them with float64 arithmetic, and differentiates them symbolically.
//
// The pipeline is Tokenize, then Parse, then Differentiate and/or Eval. Each
// step is a pure function over its input: no step keeps global state, so any
// of them may be called concurrently.
//
// Every variable in an expression is "the" variable. "x*y" differentiates
// like "x*x", and Eval binds all variables to the value given with At.
// Derivatives are not simplified; "x^2" differentiates to "2*x^1*1".
//
// Functions take one argument, except perm(n, r) and comb(n, r), which count
// permutations and combinations. Those and fact(n) are defined only at whole
// numbers, so they differentiate only when their arguments are constant.
//
// Trigonometric calls carry their angle unit. The default is radians; parsing
// with Angles(Degrees) produces calls whose arguments (or, for inverse
// functions, results) are in degrees, and their derivatives include the
// factor of pi/180 that the change of units implies.
package calculus
