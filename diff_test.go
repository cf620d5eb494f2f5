package calculus_test

import (
	"errors"
	"math"
	"regexp"
	"testing"

	"github.com/zephyrtronium/calculus"
)

func TestDiffExact(t *testing.T) {
	cases := []struct {
		name string
		src  string
		d    string
	}{
		{"num", "5", "0"},
		{"const", "pi", "0"},
		{"var", "x", "1"},
		{"neg", "-x", "-1"},
		{"add", "x+y", "1 + 1"},
		{"sub", "x - 2*x", "1 - (0*x + 2*1)"},
		{"mul", "x*y", "1*y + x*1"},
		{"div", "x/y", "(1*y - x*1)/y^2"},
		{"pow", "x^3", "3*x^2*1"},
		{"pownegexp", "x^-2", "-2*x^(-2 - 1)*1"},
		{"powzero", "x^0", "0*x^-1*1"},
		{"powone", "x^1", "1*x^0*1"},
		{"powhalf", "x^0.5", "0.5*x^-0.5*1"},
		{"powfrac", "x^1.5", "1.5*x^0.5*1"},
		{"powconstexp", "x^pi", "pi*x^(pi - 1)*1"},
		{"powconstbase", "2^x", "2^x*(ln(2)*1)"},
		{"sin", "sin(x)", "cos(x)*1"},
		{"cos", "cos(x)", "-sin(x)*1"},
		{"tan", "tan(x)", "1/cos(x)^2*1"},
		{"asin", "asin(x)", "1/sqrt(1 - x^2)*1"},
		{"acos", "acos(x)", "-(1/sqrt(1 - x^2))*1"},
		{"atan", "atan(x)", "1/(1 + x^2)*1"},
		{"ln", "ln(x)", "1/x*1"},
		{"log", "log(x)", "1/(x*ln(10))*1"},
		{"exp", "exp(x)", "exp(x)*1"},
		{"sqrt", "sqrt(x)", "1/(2*sqrt(x))*1"},
		{"chain", "sin(x^2)", "cos(x^2)*(2*x^1*1)"},
		{"exp10", "exp10(x)", "exp10(x)*ln(10)*1"},
		{"fact", "fact(5)", "0"},
		{"perm", "perm(5, 2)", "0"},
		{"comb", "x*comb(5, 2)", "1*comb(5, 2) + x*0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := calculus.ParseString(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			d, err := calculus.Differentiate(a)
			if err != nil {
				t.Fatalf("differentiating %q: %v", c.src, err)
			}
			if s := d.String(); s != c.d {
				t.Errorf("wrong derivative of %q:\n\twant %s\n\tgot  %s", c.src, c.d, s)
			}
			// The formatted derivative parses back to the same tree.
			b, err := calculus.ParseString(c.d)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.d, err)
			}
			if !calculus.Equal(d, b) {
				t.Errorf("derivative of %q is not the tree of its string %q", c.src, c.d)
			}
		})
	}
}

func TestDiffValues(t *testing.T) {
	cases := []struct {
		src string
		x   float64
		r   float64
	}{
		{"x^3", 2, 12},
		{"sin(x^2)", 0, 0},
		{"sin(x^2)", 1, math.Cos(1) * 2},
		{"x^2 + x^3", 1, 5},
		{"x*y", 3, 6},
		{"2^x", 0, math.Ln2},
		{"exp(x)", 1, math.E},
		{"log(x)", 1, 1 / math.Ln10},
		{"-x^2", 3, 6},
		{"exp10(x)", 1, 10 * math.Ln10},
		{"x*fact(3)", 7, 6},
	}
	for _, c := range cases {
		a, err := calculus.ParseString(c.src)
		if err != nil {
			t.Fatalf("%q failed to parse: %v", c.src, err)
		}
		d, err := calculus.Differentiate(a)
		if err != nil {
			t.Errorf("differentiating %q: %v", c.src, err)
			continue
		}
		r, err := calculus.Eval(d, calculus.At(c.x))
		if err != nil {
			t.Errorf("evaluating %v at %g: %v", d, c.x, err)
			continue
		}
		if !near(r, c.r, 1e-15) {
			t.Errorf("wrong derivative of %q at %g: want %g, got %g", c.src, c.x, c.r, r)
		}
	}
}

// TestDiffSlope checks derivatives against finite differences.
func TestDiffSlope(t *testing.T) {
	srcs := []string{
		"x^3",
		"-x^2",
		"x^-2",
		"x^pi",
		"x^(1/2)",
		"2^x",
		"e^x",
		"2^x^2",
		"(x+1)^(2*pi)",
		"x*sin(x)",
		"x/(1+x^2)",
		"cos(x)^2",
		"exp(x)*ln(x)",
		"exp(sin(x))",
		"ln(x^2+1)",
		"sqrt(x)",
		"log(x)",
		"tan(x)",
		"asin(x)",
		"acos(x)",
		"atan(x)",
		"sin(cos(tan(x)))",
		"x*y/z",
		"exp10(x)",
		"exp10(sin(x))",
		"comb(6, 3)*x^2",
	}
	for _, src := range srcs {
		for _, unit := range []calculus.AngleUnit{calculus.Radians, calculus.Degrees} {
			a, err := calculus.ParseString(src, calculus.Angles(unit))
			if err != nil {
				t.Fatalf("%q failed to parse: %v", src, err)
			}
			d, err := calculus.Differentiate(a)
			if err != nil {
				t.Errorf("differentiating %q in %v: %v", src, unit, err)
				continue
			}
			for _, x := range []float64{0.25, 0.5, 0.75} {
				want, err := calculus.Slope(a, x)
				if err != nil {
					t.Fatalf("slope of %q at %g: %v", src, x, err)
				}
				got, err := calculus.Eval(d, calculus.At(x))
				if err != nil {
					t.Errorf("evaluating %v at %g: %v", d, x, err)
					continue
				}
				if !near(got, want, 1e-6) {
					t.Errorf("derivative of %q in %v at %g: slope is %g, got %g from %v", src, unit, x, want, got, d)
				}
			}
		}
	}
}

func TestDiffDegrees(t *testing.T) {
	cases := []struct {
		src string
		d   string
		x   float64
		r   float64
	}{
		{"sin(x)", "pi/180*cos(x)*1", 0, math.Pi / 180},
		{"cos(x)", "pi/180*-sin(x)*1", 90, -math.Pi / 180},
		{"atan(x)", "180/pi*(1/(1 + x^2))*1", 0, 180 / math.Pi},
		{"sqrt(x)", "1/(2*sqrt(x))*1", 4, 0.25},
	}
	for _, c := range cases {
		a, err := calculus.ParseString(c.src, calculus.Angles(calculus.Degrees))
		if err != nil {
			t.Fatalf("%q failed to parse: %v", c.src, err)
		}
		d, err := calculus.Differentiate(a)
		if err != nil {
			t.Errorf("differentiating %q: %v", c.src, err)
			continue
		}
		if s := d.String(); s != c.d {
			t.Errorf("wrong derivative of %q:\n\twant %s\n\tgot  %s", c.src, c.d, s)
		}
		b, err := calculus.ParseString(c.d, calculus.Angles(calculus.Degrees))
		if err != nil {
			t.Fatalf("%q failed to parse: %v", c.d, err)
		}
		if !calculus.Equal(d, b) {
			t.Errorf("derivative of %q is not the tree of its string %q", c.src, c.d)
		}
		r, err := calculus.Eval(d, calculus.At(c.x))
		if err != nil {
			t.Errorf("evaluating %v at %g: %v", d, c.x, err)
			continue
		}
		if !near(r, c.r, 1e-14) {
			t.Errorf("wrong derivative of %q at %g degrees: want %g, got %g", c.src, c.x, c.r, r)
		}
	}
}

func TestDiffN(t *testing.T) {
	cases := []struct {
		src string
		k   int
		x   float64
		r   float64
	}{
		{"x^3", 0, 2, 8},
		{"x^3", 1, 2, 12},
		{"x^3", 2, 2, 12},
		{"x^3", 3, 2, 6},
		{"x^3", 4, 2, 0},
		{"sin(x)", 4, 1, math.Sin(1)},
		{"exp(x)", 3, 0, 1},
	}
	for _, c := range cases {
		a, err := calculus.ParseString(c.src)
		if err != nil {
			t.Fatalf("%q failed to parse: %v", c.src, err)
		}
		d, err := calculus.DifferentiateN(a, c.k)
		if err != nil {
			t.Errorf("differentiating %q %d times: %v", c.src, c.k, err)
			continue
		}
		if c.k == 0 && d != a {
			t.Errorf("zeroth derivative of %q is a different tree %v", c.src, d)
		}
		r, err := calculus.Eval(d, calculus.At(c.x))
		if err != nil {
			t.Errorf("evaluating %v at %g: %v", d, c.x, err)
			continue
		}
		if !near(r, c.r, 1e-14) {
			t.Errorf("derivative %d of %q at %g: want %g, got %g", c.k, c.src, c.x, c.r, r)
		}
	}
}

// TestDiffNString checks that repeated derivatives format to text that parses
// back to the same tree, including once exponents drop below zero.
func TestDiffNString(t *testing.T) {
	for _, src := range []string{"x^3", "x^0.5", "x^2*sin(x)", "2^x/x"} {
		a := parse(t, src)
		for k := 1; k <= 4; k++ {
			d, err := calculus.DifferentiateN(a, k)
			if err != nil {
				t.Errorf("differentiating %q %d times: %v", src, k, err)
				break
			}
			s := d.String()
			if len(s) > calculus.MaxInputLen {
				break
			}
			b, err := calculus.ParseString(s)
			if err != nil {
				t.Errorf("derivative %d of %q: %q failed to parse: %v", k, src, s, err)
				break
			}
			if !calculus.Equal(d, b) {
				t.Errorf("derivative %d of %q is not the tree of its string %q", k, src, s)
			}
		}
	}
}

func TestDiffNNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for negative order")
		}
	}()
	calculus.DifferentiateN(&calculus.Variable{Name: "x"}, -1)
}

func TestDiffErrors(t *testing.T) {
	x := &calculus.Variable{Name: "x"}
	cases := []struct {
		name string
		n    calculus.Node
		kind calculus.DiffErrorKind
		msg  string
	}{
		{"self-pow", parse(t, "x^x"), calculus.ErrExponent, `"x\^x": base and exponent both vary`},
		{"func-pow", parse(t, "sin(x)^(x+1)"), calculus.ErrExponent, `both vary`},
		{"nested-pow", parse(t, "2^x^x"), calculus.ErrExponent, `"x\^x"`},
		{"inner-pow", parse(t, "sin(x^x)"), calculus.ErrExponent, `"x\^x"`},
		{"func", &calculus.Call{Func: "foo", Args: []calculus.Node{x}}, calculus.ErrUnsupportedFunc, `unknown function in "foo\(x\)"`},
		{"fact", parse(t, "fact(x)"), calculus.ErrUnsupportedFunc, `"fact\(x\)": function of a varying whole number`},
		{"perm", parse(t, "perm(5, x)"), calculus.ErrUnsupportedFunc, `"perm\(5, x\)"`},
		{"comb-inner", parse(t, "sin(comb(x, 2))"), calculus.ErrUnsupportedFunc, `"comb\(x, 2\)"`},
		{"no-args", &calculus.Call{Func: "sin"}, calculus.ErrUnsupportedNode, `node "sin\(\)"`},
		{"unary-op", badUnary, calculus.ErrUnsupportedOp, `operator`},
		{"binary-op", &calculus.Binary{Op: '%', Left: x, Right: x}, calculus.ErrUnsupportedOp, `operator`},
		{"nil", nil, calculus.ErrUnsupportedNode, `node nil`},
		{"nil-arg", &calculus.Call{Func: "sin", Args: []calculus.Node{nil}}, calculus.ErrUnsupportedNode, `node nil`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := calculus.Differentiate(c.n)
			if err == nil {
				t.Fatalf("no error, got %v", d)
			}
			if d != nil {
				t.Errorf("non-nil result %v with error", d)
			}
			var u *calculus.DiffError
			if !errors.As(err, &u) {
				t.Fatalf("error was %#v, not DiffError", err)
			}
			if u.Kind != c.kind {
				t.Errorf("wrong error kind: want %v, got %v", c.kind, u.Kind)
			}
			if !regexp.MustCompile(c.msg).MatchString(err.Error()) {
				t.Errorf("message %q doesn't match %q", err.Error(), c.msg)
			}
		})
	}
}

// TestDiffPure checks that differentiating leaves the input tree as it was.
func TestDiffPure(t *testing.T) {
	srcs := []string{"x^3", "sin(x^2)", "x*y/z", "2^x", "exp(x)*ln(x)", "-(x-1)^2"}
	for _, src := range srcs {
		a := parse(t, src)
		b := parse(t, src)
		for i := 0; i < 3; i++ {
			if _, err := calculus.Differentiate(a); err != nil {
				t.Fatalf("differentiating %q: %v", src, err)
			}
		}
		if !calculus.Equal(a, b) {
			t.Errorf("differentiating %q changed it to %v", src, a)
		}
	}
}

func parse(t *testing.T, src string) calculus.Node {
	t.Helper()
	a, err := calculus.ParseString(src)
	if err != nil {
		t.Fatalf("%q failed to parse: %v", src, err)
	}
	return a
}

func BenchmarkDifferentiate(b *testing.B) {
	a, err := calculus.ParseString("sin(x^2)*exp(x)/(1+ln(x))")
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		calculus.Differentiate(a)
	}
}
