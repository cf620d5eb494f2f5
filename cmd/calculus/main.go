package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/calculus"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb    string
		at              float64
		bound           bool
		order, depth    int
		nl, echo, check bool
		deg             bool
	)
	setat := func(s string) error {
		// Accept expressions like pi/4 as well as plain numbers.
		x, err := calculus.EvalString(s)
		if err != nil {
			return fmt.Errorf("variable value %q: %w", s, err)
		}
		at, bound = x, true
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Func("at", "value of the variable", setat)
	flag.IntVar(&order, "d", 0, "differentiate this many times before evaluating")
	flag.IntVar(&depth, "depth", calculus.DefaultMaxDepth, "maximum nesting depth of expressions")
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&deg, "deg", false, "measure angles of trig functions in degrees")
	flag.BoolVar(&check, "check", false, "print the numeric slope beside each first derivative")
	flag.Parse()
	if order < 0 {
		log.Fatalf("derivative order (%d) must not be negative", order)
	}
	if depth < 1 {
		log.Fatalf("depth (%d) must be positive", depth)
	}
	if check && (order != 1 || !bound) {
		log.Fatal("-check needs -d 1 and -at")
	}

	var ins []io.ReadCloser
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range flag.Args() {
		ins = append(ins, io.NopCloser(strings.NewReader(arg)))
	}

	popts := []calculus.ParseOption{calculus.MaxDepth(depth)}
	if deg {
		popts = append(popts, calculus.Angles(calculus.Degrees))
	}
	var eopts []calculus.EvalOption
	if bound {
		eopts = append(eopts, calculus.At(at))
	}

	for _, in := range ins {
		srcs, err := split(in, nl)
		in.Close()
		if err != nil {
			log.Fatal(err)
		}
		for _, src := range srcs {
			toks, err := calculus.Tokenize(src)
			if err != nil {
				fmt.Println(err)
				continue
			}
			a, err := calculus.Parse(toks, popts...)
			if err != nil {
				fmt.Println(err)
				continue
			}
			d, err := calculus.DifferentiateN(a, order)
			if err != nil {
				fmt.Println(err)
				continue
			}
			if !bound && !calculus.IsConstant(d) {
				// Nothing to evaluate, so show the expression itself.
				fmt.Println(d)
				continue
			}
			if echo {
				fmt.Printf("%v : ", d)
			}
			r, err := calculus.Eval(d, eopts...)
			if err != nil {
				fmt.Println(err)
				continue
			}
			out := fmt.Sprintf(verb, r)
			if check {
				s, err := calculus.Slope(a, at)
				if err != nil {
					fmt.Println(err)
					continue
				}
				out += " (slope " + fmt.Sprintf(verb, s) + ")"
			}
			fmt.Println(out)
		}
	}
}

// split reads an input and divides it into expressions. Without nl, the whole
// input is one expression. With nl, each non-blank line is one.
func split(in io.Reader, nl bool) ([]io.RuneScanner, error) {
	if !nl {
		// Enough bytes for one rune past the limit, so Tokenize still sees
		// an overlong input.
		b, err := io.ReadAll(io.LimitReader(in, 4*(calculus.MaxInputLen+1)))
		if err != nil {
			return nil, err
		}
		return []io.RuneScanner{bytes.NewReader(b)}, nil
	}
	var r []io.RuneScanner
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		r = append(r, strings.NewReader(line))
	}
	return r, sc.Err()
}

// infile opens the named input. The result is nil if there is no name and
// std is false. Closing it leaves stdin open.
func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return f, nil
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}
