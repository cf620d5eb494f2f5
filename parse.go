package calculus

import "strings"

// Expression = Term { ("+" | "-") Term }
// Term       = Power { ("*" | "/") Power }
// Power      = Unary [ "^" Power ]
// Unary      = "-" Unary | Primary
// Primary    = number | variable | constant | func Args | "(" Expression ")"
// Args       = "(" Expression { "," Expression } ")"

// parser is the state of a single parse. Its cursor only moves forward.
type parser struct {
	toks  []Token
	pos   int
	depth int
	parsectx
}

// Parse parses a token sequence into an expression tree. The given options
// are applied in order.
func Parse(tokens []Token, opts ...ParseOption) (Node, error) {
	p := parser{
		toks:     tokens,
		parsectx: parsectx{maxDepth: DefaultMaxDepth},
	}
	for _, opt := range opts {
		p.parsectx = opt.parseOption(p.parsectx)
	}
	n, err := p.expression()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, &ParseError{Index: p.pos, Kind: ErrTrailing, Tok: tok}
	}
	return n, nil
}

// ParseString is a shortcut to tokenize and parse an expression.
func ParseString(src string, opts ...ParseOption) (Node, error) {
	toks, err := Tokenize(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	return Parse(toks, opts...)
}

// peek returns the token under the cursor. ok is false at the end of input.
func (p *parser) peek() (tok Token, ok bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.pos], true
}

// advance moves the cursor past the current token.
func (p *parser) advance() {
	if p.pos < len(p.toks) {
		p.pos++
	}
}

// match consumes the current token if it is the given operator.
func (p *parser) match(op Op) bool {
	tok, ok := p.peek()
	if ok && tok.Kind == TokenOperator && tok.Op == op {
		p.advance()
		return true
	}
	return false
}

// expect consumes a close parenthesis.
func (p *parser) expect() error {
	tok, ok := p.peek()
	if !ok || tok.Kind != TokenRParen {
		return &ParseError{Index: p.pos, Kind: ErrUnclosedParen, Tok: tok}
	}
	p.advance()
	return nil
}

func (p *parser) expression() (Node, error) {
	n, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		var op Op
		switch {
		case p.match(OpAdd):
			op = OpAdd
		case p.match(OpSub):
			op = OpSub
		default:
			return n, nil
		}
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		n = &Binary{Op: op, Left: n, Right: rhs}
	}
}

func (p *parser) term() (Node, error) {
	n, err := p.power()
	if err != nil {
		return nil, err
	}
	for {
		var op Op
		switch {
		case p.match(OpMul):
			op = OpMul
		case p.match(OpDiv):
			op = OpDiv
		default:
			return n, nil
		}
		rhs, err := p.power()
		if err != nil {
			return nil, err
		}
		n = &Binary{Op: op, Left: n, Right: rhs}
	}
}

func (p *parser) power() (Node, error) {
	n, err := p.unary()
	if err != nil {
		return nil, err
	}
	if !p.match(OpPow) {
		return n, nil
	}
	// Recursing makes ^ right-associative. It also nests, so it counts
	// toward the depth limit.
	p.depth++
	rhs, err := p.power()
	p.depth--
	if err != nil {
		return nil, err
	}
	return &Binary{Op: OpPow, Left: n, Right: rhs}, nil
}

// unary parses a negation or primary. Every recursive path through the
// grammar reaches unary, so it is where depth is checked.
func (p *parser) unary() (Node, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.maxDepth {
		tok, _ := p.peek()
		return nil, &ParseError{Index: p.pos, Kind: ErrTooDeep, Tok: tok, Limit: p.maxDepth}
	}
	if p.match(OpSub) {
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: OpSub, X: x}, nil
	}
	return p.primary()
}

func (p *parser) primary() (Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, &ParseError{Index: p.pos, Kind: ErrUnexpectedEnd}
	}
	switch tok.Kind {
	case TokenNumber:
		p.advance()
		return &Number{Value: tok.Value}, nil
	case TokenVariable:
		p.advance()
		return &Variable{Name: tok.Name}, nil
	case TokenConstant:
		p.advance()
		return &Constant{Name: tok.Name, Value: tok.Value}, nil
	case TokenFunc:
		at := p.pos
		p.advance()
		open, ok := p.peek()
		if !ok || open.Kind != TokenLParen {
			return nil, &ParseError{Index: p.pos, Kind: ErrMissingCallParen, Tok: open, Func: tok.Name}
		}
		p.advance()
		args, err := p.arglist()
		if err != nil {
			return nil, err
		}
		// Functions outside the table are left for Eval to reject.
		if f, ok := globalfuncs[tok.Name]; ok && f.arity() != len(args) {
			return nil, &ParseError{Index: at, Kind: ErrArgCount, Tok: tok, Func: tok.Name, Args: len(args)}
		}
		return &Call{Func: tok.Name, Unit: p.unit, Args: args}, nil
	case TokenLParen:
		p.advance()
		n, err := p.expression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(); err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, &ParseError{Index: p.pos, Kind: ErrBadPrimary, Tok: tok}
	}
}

// arglist parses the arguments of a call through the close parenthesis.
func (p *parser) arglist() ([]Node, error) {
	var args []Node
	for {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if tok, ok := p.peek(); !ok || tok.Kind != TokenComma {
			break
		}
		p.advance()
	}
	if err := p.expect(); err != nil {
		return nil, err
	}
	return args, nil
}
