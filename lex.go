package calculus

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// MaxInputLen is the maximum number of runes Tokenize accepts. Together with
// the parser's depth limit, it bounds the work done on adversarial input.
const MaxInputLen = 4096

// Operators contains the runes which are considered to be operators. × and ÷
// are alternate spellings of * and /.
const Operators = "+-*/^×÷"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// Tokenize scans an expression into tokens.
func Tokenize(src io.RuneScanner) ([]Token, error) {
	l := lex(src)
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// TokenizeString scans an expression from a string.
func TokenizeString(s string) ([]Token, error) {
	return Tokenize(strings.NewReader(s))
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	if l.rune > MaxInputLen {
		l.buf.Reset()
		l.buf.WriteString("more than " + strconv.Itoa(MaxInputLen) + " runes")
		return r, l.fail("input")
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input, the
// result is io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		tok := Token{Pos: l.rune}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return Token{}, err
			}
			tok.Kind = TokenNumber
			tok.Value = parsenum(l.buf.String())
			return tok, nil
		case r == '_', unicode.IsLetter(r):
			l.unreadRune()
			if err := l.scanIdent(); err != nil {
				return Token{}, err
			}
			ident(&tok, l.buf.String())
			return tok, nil
		case r == '∞':
			tok.Kind = TokenNumber
			tok.Value = math.Inf(1)
			return tok, nil
		case r == '(':
			tok.Kind = TokenLParen
			return tok, nil
		case r == ')':
			tok.Kind = TokenRParen
			return tok, nil
		case r == ',':
			tok.Kind = TokenComma
			return tok, nil
		case r == '*':
			tok.Kind = TokenOperator
			tok.Op = OpMul
			// ** is exponentiation.
			r, err := l.readRune()
			switch {
			case err == nil && r == '*':
				tok.Op = OpPow
			case err == nil:
				l.unreadRune()
			case !errors.Is(err, io.EOF):
				return Token{}, err
			}
			return tok, nil
		default:
			if op, ok := operator(r); ok {
				tok.Kind = TokenOperator
				tok.Op = op
				return tok, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return Token{}, l.fail("")
		}
	}
}

func operator(r rune) (Op, bool) {
	switch r {
	case '+':
		return OpAdd, true
	case '-':
		return OpSub, true
	case '*', '×':
		return OpMul, true
	case '/', '÷':
		return OpDiv, true
	case '^':
		return OpPow, true
	default:
		return 0, false
	}
}

// ident classifies an identifier as a number, function, constant, or
// variable.
func ident(tok *Token, text string) {
	tok.Name = text
	switch text {
	case "inf", "Inf":
		// inf looks like an identifier, so check for it here.
		tok.Kind = TokenNumber
		tok.Name = ""
		tok.Value = math.Inf(1)
		return
	}
	if _, ok := globalfuncs[text]; ok {
		tok.Kind = TokenFunc
		return
	}
	if v, ok := constants[text]; ok {
		tok.Kind = TokenConstant
		tok.Value = v
		return
	}
	tok.Kind = TokenVariable
}

// parsenum converts a scanned number. scanNum has already checked the syntax,
// so the only possible error is range.
func parsenum(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("calculus: invalid number: " + s + " (" + err.Error() + ")")
	}
	return f
}

// numState is a state of the number scanner.
type numState int8

const (
	numBad numState = iota - 1
	numStart
	numInt       // integer digits
	numPoint     // a leading point with no digits yet
	numFrac      // a point after digits, or fraction digits
	numExp       // exponent marker
	numExpSign   // exponent sign
	numExpDigits // exponent digits
)

// step returns the state after scanning r, or numBad if r cannot continue the
// number.
func (s numState) step(r rune) numState {
	digit := '0' <= r && r <= '9'
	exp := r == 'e' || r == 'E'
	switch s {
	case numStart:
		switch {
		case digit:
			return numInt
		case r == '.':
			return numPoint
		}
	case numInt:
		switch {
		case digit:
			return numInt
		case r == '.':
			return numFrac
		case exp:
			return numExp
		}
	case numPoint:
		if digit {
			return numFrac
		}
	case numFrac:
		switch {
		case digit:
			return numFrac
		case exp:
			return numExp
		}
	case numExp:
		switch {
		case digit:
			return numExpDigits
		case r == '+', r == '-':
			return numExpSign
		}
	case numExpSign, numExpDigits:
		if digit {
			return numExpDigits
		}
	}
	return numBad
}

// delimits reports whether r ends a number scanned up to state s. A sign right
// after the exponent marker is part of the number.
func (s numState) delimits(r rune) bool {
	if r == '+' || r == '-' {
		return s != numExp
	}
	return unicode.IsSpace(r) || strings.ContainsRune(Operators+"(),", r)
}

// complete reports whether a number may end in state s.
func (s numState) complete() bool {
	return s == numInt || s == numFrac || s == numExpDigits
}

// scanNum scans a number into the buffer. next unreads the first rune before
// calling it.
func (l *lexer) scanNum() error {
	s := numStart
	for {
		r, err := l.readRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if s.delimits(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		if s = s.step(r); s == numBad {
			return l.fail("number")
		}
	}
	if !s.complete() {
		return l.fail("number")
	}
	return nil
}

// scanIdent scans a name into the buffer. It never fails on the first rune,
// since next only calls it after seeing a letter or underscore.
func (l *lexer) scanIdent() error {
	for {
		r, err := l.readRune()
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		case r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r):
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// fail reports the buffered text as an invalid token of the given kind,
// ending at the current column.
func (l *lexer) fail(kind string) error {
	return &LexError{Text: l.buf.String(), Kind: kind, Col: l.rune}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number",
	// "input" if the input as a whole is too long, or the empty string if a
	// token kind hadn't been decided.
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	switch err.Kind {
	case "":
		return "invalid token at " + pos + ": " + err.Text
	case "input":
		return "input too long at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
