package calculus

import "strconv"

// ParseError is an error indicating a token sequence that does not form an
// expression. It implements InputError.
type ParseError struct {
	// Index is the index in the token sequence of the token that caused the
	// error. It is the length of the sequence if the error is an unexpected
	// end of input.
	Index int
	// Kind is the kind of error.
	Kind ParseErrorKind
	// Tok is the token that caused the error. It is the zero Token if the
	// input ended early.
	Tok Token
	// Func is the function name for ErrMissingCallParen and ErrArgCount.
	Func string
	// Args is the number of arguments given for ErrArgCount.
	Args int
	// Limit is the nesting limit for ErrTooDeep.
	Limit int
}

func (err *ParseError) Error() string {
	var msg string
	switch err.Kind {
	case ErrUnexpectedEnd:
		msg = "unexpected end of expression"
	case ErrMissingCallParen:
		msg = "expected ( after " + err.Func
		if err.Tok.Kind != TokenNone {
			msg += ", not " + strconv.Quote(err.Tok.text())
		}
	case ErrUnclosedParen:
		msg = "missing close parenthesis"
		if err.Tok.Kind != TokenNone {
			msg += " before " + strconv.Quote(err.Tok.text())
		}
	case ErrBadPrimary:
		msg = "expected a term, not " + strconv.Quote(err.Tok.text())
	case ErrTrailing:
		msg = "unexpected " + strconv.Quote(err.Tok.text()) + " after expression"
		if err.Tok.Kind == TokenRParen {
			msg = "close parenthesis with no open parenthesis"
		}
	case ErrTooDeep:
		msg = "expression nested more than " + strconv.Itoa(err.Limit) + " levels deep"
	case ErrArgCount:
		msg = "cannot call " + err.Func + " with " + strconv.Itoa(err.Args) + " arguments"
	default:
		msg = "parse error " + err.Kind.String()
	}
	return errpos(err.Index, msg)
}

func (err *ParseError) Pos() int {
	return err.Index
}

// ParseErrorKind classifies parse errors.
type ParseErrorKind int8

const (
	// ErrUnexpectedEnd is the input ending where a term is expected.
	ErrUnexpectedEnd ParseErrorKind = iota + 1
	// ErrMissingCallParen is a function name not followed by (.
	ErrMissingCallParen
	// ErrUnclosedParen is a ( with no matching ).
	ErrUnclosedParen
	// ErrBadPrimary is a token that cannot start a term.
	ErrBadPrimary
	// ErrTrailing is a token left over after a complete expression.
	ErrTrailing
	// ErrTooDeep is nesting beyond the parser's depth limit.
	ErrTooDeep
	// ErrArgCount is a call with the wrong number of arguments.
	ErrArgCount
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=ParseErrorKind -trimprefix=Err
//go:generate go mod tidy

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error. For a LexError, it is the number
	// of runes up to and including the one that caused the error. For a
	// ParseError, it is the index of the offending token.
	Pos() int
}

var (
	_ InputError = (*ParseError)(nil)
	_ InputError = (*LexError)(nil)
)
