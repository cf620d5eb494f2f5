package calculus

import "strconv"

// Token is a lexical unit of an expression. Parse consumes a slice of tokens;
// Tokenize produces one from text, but any producer that follows the same
// contract works.
type Token struct {
	// Kind is the kind of the token.
	Kind TokenKind
	// Value is the value of a number or named constant.
	Value float64
	// Name is the name of a variable, constant, or function.
	Name string
	// Op is the operator of an operator token.
	Op Op
	// Pos is the rune column of the start of the token in its source text,
	// or 0 if the token was not scanned from text.
	Pos int
}

func (t Token) String() string {
	var s string
	switch t.Kind {
	case TokenNumber:
		s = strconv.FormatFloat(t.Value, 'g', -1, 64)
	case TokenVariable, TokenConstant, TokenFunc:
		s = t.Name
	case TokenOperator:
		s = t.Op.String()
	case TokenLParen:
		s = "("
	case TokenRParen:
		s = ")"
	case TokenComma:
		s = ","
	}
	return t.Kind.String() + ":" + s + "@" + strconv.Itoa(t.Pos)
}

// text is the token as it would appear in an expression.
func (t Token) text() string {
	switch t.Kind {
	case TokenNumber:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case TokenVariable, TokenConstant, TokenFunc:
		return t.Name
	case TokenOperator:
		return t.Op.String()
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	case TokenComma:
		return ","
	default:
		return ""
	}
}

// TokenKind is the kind of a token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNumber is a numeric literal.
	TokenNumber
	// TokenVariable is a name that is not a known constant or function.
	TokenVariable
	// TokenConstant is a named constant like pi. Value holds its value.
	TokenConstant
	// TokenFunc is a function name.
	TokenFunc
	// TokenOperator is one of + - * / ^.
	TokenOperator
	// TokenLParen is an open parenthesis.
	TokenLParen
	// TokenRParen is a close parenthesis.
	TokenRParen
	// TokenComma separates the arguments of a function call.
	TokenComma
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token
//go:generate go mod tidy
