package symexpr

import "strconv"

// ErrorKind classifies a ParseError.
type ErrorKind int8

const (
	// EmptyInput is input with no tokens.
	EmptyInput ErrorKind = iota + 1
	// UnmatchedOpenParen is an open parenthesis with no close parenthesis.
	UnmatchedOpenParen
	// UnmatchedCloseParen is a close parenthesis with no open parenthesis.
	UnmatchedCloseParen
	// UnknownOperator is a group whose operator position holds something that
	// is not an operator symbol.
	UnknownOperator
	// EmptyGroup is "()".
	EmptyGroup
	// WrongOperandCount is an operator applied to a number of operands it
	// does not accept.
	WrongOperandCount
	// InvalidOperand is an operator symbol in operand position.
	InvalidOperand
	// UnexpectedToken is a token that is not an operator, variable, or
	// number, or a lone operator symbol at the top level.
	UnexpectedToken
	// TrailingInput is input following a complete expression.
	TrailingInput
	// MalformedTopLevel is input that leaves more than one item at the top
	// level, e.g. an operator outside of parentheses.
	MalformedTopLevel
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case UnmatchedOpenParen:
		return "UnmatchedOpenParen"
	case UnmatchedCloseParen:
		return "UnmatchedCloseParen"
	case UnknownOperator:
		return "UnknownOperator"
	case EmptyGroup:
		return "EmptyGroup"
	case WrongOperandCount:
		return "WrongOperandCount"
	case InvalidOperand:
		return "InvalidOperand"
	case UnexpectedToken:
		return "UnexpectedToken"
	case TrailingInput:
		return "TrailingInput"
	case MalformedTopLevel:
		return "MalformedTopLevel"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseError is an error from malformed input. It implements InputError.
// Each of Expected, Found, and Col may be absent.
type ParseError struct {
	// Kind is the class of error.
	Kind ErrorKind
	// Expected describes what the parser needed, or "".
	Expected string
	// Found describes what the parser saw instead, or "".
	Found string
	// Col is the 1-based rune position of the offending token, or 0 if the
	// error has no position.
	Col int
}

func (err *ParseError) Error() string {
	var s string
	switch {
	case err.Expected != "" && err.Found != "":
		s = "Expected " + err.Expected + ", found " + err.Found
	case err.Expected != "":
		s = "Expected " + err.Expected
	case err.Found != "":
		s = "Found " + err.Found
	}
	switch {
	case err.Col > 0 && s == "":
		return "Error at position " + strconv.Itoa(err.Col)
	case err.Col > 0:
		return s + " at position " + strconv.Itoa(err.Col)
	case s == "":
		return "parse error"
	}
	return s
}

func (err *ParseError) Pos() int {
	return err.Col
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based position of the token that caused the error, in
	// runes, or 0 if the error does not refer to a single token.
	Pos() int
}

var _ InputError = (*ParseError)(nil)

// quote formats a token for an error message.
func quote(s string) string {
	return "'" + s + "'"
}

// operands formats a count of operands.
func operands(n int) string {
	switch n {
	case Variadic:
		return "at least 1 operand"
	case 1:
		return "1 operand"
	default:
		return strconv.Itoa(n) + " operands"
	}
}
