package arithmetic

import "strconv"

// ExpressionError is the error for every malformed expression: a character
// outside the alphabet of the notation, an operator without two operands,
// unbalanced parentheses, or division by zero. It implements InputError.
type ExpressionError struct {
	// Input is the complete expression as given by the caller.
	Input string
	// Col is the rune column of the token that caused the error, counting from
	// 1, or 0 if the error is not tied to a single token.
	Col int
	// Msg describes the problem.
	Msg string
}

func (err *ExpressionError) Error() string {
	msg := err.Msg
	if err.Col > 0 {
		msg = errpos(err.Col, msg)
	}
	return "malformed expression " + strconv.Quote(err.Input) + ": " + msg
}

func (err *ExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the rune column of the token that caused the error, or 0 if
	// the error concerns the expression as a whole.
	Pos() int
}

var _ InputError = (*ExpressionError)(nil)

// unallowed creates the error for a character that does not belong in an
// expression.
func unallowed(src string, col int, r rune) error {
	return &ExpressionError{Input: src, Col: col, Msg: "unallowed character " + strconv.QuoteRune(r)}
}
