package calc

import (
	"strconv"
)

// CharError indicates a rune that cannot start or continue a token. It
// implements InputError.
type CharError struct {
	// Char is the unexpected rune.
	Char rune
	// Col is the position of the rune.
	Col int
}

func (err *CharError) Error() string {
	return errpos(err.Col, "unexpected character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

// NumError indicates a numeric literal that could not be parsed. It
// implements InputError and unwraps to the parse error.
type NumError struct {
	// Text is the literal as it appeared in the input, including any folded
	// minus sign.
	Text string
	// Col is the position of the start of the literal.
	Col int
	// Err is the error from parsing Text.
	Err error
}

func (err *NumError) Error() string {
	msg := "invalid number " + strconv.Quote(err.Text)
	if ne, ok := err.Err.(*strconv.NumError); ok {
		msg += ": " + ne.Err.Error()
	}
	return errpos(err.Col, msg)
}

func (err *NumError) Pos() int {
	return err.Col
}

func (err *NumError) Unwrap() error {
	return err.Err
}

// NameError is an error from a lookup for a variable that is missing from the
// environment. It implements InputError.
type NameError struct {
	// Name is the name that was missing.
	Name string
	// Col is the position of the variable reference.
	Col int
}

func (err *NameError) Error() string {
	return errpos(err.Col, "undefined variable: "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// TokenError indicates a token that is structurally misplaced, such as a
// close parenthesis with no open parenthesis. It implements InputError.
type TokenError struct {
	// Token is the misplaced token.
	Token Token
}

func (err *TokenError) Error() string {
	switch err.Token.Kind {
	case TokenOperator:
		switch err.Token.Operator {
		case OpLParen:
			return errpos(err.Token.Col, "open parenthesis with no close parenthesis")
		case OpRParen:
			return errpos(err.Token.Col, "close parenthesis with no open parenthesis")
		}
	case TokenAssign:
		return errpos(err.Token.Col, "assignment must begin the expression")
	case TokenOperand:
		return errpos(err.Token.Col, "unexpected operand "+err.Token.Operand.String()+" (missing operator?)")
	}
	return errpos(err.Token.Col, "unexpected token "+err.Token.String())
}

func (err *TokenError) Pos() int {
	return err.Token.Col
}

// OperandError indicates an infix operator without one of its operands. It
// implements InputError.
type OperandError struct {
	// Op is the operator missing an operand.
	Op Operator
	// Col is the position of the operator.
	Col int
	// Left is true if the left operand is missing and false if the right one
	// is.
	Left bool
}

func (err *OperandError) Error() string {
	side := "right"
	if err.Left {
		side = "left"
	}
	return errpos(err.Col, "missing "+side+" operand for "+strconv.Quote(err.Op.String()))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// AssignError indicates an assignment with no variable to assign to. It
// implements InputError.
type AssignError struct {
	// Num is the literal that was the target of the assignment, if any.
	Num float64
	// Col is the position of the assignment marker.
	Col int
	// Empty is true if there was no operand before the marker at all.
	Empty bool
}

func (err *AssignError) Error() string {
	if err.Empty {
		return errpos(err.Col, "nothing to assign to")
	}
	return errpos(err.Col, "cannot assign to a number ("+Num(err.Num).String()+")")
}

func (err *AssignError) Pos() int {
	return err.Col
}

// EmptyResultError indicates an expression that produced no value, e.g. an
// empty line or "()". It implements InputError.
type EmptyResultError struct {
	// Col is the position just past the end of the expression.
	Col int
}

func (err *EmptyResultError) Error() string {
	if err.Col <= 1 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "expression has no value")
}

func (err *EmptyResultError) Pos() int {
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
	// Pos returns the position of the error as the 1-based rune column of
	// the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*NumError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*AssignError)(nil)
	_ InputError = (*EmptyResultError)(nil)
)
