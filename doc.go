// Package calc implements an interactive floating-point calculator.
//
// An expression is a line like "x = 3 * (2 + y)". Numbers, variables, the
// operators + - * / and parentheses are evaluated with the usual precedence,
// left to right. An expression may begin with one or more "name =" to assign
// its result. Every successful evaluation also assigns the result to ans, so
// the next line can refer to it.
//
// A minus sign directly followed by a digit is part of a number, so "9 - 6"
// is a subtraction but "9 -6" is two numbers (and an error). Division by zero
// follows IEEE-754 and gives an infinity or NaN.
//
// Evaluation uses two stacks, one of operands and one of pending operators.
// Variables are looked up only when an operator consumes them, which is what
// lets the first operand of an expression become an assignment target.
//
package calc
