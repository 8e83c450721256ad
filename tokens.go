package calc

import (
	"strconv"
	"strings"
)

// TokenKind is the variant of a Token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenOperand is a number or a variable reference.
	TokenOperand
	// TokenOperator is an infix operator or a parenthesis.
	TokenOperator
	// TokenAssign is the = marker.
	TokenAssign
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case TokenOperand:
		return "Operand"
	case TokenOperator:
		return "Operator"
	case TokenAssign:
		return "Assign"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is a single lexical element of an expression. Only the field
// selected by Kind is meaningful.
type Token struct {
	Kind     TokenKind
	Operand  Operand
	Operator Operator
	// Col is the 1-based rune column where the token starts.
	Col int
}

// NumToken creates a numeric operand token.
func NumToken(x float64, col int) Token {
	return Token{Kind: TokenOperand, Operand: Num(x), Col: col}
}

// VarToken creates a variable reference token.
func VarToken(name string, col int) Token {
	return Token{Kind: TokenOperand, Operand: Var(name), Col: col}
}

// OpToken creates an operator token.
func OpToken(op Operator, col int) Token {
	return Token{Kind: TokenOperator, Operator: op, Col: col}
}

// AssignToken creates an assignment marker token.
func AssignToken(col int) Token {
	return Token{Kind: TokenAssign, Col: col}
}

func (t Token) String() string {
	var s string
	switch t.Kind {
	case TokenOperand:
		s = t.Operand.String()
	case TokenOperator:
		s = t.Operator.String()
	case TokenAssign:
		s = "="
	default:
		s = "$"
	}
	return s + "@" + strconv.Itoa(t.Col)
}

// Operand is a numeric literal or an unresolved variable reference. An
// Operand with a non-empty Name is a variable; otherwise it is the number
// Num.
type Operand struct {
	Name string
	Num  float64
}

// Num creates a numeric operand.
func Num(x float64) Operand {
	return Operand{Num: x}
}

// Var creates a variable operand.
func Var(name string) Operand {
	return Operand{Name: name}
}

// IsVar returns whether the operand is a variable reference.
func (o Operand) IsVar() bool {
	return o.Name != ""
}

func (o Operand) String() string {
	if o.IsVar() {
		return o.Name
	}
	return strconv.FormatFloat(o.Num, 'g', -1, 64)
}

// Operator is an infix operator or a parenthesis.
type Operator int8

const (
	opNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	// OpPow is exponentiation. The tokenizer produces it only when
	// exponentiation is enabled.
	OpPow
	OpLParen
	OpRParen
)

// Operators contains the runes which are infix operators, in the order of
// the Operator constants starting at OpAdd.
const Operators = "+-*/^"

// opFor gets the operator for a rune, or opNone if the rune is not an
// operator or parenthesis.
func opFor(r rune) Operator {
	if k := strings.IndexRune(Operators, r); k >= 0 {
		return OpAdd + Operator(k)
	}
	switch r {
	case '(':
		return OpLParen
	case ')':
		return OpRParen
	}
	return opNone
}

// Infix returns whether op is a binary operator rather than a parenthesis.
func (op Operator) Infix() bool {
	return OpAdd <= op && op <= OpPow
}

// Prec returns the precedence of an infix operator. Higher binds tighter.
// Parentheses have precedence 0.
func (op Operator) Prec() int {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	case OpPow:
		return 3
	default:
		return 0
	}
}

// RightAssoc returns whether the operator groups right to left.
func (op Operator) RightAssoc() bool {
	return op == OpPow
}

// yields returns whether an operator already on the stack must be applied
// before pushing next.
func (op Operator) yields(next Operator) bool {
	if !op.Infix() {
		return false
	}
	if op.Prec() != next.Prec() {
		return op.Prec() > next.Prec()
	}
	return !next.RightAssoc()
}

func (op Operator) String() string {
	switch {
	case op.Infix():
		return Operators[op-OpAdd : op-OpAdd+1]
	case op == OpLParen:
		return "("
	case op == OpRParen:
		return ")"
	default:
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
}

// FormatTokens writes a token sequence as space-separated text.
func FormatTokens(toks []Token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch t.Kind {
		case TokenOperand:
			b.WriteString(t.Operand.String())
		case TokenOperator:
			b.WriteString(t.Operator.String())
		case TokenAssign:
			b.WriteByte('=')
		default:
			b.WriteByte('$')
		}
	}
	return b.String()
}
