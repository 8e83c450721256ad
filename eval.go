package calc

import (
	"math"
	"strings"

	"fortio.org/log"
)

// Ans is the variable which holds the result of the last successful
// evaluation.
const Ans = "ans"

// Calc evaluates expressions against a variable environment that persists
// across evaluations. It is not safe to use a Calc concurrently.
type Calc struct {
	vars env
	// prec is the precision for exponentiation, or 0 if ^ is disabled.
	prec uint
}

// NewCalc creates a calculator with an empty environment and applies opts to
// it.
func NewCalc(opts ...Option) *Calc {
	c := Calc{vars: make(env)}
	return c.Clone(opts...)
}

// Clone creates a copy of a calculator and applies options to it. Changes to
// either environment are not visible in the other.
func (c *Calc) Clone(opts ...Option) *Calc {
	n := Calc{
		vars: c.vars.clone(),
		prec: c.prec,
	}
	// Apply precision first so that constants use the last one given.
	for i := len(opts) - 1; i >= 0; i-- {
		if p, ok := opts[i].(powopt); ok {
			n.prec = uint(p)
			if n.prec == 0 {
				n.prec = DefaultPrec
			}
			break
		}
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.vars[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.vars[k] = v
			}
		case constopt:
			prec := n.prec
			if prec == 0 {
				prec = DefaultPrec
			}
			n.vars[Pi] = pi(prec)
			n.vars[E] = e(prec)
		case powopt:
			// Already done. Do nothing.
		default:
			panic("calc: unknown option type")
		}
	}
	return &n
}

// Lookup returns the value of a variable and whether it is defined.
func (c *Calc) Lookup(name string) (float64, bool) {
	return c.vars.lookup(name)
}

// Set sets the value of a variable. Returns c for chaining.
func (c *Calc) Set(name string, value float64) *Calc {
	c.vars[name] = value
	return c
}

// Vars returns the sorted names of all defined variables.
func (c *Calc) Vars() []string {
	return c.vars.names()
}

// LexOptions returns the tokenizing options matching the calculator's
// operators.
func (c *Calc) LexOptions() []LexOption {
	if c.prec == 0 {
		return nil
	}
	return []LexOption{AllowPow()}
}

// Eval tokenizes and evaluates an expression. On success, any assigned
// variables and Ans are set to the result. On failure, the environment is
// unchanged.
func (c *Calc) Eval(src string) (float64, error) {
	toks, err := Tokenize(strings.NewReader(src), c.LexOptions()...)
	if err != nil {
		log.LogVf("tokenizing %q: %v", src, err)
		return 0, err
	}
	return c.EvalTokens(toks)
}

// EvalTokens evaluates a token sequence. On success, any assigned variables
// and Ans are set to the result. On failure, the environment is unchanged.
func (c *Calc) EvalTokens(toks []Token) (float64, error) {
	m := newMachine(c.vars, c.prec)
	for _, tok := range toks {
		if err := m.step(tok); err != nil {
			log.LogVf("evaluating %s: %v", FormatTokens(toks), err)
			return 0, err
		}
	}
	end := 1
	if len(toks) > 0 {
		end = toks[len(toks)-1].Col + 1
	}
	r, err := m.finish(end)
	if err != nil {
		log.LogVf("evaluating %s: %v", FormatTokens(toks), err)
		return 0, err
	}
	for _, name := range m.targets {
		log.LogVf("assign %s = %g", name, r)
		c.vars[name] = r
	}
	c.vars[Ans] = r
	return r, nil
}

// machine is the state of a single evaluation.
type machine struct {
	vars      env
	prec      uint
	operands  stack
	operators stack
	// targets is the list of variables to assign the result to.
	targets []string
	// wantOperand is true when the next token must begin an operand: a
	// number, a variable, or an open parenthesis.
	wantOperand bool
	// last is the previous token, or the zero Token before the first.
	last Token
	// lead counts tokens since the start of the statement or the last
	// assignment marker.
	lead int
}

func newMachine(vars env, prec uint) *machine {
	return &machine{
		vars:        vars,
		prec:        prec,
		operands:    newStack(),
		operators:   newStack(),
		wantOperand: true,
	}
}

// step processes one token.
func (m *machine) step(tok Token) error {
	if err := m.accept(tok); err != nil {
		return err
	}
	m.last = tok
	return nil
}

func (m *machine) accept(tok Token) error {
	if tok.Kind == TokenAssign {
		return m.assign(tok)
	}
	m.lead++
	switch tok.Kind {
	case TokenOperand:
		if !m.wantOperand {
			return &TokenError{Token: tok}
		}
		log.LogVf("push operand %v", tok)
		m.operands.push(tok)
		m.wantOperand = false
	case TokenOperator:
		op := tok.Operator
		switch {
		case op.Infix():
			if m.wantOperand {
				return m.missing(tok)
			}
			for {
				top, ok := m.operators.top()
				if !ok || !top.Operator.yields(op) {
					break
				}
				if err := m.apply(); err != nil {
					return err
				}
			}
			log.LogVf("push operator %v", tok)
			m.operators.push(tok)
			m.wantOperand = true
		case op == OpLParen:
			if !m.wantOperand {
				return &TokenError{Token: tok}
			}
			log.LogVf("push operator %v", tok)
			m.operators.push(tok)
		case op == OpRParen:
			if m.wantOperand {
				return m.missing(tok)
			}
			for {
				top, ok := m.operators.top()
				if !ok {
					return &TokenError{Token: tok}
				}
				if top.Operator == OpLParen {
					m.operators.pop()
					break
				}
				if err := m.apply(); err != nil {
					return err
				}
			}
		default:
			return &TokenError{Token: tok}
		}
	default:
		return &TokenError{Token: tok}
	}
	return nil
}

// missing reports an infix operator or close parenthesis that arrived in
// place of an operand.
func (m *machine) missing(tok Token) error {
	last := m.last
	switch {
	case last.Kind == TokenOperator && last.Operator.Infix():
		return &OperandError{Op: last.Operator, Col: last.Col}
	case tok.Operator.Infix():
		return &OperandError{Op: tok.Operator, Col: tok.Col, Left: true}
	case last.Kind == TokenOperator && last.Operator == OpLParen:
		// "()"
		return &EmptyResultError{Col: tok.Col}
	default:
		return &TokenError{Token: tok}
	}
}

// assign takes the operand before an assignment marker as a target. The
// target must be the only token since the start of the statement or the
// previous marker.
func (m *machine) assign(tok Token) error {
	if m.lead == 0 {
		return &AssignError{Col: tok.Col, Empty: true}
	}
	if m.lead > 1 {
		return &TokenError{Token: tok}
	}
	target, ok := m.operands.pop()
	if !ok {
		// The only token was an operator.
		return &TokenError{Token: tok}
	}
	if !target.Operand.IsVar() {
		return &AssignError{Num: target.Operand.Num, Col: tok.Col}
	}
	log.LogVf("assignment target %v", target)
	m.targets = append(m.targets, target.Operand.Name)
	m.lead = 0
	m.wantOperand = true
	return nil
}

// apply pops an operator and its operands and pushes the result.
func (m *machine) apply() error {
	optok, ok := m.operators.pop()
	if !ok || !optok.Operator.Infix() {
		return &TokenError{Token: optok}
	}
	op := optok.Operator
	rtok, ok := m.operands.pop()
	if !ok {
		return &OperandError{Op: op, Col: optok.Col}
	}
	ltok, ok := m.operands.pop()
	if !ok {
		// The only operand may be on the operator's left, as in "2 +".
		return &OperandError{Op: op, Col: optok.Col, Left: rtok.Col >= optok.Col}
	}
	l, err := m.resolve(ltok)
	if err != nil {
		return err
	}
	r, err := m.resolve(rtok)
	if err != nil {
		return err
	}
	v := m.compute(op, l, r)
	log.LogVf("apply %g %v %g = %g", l, op, r, v)
	m.operands.push(Token{Kind: TokenOperand, Operand: Num(v), Col: ltok.Col})
	return nil
}

func (m *machine) compute(op Operator, l, r float64) float64 {
	switch op {
	case OpAdd:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	case OpDiv:
		// Division by zero gives an infinity or NaN.
		return l / r
	case OpPow:
		return pow(l, r, m.prec)
	default:
		panic("calc: compute on non-infix operator " + op.String())
	}
}

// resolve gets the value of an operand.
func (m *machine) resolve(tok Token) (float64, error) {
	if !tok.Operand.IsVar() {
		return tok.Operand.Num, nil
	}
	v, ok := m.vars.lookup(tok.Operand.Name)
	if !ok {
		return 0, &NameError{Name: tok.Operand.Name, Col: tok.Col}
	}
	return v, nil
}

// finish applies all pending operators and returns the result. end is the
// position past the last token.
func (m *machine) finish(end int) (float64, error) {
	if m.wantOperand && m.last.Kind == TokenOperator && m.last.Operator.Infix() {
		return 0, &OperandError{Op: m.last.Operator, Col: m.last.Col}
	}
	for {
		top, ok := m.operators.top()
		if !ok {
			break
		}
		if top.Operator == OpLParen {
			return 0, &TokenError{Token: top}
		}
		if err := m.apply(); err != nil {
			return 0, err
		}
	}
	tok, ok := m.operands.pop()
	if !ok {
		return 0, &EmptyResultError{Col: end}
	}
	if m.operands.len() != 0 {
		// Unreachable while step rejects an operand after an operand.
		return 0, &TokenError{Token: tok}
	}
	return m.resolve(tok)
}

// pow computes x^y. If prec is nonzero and x^y is a normal float64 with a
// positive base, the power is computed to prec bits before rounding.
func pow(x, y float64, prec uint) float64 {
	f := math.Pow(x, y)
	if prec == 0 || !(x > 0) || math.IsInf(x, 0) || math.IsInf(y, 0) || math.IsNaN(y) {
		return f
	}
	if f == 0 || math.IsInf(f, 0) || math.IsNaN(f) || math.Abs(f) < 0x1p-1022 {
		return f
	}
	return bigpow(x, y, prec)
}
