package calc

// LexOption is an option for tokenizing.
type LexOption interface {
	lexOption(lexcfg) lexcfg
}

// lexcfg holds the settings for a single tokenization.
type lexcfg struct {
	// pow indicates that ^ is an operator rather than an unexpected rune.
	pow bool
}

type powlexopt struct{}

func (powlexopt) lexOption(c lexcfg) lexcfg {
	c.pow = true
	return c
}

// AllowPow tells the tokenizer to produce OpPow for ^.
func AllowPow() LexOption {
	return powlexopt{}
}

// Option is an option used when creating a Calc.
type Option interface {
	calcOption()
}

type (
	varopt struct {
		name string
		val  float64
	}
	varsopt  map[string]float64
	powopt   uint
	constopt struct{}
)

func (varopt) calcOption()   {}
func (varsopt) calcOption()  {}
func (powopt) calcOption()   {}
func (constopt) calcOption() {}

// SetVar sets the value of a variable in the environment.
func SetVar(name string, val float64) Option {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the environment.
func SetVars(vars map[string]float64) Option {
	return varsopt(vars)
}

// Pow enables the ^ operator. Exponentiation of positive finite bases is
// computed with prec bits of precision and then rounded to float64. A prec
// of 0 uses DefaultPrec.
func Pow(prec uint) Option {
	return powopt(prec)
}

// Consts defines the variables pi and e. They are ordinary variables and can
// be reassigned.
func Consts() Option {
	return constopt{}
}

// DefaultPrec is the precision used for exponentiation when Pow is given
// zero.
const DefaultPrec = 128
