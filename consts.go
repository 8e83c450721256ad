package calc

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Names of the variables defined by Consts.
const (
	Pi = "pi"
	E  = "e"
)

// pi computes π to prec bits and rounds it to float64.
func pi(prec uint) float64 {
	r, _ := bigfloat.Pi(new(big.Float).SetPrec(prec)).Float64()
	return r
}

// e computes Euler's number to prec bits and rounds it to float64.
func e(prec uint) float64 {
	one := new(big.Float).SetPrec(prec).SetFloat64(1)
	z := new(big.Float).SetPrec(prec)
	bigfloat.Exp(z, one)
	r, _ := z.Float64()
	return r
}

// bigpow computes x^y to prec bits and rounds it to float64. x must be
// positive and finite, and y must be finite.
func bigpow(x, y float64, prec uint) float64 {
	bx := new(big.Float).SetPrec(prec).SetFloat64(x)
	by := new(big.Float).SetPrec(prec).SetFloat64(y)
	z := new(big.Float).SetPrec(prec)
	bigfloat.Pow(z, bx, by)
	r, _ := z.Float64()
	return r
}
