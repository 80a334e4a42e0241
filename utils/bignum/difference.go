package bignum

import (
	"math/big"
)

// TopDifference returns d! * cd * h^d with prec bits of precision: the value
// of the d-th forward difference of a degree-d polynomial with leading
// coefficient cd sampled at step h, which is constant in the sample position.
func TopDifference(cd, h *big.Float, d int, prec uint) (top *big.Float) {

	top = NewFloat(Factorial(d), prec)
	top.Mul(top, cd)

	if d == 0 || h.Sign() == 0 {
		if d > 0 {
			return NewFloat(nil, prec)
		}
		return
	}

	// Pow requires a positive base; the sign of h^d is reinstated after.
	pow := Pow(NewFloat(nil, prec).Abs(h), NewFloat(d, prec))
	if h.Sign() < 0 && d&1 == 1 {
		pow.Neg(pow)
	}

	return top.Mul(top, pow)
}
