package poly

import (
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/tuneinsight/polytab/utils/bignum"
)

// Arith defines the coefficient arithmetic of a polynomial. Implementations
// must be pure: operands are never mutated and results never alias them, so
// that values handed out by a tabulation run stay valid after the run
// advances. All provided implementations are stateless (or hold only
// configuration) and safe for concurrent use.
type Arith[T any] interface {
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	// IsZero reports whether x is the additive identity.
	IsZero(x T) bool
}

// Number provides arithmetic over machine integers and floats.
type Number[T constraints.Integer | constraints.Float] struct{}

func (Number[T]) Add(a, b T) T    { return a + b }
func (Number[T]) Sub(a, b T) T    { return a - b }
func (Number[T]) Mul(a, b T) T    { return a * b }
func (Number[T]) IsZero(x T) bool { return x == 0 }

// BigInt provides exact arithmetic over *big.Int. Results are always freshly
// allocated.
type BigInt struct{}

func (BigInt) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (BigInt) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func (BigInt) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }
func (BigInt) IsZero(x *big.Int) bool     { return x.Sign() == 0 }

// BigRat provides exact arithmetic over *big.Rat. Results are always freshly
// allocated.
type BigRat struct{}

func (BigRat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (BigRat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (BigRat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (BigRat) IsZero(x *big.Rat) bool     { return x.Sign() == 0 }

// BigFloat provides arithmetic over *big.Float with Prec bits of mantissa.
// The zero value uses DefaultBigFloatPrec.
type BigFloat struct {
	Prec uint
}

// DefaultBigFloatPrec is the mantissa size used by BigFloat when Prec is 0.
const DefaultBigFloatPrec uint = 128

func (r BigFloat) prec() uint {
	if r.Prec == 0 {
		return DefaultBigFloatPrec
	}
	return r.Prec
}

func (r BigFloat) Add(a, b *big.Float) *big.Float { return bignum.NewFloat(nil, r.prec()).Add(a, b) }
func (r BigFloat) Sub(a, b *big.Float) *big.Float { return bignum.NewFloat(nil, r.prec()).Sub(a, b) }
func (r BigFloat) Mul(a, b *big.Float) *big.Float { return bignum.NewFloat(nil, r.prec()).Mul(a, b) }
func (r BigFloat) IsZero(x *big.Float) bool       { return x.Sign() == 0 }
