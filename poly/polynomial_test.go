package poly_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/polytab/poly"
	"github.com/tuneinsight/polytab/utils/bignum"
)

func TestNewPolynomial(t *testing.T) {

	t.Run("Empty", func(t *testing.T) {
		_, err := poly.NewPolynomial[int64](poly.Number[int64]{}, nil)
		require.ErrorIs(t, err, poly.ErrNoCoefficients)
	})

	t.Run("CopiesCoefficients", func(t *testing.T) {
		coeffs := []int64{1, 2, 3}
		p, err := poly.NewPolynomial[int64](poly.Number[int64]{}, coeffs)
		require.NoError(t, err)

		coeffs[2] = 100
		require.Equal(t, int64(3), p.Coefficient(2))

		out := p.Coefficients()
		out[0] = 100
		require.Equal(t, int64(1), p.Coefficient(0))
	})

	t.Run("Degree", func(t *testing.T) {
		p, err := poly.NewPolynomial[int64](poly.Number[int64]{}, []int64{7})
		require.NoError(t, err)
		require.Equal(t, 0, p.Degree())

		p, err = poly.NewPolynomial[int64](poly.Number[int64]{}, []int64{1, 2, 3})
		require.NoError(t, err)
		require.Equal(t, 2, p.Degree())
	})
}

// p(x) = 1 + 2x + 3x^2 at x = 7 is 162 under every arithmetic.
func TestEvaluate(t *testing.T) {

	t.Run("Int64", func(t *testing.T) {
		p, err := poly.NewPolynomial[int64](poly.Number[int64]{}, []int64{1, 2, 3})
		require.NoError(t, err)
		require.Equal(t, int64(162), p.Evaluate(7))
	})

	t.Run("Float64", func(t *testing.T) {
		p, err := poly.NewPolynomial[float64](poly.Number[float64]{}, []float64{1, 2, 3})
		require.NoError(t, err)
		require.Equal(t, float64(162), p.Evaluate(7))
	})

	t.Run("BigInt", func(t *testing.T) {
		p, err := poly.NewPolynomial[*big.Int](poly.BigInt{}, []*big.Int{
			bignum.NewInt(1), bignum.NewInt(2), bignum.NewInt(3),
		})
		require.NoError(t, err)
		require.Equal(t, 0, p.Evaluate(bignum.NewInt(7)).Cmp(bignum.NewInt(162)))
	})

	t.Run("BigRat", func(t *testing.T) {
		p, err := poly.NewPolynomial[*big.Rat](poly.BigRat{}, []*big.Rat{
			big.NewRat(1, 1), big.NewRat(2, 1), big.NewRat(3, 1),
		})
		require.NoError(t, err)
		require.Equal(t, 0, p.Evaluate(big.NewRat(7, 1)).Cmp(big.NewRat(162, 1)))
	})

	t.Run("BigFloat", func(t *testing.T) {
		prec := uint(128)
		p, err := poly.NewPolynomial[*big.Float](poly.BigFloat{Prec: prec}, []*big.Float{
			bignum.NewFloat(1, prec), bignum.NewFloat(2, prec), bignum.NewFloat(3, prec),
		})
		require.NoError(t, err)
		require.Equal(t, 0, p.Evaluate(bignum.NewFloat(7, prec)).Cmp(bignum.NewFloat(162, prec)))
	})

	t.Run("Constant", func(t *testing.T) {
		p, err := poly.NewPolynomial[int64](poly.Number[int64]{}, []int64{42})
		require.NoError(t, err)
		require.Equal(t, int64(42), p.Evaluate(1000))
	})
}

func TestEvaluateDoesNotMutateBigOperands(t *testing.T) {
	x := bignum.NewInt(7)
	c0, c1 := bignum.NewInt(5), bignum.NewInt(-3)

	p, err := poly.NewPolynomial[*big.Int](poly.BigInt{}, []*big.Int{c0, c1})
	require.NoError(t, err)

	require.Equal(t, 0, p.Evaluate(x).Cmp(bignum.NewInt(-16)))
	require.Equal(t, 0, x.Cmp(bignum.NewInt(7)))
	require.Equal(t, 0, c0.Cmp(bignum.NewInt(5)))
	require.Equal(t, 0, c1.Cmp(bignum.NewInt(-3)))
}
