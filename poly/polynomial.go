// Package poly defines the polynomial representation shared by the tabulation
// engine: coefficients in increasing degree order over a caller-chosen
// arithmetic.
package poly

import (
	"errors"
)

// ErrNoCoefficients is returned when constructing a polynomial from an empty
// coefficient slice.
var ErrNoCoefficients = errors.New("poly: polynomial requires at least one coefficient")

// Polynomial is an immutable univariate polynomial. Coefficients are stored in
// increasing degree order: coefficient k multiplies x^k. A constant polynomial
// has a single coefficient.
type Polynomial[T any] struct {
	arith  Arith[T]
	coeffs []T
}

// NewPolynomial returns the polynomial with the given coefficients, c0 first.
// The slice is copied. Trailing zero coefficients are kept as-is: the caller's
// stated degree is trusted, not normalized away.
func NewPolynomial[T any](arith Arith[T], coeffs []T) (Polynomial[T], error) {
	if len(coeffs) == 0 {
		return Polynomial[T]{}, ErrNoCoefficients
	}
	c := make([]T, len(coeffs))
	copy(c, coeffs)
	return Polynomial[T]{arith: arith, coeffs: c}, nil
}

// Degree returns the degree of the polynomial, i.e. one less than its number
// of coefficients.
func (p Polynomial[T]) Degree() int {
	return len(p.coeffs) - 1
}

// Arith returns the coefficient arithmetic the polynomial was built with.
func (p Polynomial[T]) Arith() Arith[T] {
	return p.arith
}

// Coefficient returns the coefficient of x^k.
func (p Polynomial[T]) Coefficient(k int) T {
	return p.coeffs[k]
}

// Coefficients returns a copy of the coefficient slice, c0 first.
func (p Polynomial[T]) Coefficients() []T {
	c := make([]T, len(p.coeffs))
	copy(c, p.coeffs)
	return c
}

// Evaluate returns p(x) by Horner's rule, using Degree() multiply-adds.
func (p Polynomial[T]) Evaluate(x T) T {
	d := len(p.coeffs) - 1
	acc := p.coeffs[d]
	for k := d - 1; k >= 0; k-- {
		acc = p.arith.Add(p.arith.Mul(acc, x), p.coeffs[k])
	}
	return acc
}
