// Package tabulate evaluates a polynomial over an arithmetic progression with
// Newton's forward-difference method: d+1 bootstrap evaluations seed a
// difference table, after which every further point costs d additions.
package tabulate

import (
	"errors"
	"fmt"

	"github.com/tuneinsight/polytab/poly"
)

// ErrSampleCount is returned when a difference table is built from a sample
// count that does not match the stated degree.
var ErrSampleCount = errors.New("tabulate: need exactly degree+1 bootstrap samples")

// DifferenceTable holds the leading diagonal of the forward-difference
// pyramid of a degree-d polynomial sampled on an arithmetic progression:
// entry k is the k-th forward difference at the current position. The table
// exclusively owns its diagonal and is mutated in place by Advance.
type DifferenceTable[T any] struct {
	arith poly.Arith[T]
	diag  []T
}

// NewDifferenceTable builds the table from the bootstrap samples
// p(x0), p(x0+h), ..., p(x0+d*h). Exactly degree+1 samples are required.
//
// The full pyramid is collapsed in place over a private copy of the samples:
// pass k turns every entry at index >= k into a k-th difference, so after the
// last pass entry k holds the k-th difference at x0 (TAOCP 4.6.4, ex. 7).
func NewDifferenceTable[T any](arith poly.Arith[T], samples []T, degree int) (*DifferenceTable[T], error) {
	if len(samples) == 0 || len(samples) != degree+1 {
		return nil, fmt.Errorf("%w: got %d samples for degree %d", ErrSampleCount, len(samples), degree)
	}

	diag := make([]T, len(samples))
	copy(diag, samples)
	for k := 1; k < len(diag); k++ {
		for j := len(diag) - 1; j >= k; j-- {
			diag[j] = arith.Sub(diag[j], diag[j-1])
		}
	}

	return &DifferenceTable[T]{arith: arith, diag: diag}, nil
}

// Bootstrap evaluates p directly at the first Degree()+1 points of the
// progression starting at x0 and builds the difference table from the
// results.
func Bootstrap[T any](p poly.Polynomial[T], x0, step T) *DifferenceTable[T] {
	arith := p.Arith()
	samples := make([]T, p.Degree()+1)
	x := x0
	for i := range samples {
		samples[i] = p.Evaluate(x)
		x = arith.Add(x, step)
	}

	// Cannot fail: a Polynomial always has Degree()+1 coefficients.
	t, err := NewDifferenceTable(arith, samples, p.Degree())
	if err != nil {
		panic(err)
	}
	return t
}

// Degree returns the degree of the tabulated polynomial.
func (t *DifferenceTable[T]) Degree() int {
	return len(t.diag) - 1
}

// Value returns the polynomial value at the current position, i.e. the 0-th
// difference.
func (t *DifferenceTable[T]) Value() T {
	return t.diag[0]
}

// Top returns the highest difference. For a degree-d polynomial with leading
// coefficient cd sampled at step h it equals d!*cd*h^d and never changes, no
// matter how far the table advances.
func (t *DifferenceTable[T]) Top() T {
	return t.diag[len(t.diag)-1]
}

// Diagonal returns a copy of the difference diagonal, 0-th difference first.
func (t *DifferenceTable[T]) Diagonal() []T {
	diag := make([]T, len(t.diag))
	copy(diag, t.diag)
	return diag
}

// Advance shifts the table one step along the progression using the identity
// diff_k(x+h) = diff_k(x) + diff_{k+1}(x). Ascending index order reads each
// diff_{k+1} before it is itself advanced; the top entry stays untouched.
// Each call costs Degree() additions.
func (t *DifferenceTable[T]) Advance() {
	for k := 0; k < len(t.diag)-1; k++ {
		t.diag[k] = t.arith.Add(t.diag[k], t.diag[k+1])
	}
}
