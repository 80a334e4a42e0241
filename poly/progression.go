package poly

import (
	"errors"
)

var (
	// ErrZeroStep is returned for a progression with a zero step and more
	// than one point. The difference method degenerates on repeated points,
	// so this is treated as a usage error rather than silently tabulating
	// the same value.
	ErrZeroStep = errors.New("poly: progression step is zero with more than one point")

	// ErrNegativeCount is returned for a progression with a negative number
	// of points.
	ErrNegativeCount = errors.New("poly: progression count is negative")
)

// Progression describes the evaluation points X0, X0+Step, ..., X0+(N-1)*Step.
type Progression[T any] struct {
	X0   T
	Step T
	N    int
}

// Validate checks the progression under the given arithmetic.
func (pr Progression[T]) Validate(arith Arith[T]) error {
	if pr.N < 0 {
		return ErrNegativeCount
	}
	if pr.N > 1 && arith.IsZero(pr.Step) {
		return ErrZeroStep
	}
	return nil
}

// Points returns the first n points of the progression, regardless of N.
func (pr Progression[T]) Points(arith Arith[T], n int) []T {
	pts := make([]T, n)
	x := pr.X0
	for i := range pts {
		pts[i] = x
		x = arith.Add(x, pr.Step)
	}
	return pts
}
