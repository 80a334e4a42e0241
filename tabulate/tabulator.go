package tabulate

import (
	"github.com/tuneinsight/polytab/poly"
)

// Point is one tabulated sample: the evaluation point and the polynomial
// value at it.
type Point[T any] struct {
	X T
	Y T
}

// Tabulator is a forward-only stepper over the values of a polynomial on an
// arithmetic progression. It owns its difference table outright; independent
// Tabulators never share state and may run on separate goroutines, but a
// single Tabulator must not be used concurrently.
type Tabulator[T any] struct {
	p     poly.Polynomial[T]
	arith poly.Arith[T]
	table *DifferenceTable[T]

	x    T
	step T

	remaining int
	started   bool

	refreshEvery int
	sinceRefresh int
}

// NewTabulator returns a stepper producing the prog.N values of p over prog,
// bootstrapping the difference table from p.Degree()+1 direct evaluations.
// cfg.Strategy is ignored here: constructing a Tabulator is already the
// choice to tabulate.
func NewTabulator[T any](p poly.Polynomial[T], prog poly.Progression[T], cfg Config) (*Tabulator[T], error) {
	if err := prog.Validate(p.Arith()); err != nil {
		return nil, err
	}
	return &Tabulator[T]{
		p:            p,
		arith:        p.Arith(),
		table:        Bootstrap(p, prog.X0, prog.Step),
		x:            prog.X0,
		step:         prog.Step,
		remaining:    prog.N,
		refreshEvery: cfg.RefreshEvery,
	}, nil
}

// Next emits the next point of the progression, or ok=false once the
// configured count is exhausted. The first call returns the bootstrap value
// at X0 itself; each later call advances the table by one step.
func (t *Tabulator[T]) Next() (pt Point[T], ok bool) {
	if t.remaining == 0 {
		return pt, false
	}
	t.remaining--

	if !t.started {
		t.started = true
		return Point[T]{X: t.x, Y: t.table.Value()}, true
	}

	t.x = t.arith.Add(t.x, t.step)
	if t.refreshEvery > 0 && t.sinceRefresh+1 >= t.refreshEvery {
		// Rebuild from fresh direct evaluations to shed accumulated
		// rounding error. A no-op for exact arithmetics.
		t.table = Bootstrap(t.p, t.x, t.step)
		t.sinceRefresh = 0
	} else {
		t.table.Advance()
		t.sinceRefresh++
	}

	return Point[T]{X: t.x, Y: t.table.Value()}, true
}

// Remaining returns how many points the Tabulator will still emit.
func (t *Tabulator[T]) Remaining() int {
	return t.remaining
}

// Values drains the Tabulator, returning all values it has left.
func (t *Tabulator[T]) Values() []T {
	out := make([]T, 0, t.remaining)
	for {
		pt, ok := t.Next()
		if !ok {
			return out
		}
		out = append(out, pt.Y)
	}
}

// Points drains the Tabulator, returning all points it has left.
func (t *Tabulator[T]) Points() []Point[T] {
	out := make([]Point[T], 0, t.remaining)
	for {
		pt, ok := t.Next()
		if !ok {
			return out
		}
		out = append(out, pt)
	}
}
