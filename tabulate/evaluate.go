package tabulate

import (
	"github.com/tuneinsight/polytab/poly"
)

// Strategy selects between direct Horner evaluation of every point and
// forward-difference tabulation.
type Strategy int

const (
	// StrategyAuto tabulates when the point count exceeds the configured
	// threshold for the polynomial's degree, and evaluates directly
	// otherwise.
	StrategyAuto Strategy = iota
	// StrategyDirect always evaluates every point with Horner's rule.
	StrategyDirect
	// StrategyTabulate always uses the difference method.
	StrategyTabulate
)

// Config tunes an evaluation run. The zero value is valid: automatic strategy
// with the default threshold and no refresh.
type Config struct {
	Strategy Strategy

	// Threshold reports, for a given degree, the point count above which
	// StrategyAuto tabulates. When nil, DefaultThreshold is used. The true
	// crossover depends on the relative cost of addition and
	// multiplication for the coefficient type, so callers with expensive
	// multiplication (math/big) may want a lower threshold.
	Threshold func(degree int) int

	// RefreshEvery, when positive, rebuilds the difference table from
	// direct evaluations every RefreshEvery emitted points, bounding the
	// additive rounding drift of approximate coefficient types.
	RefreshEvery int
}

// DefaultThreshold tabulates as soon as at least one point lies beyond the
// bootstrap window.
func DefaultThreshold(degree int) int {
	return degree + 1
}

func (cfg Config) tabulates(degree, n int) bool {
	switch cfg.Strategy {
	case StrategyDirect:
		return false
	case StrategyTabulate:
		return true
	default:
		threshold := cfg.Threshold
		if threshold == nil {
			threshold = DefaultThreshold
		}
		return n > threshold(degree)
	}
}

// Evaluate materializes the prog.N values of p over prog, choosing the
// evaluation path per cfg.
func Evaluate[T any](p poly.Polynomial[T], prog poly.Progression[T], cfg Config) ([]T, error) {
	arith := p.Arith()
	if err := prog.Validate(arith); err != nil {
		return nil, err
	}

	if !cfg.tabulates(p.Degree(), prog.N) {
		out := make([]T, prog.N)
		x := prog.X0
		for i := range out {
			out[i] = p.Evaluate(x)
			x = arith.Add(x, prog.Step)
		}
		return out, nil
	}

	t, err := NewTabulator(p, prog, cfg)
	if err != nil {
		return nil, err
	}
	return t.Values(), nil
}
