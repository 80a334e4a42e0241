package tabulate

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/tuneinsight/polytab/poly"
)

// DriftReport summarizes the absolute error between a tabulated float64 run
// and direct evaluation of the same points.
type DriftReport struct {
	Max    float64
	Mean   float64
	Median float64
}

// Drift tabulates p over prog with cfg (the strategy is forced to
// StrategyTabulate) and compares every value against direct Horner
// evaluation. Tabulation accumulates rounding error additively where direct
// evaluation recomputes from scratch, so the report is the measurement to
// consult when choosing cfg.RefreshEvery.
func Drift(p poly.Polynomial[float64], prog poly.Progression[float64], cfg Config) (DriftReport, error) {
	cfg.Strategy = StrategyTabulate
	tabulated, err := Evaluate(p, prog, cfg)
	if err != nil {
		return DriftReport{}, err
	}

	cfg.Strategy = StrategyDirect
	direct, err := Evaluate(p, prog, cfg)
	if err != nil {
		return DriftReport{}, err
	}

	if prog.N == 0 {
		return DriftReport{}, nil
	}

	abs := make(stats.Float64Data, prog.N)
	for i := range abs {
		abs[i] = math.Abs(tabulated[i] - direct[i])
	}

	var report DriftReport
	if report.Max, err = stats.Max(abs); err != nil {
		return DriftReport{}, err
	}
	if report.Mean, err = stats.Mean(abs); err != nil {
		return DriftReport{}, err
	}
	if report.Median, err = stats.Median(abs); err != nil {
		return DriftReport{}, err
	}
	return report, nil
}
