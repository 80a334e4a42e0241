package tabulate_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/polytab/poly"
	"github.com/tuneinsight/polytab/tabulate"
	"github.com/tuneinsight/polytab/utils/sampling"
)

func TestEvaluateStrategies(t *testing.T) {

	p := newInt64Poly(t, 4, -1, 0, 2, 7)
	prog := poly.Progression[int64]{X0: -11, Step: 3, N: 25}

	direct, err := tabulate.Evaluate(p, prog, tabulate.Config{Strategy: tabulate.StrategyDirect})
	require.NoError(t, err)
	require.Len(t, direct, prog.N)

	tabulated, err := tabulate.Evaluate(p, prog, tabulate.Config{Strategy: tabulate.StrategyTabulate})
	require.NoError(t, err)
	require.Equal(t, direct, tabulated)

	auto, err := tabulate.Evaluate(p, prog, tabulate.Config{})
	require.NoError(t, err)
	require.Equal(t, direct, auto)
}

// The threshold only moves the crossover, never the result.
func TestEvaluateThresholdOverride(t *testing.T) {

	p := newInt64Poly(t, 1, 2, 3)
	prog := poly.Progression[int64]{X0: 0, Step: 1, N: 10}

	var called bool
	never := func(degree int) int {
		called = true
		return 1 << 30
	}

	direct, err := tabulate.Evaluate(p, prog, tabulate.Config{Threshold: never})
	require.NoError(t, err)
	require.True(t, called)

	always := func(degree int) int { return 0 }
	tabulated, err := tabulate.Evaluate(p, prog, tabulate.Config{Threshold: always})
	require.NoError(t, err)
	require.Equal(t, direct, tabulated)
}

func TestEvaluateRejectsZeroStep(t *testing.T) {
	p := newInt64Poly(t, 1, 2, 3)
	_, err := tabulate.Evaluate(p, poly.Progression[int64]{X0: 0, Step: 0, N: 2}, tabulate.Config{})
	require.ErrorIs(t, err, poly.ErrZeroStep)
}

// For every polynomial of degree at most 6, tabulation and direct evaluation
// agree elementwise. Exact big.Int arithmetic keeps the property free of
// overflow concerns.
func TestEquivalenceProperty(t *testing.T) {

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("tabulated == direct", prop.ForAll(
		func(coeffs []int64, degree int, x0, step int64, n int) bool {
			if step == 0 {
				step = 1
			}
			coeffs = coeffs[:degree+1]

			arith := poly.BigInt{}
			bigCoeffs := make([]*big.Int, len(coeffs))
			for i, c := range coeffs {
				bigCoeffs[i] = big.NewInt(c)
			}
			p, err := poly.NewPolynomial[*big.Int](arith, bigCoeffs)
			if err != nil {
				return false
			}

			prog := poly.Progression[*big.Int]{
				X0:   big.NewInt(x0),
				Step: big.NewInt(step),
				N:    n,
			}

			tabulated, err := tabulate.Evaluate(p, prog, tabulate.Config{Strategy: tabulate.StrategyTabulate})
			if err != nil {
				return false
			}
			direct, err := tabulate.Evaluate(p, prog, tabulate.Config{Strategy: tabulate.StrategyDirect})
			if err != nil {
				return false
			}

			if len(tabulated) != len(direct) {
				return false
			}
			for i := range tabulated {
				if tabulated[i].Cmp(direct[i]) != 0 {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(7, gen.Int64Range(-1000, 1000)),
		gen.IntRange(0, 6),
		gen.Int64Range(-1000, 1000),
		gen.Int64Range(-100, 100),
		gen.IntRange(0, 50),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Float64 runs agree within a tolerance growing with the number of additive
// steps.
func TestEquivalenceFloat64(t *testing.T) {

	prng, err := sampling.NewKeyedPRNG(sampling.DeriveKey("equivalence/float64", []byte("polytab")))
	require.NoError(t, err)
	source := sampling.NewSource(prng)

	for d := 0; d <= 6; d++ {
		coeffs := source.Float64Slice(d+1, -10, 10)
		p, err := poly.NewPolynomial[float64](poly.Number[float64]{}, coeffs)
		require.NoError(t, err)

		prog := poly.Progression[float64]{
			X0:   source.Float64(-5, 5),
			Step: source.Float64(0.01, 1),
			N:    200,
		}

		tabulated, err := tabulate.Evaluate(p, prog, tabulate.Config{Strategy: tabulate.StrategyTabulate})
		require.NoError(t, err)
		direct, err := tabulate.Evaluate(p, prog, tabulate.Config{Strategy: tabulate.StrategyDirect})
		require.NoError(t, err)

		// Additive drift scales with the largest magnitude seen so far,
		// not with the value at the current point.
		maxAbs := 1.0
		for i := range direct {
			maxAbs = math.Max(maxAbs, math.Abs(direct[i]))
			require.InDelta(t, direct[i], tabulated[i], 1e-9*maxAbs, "degree %d index %d", d, i)
		}
	}
}

func benchmarkPoly(b *testing.B, degree int) poly.Polynomial[int64] {
	b.Helper()
	prng, err := sampling.NewKeyedPRNG(sampling.DeriveKey("benchmark", []byte("polytab")))
	if err != nil {
		b.Fatal(err)
	}
	p, err := poly.NewPolynomial[int64](poly.Number[int64]{}, sampling.NewSource(prng).Int64Slice(degree+1, 100))
	if err != nil {
		b.Fatal(err)
	}
	return p
}

func BenchmarkEvaluateDirect(b *testing.B) {
	p := benchmarkPoly(b, 6)
	prog := poly.Progression[int64]{X0: 0, Step: 1, N: 1 << 14}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tabulate.Evaluate(p, prog, tabulate.Config{Strategy: tabulate.StrategyDirect}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluateTabulate(b *testing.B) {
	p := benchmarkPoly(b, 6)
	prog := poly.Progression[int64]{X0: 0, Step: 1, N: 1 << 14}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tabulate.Evaluate(p, prog, tabulate.Config{Strategy: tabulate.StrategyTabulate}); err != nil {
			b.Fatal(err)
		}
	}
}
