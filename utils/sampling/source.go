package sampling

import (
	"encoding/binary"
	"math"
	"math/big"
)

// Source draws random polynomial coefficients and evaluation points from a
// PRNG.
type Source struct {
	prng PRNG
}

// NewSource returns a Source reading from the given PRNG.
func NewSource(prng PRNG) *Source {
	return &Source{prng: prng}
}

func (s *Source) uint64() uint64 {
	b := make([]byte, 8)
	if _, err := s.prng.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// Int64n returns a random int64 in [-bound, bound]. Panics if bound is
// negative or if the range 2*bound+1 overflows an int64.
func (s *Source) Int64n(bound int64) int64 {
	if bound < 0 || bound > (math.MaxInt64-1)/2 {
		panic("cannot Int64n: bound must be in [0, (MaxInt64-1)/2]")
	}
	return int64(s.uint64()%uint64(2*bound+1)) - bound
}

// Float64 returns a random float64 in [min, max].
func (s *Source) Float64(min, max float64) float64 {
	f := float64(s.uint64()) / 1.8446744073709552e+19
	return min + f*(max-min)
}

// BigInt returns a random *big.Int in [-bound, bound].
func (s *Source) BigInt(bound int64) *big.Int {
	return new(big.Int).SetInt64(s.Int64n(bound))
}

// Int64Slice returns n random int64 values in [-bound, bound].
func (s *Source) Int64Slice(n int, bound int64) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = s.Int64n(bound)
	}
	return out
}

// Float64Slice returns n random float64 values in [min, max].
func (s *Source) Float64Slice(n int, min, max float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.Float64(min, max)
	}
	return out
}

// BigIntSlice returns n random *big.Int values in [-bound, bound].
func (s *Source) BigIntSlice(n int, bound int64) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = s.BigInt(bound)
	}
	return out
}
