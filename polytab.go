/*
Package polytab implements fast tabulation of polynomial values over arithmetic
progressions using Newton's forward-difference method (Knuth, The Art of
Computer Programming, vol. 2, section 4.6.4). After a one-time bootstrap of
d+1 direct evaluations, every further point of the progression costs d
additions and no multiplication, which beats Horner evaluation once the number
of requested points sufficiently exceeds the degree. The engine is numerically
agnostic: coefficients may be machine integers or floats, or math/big values.
*/
package polytab
