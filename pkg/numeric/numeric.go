package numeric

import (
	"cmp"
	"math"
)

// DefaultDecimals is the number of fractional digits kept by ParseDecimal callers that
// have no preference.
const DefaultDecimals = 2

// Clamp limits n to the range [lo, hi].
func Clamp[T cmp.Ordered](n, lo, hi T) T {
	return max(lo, min(n, hi))
}

// ValueFromPercent returns the value found percent of the way from lo to hi.
func ValueFromPercent(lo, hi, percent float64) float64 {
	return ((hi-lo)/100)*percent + lo
}

// ParseDecimal rounds value to the given number of fractional digits.
// An epsilon is added first so values such as 1.005 round up as written.
//
//	ParseDecimal(3.4211, 2) // 3.42
//	ParseDecimal(3.4211, 1) // 3.4
//	ParseDecimal(3, 2)      // 3
func ParseDecimal(value float64, decimals int) float64 {
	base := math.Pow(10, float64(decimals))
	return roundHalfUp((value+epsilon)*base) / base
}

// epsilon is the gap between 1 and the next representable float64.
const epsilon = 2.220446049250313e-16

// roundHalfUp rounds half-way cases towards positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Magnitude returns the length of the vector (u, v).
func Magnitude(u, v float64) float64 {
	return math.Hypot(u, v)
}

// Angle returns the direction of the vector (u, v) in whole degrees, in [0, 360).
// Vectors with a NaN component have no direction and return 0.
func Angle(u, v float64) int {
	if math.IsNaN(u) || math.IsNaN(v) {
		return 0
	}
	degrees := math.Atan2(v, u) * 180 / math.Pi
	return (360 + int(roundHalfUp(degrees))) % 360
}
