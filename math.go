package assist

import (
	"math"

	"github.com/gonum/floats"
)

const (
	// KnotsToFps converts knots to ft/s.
	KnotsToFps = 1.68780986
	// NmiToFt converts nautical miles to feet.
	NmiToFt = 6076.1154856
)

// interp returns the piecewise linear interpolation of x over the sample
// points xp (sorted ascending) with values yp, clamped at both ends.
func interp(x float64, xp, yp []float64) float64 {
	if len(xp) != len(yp) || len(xp) == 0 {
		panic("interp: mismatched or empty sample points")
	}
	if x <= xp[0] {
		return yp[0]
	}
	if x >= xp[len(xp)-1] {
		return yp[len(yp)-1]
	}
	for i := 1; i < len(xp); i++ {
		if x <= xp[i] {
			t := (x - xp[i-1]) / (xp[i] - xp[i-1])
			return yp[i-1] + t*(yp[i]-yp[i-1])
		}
	}
	return yp[len(yp)-1]
}

// quadPositiveRoot returns the positive root of a*x^2 + b*x - c = 0. Wing
// loading is physical and positive, so only this root is meaningful.
func quadPositiveRoot(a, b, c float64) float64 {
	return (-b + math.Sqrt(b*b+4*a*c)) / (2 * a)
}

// scan returns n linearly spaced samples over [lo, hi].
func scan(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// argMinWithTies returns the index of the smallest value in s; indices whose
// value is within tol of the minimum tie-break to the largest index.
func argMinWithTies(s []float64, tol float64) int {
	idx := floats.MinIdx(s)
	min := s[idx]
	for i := len(s) - 1; i > idx; i-- {
		if s[i]-min <= tol {
			return i
		}
	}
	return idx
}
