package utils

import (
	"cmp"
	"math"
)

// Clamp returns value limited to the closed range [lo, hi].
func Clamp[T cmp.Ordered](value, lo, hi T) T {
	return max(lo, min(value, hi))
}

// FloorToInt64 floors x and converts it to an int64, saturating at the int64 range. NaN maps to 0.
func FloorToInt64(x float64) int64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt64:
		return math.MaxInt64
	case x < math.MinInt64:
		return math.MinInt64
	}
	return int64(math.Floor(x))
}
