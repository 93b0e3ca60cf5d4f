// Package cumsearch implements a cumulative-weight interval index over an
// ordered finite support, with O(log n) lookup of the interval containing
// a point on the weight line.
package cumsearch

import (
	"fmt"
	"math"
)

const tol = 1e-9

// Interval is one node of the index. It owns the half-open range
// [Lower, Upper) of the cumulative weight line, and Upper - Lower is the
// weight of Value.
type Interval[T any] struct {
	Value        T
	Lower, Upper float64
}

// Build returns the interval index for the given values and weights,
// partitioning [0, sum(weights)) in input order. values and weights must
// have the same length and every weight must be positive.
func Build[T any](values []T, weights []float64) []Interval[T] {
	index := make([]Interval[T], len(values))
	var cum float64
	for i, v := range values {
		index[i] = Interval[T]{Value: v, Lower: cum, Upper: cum + weights[i]}
		cum = index[i].Upper
	}

	return index
}

// Find returns the value whose interval contains x. The index must be
// non-empty and x must lie in [0, top), where top is the Upper bound of
// the last interval.
//
// Points at or slightly beyond top are mapped to the last interval to
// absorb accumulated rounding in the interval bounds, matching how a
// cumulative scan would resolve them.
func Find[T any](index []Interval[T], x float64) T {
	if x < 0 {
		panic(fmt.Errorf("cumsearch: negative point %v", x))
	}

	bot := 0
	top := len(index)
	for bot < top {
		mid := (bot + top) / 2
		item := index[mid]
		switch {
		case x < item.Lower:
			top = mid
		case x >= item.Upper:
			bot = mid + 1
		default:
			return item.Value
		}
	}

	last := index[len(index)-1]
	if x-last.Upper < tol*math.Max(1, last.Upper) { // Leave room for floating point error.
		return last.Value
	}

	panic(fmt.Errorf("cumsearch: point %v outside indexed range [0, %v)", x, last.Upper))
}
