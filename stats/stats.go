// Package stats computes summary statistics of finite random variables
// with numeric supports. Everything here is a consumer of the Variable
// query surface and the pushforward combinator; no statistic inspects
// Variable internals.
package stats

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	randvar "github.com/timpalpant/go-randvar"
	"github.com/timpalpant/go-randvar/internal/cumsearch"
)

// Real is the set of support types statistics are defined over.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// varianceTol is how far below zero a computed variance may fall before
// it is treated as degraded rather than rounded.
const varianceTol = 1e-9

// Mean returns the generalized p-mean of v:
//
//	p = +Inf  -> maximum of the support
//	p = -Inf  -> minimum of the support
//	p = 0     -> weighted geometric mean (computed in log domain)
//	otherwise -> (sum prob * value^p)^(1/p)
func Mean[T Real](v *randvar.Variable[T], p float64) float64 {
	switch {
	case math.IsInf(p, 1):
		max := math.Inf(-1)
		for val := range v.Values() {
			max = math.Max(max, float64(val))
		}
		return max
	case math.IsInf(p, -1):
		min := math.Inf(1)
		for val := range v.Values() {
			min = math.Min(min, float64(val))
		}
		return min
	case p == 0:
		var acc float64
		for val, prob := range v.All() {
			acc += prob * math.Log(float64(val))
		}
		return math.Exp(acc)
	default:
		var acc float64
		for val, prob := range v.All() {
			acc += prob * math.Pow(float64(val), p)
		}
		return math.Pow(acc, 1/p)
	}
}

// ExpectedValue returns sum(value * probability). It is the direct form
// of Mean(v, 1), kept separate for numerical stability.
func ExpectedValue[T Real](v *randvar.Variable[T]) float64 {
	var acc float64
	for val, prob := range v.All() {
		acc += float64(val) * prob
	}

	return acc
}

// Percentile returns the value of v at cumulative probability p, for
// 0 <= p <= 1. The support is sorted ascending and cumulative-probability
// intervals are searched for the one with lower <= p < upper; ties at an
// interval boundary resolve toward the upper value.
func Percentile[T Real](v *randvar.Variable[T], p float64) (T, error) {
	var zero T
	if p < 0 || p > 1 {
		return zero, errors.Errorf("stats: percentile %v outside [0, 1]", p)
	}

	values := supportAscending(v)
	probs := make([]float64, len(values))
	for i, val := range values {
		probs[i] = v.Probability(val)
	}

	index := cumsearch.Build(values, probs)
	return cumsearch.Find(index, p), nil
}

// Median returns Percentile(v, 0.5).
func Median[T Real](v *randvar.Variable[T]) (T, error) {
	return Percentile(v, 0.5)
}

// Mode returns the k'th most probable value of v; k = 1 is the most
// probable. Values with equal probability are ranked ascending by value,
// so ranging k over [1, v.Len()] visits every supported value exactly
// once, in a deterministic order.
func Mode[T Real](v *randvar.Variable[T], k int) (T, error) {
	var zero T
	if k < 1 || k > v.Len() {
		return zero, errors.Errorf("stats: mode rank %d outside [1, %d]", k, v.Len())
	}

	values := supportAscending(v)
	sort.SliceStable(values, func(i, j int) bool {
		return v.Probability(values[i]) > v.Probability(values[j])
	})

	return values[k-1], nil
}

// Variance returns E[X^2] - E[X]^2, with E[X^2] derived through the same
// pushforward machinery as any other statistic rather than special-cased.
func Variance[T Real](v *randvar.Variable[T]) float64 {
	squared := randvar.Map(v, func(x T) float64 {
		f := float64(x)
		return f * f
	})

	ev := ExpectedValue(v)
	return ExpectedValue(squared) - ev*ev
}

// StdDev returns the standard deviation of v. A variance that is negative
// beyond tolerance is a symptom of floating-point cancellation and fails
// with NumericDomainError; small negative values inside tolerance are
// clamped to 0.
func StdDev[T Real](v *randvar.Variable[T]) (float64, error) {
	va := Variance(v)
	if va < 0 {
		if va < -varianceTol {
			return 0, &randvar.NumericDomainError{Op: "stddev", Value: va}
		}
		va = 0
	}

	return math.Sqrt(va), nil
}

// supportAscending collects the support of v sorted ascending by value.
func supportAscending[T Real](v *randvar.Variable[T]) []T {
	values := make([]T, 0, v.Len())
	for val := range v.Values() {
		values = append(values, val)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	return values
}
