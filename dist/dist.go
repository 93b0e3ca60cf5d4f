// Package dist builds random variables for standard parametric families
// from their closed-form weights.
//
// Families with infinite support (Poisson, geometric, negative binomial)
// are bounded to a finite top value under one of two policies: the Trunc
// variants fold all tail mass beyond top onto the top value, while the
// Stretch variants rescale the finite prefix uniformly so it sums to 1.
package dist

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	randvar "github.com/timpalpant/go-randvar"
	"github.com/timpalpant/go-randvar/internal/f64"
)

// Const returns the one-point distribution at v.
func Const[T comparable](v T) *randvar.Variable[T] {
	return randvar.Const(v)
}

// Uniform returns the distribution taking each of the given values with
// equal probability. Duplicate values accumulate proportionally more mass.
func Uniform[T comparable](values []T) (*randvar.Variable[T], error) {
	if len(values) == 0 {
		return nil, errors.Wrap(randvar.ErrEmptyDistribution, "dist: uniform")
	}

	w := 1 / float64(len(values))
	pairs := make([]randvar.Pair[T], len(values))
	for i, v := range values {
		pairs[i] = randvar.Pair[T]{Value: v, Weight: w}
	}

	rv, err := randvar.FromPairs(pairs)
	return rv, errors.Wrap(err, "dist: uniform")
}

// Range returns the uniform distribution over the integers [lo, hi).
func Range(lo, hi int) (*randvar.Variable[int], error) {
	if hi <= lo {
		return nil, errors.Errorf("dist: range [%d, %d) is empty", lo, hi)
	}

	values := make([]int, hi-lo)
	for i := range values {
		values[i] = lo + i
	}

	return Uniform(values)
}

// Bernoulli returns the distribution {0: 1-p, 1: p}.
func Bernoulli(p float64) (*randvar.Variable[int], error) {
	if p < 0 || p > 1 {
		return nil, errors.Errorf("dist: bernoulli probability %v outside [0, 1]", p)
	}

	rv, err := randvar.New(map[int]float64{0: 1 - p, 1: p})
	return rv, errors.Wrap(err, "dist: bernoulli")
}

// fromWeights builds a Variable over 0..len(w)-1 with the given weights.
func fromWeights(w []float64, family string) (*randvar.Variable[int], error) {
	pairs := make([]randvar.Pair[int], len(w))
	for k, wk := range w {
		pairs[k] = randvar.Pair[int]{Value: k, Weight: wk}
	}

	rv, err := randvar.FromPairs(pairs)
	return rv, errors.Wrapf(err, "dist: %s", family)
}

// truncated folds the tail mass not covered by the finite prefix w onto
// the last entry. w must hold normalized probabilities.
func truncated(w []float64, family string) (*randvar.Variable[int], error) {
	top := len(w) - 1
	if tail := 1 - f64.Sum(w); tail > 0 {
		glog.V(2).Infof("%s: folding %g tail mass onto %d", family, tail, top)
		w[top] += tail
	}

	return fromWeights(w, family)
}

// stretched rescales the finite prefix w uniformly so it sums to 1.
func stretched(w []float64, family string) (*randvar.Variable[int], error) {
	total := f64.Sum(w)
	if total <= 0 {
		return nil, errors.Wrapf(randvar.ErrZeroTotalWeight, "dist: %s", family)
	}

	f64.ScalUnitary(1/total, w)
	return fromWeights(w, family)
}
