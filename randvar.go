// Package randvar models finite discrete random variables: immutable
// weighted distributions over a finite support, with O(log n) weighted
// sampling and exact pushforward of functions over independent variables.
package randvar

import (
	"iter"
	"math"

	"github.com/pkg/errors"

	"github.com/timpalpant/go-randvar/internal/cumsearch"
	"github.com/timpalpant/go-randvar/internal/f64"
)

// Pair is one (value, weight) entry of a distribution. Weights need not
// be normalized; probability is weight / total weight.
type Pair[T comparable] struct {
	Value  T
	Weight float64
}

// Variable is a random variable with finite support over values of type T.
//
// A Variable is immutable after construction: every deriving operation
// (Map, Fold, statistics) builds a fresh instance and never mutates its
// inputs. A Variable constructed without an injected RNG is therefore safe
// to share across goroutines without locking.
//
// T is restricted to comparable types, so values returned by Choice and
// Sample are plain copies; no defensive copying is performed or needed.
type Variable[T comparable] struct {
	weights   map[T]float64
	weightSum float64
	index     []cumsearch.Interval[T]
	rng       float64Source
}

type float64Source interface {
	Float64() float64
}

// New creates a Variable from a value -> weight mapping. Weights need not
// sum to 1. Zero-weight entries are pruned; the support is the set of
// values with strictly positive weight.
//
// New fails with ErrEmptyDistribution if weights has no entries,
// ErrNegativeWeight if any weight is < 0, and ErrZeroTotalWeight if no
// positive weight remains after pruning.
//
// The sampling index is built in map iteration order: unspecified, but
// fixed for the lifetime of the Variable. Use FromPairs for a
// deterministic order.
func New[T comparable](weights map[T]float64) (*Variable[T], error) {
	return NewWithParams(weights, Params{})
}

// NewWithParams is New with explicit Params.
func NewWithParams[T comparable](weights map[T]float64, params Params) (*Variable[T], error) {
	if len(weights) == 0 {
		return nil, ErrEmptyDistribution
	}

	pairs := make([]Pair[T], 0, len(weights))
	for v, w := range weights {
		pairs = append(pairs, Pair[T]{Value: v, Weight: w})
	}

	return FromPairsWithParams(pairs, params)
}

// FromPairs creates a Variable from ordered (value, weight) pairs. The
// sampling index follows the given order. Duplicate values accumulate
// their weights. Validation is the same as New.
func FromPairs[T comparable](pairs []Pair[T]) (*Variable[T], error) {
	return FromPairsWithParams(pairs, Params{})
}

// FromPairsWithParams is FromPairs with explicit Params.
func FromPairsWithParams[T comparable](pairs []Pair[T], params Params) (*Variable[T], error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyDistribution
	}

	weights := make(map[T]float64, len(pairs))
	order := make([]T, 0, len(pairs))
	for _, p := range pairs {
		if p.Weight < 0 {
			return nil, errors.Wrapf(ErrNegativeWeight, "value %v has weight %v", p.Value, p.Weight)
		}
		if p.Weight == 0 {
			continue
		}

		if _, ok := weights[p.Value]; !ok {
			order = append(order, p.Value)
		}
		weights[p.Value] += p.Weight
	}

	ordered := make([]float64, len(order))
	for i, v := range order {
		ordered[i] = weights[v]
	}

	total := f64.Sum(ordered)
	if len(order) == 0 || total == 0 {
		return nil, ErrZeroTotalWeight
	}

	if params.Viability > 0 {
		if dev := math.Abs(total - 1); dev > params.Viability {
			return nil, &InviabilityError{Deviation: dev}
		}
	}

	var rng float64Source = defaultSource
	if params.Rand != nil {
		rng = params.Rand
	}

	return &Variable[T]{
		weights:   weights,
		weightSum: total,
		index:     cumsearch.Build(order, ordered),
		rng:       rng,
	}, nil
}

// Probability returns weight(v) / total weight, or 0 if v is not in the
// support. It never fails for absent values.
func (v *Variable[T]) Probability(val T) float64 {
	return v.weights[val] / v.weightSum
}

// Contains reports whether val is in the support.
func (v *Variable[T]) Contains(val T) bool {
	_, ok := v.weights[val]
	return ok
}

// Len returns the number of values in the support.
func (v *Variable[T]) Len() int {
	return len(v.index)
}

// WeightSum returns the total weight of the distribution.
func (v *Variable[T]) WeightSum() float64 {
	return v.weightSum
}

// Values iterates over the support in index order. The sequence is finite
// and restartable.
func (v *Variable[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, iv := range v.index {
			if !yield(iv.Value) {
				return
			}
		}
	}
}

// Probabilities iterates over probabilities, aligned with Values.
func (v *Variable[T]) Probabilities() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, iv := range v.index {
			if !yield((iv.Upper - iv.Lower) / v.weightSum) {
				return
			}
		}
	}
}

// All iterates over (value, probability) pairs, aligned with Values.
func (v *Variable[T]) All() iter.Seq2[T, float64] {
	return func(yield func(T, float64) bool) {
		for _, iv := range v.index {
			if !yield(iv.Value, (iv.Upper-iv.Lower)/v.weightSum) {
				return
			}
		}
	}
}

// Choice draws one value from the distribution: a point x is drawn
// uniformly in [0, total weight) and resolved against the cumulative
// index by binary search. O(log n) per draw.
func (v *Variable[T]) Choice() T {
	x := v.rng.Float64() * v.weightSum
	return cumsearch.Find(v.index, x)
}

// Sample draws n values independently. The result is in draw order and
// is not sorted.
func (v *Variable[T]) Sample(n int) []T {
	result := make([]T, n)
	for i := range result {
		result[i] = v.Choice()
	}

	return result
}

// pairAt returns the i'th support value and its raw weight, in index order.
func (v *Variable[T]) pairAt(i int) (T, float64) {
	iv := v.index[i]
	return iv.Value, iv.Upper - iv.Lower
}
