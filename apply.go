package randvar

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Const returns the one-point distribution that takes the value v with
// probability 1. It is how plain values enter the combinators.
func Const[T comparable](v T) *Variable[T] {
	rv, err := New(map[T]float64{v: 1})
	if err != nil {
		panic(err)
	}

	return rv
}

// Map returns the exact distribution of f(X): each support value of x is
// mapped through f, and weights of colliding outputs are summed. x is not
// modified.
func Map[A, R comparable](x *Variable[A], f func(A) R) *Variable[R] {
	return mustApply(MapErr(x, func(a A) (R, error) { return f(a), nil }))
}

// MapErr is Map for functions that can fail. The first failure aborts the
// whole call and is returned; no partial result is produced.
func MapErr[A, R comparable](x *Variable[A], f func(A) (R, error)) (*Variable[R], error) {
	acc := make(map[R]float64, x.Len())
	for i := 0; i < x.Len(); i++ {
		a, w := x.pairAt(i)
		r, err := f(a)
		if err != nil {
			return nil, errors.Wrap(err, "randvar: apply")
		}

		acc[r] += w
	}

	return newPushforward(acc)
}

// Map2 returns the exact distribution of f(X, Y) for independent X and Y:
// the full Cartesian product of both supports is enumerated, the joint
// weight of a combination being the product of the per-argument weights.
// Weights of colliding outputs are summed.
func Map2[A, B, R comparable](x *Variable[A], y *Variable[B], f func(A, B) R) *Variable[R] {
	return mustApply(Map2Err(x, y, func(a A, b B) (R, error) { return f(a, b), nil }))
}

// Map2Err is Map2 for functions that can fail.
func Map2Err[A, B, R comparable](x *Variable[A], y *Variable[B], f func(A, B) (R, error)) (*Variable[R], error) {
	acc := make(map[R]float64, x.Len()*y.Len())
	for i := 0; i < x.Len(); i++ {
		a, wa := x.pairAt(i)
		for j := 0; j < y.Len(); j++ {
			b, wb := y.pairAt(j)
			r, err := f(a, b)
			if err != nil {
				return nil, errors.Wrap(err, "randvar: apply")
			}

			acc[r] += wa * wb
		}
	}

	return newPushforward(acc)
}

// Map3 returns the exact distribution of f(X, Y, Z) for independent
// arguments. See Map2.
func Map3[A, B, C, R comparable](x *Variable[A], y *Variable[B], z *Variable[C], f func(A, B, C) R) *Variable[R] {
	ab := Map2(x, y, func(a A, b B) pair2[A, B] { return pair2[A, B]{a, b} })
	return Map2(ab, z, func(ab pair2[A, B], c C) R { return f(ab.a, ab.b, c) })
}

type pair2[A, B comparable] struct {
	a A
	b B
}

// Fold returns the exact distribution of f(X1, ..., Xn) for any number of
// independent same-typed arguments. With no arguments, f is evaluated
// once and the result is a one-point distribution.
//
// The slice passed to f is reused between evaluations; f must copy it if
// it retains it.
//
// Cost is the full Cartesian product of the argument supports: exponential
// in the number of arguments. This is the exact price of an exact
// pushforward; no approximation is performed.
func Fold[T, R comparable](f func(...T) R, xs ...*Variable[T]) *Variable[R] {
	return mustApply(FoldErr(func(vals ...T) (R, error) { return f(vals...), nil }, xs...))
}

// FoldErr is Fold for functions that can fail.
func FoldErr[T, R comparable](f func(...T) (R, error), xs ...*Variable[T]) (*Variable[R], error) {
	if len(xs) == 0 {
		r, err := f()
		if err != nil {
			return nil, errors.Wrap(err, "randvar: apply")
		}

		return Const(r), nil
	}

	total := 1
	for _, x := range xs {
		total *= x.Len()
	}
	glog.V(2).Infof("Enumerating %d joint outcomes over %d variables", total, len(xs))

	// Prefetch each argument's support and weights into flat rows. The
	// weight rows come from a shared pool and are recycled on every
	// return path, including failures of f.
	values := make([][]T, len(xs))
	weights := make([][]float64, len(xs))
	defer func() {
		for _, w := range weights {
			weightScratch.free(w)
		}
	}()
	for i, x := range xs {
		values[i] = make([]T, x.Len())
		weights[i] = weightScratch.alloc(x.Len())
		for j := 0; j < x.Len(); j++ {
			values[i][j], weights[i][j] = x.pairAt(j)
		}
	}

	acc := make(map[R]float64, total)
	vals := make([]T, len(xs))
	idx := make([]int, len(xs))
	for {
		w := 1.0
		for i := range xs {
			vals[i] = values[i][idx[i]]
			w *= weights[i][idx[i]]
		}

		if w > 0 {
			r, err := f(vals...)
			if err != nil {
				return nil, errors.Wrap(err, "randvar: apply")
			}

			acc[r] += w
		}

		// Advance the odometer over the Cartesian product.
		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < xs[i].Len() {
				break
			}

			idx[i] = 0
		}
		if i < 0 {
			break
		}
	}

	return newPushforward(acc)
}

// Lift wraps f so that it maps a distribution instead of a value:
// Lift(f)(x) == Map(x, f).
func Lift[A, R comparable](f func(A) R) func(*Variable[A]) *Variable[R] {
	return func(x *Variable[A]) *Variable[R] {
		return Map(x, f)
	}
}

// Lift2 wraps a two-argument f; see Lift.
func Lift2[A, B, R comparable](f func(A, B) R) func(*Variable[A], *Variable[B]) *Variable[R] {
	return func(x *Variable[A], y *Variable[B]) *Variable[R] {
		return Map2(x, y, f)
	}
}

// newPushforward constructs the result of a combinator. Accumulated joint
// weights are strictly positive, so construction can only fail if the
// products underflowed to zero total weight.
func newPushforward[R comparable](acc map[R]float64) (*Variable[R], error) {
	rv, err := New(acc)
	return rv, errors.Wrap(err, "randvar: apply")
}

// mustApply unwraps a combinator result whose function cannot fail.
func mustApply[R comparable](rv *Variable[R], err error) *Variable[R] {
	if err != nil {
		panic(err)
	}

	return rv
}
