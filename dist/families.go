package dist

import (
	"math"

	"github.com/pkg/errors"

	randvar "github.com/timpalpant/go-randvar"
	"github.com/timpalpant/go-randvar/internal/mathx"
)

// Binomial returns the number of successes in n independent trials with
// success probability p: P(k) = C(n, k) p^k (1-p)^(n-k) for k in [0, n].
func Binomial(n int, p float64) (*randvar.Variable[int], error) {
	if n < 0 {
		return nil, errors.Errorf("dist: binomial needs n >= 0, got %d", n)
	}
	if p < 0 || p > 1 {
		return nil, errors.Errorf("dist: binomial probability %v outside [0, 1]", p)
	}

	switch p {
	case 0:
		return Const(0), nil
	case 1:
		return Const(n), nil
	}

	// Weights are assembled in log domain so large n does not overflow.
	w := make([]float64, n+1)
	logP, logQ := math.Log(p), math.Log(1-p)
	for k := 0; k <= n; k++ {
		w[k] = math.Exp(mathx.LogChoose(n, k) + float64(k)*logP + float64(n-k)*logQ)
	}

	return fromWeights(w, "binomial")
}

// BetaBinomial returns the binomial compound where the success
// probability is itself Beta(alpha, beta) distributed:
// P(k) = C(n, k) B(k+alpha, n-k+beta) / B(alpha, beta).
func BetaBinomial(n int, alpha, beta float64) (*randvar.Variable[int], error) {
	if n < 0 {
		return nil, errors.Errorf("dist: beta-binomial needs n >= 0, got %d", n)
	}
	if alpha <= 0 || beta <= 0 {
		return nil, errors.Errorf("dist: beta-binomial shape (%v, %v) must be positive", alpha, beta)
	}

	logB := mathx.LogBeta(alpha, beta)
	w := make([]float64, n+1)
	for k := 0; k <= n; k++ {
		w[k] = math.Exp(mathx.LogChoose(n, k) + mathx.LogBeta(float64(k)+alpha, float64(n-k)+beta) - logB)
	}

	return fromWeights(w, "beta-binomial")
}

// Hypergeometric returns the number of good items in draws draws without
// replacement from a population of the given size containing good good
// items. The support is clipped to the feasible range
// [max(0, draws-(size-good)), min(draws, good)].
func Hypergeometric(size, good, draws int) (*randvar.Variable[int], error) {
	if size < 0 || good < 0 || good > size {
		return nil, errors.Errorf("dist: hypergeometric population (size=%d, good=%d) is invalid", size, good)
	}
	if draws < 0 || draws > size {
		return nil, errors.Errorf("dist: hypergeometric draws %d outside [0, %d]", draws, size)
	}

	kMin := draws - (size - good)
	if kMin < 0 {
		kMin = 0
	}
	kMax := draws
	if good < kMax {
		kMax = good
	}

	logTotal := mathx.LogChoose(size, draws)
	pairs := make([]randvar.Pair[int], 0, kMax-kMin+1)
	for k := kMin; k <= kMax; k++ {
		logW := mathx.LogChoose(good, k) + mathx.LogChoose(size-good, draws-k) - logTotal
		pairs = append(pairs, randvar.Pair[int]{Value: k, Weight: math.Exp(logW)})
	}

	rv, err := randvar.FromPairs(pairs)
	return rv, errors.Wrap(err, "dist: hypergeometric")
}
