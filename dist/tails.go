package dist

import (
	"math"

	"github.com/pkg/errors"

	randvar "github.com/timpalpant/go-randvar"
	"github.com/timpalpant/go-randvar/internal/mathx"
)

// PoissonTrunc returns a Poisson distribution with rate lambda, bounded
// to [0, top] by folding all tail mass beyond top onto top.
func PoissonTrunc(top int, lambda float64) (*randvar.Variable[int], error) {
	w, err := poissonWeights(top, lambda)
	if err != nil {
		return nil, err
	}

	return truncated(w, "poisson")
}

// PoissonStretch returns a Poisson distribution with rate lambda, bounded
// to [0, top] by rescaling the finite prefix uniformly to sum to 1.
func PoissonStretch(top int, lambda float64) (*randvar.Variable[int], error) {
	w, err := poissonWeights(top, lambda)
	if err != nil {
		return nil, err
	}

	return stretched(w, "poisson")
}

func poissonWeights(top int, lambda float64) ([]float64, error) {
	if top < 0 {
		return nil, errors.Errorf("dist: poisson needs top >= 0, got %d", top)
	}
	if lambda <= 0 {
		return nil, errors.Errorf("dist: poisson rate %v must be positive", lambda)
	}

	logLambda := math.Log(lambda)
	w := make([]float64, top+1)
	for k := 0; k <= top; k++ {
		w[k] = math.Exp(float64(k)*logLambda - mathx.LogFactorial(k) - lambda)
	}

	return w, nil
}

// GeometricTrunc returns the number of failures before the first success
// in trials with success probability p, bounded to [0, top] by folding
// the tail mass onto top: P(k) = (1-p)^k p for k < top.
func GeometricTrunc(p float64, top int) (*randvar.Variable[int], error) {
	w, err := geometricWeights(p, top)
	if err != nil {
		return nil, err
	}

	return truncated(w, "geometric")
}

// GeometricStretch is the geometric family under the stretch policy: the
// finite prefix of the pmf is rescaled uniformly to sum to 1.
func GeometricStretch(p float64, top int) (*randvar.Variable[int], error) {
	w, err := geometricWeights(p, top)
	if err != nil {
		return nil, err
	}

	return stretched(w, "geometric")
}

func geometricWeights(p float64, top int) ([]float64, error) {
	if top < 0 {
		return nil, errors.Errorf("dist: geometric needs top >= 0, got %d", top)
	}
	if p <= 0 || p > 1 {
		return nil, errors.Errorf("dist: geometric probability %v outside (0, 1]", p)
	}

	w := make([]float64, top+1)
	q := 1.0
	for k := 0; k <= top; k++ {
		w[k] = q * p
		q *= 1 - p
	}

	return w, nil
}

// NegBinomialTrunc returns the number of successes before the fails'th
// failure in trials with success probability p, bounded to [0, top] by
// folding the tail mass onto top:
// P(k) = C(k+fails-1, k) p^k (1-p)^fails for k < top.
func NegBinomialTrunc(fails int, p float64, top int) (*randvar.Variable[int], error) {
	w, err := negBinomialWeights(fails, p, top)
	if err != nil {
		return nil, err
	}

	return truncated(w, "negative binomial")
}

// NegBinomialStretch is the negative-binomial family under the stretch
// policy.
func NegBinomialStretch(fails int, p float64, top int) (*randvar.Variable[int], error) {
	w, err := negBinomialWeights(fails, p, top)
	if err != nil {
		return nil, err
	}

	return stretched(w, "negative binomial")
}

func negBinomialWeights(fails int, p float64, top int) ([]float64, error) {
	if fails < 1 {
		return nil, errors.Errorf("dist: negative binomial needs fails >= 1, got %d", fails)
	}
	if top < 0 {
		return nil, errors.Errorf("dist: negative binomial needs top >= 0, got %d", top)
	}
	if p < 0 || p >= 1 {
		return nil, errors.Errorf("dist: negative binomial probability %v outside [0, 1)", p)
	}

	w := make([]float64, top+1)
	if p == 0 {
		w[0] = 1
		return w, nil
	}

	logP := math.Log(p)
	logQ := float64(fails) * math.Log(1-p)
	for k := 0; k <= top; k++ {
		w[k] = math.Exp(mathx.LogChoose(k+fails-1, k) + float64(k)*logP + logQ)
	}

	return w, nil
}
