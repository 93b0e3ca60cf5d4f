// Package mathx provides log-domain combinatorics for building
// closed-form distribution weights without overflowing float64.
package mathx

import "math"

// LogFactorial returns ln(n!).
func LogFactorial(n int) float64 {
	lg, _ := math.Lgamma(float64(n) + 1)
	return lg
}

// LogChoose returns ln(C(n, k)), or -Inf when k is outside [0, n].
func LogChoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	return LogFactorial(n) - LogFactorial(k) - LogFactorial(n-k)
}

// Choose returns the binomial coefficient C(n, k).
func Choose(n, k int) float64 {
	return math.Exp(LogChoose(n, k))
}

// LogBeta returns ln(B(a, b)) for a, b > 0.
func LogBeta(a, b float64) float64 {
	la, _ := math.Lgamma(a)
	lb, _ := math.Lgamma(b)
	lab, _ := math.Lgamma(a + b)
	return la + lb - lab
}
