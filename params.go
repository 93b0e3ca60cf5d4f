package randvar

import "math/rand"

// DefaultViability is a reasonable viability tolerance for weights that
// are expected to already be probabilities. It is never applied
// implicitly; pass it through Params to opt in.
const DefaultViability = 1e-5

// Params are the configuration options for constructing a Variable.
// The zero Params is valid and corresponds to the plain weight model:
// no viability check, sampling from a shared concurrency-safe RNG.
type Params struct {
	// Viability, when positive, requires the given weights to be
	// probabilities: construction fails with InviabilityError if their
	// sum deviates from 1 by more than this tolerance.
	Viability float64

	// Rand, when non-nil, is the source of randomness used by Choice and
	// Sample. Injecting a seeded source makes sampling deterministic.
	// A *rand.Rand is not safe for concurrent use; callers that share a
	// Variable across goroutines should leave Rand nil and use the
	// default source.
	Rand *rand.Rand
}
