package randvar

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyDistribution is returned when a distribution is constructed
	// with no entries at all.
	ErrEmptyDistribution = errors.New("randvar: distribution has no entries")

	// ErrNegativeWeight is returned when any entry carries a weight < 0.
	ErrNegativeWeight = errors.New("randvar: negative weight")

	// ErrZeroTotalWeight is returned when, after pruning zero-weight
	// entries, no weight remains to distribute.
	ErrZeroTotalWeight = errors.New("randvar: total weight is zero")
)

// InviabilityError is returned by the strict constructors when the given
// weights, interpreted as probabilities, deviate from summing to 1 by more
// than the configured viability tolerance.
type InviabilityError struct {
	// Deviation is |sum(weights) - 1|.
	Deviation float64
}

func (e *InviabilityError) Error() string {
	return fmt.Sprintf("randvar: weights deviate from summing to 1 by %v", e.Deviation)
}

// NumericDomainError reports an intermediate result outside its valid
// numeric domain, typically a symptom of floating-point cancellation
// rather than a valid outcome.
type NumericDomainError struct {
	Op    string
	Value float64
}

func (e *NumericDomainError) Error() string {
	return fmt.Sprintf("randvar: %s: %v is outside the valid domain", e.Op, e.Value)
}
