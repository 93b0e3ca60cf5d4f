package randvar

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		weights map[int]float64
		wantErr error
	}{
		{"empty", map[int]float64{}, ErrEmptyDistribution},
		{"negative weight", map[int]float64{0: 0.5, 1: -0.1}, ErrNegativeWeight},
		{"all zero weights", map[int]float64{0: 0, 1: 0}, ErrZeroTotalWeight},
		{"valid", map[int]float64{0: 1, 1: 3}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rv, err := New(tc.weights)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, rv)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, rv)
		})
	}
}

func TestNewPrunesZeroWeights(t *testing.T) {
	rv, err := New(map[string]float64{"a": 1, "b": 0, "c": 2})
	require.NoError(t, err)

	require.Equal(t, 2, rv.Len())
	require.True(t, rv.Contains("a"))
	require.False(t, rv.Contains("b"))
	require.Equal(t, 0.0, rv.Probability("b"))
}

func TestViability(t *testing.T) {
	weights := map[int]float64{0: 0.5, 1: 0.6}

	_, err := NewWithParams(weights, Params{Viability: 0.01})
	var viab *InviabilityError
	require.ErrorAs(t, err, &viab)
	require.InDelta(t, 0.1, viab.Deviation, 1e-12)

	// Without the strict check the same weights are a valid distribution.
	rv, err := New(weights)
	require.NoError(t, err)
	require.InDelta(t, 0.6/1.1, rv.Probability(1), 1e-9)

	// Within tolerance passes.
	_, err = NewWithParams(map[int]float64{0: 0.5, 1: 0.5 + 1e-7}, Params{Viability: DefaultViability})
	require.NoError(t, err)
}

func TestProbabilitiesSumToOne(t *testing.T) {
	tests := []struct {
		name    string
		weights map[int]float64
	}{
		{"normalized", map[int]float64{0: 0.25, 1: 0.5, 2: 0.25}},
		{"unnormalized", map[int]float64{1: 3, 2: 7, 3: 11, 4: 0.5}},
		{"single point", map[int]float64{42: 123.0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rv, err := New(tc.weights)
			require.NoError(t, err)

			var total float64
			for prob := range rv.Probabilities() {
				total += prob
			}
			require.InDelta(t, 1.0, total, 1e-9)
			require.Equal(t, 0.0, rv.Probability(-1))
		})
	}
}

func TestValuesRestartable(t *testing.T) {
	rv, err := FromPairs([]Pair[int]{{1, 0.2}, {2, 0.3}, {3, 0.5}})
	require.NoError(t, err)

	collect := func() []int {
		var out []int
		for v := range rv.Values() {
			out = append(out, v)
		}
		return out
	}

	first := collect()
	second := collect()
	require.Equal(t, []int{1, 2, 3}, first)
	require.Equal(t, first, second)
}

func TestFromPairsAccumulatesDuplicates(t *testing.T) {
	rv, err := FromPairs([]Pair[string]{{"x", 1}, {"y", 1}, {"x", 2}})
	require.NoError(t, err)

	require.Equal(t, 2, rv.Len())
	require.InDelta(t, 0.75, rv.Probability("x"), 1e-9)
	require.InDelta(t, 0.25, rv.Probability("y"), 1e-9)
}

func TestPairsRoundTrip(t *testing.T) {
	rv, err := New(map[int]float64{1: 3, 2: 7, 3: 11, 4: 0.5})
	require.NoError(t, err)

	var pairs []Pair[int]
	for val, prob := range rv.All() {
		pairs = append(pairs, Pair[int]{Value: val, Weight: prob})
	}

	back, err := FromPairs(pairs)
	require.NoError(t, err)
	require.Equal(t, rv.Len(), back.Len())
	for val := range rv.Values() {
		require.InDelta(t, rv.Probability(val), back.Probability(val), 1e-9)
	}
}

func TestChoicePointMass(t *testing.T) {
	rv := Const(232)
	for _, v := range rv.Sample(1000) {
		require.Equal(t, 232, v)
	}
}

func TestChoiceFrequencies(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rv, err := FromPairsWithParams([]Pair[int]{{0, 0.25}, {1, 0.5}, {2, 0.25}}, Params{Rand: rng})
	require.NoError(t, err)

	const n = 1000
	counts := make(map[int]int)
	for _, v := range rv.Sample(n) {
		counts[v]++
	}

	for val, p := range map[int]float64{0: 0.25, 1: 0.5, 2: 0.25} {
		sigma := math.Sqrt(n * p * (1 - p))
		require.InDeltaf(t, n*p, float64(counts[val]), 3*sigma,
			"value %d drawn %d times", val, counts[val])
	}
}

func TestChoiceDeterministicWithSeed(t *testing.T) {
	// FromPairs fixes the index order, so the same seed replays the
	// same draws.
	pairs := []Pair[int]{{1, 1}, {2, 2}, {3, 3}}

	draw := func() []int {
		rv, err := FromPairsWithParams(pairs, Params{Rand: rand.New(rand.NewSource(42))})
		require.NoError(t, err)
		return rv.Sample(100)
	}

	require.Equal(t, draw(), draw())
}

func TestSampleSize(t *testing.T) {
	rv, err := New(map[int]float64{0: 1, 1: 1})
	require.NoError(t, err)

	require.Len(t, rv.Sample(17), 17)
	require.Empty(t, rv.Sample(0))
}

func BenchmarkChoice(b *testing.B) {
	weights := make(map[int]float64, 1000)
	for i := 0; i < 1000; i++ {
		weights[i] = float64(i + 1)
	}

	rv, err := NewWithParams(weights, Params{Rand: rand.New(rand.NewSource(1))})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rv.Choice()
	}
}
