package cumsearch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	index := Build([]string{"a", "b", "c"}, []float64{1, 2, 3})

	require.Equal(t, []Interval[string]{
		{"a", 0, 1},
		{"b", 1, 3},
		{"c", 3, 6},
	}, index)
}

func TestFind(t *testing.T) {
	index := Build([]int{10, 20, 30}, []float64{0.25, 0.5, 0.25})

	tests := []struct {
		x    float64
		want int
	}{
		{0, 10},
		{0.2499, 10},
		{0.25, 20}, // boundary resolves to the upper interval
		{0.5, 20},
		{0.75, 30},
		{0.9999, 30},
		{1.0, 30}, // top of the range, within float tolerance
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, Find(index, tc.x), "x=%v", tc.x)
	}
}

func TestFindSingleInterval(t *testing.T) {
	index := Build([]int{7}, []float64{3})

	require.Equal(t, 7, Find(index, 0))
	require.Equal(t, 7, Find(index, 2.999))
}

func TestFindOutOfRangePanics(t *testing.T) {
	index := Build([]int{1, 2}, []float64{1, 1})

	require.Panics(t, func() { Find(index, -0.5) })
	require.Panics(t, func() { Find(index, 3.5) })
}
