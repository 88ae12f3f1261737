package pageviews

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregateSums(t *testing.T) {
	agg := NewAggregate()
	require.NoError(t, agg.Add("Paris", 10))
	require.NoError(t, agg.Add("Paris", 7))
	require.NoError(t, agg.Add("paris", 1))

	require.Equal(t, 2, agg.Len())
	require.EqualValues(t, 17, agg.Count("Paris"))
	require.EqualValues(t, 1, agg.Count("paris"))
}

func TestRankedDescending(t *testing.T) {
	agg := NewAggregate()
	require.NoError(t, agg.Add("five", 5))
	require.NoError(t, agg.Add("twenty", 20))
	require.NoError(t, agg.Add("one", 1))

	require.Equal(t, []TitleCount{
		{"twenty", 20},
		{"five", 5},
		{"one", 1},
	}, agg.Ranked())
}

func TestRankedTieBreakByTitle(t *testing.T) {
	agg := NewAggregate()
	for _, title := range []string{"b", "c", "a"} {
		require.NoError(t, agg.Add(title, 3))
	}
	require.NoError(t, agg.Add("top", 4))

	require.Equal(t, []TitleCount{
		{"top", 4},
		{"a", 3},
		{"b", 3},
		{"c", 3},
	}, agg.Ranked())
}

func TestRankedEmpty(t *testing.T) {
	require.Empty(t, NewAggregate().Ranked())
}

func TestAddOverflow(t *testing.T) {
	agg := NewAggregate()
	require.NoError(t, agg.Add("A", math.MaxInt64))
	require.ErrorIs(t, agg.Add("A", 1), ErrCountOverflow)
	require.EqualValues(t, int64(math.MaxInt64), agg.Count("A"))

	require.NoError(t, agg.Add("B", 5))
	require.Equal(t, []TitleCount{
		{"A", math.MaxInt64},
		{"B", 5},
	}, agg.Ranked())

	require.NoError(t, agg.Add("C", math.MinInt64))
	require.ErrorIs(t, agg.Add("C", -1), ErrCountOverflow)
}
