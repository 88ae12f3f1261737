package pageviews

import (
	"bufio"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanFiltersAndAggregates(t *testing.T) {
	input := strings.Join([]string{
		"en.z Paris 10",
		"en.m.z Paris 7",
		"de.z Paris 100",
		"en.m.zz Paris 100",
		"en.z London 3",
		"fr.m.z London 9",
	}, "\n") + "\n"

	agg := NewAggregate()
	stats, err := Scan(strings.NewReader(input), agg, ScanOptions{})
	require.NoError(t, err)
	require.Equal(t, ScanStats{Lines: 6, Kept: 3}, stats)
	require.EqualValues(t, 17, agg.Count("Paris"))
	require.EqualValues(t, 3, agg.Count("London"))
	require.Equal(t, 2, agg.Len())
}

func TestScanStopsOnMalformedLine(t *testing.T) {
	input := "en.z Paris 10\nen.z Broken\nen.z London 3\n"

	agg := NewAggregate()
	stats, err := Scan(strings.NewReader(input), agg, ScanOptions{})
	require.Error(t, err)

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	require.EqualValues(t, 2, fe.Line)
	require.Equal(t, "en.z Broken", fe.Text)
	require.Contains(t, err.Error(), "line 2")
	require.EqualValues(t, 2, stats.Lines)
	require.Zero(t, agg.Count("London"))
}

func TestScanProgress(t *testing.T) {
	input := strings.Repeat("en.z A 1\n", 5)

	var calls []ScanStats
	_, err := Scan(strings.NewReader(input), NewAggregate(), ScanOptions{
		ProgressEvery: 2,
		Progress:      func(s ScanStats) { calls = append(calls, s) },
	})
	require.NoError(t, err)
	require.Equal(t, []ScanStats{{Lines: 2, Kept: 2}, {Lines: 4, Kept: 4}}, calls)
}

func TestScanEmptyInput(t *testing.T) {
	agg := NewAggregate()
	stats, err := Scan(strings.NewReader(""), agg, ScanOptions{})
	require.NoError(t, err)
	require.Zero(t, stats.Lines)
	require.Zero(t, agg.Len())
}

func TestScanCountOverflow(t *testing.T) {
	input := "en.z A 9223372036854775807\nen.z B 5\nen.m.z A 9223372036854775807\n"

	agg := NewAggregate()
	_, err := Scan(strings.NewReader(input), agg, ScanOptions{})
	require.ErrorIs(t, err, ErrCountOverflow)

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	require.EqualValues(t, 3, fe.Line)
	require.Equal(t, "en.m.z A 9223372036854775807", fe.Text)
}

func TestScanLineTooLong(t *testing.T) {
	input := "en.z A 1\nen.z " + strings.Repeat("x", maxLineBytes) + " 1\n"

	_, err := Scan(strings.NewReader(input), NewAggregate(), ScanOptions{})
	require.ErrorIs(t, err, bufio.ErrTooLong)

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	require.EqualValues(t, 2, fe.Line)
}
