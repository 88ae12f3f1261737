package pageviews

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Record
		english bool
	}{
		{"desktop", "en.z Paris 10", Record{"en", "z", "Paris", 10}, true},
		{"mobile", "en.m.z SomeTitle 5", Record{"en", "z", "SomeTitle", 5}, true},
		{"other language", "de.z SomeTitle 5", Record{"de", "z", "SomeTitle", 5}, false},
		{"mobile other project", "en.m.zz SomeTitle 5", Record{"en", "zz", "SomeTitle", 5}, false},
		{"double mobile marker", "en.m.m.z SomeTitle 5", Record{"en", "m.z", "SomeTitle", 5}, false},
		{"surrounding whitespace", "  en.z Paris 7\r\n", Record{"en", "z", "Paris", 7}, true},
		{"non-ascii space in title", "en.z New\u00a0York 3", Record{"en", "z", "New\u00a0York", 3}, true},
		{"tab in title", "en.z A\tB 3", Record{"en", "z", "A\tB", 3}, true},
		{"code split on first dot", "en.z.x T 1", Record{"en", "z.x", "T", 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.english, got.English())
		})
	}
}

func TestParseLineErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"two fields", "en.z Paris"},
		{"four fields", "en.z Paris 1 2"},
		{"double space", "en.z  Paris 1"},
		{"no dot in code", "enz Paris 1"},
		{"non numeric count", "en.z Paris ten"},
		{"float count", "en.z Paris 1.5"},
		{"bad count on filtered line", "de.z Paris x"},
		{"underscore in count", "en.z Paris 1_000"},
		{"count beyond int64", "en.z Paris 9223372036854775808"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line)
			require.Error(t, err)
			var fe *FormatError
			require.True(t, errors.As(err, &fe))
		})
	}
}
