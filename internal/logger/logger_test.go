package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "PRODUCTION", ""} {
		l, err := New(mode)
		require.NoError(t, err, mode)
		l.With("mode", mode).Debug("logger ready")
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("discarded", "k", 1)
	l.Sync()
}
