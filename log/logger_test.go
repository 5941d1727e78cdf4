package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	l, err := New(Config{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.True(t, l.level.Enabled(-1))

	require.NoError(t, l.SetLevel("error"))
	assert.False(t, l.level.Enabled(0))
	assert.Error(t, l.SetLevel("loud"))

	_, err = New(Config{Level: "verbose"})
	assert.Error(t, err)
}

func TestInitReplacesDefault(t *testing.T) {
	before := Default()
	l, err := Init(Config{Level: "warn"})
	require.NoError(t, err)
	t.Cleanup(func() {
		mu.Lock()
		std = before
		mu.Unlock()
	})
	assert.Same(t, l, Default())
	child := l.With("component", "test")
	assert.NotSame(t, l, child)
	child.Info("not printed at warn level")
}
