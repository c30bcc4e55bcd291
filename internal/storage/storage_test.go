package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biomae/internal/storage"
)

func TestMemory(t *testing.T) {
	m := storage.NewMemory()
	_, ok, err := m.GetItem("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.SetItem("k", "v1"))
	require.NoError(t, m.SetItem("k", "v2"))
	v, ok, err := m.GetItem("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	m.Quota = 3
	assert.ErrorIs(t, m.SetItem("k", "toolong"), storage.ErrQuotaExceeded)

	m.Disabled = true
	_, _, err = m.GetItem("k")
	assert.ErrorIs(t, err, storage.ErrUnavailable)
	assert.ErrorIs(t, m.SetItem("k", "v"), storage.ErrUnavailable)
}
