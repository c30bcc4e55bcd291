//go:build !(js && wasm)

package storage_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biomae/internal/storage"
)

func TestSQLitePartitions(t *testing.T) {
	db, err := storage.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	alice := storage.NewSQLite(db, "visitor-a")
	bob := storage.NewSQLite(db, "visitor-b")

	require.NoError(t, alice.SetItem("biomae_reviews_v1", `[{"name":"Aya"}]`))
	require.NoError(t, alice.SetItem("biomae_reviews_v1", `[]`))

	v, ok, err := alice.GetItem("biomae_reviews_v1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, v)

	_, ok, err = bob.GetItem("biomae_reviews_v1")
	require.NoError(t, err)
	assert.False(t, ok, "partitions are isolated")
}

func TestSQLiteQuota(t *testing.T) {
	db, err := storage.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := storage.NewSQLite(db, "p")
	err = s.SetItem("k", strings.Repeat("x", storage.MaxValueBytes+1))
	assert.ErrorIs(t, err, storage.ErrQuotaExceeded)
}

func TestSQLiteClosedIsUnavailable(t *testing.T) {
	db, err := storage.OpenDB(":memory:")
	require.NoError(t, err)
	s := storage.NewSQLite(db, "p")
	require.NoError(t, db.Close())

	_, _, err = s.GetItem("k")
	assert.ErrorIs(t, err, storage.ErrUnavailable)
	assert.ErrorIs(t, s.SetItem("k", "v"), storage.ErrUnavailable)
}
