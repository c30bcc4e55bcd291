package reviews_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biomae/internal/domain"
	"biomae/internal/reviews"
	"biomae/internal/storage"
)

func TestStoreRoundTrip(t *testing.T) {
	mem := storage.NewMemory()
	s := reviews.NewStore(mem, "")

	in := []domain.Review{
		{Name: "Aya", City: "Fes", Rating: 5, Message: "Great product overall", CreatedAt: 1700000000000},
		{Name: "Omar", City: "Tanger", Rating: 3, Message: "decent but pricey", CreatedAt: 1690000000000},
	}
	require.NoError(t, s.Save(in))
	assert.Equal(t, in, s.Load())

	raw, ok, _ := mem.GetItem(reviews.DefaultKey)
	require.True(t, ok)
	var generic []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &generic))
	assert.Equal(t, "Aya", generic[0]["name"])
	assert.EqualValues(t, 1700000000000, generic[0]["createdAt"])
}

func TestStoreDropsIncompleteRecords(t *testing.T) {
	mem := storage.NewMemory()
	require.NoError(t, mem.SetItem(reviews.DefaultKey, `[
		{"name":"Aya","city":"Fes","rating":4,"message":"very tasty granola","createdAt":1},
		{"name":"NoCity","rating":4,"message":"missing the city field"},
		{"name":"Blank","city":"   ","rating":4,"message":"whitespace city"},
		{"name":"Zero","city":"Fes","rating":0,"message":"zero rating is missing"},
		{"name":"Str","city":"Fes","rating":"3","message":"string rating is kept"},
		{"name":"Big","city":"Fes","rating":42,"message":"clamped on load"},
		{"name":7,"city":"Fes","rating":4,"message":"numeric name"},
		null,
		"just a string",
		[1,2]
	]`))

	got := reviews.NewStore(mem, "").Load()
	require.Len(t, got, 3)
	assert.Equal(t, "Aya", got[0].Name)
	assert.Equal(t, "Str", got[1].Name)
	assert.Equal(t, 3, got[1].Rating)
	assert.Equal(t, 5, got[2].Rating)
}

func TestStoreCorruptionFallsBackToEmpty(t *testing.T) {
	for name, raw := range map[string]string{
		"not json":   `{{{`,
		"object":     `{"name":"Aya"}`,
		"number":     `42`,
		"null":       `null`,
		"empty list": `[]`,
	} {
		t.Run(name, func(t *testing.T) {
			mem := storage.NewMemory()
			require.NoError(t, mem.SetItem(reviews.DefaultKey, raw))
			got := reviews.NewStore(mem, "").Load()
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestStoreUnavailable(t *testing.T) {
	mem := storage.NewMemory()
	mem.Disabled = true
	s := reviews.NewStore(mem, "")

	assert.Empty(t, s.Load())
	assert.ErrorIs(t, s.Save([]domain.Review{{Name: "Aya"}}), storage.ErrUnavailable)

	assert.Empty(t, reviews.NewStore(nil, "").Load())
}

func TestStoreUsesItsKey(t *testing.T) {
	mem := storage.NewMemory()
	a := reviews.NewStore(mem, "a")
	b := reviews.NewStore(mem, "b")
	require.NoError(t, a.Save([]domain.Review{{Name: "Aya", City: "Fes", Rating: 5, Message: "lovely stuff"}}))
	assert.Len(t, a.Load(), 1)
	assert.Empty(t, b.Load())
}
