package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biomae/internal/catalog"
)

func TestDefaultCatalog(t *testing.T) {
	c := catalog.Default()
	ids := []string{}
	for _, p := range c.List() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"pate-energie", "energy-mix", "crunchy-granola", "pack-energie"}, ids)

	p, ok := c.Lookup("crunchy-granola")
	require.True(t, ok)
	assert.Equal(t, "129 درهم", p.Price)
	assert.Equal(t, "150 درهم", p.OldPrice)
	assert.Len(t, p.Images, 2)
	assert.Len(t, p.Benefits, 4)
	assert.NotEmpty(t, c.Testimonials())
}

func TestLookupUnknown(t *testing.T) {
	c := catalog.Default()
	_, ok := c.Lookup("xyz")
	assert.False(t, ok)

	_, err := c.Get("xyz")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestLookupReturnsCopies(t *testing.T) {
	c := catalog.Default()
	p, _ := c.Lookup("pate-energie")
	p.Images[0] = "tampered.png"
	p.Name = "tampered"

	again, _ := c.Lookup("pate-energie")
	assert.Equal(t, "media/pate energie.jpeg", again.Images[0])
	assert.NotEqual(t, "tampered", again.Name)
}

func TestParseRejectsBadEntries(t *testing.T) {
	_, err := catalog.Parse([]byte("products:\n  - id: a\n    name: A\n    price: \"1\"\n  - id: a\n    name: B\n    price: \"2\"\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = catalog.Parse([]byte("products:\n  - id: ../x\n    name: A\n    price: \"1\"\n"))
	assert.ErrorContains(t, err, "invalid id")

	_, err = catalog.Parse([]byte("products:\n  - id: a\n    price: \"1\"\n"))
	assert.ErrorContains(t, err, "required")

	_, err = catalog.Parse([]byte("products: [\n"))
	assert.Error(t, err)
}

func TestParseClampsTestimonialRatings(t *testing.T) {
	c, err := catalog.Parse([]byte("testimonials:\n  - name: A\n    city: B\n    rating: 9\n    message: fine product\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, c.Testimonials()[0].Rating)
}

func TestParseResolvesMediaBase(t *testing.T) {
	c, err := catalog.Parse([]byte("media_base: media/\nproducts:\n  - id: a\n    name: A\n    price: \"1\"\n    images: [one.png, /abs.png, \"https://cdn.example/x.png\"]\n"))
	require.NoError(t, err)

	p, ok := c.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, []string{"media/one.png", "/abs.png", "https://cdn.example/x.png"}, p.Images)
}
