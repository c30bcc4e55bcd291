package outbound_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biomae/internal/outbound"
)

func TestURLRoundTrips(t *testing.T) {
	msg := outbound.OrderMessage("Pack d'energie - باك الطاقة", "349 درهم")
	link := outbound.WhatsApp{Number: "212600000000"}.URL(msg)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "wa.me", u.Host)
	assert.Equal(t, "/212600000000", u.Path)
	assert.Equal(t, msg, u.Query().Get("text"))
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "a%20b%26c%3Dd%2B", outbound.EncodeURIComponent("a b&c=d+"))
}

func TestDefaultNumber(t *testing.T) {
	assert.Contains(t, outbound.WhatsApp{}.URL("hi"), "https://wa.me/"+outbound.DefaultNumber+"?text=hi")
}
