package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductDetail(t *testing.T) {
	app, _ := newApp(t, 10)
	resp, body := (&visitor{}).get(t, app, "/api/v1/products/energy-mix")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		ID       string   `json:"id"`
		Name     string   `json:"name"`
		Price    string   `json:"price"`
		Images   []string `json:"images"`
		OrderURL string   `json:"orderUrl"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "energy-mix", got.ID)
	assert.NotEmpty(t, got.Images)
	assert.True(t, strings.HasPrefix(got.OrderURL, "https://wa.me/212689941995?text="))
	assert.NotContains(t, got.OrderURL, "+")
}

func TestProductList(t *testing.T) {
	app, _ := newApp(t, 10)
	_, body := (&visitor{}).get(t, app, "/api/v1/products")

	var got struct {
		Products []struct {
			ID string `json:"id"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	require.Len(t, got.Products, 4)
	assert.Equal(t, "pate-energie", got.Products[0].ID)
}

func TestProductDetailUnknownAndInvalid(t *testing.T) {
	app, _ := newApp(t, 10)

	resp, body := (&visitor{}).get(t, app, "/api/v1/products/xyz")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"product not found"}`, body)

	logs := captureLogs(t, func() {
		resp, _ = (&visitor{}).get(t, app, "/api/v1/products/bad.id")
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, logs, `"action":"validation.fail"`)
	assert.Contains(t, logs, `"kind":"security"`)
}

func TestMetricsCountLookups(t *testing.T) {
	app, _ := newApp(t, 10)
	v := &visitor{}
	v.get(t, app, "/api/v1/products/energy-mix")
	v.get(t, app, "/api/v1/products/xyz")
	v.get(t, app, "/")

	_, body := v.get(t, app, "/metrics")
	assert.Contains(t, body, `biomae_product_lookups_total{result="hit"} 1`)
	assert.Contains(t, body, `biomae_product_lookups_total{result="miss"} 1`)
	assert.Contains(t, body, `biomae_page_renders_total 1`)
}
