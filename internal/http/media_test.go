package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaServesCatalogImages(t *testing.T) {
	app, _ := newApp(t, 10)
	resp, body := (&visitor{}).get(t, app, "/media/pack.jpeg")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "jpeg", body)
}

// traversal attempts never reach the filesystem outside the media dir
func TestMediaBlocksTraversal(t *testing.T) {
	app, _ := newApp(t, 10)

	for _, path := range []string{"/media/..%2f..%2fgo.mod", "/media/%2e%2e/secret", "/media/a/../../go.mod"} {
		resp, _ := (&visitor{}).get(t, app, path)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}
