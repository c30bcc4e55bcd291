package handlers_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/require"

	"biomae/internal/catalog"
	"biomae/internal/config"
	"biomae/internal/http/handlers"
	applog "biomae/internal/log"
	"biomae/internal/storage"
)

const templatesDir = "../../web/templates"

// newApp wires the routes the way the server binary does, with a tighter
// review limit.
func newApp(t *testing.T, reviewLimit int) (*fiber.App, *handlers.Deps) {
	t.Helper()
	cfg := config.Defaults()
	cfg.DBDSN = ":memory:"
	cfg.CountdownDeadline = time.Now().Add(72 * time.Hour)

	db, err := storage.OpenDB(cfg.DBDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	app := fiber.New(fiber.Config{
		Views:        handlers.NewEngine(templatesDir, false),
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB
	app.Use(requestid.New())
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax", ContextKey: "csrf"}))
	app.Use(func(c *fiber.Ctx) error {
		if tok, ok := c.Locals("csrf").(string); ok {
			c.Locals("CSRFToken", tok)
		}
		return c.Next()
	})

	media := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(media, "pack.jpeg"), []byte("jpeg"), 0o644))
	app.Get("/media/*", handlers.Media(media))

	deps := handlers.NewDeps(db, cfg, catalog.Default())
	app.Get("/", deps.PageHandler.Home)
	app.Post("/reviews", limiter.New(limiter.Config{Max: reviewLimit, Expiration: time.Minute}), deps.PageHandler.SubmitReview)
	api := app.Group("/api/v1")
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Detail)
	app.Get("/metrics", deps.Metrics.Handler())
	app.Get("/healthz", handlers.Health)
	app.Use(handlers.NotFound)
	return app, deps
}

type visitor struct {
	sid  string
	csrf string
}

func (v *visitor) cookies(req *http.Request) {
	if v.sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: v.sid})
	}
	if v.csrf != "" {
		req.AddCookie(&http.Cookie{Name: "csrf_", Value: v.csrf})
	}
}

func (v *visitor) remember(resp *http.Response) {
	for _, c := range resp.Cookies() {
		switch c.Name {
		case "sid":
			v.sid = c.Value
		case "csrf_":
			v.csrf = c.Value
		}
	}
}

func (v *visitor) get(t *testing.T, app *fiber.App, path string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	v.cookies(req)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	v.remember(resp)
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func (v *visitor) post(t *testing.T, app *fiber.App, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	if form.Get("csrf") == "" {
		form.Set("csrf", v.csrf)
	}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	v.cookies(req)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	v.remember(resp)
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

// newVisitor loads the home page once to pick up the visitor and CSRF
// cookies.
func newVisitor(t *testing.T, app *fiber.App) *visitor {
	t.Helper()
	v := &visitor{}
	v.get(t, app, "/")
	require.NotEmpty(t, v.sid, "sid cookie missing")
	require.NotEmpty(t, v.csrf, "csrf cookie missing")
	return v
}

func review(name, city, rating, msg string) url.Values {
	return url.Values{"name": {name}, "city": {city}, "rating": {rating}, "message": {msg}}
}

type lockedBuf struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (l *lockedBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func (l *lockedBuf) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.String()
}

// captureLogs routes the structured log into a buffer for fn.
func captureLogs(t *testing.T, fn func()) string {
	t.Helper()
	buf := &lockedBuf{}
	applog.SetOutput(buf, "debug")
	defer applog.SetOutput(os.Stdout, "info")
	fn()
	return buf.String()
}
