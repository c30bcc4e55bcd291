package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"biomae/internal/catalog"
	"biomae/internal/config"
	"biomae/internal/http/handlers"
	applog "biomae/internal/log"
	"biomae/internal/storage"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			applog.Error("log.file.open", err, map[string]any{"path": cfg.LogFile})
		} else {
			defer f.Close()
			applog.SetOutput(io.MultiWriter(os.Stdout, f), cfg.LogLevel)
		}
	}
	defer applog.Sync()

	db, err := storage.OpenDB(cfg.DBDSN)
	if err != nil {
		applog.Error("db.open", err, map[string]any{"dsn": cfg.DBDSN})
		os.Exit(1)
	}
	defer db.Close()

	engine := handlers.NewEngine(cfg.TemplatesDir, true)
	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: handlers.ErrorHandler,
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			return strings.HasPrefix(p, "/static/") || strings.HasPrefix(p, "/media/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security("csrf.fail", map[string]any{"ip": c.IP(), "path": c.Path()})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok, ok := c.Locals("csrf").(string); ok {
			c.Locals("CSRFToken", tok)
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	mediaDir := cfg.MediaDir
	if !filepath.IsAbs(mediaDir) {
		if abs, err := filepath.Abs(mediaDir); err == nil {
			mediaDir = abs
		}
	}
	applog.Info("static.mount", map[string]any{"static": cfg.StaticDir, "media": mediaDir})

	app.Static("/static", cfg.StaticDir)
	app.Get("/media/*", handlers.Media(mediaDir))

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, catalog.Default())

	app.Get("/", deps.PageHandler.Home)
	app.Post("/reviews", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security("rate.review.hit", map[string]any{"ip": c.IP()})
			return c.Status(fiber.StatusTooManyRequests).Render("notfound", fiber.Map{"Message": "Too many reviews. Please try again later."})
		},
	}), deps.PageHandler.SubmitReview)

	api := app.Group("/api/v1")
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Detail)

	app.Get("/metrics", deps.Metrics.Handler())
	app.Get("/healthz", handlers.Health)
	app.Use(handlers.NotFound)

	addr := ":" + cfg.Port
	applog.Info("server.listen", map[string]any{"addr": addr})
	if err := app.Listen(addr); err != nil {
		applog.Error("server.listen", err, nil)
		os.Exit(1)
	}
}
