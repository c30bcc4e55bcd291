package config

import (
	"time"

	"github.com/caarlos0/env/v10"

	applog "biomae/internal/log"
)

type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	DBDSN        string `env:"DB_DSN" envDefault:"biomae.db"` // sqlite file in project root
	LogFile      string `env:"LOG_FILE" envDefault:"./biomae.log"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	TemplatesDir string `env:"TEMPLATES_DIR" envDefault:"./web/templates"`
	StaticDir    string `env:"STATIC_DIR" envDefault:"./web/static"`
	MediaDir     string `env:"MEDIA_DIR" envDefault:"./web/media"`

	WhatsAppNumber    string    `env:"WHATSAPP_NUMBER" envDefault:"212689941995"`
	CountdownDeadline time.Time `env:"COUNTDOWN_DEADLINE"`
	ReviewStorageKey  string    `env:"REVIEW_STORAGE_KEY" envDefault:"biomae_reviews_v1"`
}

func Defaults() Config {
	var cfg Config
	_ = env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}})
	return cfg
}

func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		applog.Error("config.parse", err, nil)
		cfg = Defaults()
	}
	applog.Info("config.loaded", map[string]any{
		"port":          cfg.Port,
		"db_dsn":        cfg.DBDSN,
		"log_file":      cfg.LogFile,
		"templates_dir": cfg.TemplatesDir,
		"static_dir":    cfg.StaticDir,
		"media_dir":     cfg.MediaDir,
		"deadline":      cfg.CountdownDeadline,
	})
	return cfg
}
