package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"biomae/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Defaults()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "biomae_reviews_v1", cfg.ReviewStorageKey)
	assert.Equal(t, "212689941995", cfg.WhatsAppNumber)
	assert.True(t, cfg.CountdownDeadline.IsZero())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("COUNTDOWN_DEADLINE", "2026-11-01T00:00:00Z")
	cfg := config.Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.CountdownDeadline.Equal(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)))
}

func TestLoadFallsBackOnBadValue(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("COUNTDOWN_DEADLINE", "next tuesday")
	cfg := config.Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.CountdownDeadline.IsZero())
}
