package handlers

import (
	"biomae/internal/catalog"
	"biomae/internal/config"
	"biomae/internal/outbound"
	"biomae/internal/page"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	PageHandler    *PageHandler
	ProductHandler *ProductHandler
	Metrics        *Metrics
}

func NewDeps(db *sqlx.DB, cfg config.Config, cat *catalog.Catalog) *Deps {
	if cat == nil {
		cat = catalog.Default()
	}
	metrics := NewMetrics()
	link := outbound.WhatsApp{Number: cfg.WhatsAppNumber}

	opts := page.DefaultOptions()
	opts.WhatsAppNumber = cfg.WhatsAppNumber
	if cfg.ReviewStorageKey != "" {
		opts.StorageKey = cfg.ReviewStorageKey
	}

	return &Deps{
		PageHandler: &PageHandler{
			DB:       db,
			Catalog:  cat,
			Link:     link,
			Options:  opts,
			Deadline: cfg.CountdownDeadline,
			Metrics:  metrics,
		},
		ProductHandler: &ProductHandler{Catalog: cat, Link: link, Metrics: metrics},
		Metrics:        metrics,
	}
}
