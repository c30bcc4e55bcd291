// Package page mounts every storefront component on a document. Each
// component checks for its own elements and is skipped when they are
// missing, without affecting the others.
package page

import (
	"time"

	"biomae/internal/catalog"
	"biomae/internal/dom"
	"biomae/internal/lock"
	applog "biomae/internal/log"
	"biomae/internal/outbound"
	"biomae/internal/overlay"
	"biomae/internal/reviews"
	"biomae/internal/storage"
)

type Options struct {
	StorageKey     string
	WhatsAppNumber string
	CTAMessage     string
	Messages       reviews.Messages
	Prefs          Preferences
	Now            func() time.Time
}

func DefaultOptions() Options {
	return Options{
		StorageKey:     reviews.DefaultKey,
		WhatsAppNumber: outbound.DefaultNumber,
		CTAMessage:     outbound.CTAMessage,
		Messages:       reviews.DefaultMessages(),
	}
}

type Env struct {
	Doc     dom.Document
	Sched   dom.Scheduler
	Storage storage.Local
	Catalog *catalog.Catalog
}

// Page holds the mounted components. Nil fields were skipped.
type Page struct {
	Locks     *lock.Manager
	Overlays  *overlay.Stack
	Reviews   *reviews.Form
	Product   *overlay.ProductModal
	Lightbox  *overlay.Lightbox
	Menu      *Menu
	Countdown *Countdown
	Motion    bool

	skipped []string
}

func (p *Page) Skipped() []string { return p.skipped }

func (p *Page) skip(feature string, missing bool) {
	if missing {
		p.skipped = append(p.skipped, feature)
	}
}

func Mount(env Env, opts Options) *Page {
	doc := env.Doc
	if env.Catalog == nil {
		env.Catalog = catalog.Default()
	}
	now := opts.Now
	if now == nil && env.Sched != nil {
		now = env.Sched.Now
	}
	link := outbound.WhatsApp{Number: opts.WhatsAppNumber}

	p := &Page{
		Locks:    lock.New(doc.Body()),
		Overlays: overlay.NewStack(),
	}

	p.Menu = mountMenu(doc)
	p.skip("menu", p.Menu == nil)

	applyDataSaver(doc, opts.Prefs)
	mountReveal(doc)

	p.Countdown = mountCountdown(doc, env.Sched)
	p.skip("countdown", p.Countdown == nil)

	store := reviews.NewStore(env.Storage, opts.StorageKey)
	p.Reviews = reviews.Mount(doc, env.Sched, reviews.NewPipeline(store, now), opts.Messages)
	p.skip("reviews", p.Reviews == nil)

	cta := doc.ByID("cta-whatsapp-btn")
	if cta != nil {
		msg := opts.CTAMessage
		if msg == "" {
			msg = outbound.CTAMessage
		}
		cta.SetAttr("href", link.URL(msg))
	}
	p.skip("cta", cta == nil)

	p.Product = overlay.NewProductModal(doc, p.Locks, p.Overlays, env.Catalog, link)
	p.skip("product-modal", p.Product == nil)

	p.Lightbox = overlay.NewLightbox(doc, p.Locks, p.Overlays)
	p.skip("lightbox", p.Lightbox == nil)

	doc.On("keydown", p.Overlays.HandleKey)

	p.Motion = mountMotion(doc, env.Sched, opts.Prefs)

	if len(p.skipped) > 0 {
		applog.Debug("page.mount.skipped", map[string]any{"features": p.skipped})
	}
	return p
}
