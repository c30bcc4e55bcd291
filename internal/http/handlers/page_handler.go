package handlers

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"biomae/internal/catalog"
	"biomae/internal/dom/htmldoc"
	applog "biomae/internal/log"
	"biomae/internal/outbound"
	"biomae/internal/page"
	"biomae/internal/reviews"
	"biomae/internal/storage"
)

// PageHandler serves the storefront. Each request mounts the page on a
// headless document backed by the visitor's storage partition, so stored
// reviews are part of the served markup.
type PageHandler struct {
	DB       *sqlx.DB
	Catalog  *catalog.Catalog
	Link     outbound.WhatsApp
	Options  page.Options
	Deadline time.Time
	Metrics  *Metrics
}

func (h *PageHandler) data() fiber.Map {
	deadline := ""
	if !h.Deadline.IsZero() {
		deadline = h.Deadline.UTC().Format(time.RFC3339)
	}
	return fiber.Map{
		"Products":     h.Catalog.List(),
		"Testimonials": h.Catalog.Testimonials(),
		"Deadline":     deadline,
		"CTAHref":      h.Link.URL(outbound.CTAMessage),
	}
}

// serve renders, mounts and writes the page. act runs against the mounted
// page and picks the status code.
func (h *PageHandler) serve(c *fiber.Ctx, act func(*page.Page, *htmldoc.Document) int) error {
	sid := ensureSID(c)
	raw, err := renderHTML(c, "index", h.data())
	if err != nil {
		return err
	}
	doc, err := htmldoc.Parse(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	sched := htmldoc.NewScheduler(time.Now())
	p := page.Mount(page.Env{
		Doc:     doc,
		Sched:   sched,
		Storage: storage.NewSQLite(h.DB, sid),
		Catalog: h.Catalog,
	}, h.Options)

	status := fiber.StatusOK
	if act != nil {
		status = act(p, doc)
	}
	sched.Settle()

	out, err := doc.HTML()
	if err != nil {
		return err
	}
	h.Metrics.render()
	c.Type("html", "utf-8")
	return c.Status(status).SendString(out)
}

func (h *PageHandler) Home(c *fiber.Ctx) error { return h.serve(c, nil) }

// SubmitReview is the review form's action when scripts are off. The posted
// fields go through the same pipeline the browser uses.
func (h *PageHandler) SubmitReview(c *fiber.Ctx) error {
	return h.serve(c, func(p *page.Page, doc *htmldoc.Document) int {
		if p.Reviews == nil {
			applog.Error("review.form.missing", nil, reqFields(c, nil))
			return fiber.StatusServiceUnavailable
		}
		for id, key := range map[string]string{
			reviews.NameID:    "name",
			reviews.CityID:    "city",
			reviews.MessageID: "message",
		} {
			if el := doc.ByID(id); el != nil {
				el.SetValue(c.FormValue(key))
			}
		}
		if picker := p.Reviews.Picker(); picker != nil {
			picker.Set(c.FormValue("rating"), false)
		} else if el := doc.ByID(reviews.RatingID); el != nil {
			el.SetValue(c.FormValue("rating"))
		}

		out, _ := p.Reviews.Submit()
		h.Metrics.review(out.State.String())
		if out.State != reviews.Accepted {
			applog.Info("review.post.rejected", reqFields(c, map[string]any{"problems": out.Problems}))
			return fiber.StatusUnprocessableEntity
		}
		applog.Audit("review.post.accepted", reqFields(c, map[string]any{"rating": out.Review.Rating}))
		return fiber.StatusOK
	})
}
