// Package testutil holds page fixtures shared by package tests.
package testutil

import (
	"testing"
	"time"

	"biomae/internal/dom/htmldoc"
)

// Epoch is the fixed start of every test clock.
var Epoch = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

// ParseHTML parses the provided HTML payload into a headless document.
func ParseHTML(t testing.TB, body string) *htmldoc.Document {
	t.Helper()

	doc, err := htmldoc.ParseString(body)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// Page parses the full storefront fixture.
func Page(t testing.TB) (*htmldoc.Document, *htmldoc.Scheduler) {
	t.Helper()
	return ParseHTML(t, PageHTML), htmldoc.NewScheduler(Epoch)
}

// PageHTML carries every element the storefront components look for.
const PageHTML = `<!doctype html>
<html lang="ar" dir="rtl">
<head><title>BIOMAE DELICE</title></head>
<body>
  <header>
    <button class="menu-toggle" aria-expanded="false">menu</button>
    <nav class="main-nav">
      <a href="#products">products</a>
      <a href="#reviews">reviews</a>
    </nav>
    <video class="project-logo-gif" autoplay muted></video>
  </header>

  <section class="reveal" id="hero">
    <span id="countdown" data-deadline="2026-10-21T13:01:01Z"></span>
    <a id="cta-whatsapp-btn" href="#">order</a>
    <div class="bg-orb"></div><div class="bg-orb"></div>
  </section>

  <section class="reveal" id="products">
    <div class="products-grid">
      <article class="product-card tilt-card" data-product-id="pate-energie"><h3>Pate Energie</h3></article>
      <article class="product-card tilt-card" data-product-id="energy-mix"><h3>Energy Mix</h3></article>
      <article class="product-card" data-product-id="xyz"><h3>Ghost</h3></article>
    </div>
  </section>

  <section id="components">
    <img id="components-preview-image" src="components.png" alt="components">
    <button id="components-open-btn" type="button">zoom</button>
  </section>

  <section id="reviews">
    <div id="testimonials-track">
      <article class="quote-card"><p class="quote-card__rating">★★★★★</p><p>"editorial one"</p><h4>Sara - Rabat</h4></article>
      <article class="quote-card"><p class="quote-card__rating">★★★★☆</p><p>"editorial two"</p><h4>Youssef - Casa</h4></article>
    </div>
    <form id="review-form" action="/reviews" method="post">
      <input id="review-name" name="name">
      <input id="review-city" name="city">
      <input id="review-rating" name="rating" type="hidden" value="5">
      <div class="review-stars">
        <button type="button" class="review-star" data-rating="1">★</button>
        <button type="button" class="review-star" data-rating="2">★</button>
        <button type="button" class="review-star" data-rating="3">★</button>
        <button type="button" class="review-star" data-rating="4">★</button>
        <button type="button" class="review-star" data-rating="5">★</button>
      </div>
      <textarea id="review-message" name="message"></textarea>
      <button type="submit">send</button>
    </form>
    <p id="review-feedback"></p>
  </section>

  <div id="product-modal" class="product-modal" aria-hidden="true">
    <div class="product-modal__backdrop" data-close-modal></div>
    <div class="product-modal__content">
      <button class="product-modal__close" type="button" data-close-modal>x</button>
      <img id="modal-main-image" src="" alt="">
      <div id="modal-thumbs"></div>
      <span id="modal-tag"></span>
      <h3 id="modal-title"></h3>
      <div id="modal-price"></div>
      <p id="modal-description"></p>
      <ul id="modal-benefits"></ul>
      <a id="modal-order-btn" href="#">order</a>
    </div>
  </div>

  <div id="components-lightbox" class="image-lightbox" aria-hidden="true">
    <div class="image-lightbox__backdrop" data-close-lightbox></div>
    <button class="image-lightbox__close" type="button" data-close-lightbox>x</button>
    <img id="components-lightbox-image" src="" alt="">
  </div>
</body>
</html>`
