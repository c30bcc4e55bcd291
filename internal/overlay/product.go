package overlay

import (
	"strconv"

	"biomae/internal/dom"
	"biomae/internal/domain"
	"biomae/internal/lock"
	applog "biomae/internal/log"
	"biomae/internal/outbound"
)

const (
	ProductModalID = "product-modal"
	cardSelector   = ".product-card[data-product-id]"
	thumbClass     = "thumb-btn"
	activeThumb    = "active"
)

// Catalog resolves product ids for the modal.
type Catalog interface {
	Lookup(id string) (domain.Product, bool)
}

// ProductModal shows one catalog product with a thumbnail gallery.
type ProductModal struct {
	*Overlay
	catalog Catalog
	link    outbound.WhatsApp
	grid    dom.Element

	title, tag, price, description, benefits dom.Element
	mainImage, thumbs, orderBtn              dom.Element

	product    domain.Product
	image      int
	thumbNodes []dom.Element
}

// NewProductModal returns nil when the modal or the product grid is missing.
func NewProductModal(doc dom.Document, locks *lock.Manager, stack *Stack, catalog Catalog, link outbound.WhatsApp) *ProductModal {
	root := doc.ByID(ProductModalID)
	grid := doc.Query(".products-grid")
	if !dom.Present(root, grid) || catalog == nil {
		return nil
	}
	m := &ProductModal{
		Overlay:     newOverlay("product", doc, root, root.Query(".product-modal__close"), locks, stack),
		catalog:     catalog,
		link:        link,
		grid:        grid,
		title:       doc.ByID("modal-title"),
		tag:         doc.ByID("modal-tag"),
		price:       doc.ByID("modal-price"),
		description: doc.ByID("modal-description"),
		benefits:    doc.ByID("modal-benefits"),
		mainImage:   doc.ByID("modal-main-image"),
		thumbs:      doc.ByID("modal-thumbs"),
		orderBtn:    doc.ByID("modal-order-btn"),
		image:       -1,
	}
	for _, card := range grid.QueryAll(cardSelector) {
		card.SetAttr("tabindex", "0")
	}
	grid.On("click", func(ev *dom.Event) {
		if card := m.cardFor(ev); card != nil {
			id, _ := card.Attr("data-product-id")
			m.Open(id)
		}
	})
	grid.On("keydown", func(ev *dom.Event) {
		if ev.Key != "Enter" && ev.Key != " " {
			return
		}
		if card := m.cardFor(ev); card != nil {
			ev.PreventDefault()
			id, _ := card.Attr("data-product-id")
			m.Open(id)
		}
	})
	m.bindClose("[data-close-modal]")
	return m
}

func (m *ProductModal) cardFor(ev *dom.Event) dom.Element {
	if ev.Target == nil {
		return nil
	}
	card := ev.Target.Closest(cardSelector)
	if card == nil || !m.grid.Contains(card) {
		return nil
	}
	return card
}

// Open shows the product with id. Unknown ids leave the modal untouched.
func (m *ProductModal) Open(id string) bool {
	p, ok := m.catalog.Lookup(id)
	if !ok {
		applog.Debug("overlay.product.unknown", map[string]any{"id": id})
		return false
	}
	m.product = p
	m.populate()
	m.show()
	return true
}

// Product returns the descriptor currently shown.
func (m *ProductModal) Product() (domain.Product, bool) {
	return m.product, m.IsOpen()
}

// Image returns the index of the primary image, -1 before any is chosen.
func (m *ProductModal) Image() int { return m.image }

func setText(el dom.Element, s string) {
	if el != nil {
		el.SetText(s)
	}
}

func (m *ProductModal) populate() {
	p := m.product
	doc := m.doc
	setText(m.tag, p.Tag)
	setText(m.title, p.Name)
	setText(m.description, p.Description)

	if m.price != nil {
		m.price.Clear()
		if p.OldPrice != "" {
			old := doc.Create("span")
			old.SetAttr("class", "modal-old-price")
			old.SetText(p.OldPrice)
			m.price.Append(old)
		}
		cur := doc.Create("span")
		cur.SetAttr("class", "modal-current-price")
		cur.SetText(p.Price)
		m.price.Append(cur)
	}

	if m.benefits != nil {
		m.benefits.Clear()
		for _, b := range p.Benefits {
			li := doc.Create("li")
			li.SetText(b)
			m.benefits.Append(li)
		}
	}

	m.thumbNodes = m.thumbNodes[:0]
	m.image = -1
	if m.thumbs != nil {
		m.thumbs.Clear()
		for i, src := range p.Images {
			btn := m.buildThumb(i, src)
			m.thumbs.Append(btn)
			m.thumbNodes = append(m.thumbNodes, btn)
		}
	}
	if len(p.Images) > 0 {
		m.SelectImage(0)
	}

	if m.orderBtn != nil {
		m.orderBtn.SetAttr("href", m.link.URL(outbound.OrderMessage(p.Name, p.Price)))
	}
}

func (m *ProductModal) buildThumb(i int, src string) dom.Element {
	n := strconv.Itoa(i + 1)
	btn := m.doc.Create("button")
	btn.SetAttr("type", "button")
	btn.SetAttr("class", thumbClass)
	btn.SetAttr("aria-label", "صورة "+n+" لـ "+m.product.Name)

	img := m.doc.Create("img")
	img.SetAttr("src", src)
	img.SetAttr("alt", m.product.Name+" - "+n)
	img.SetAttr("loading", "lazy")
	img.SetAttr("decoding", "async")
	btn.Append(img)

	btn.On("click", func(*dom.Event) { m.SelectImage(i) })
	return btn
}

// SelectImage makes image i primary and marks its thumbnail active. Out of
// range indexes are ignored.
func (m *ProductModal) SelectImage(i int) bool {
	if i < 0 || i >= len(m.product.Images) {
		return false
	}
	m.image = i
	if m.mainImage != nil {
		m.mainImage.SetAttr("src", m.product.Images[i])
		m.mainImage.SetAttr("alt", m.product.Name)
	}
	for j, t := range m.thumbNodes {
		if j == i {
			t.AddClass(activeThumb)
		} else {
			t.RemoveClass(activeThumb)
		}
	}
	return true
}
