package overlay

import (
	"biomae/internal/dom"
	"biomae/internal/lock"
)

const LightboxID = "components-lightbox"

// Lightbox enlarges the components preview image.
type Lightbox struct {
	*Overlay
	preview dom.Element
	image   dom.Element
}

// NewLightbox returns nil when the lightbox, its opener or the preview image
// is missing.
func NewLightbox(doc dom.Document, locks *lock.Manager, stack *Stack) *Lightbox {
	root := doc.ByID(LightboxID)
	opener := doc.ByID("components-open-btn")
	preview := doc.ByID("components-preview-image")
	if !dom.Present(root, opener, preview) {
		return nil
	}
	l := &Lightbox{
		Overlay: newOverlay("lightbox", doc, root, root.Query(".image-lightbox__close"), locks, stack),
		preview: preview,
		image:   doc.ByID("components-lightbox-image"),
	}
	opener.On("click", func(*dom.Event) { l.Open() })
	l.bindClose("[data-close-lightbox]")
	return l
}

// Open copies the preview into the lightbox. A preview without a source
// leaves the lightbox closed.
func (l *Lightbox) Open() bool {
	src, _ := l.preview.Attr("src")
	if src == "" {
		return false
	}
	if l.image != nil {
		alt, _ := l.preview.Attr("alt")
		l.image.SetAttr("src", src)
		l.image.SetAttr("alt", alt)
	}
	l.show()
	return true
}
