// Package htmldoc is a headless dom.Document over a parsed HTML tree. The
// server uses it to pre-render the page and tests use it in place of a
// browser.
package htmldoc

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"biomae/internal/dom"
)

type Document struct {
	doc      *goquery.Document
	handlers map[*html.Node]map[string][]dom.Handler
	defaults map[*html.Node]string
	active   *html.Node
}

var _ dom.Document = (*Document)(nil)

func Parse(r io.Reader) (*Document, error) {
	gq, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{
		doc:      gq,
		handlers: map[*html.Node]map[string][]dom.Handler{},
		defaults: map[*html.Node]string{},
	}, nil
}

func ParseString(s string) (*Document, error) { return Parse(strings.NewReader(s)) }

func (d *Document) root() *html.Node { return d.doc.Nodes[0] }

func (d *Document) wrap(n *html.Node) dom.Element {
	if n == nil {
		return nil
	}
	return &element{d: d, n: n}
}

func (d *Document) wrapAll(s *goquery.Selection) []dom.Element {
	out := make([]dom.Element, 0, s.Length())
	for _, n := range s.Nodes {
		out = append(out, d.wrap(n))
	}
	return out
}

func first(s *goquery.Selection) *html.Node {
	if s.Length() == 0 {
		return nil
	}
	return s.Nodes[0]
}

func (d *Document) ByID(id string) dom.Element {
	if id == "" {
		return nil
	}
	return d.Query(fmt.Sprintf("[id=%q]", id))
}

func (d *Document) Query(selector string) dom.Element {
	return d.wrap(first(d.doc.Find(selector)))
}

func (d *Document) QueryAll(selector string) []dom.Element {
	return d.wrapAll(d.doc.Find(selector))
}

func (d *Document) Body() dom.Element { return d.Query("body") }

func (d *Document) Create(tag string) dom.Element {
	tag = strings.ToLower(tag)
	return d.wrap(&html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))})
}

func (d *Document) Active() dom.Element {
	if d.active != nil && d.attached(d.active) {
		return d.wrap(d.active)
	}
	return d.Body()
}

func (d *Document) On(event string, h dom.Handler) { d.on(d.root(), event, h) }

func (d *Document) on(n *html.Node, event string, h dom.Handler) {
	byType, ok := d.handlers[n]
	if !ok {
		byType = map[string][]dom.Handler{}
		d.handlers[n] = byType
	}
	byType[event] = append(byType[event], h)
}

// Dispatch delivers ev to target and bubbles it up to the document.
func (d *Document) Dispatch(target dom.Element, ev *dom.Event) {
	el, ok := target.(*element)
	if !ok || el == nil {
		return
	}
	ev.Target = target
	for n := el.n; n != nil; n = n.Parent {
		for _, h := range d.handlers[n][ev.Type] {
			h(ev)
		}
		if ev.Stopped() {
			return
		}
	}
}

func (d *Document) Click(target dom.Element) *dom.Event {
	ev := &dom.Event{Type: "click"}
	d.Dispatch(target, ev)
	return ev
}

func (d *Document) KeyDown(target dom.Element, key string) *dom.Event {
	if target == nil {
		target = d.Active()
	}
	ev := &dom.Event{Type: "keydown", Key: key}
	d.Dispatch(target, ev)
	return ev
}

func (d *Document) Submit(form dom.Element) *dom.Event {
	ev := &dom.Event{Type: "submit"}
	d.Dispatch(form, ev)
	return ev
}

func (d *Document) Pointer(target dom.Element, kind string, x, y float64) *dom.Event {
	ev := &dom.Event{Type: kind, X: x, Y: y}
	d.Dispatch(target, ev)
	return ev
}

func (d *Document) attached(n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == d.root() {
			return true
		}
	}
	return false
}

func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root())
}

func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
