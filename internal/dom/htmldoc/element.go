package htmldoc

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"biomae/internal/dom"
)

type element struct {
	d *Document
	n *html.Node
}

var _ dom.Element = (*element)(nil)

func (e *element) sel() *goquery.Selection {
	return goquery.NewDocumentFromNode(e.n).Selection
}

func (e *element) Tag() string { return e.n.Data }

func (e *element) Attr(name string) (string, bool) { return e.sel().Attr(name) }

func (e *element) SetAttr(name, value string) { e.sel().SetAttr(name, value) }

func (e *element) RemoveAttr(name string) { e.sel().RemoveAttr(name) }

func (e *element) HasClass(name string) bool { return e.sel().HasClass(name) }

func (e *element) AddClass(name string) { e.sel().AddClass(name) }

func (e *element) RemoveClass(name string) {
	s := e.sel()
	s.RemoveClass(name)
	if v, _ := s.Attr("class"); strings.TrimSpace(v) == "" {
		s.RemoveAttr("class")
	}
}

func (e *element) ToggleClass(name string) bool {
	if e.HasClass(name) {
		e.RemoveClass(name)
		return false
	}
	e.AddClass(name)
	return true
}

func (e *element) Text() string { return e.sel().Text() }

func (e *element) SetText(text string) {
	e.Clear()
	e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (e *element) Value() string {
	switch e.n.Data {
	case "textarea":
		return e.Text()
	case "select":
		s := e.sel()
		opt := s.Find("option[selected]").First()
		if opt.Length() == 0 {
			opt = s.Find("option").First()
		}
		if v, ok := opt.Attr("value"); ok {
			return v
		}
		return opt.Text()
	default:
		v, _ := e.Attr("value")
		return v
	}
}

func (e *element) SetValue(value string) {
	if _, ok := e.d.defaults[e.n]; !ok {
		e.d.defaults[e.n] = e.Value()
	}
	e.setValue(value)
}

func (e *element) setValue(value string) {
	switch e.n.Data {
	case "textarea":
		e.SetText(value)
	case "select":
		s := e.sel()
		s.Find("option").Each(func(_ int, opt *goquery.Selection) {
			v, ok := opt.Attr("value")
			if !ok {
				v = opt.Text()
			}
			if v == value {
				opt.SetAttr("selected", "selected")
			} else {
				opt.RemoveAttr("selected")
			}
		})
	default:
		e.SetAttr("value", value)
	}
}

func (e *element) Reset() {
	for n, def := range e.d.defaults {
		if !e.contains(n) {
			continue
		}
		(&element{d: e.d, n: n}).setValue(def)
		delete(e.d.defaults, n)
	}
}

func (e *element) SetStyle(property, value string) {
	raw, _ := e.Attr("style")
	var decls []string
	for _, decl := range strings.Split(raw, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, _, _ := strings.Cut(decl, ":")
		if strings.TrimSpace(name) == property {
			continue
		}
		decls = append(decls, decl)
	}
	if value != "" {
		decls = append(decls, property+": "+value)
	}
	if len(decls) == 0 {
		e.RemoveAttr("style")
		return
	}
	e.SetAttr("style", strings.Join(decls, "; "))
}

func (e *element) focusable() bool {
	if !e.d.attached(e.n) {
		return false
	}
	if _, ok := e.Attr("disabled"); ok {
		return false
	}
	if _, ok := e.Attr("tabindex"); ok {
		return true
	}
	switch e.n.Data {
	case "button", "select", "textarea":
		return true
	case "input":
		t, _ := e.Attr("type")
		return t != "hidden"
	case "a":
		_, ok := e.Attr("href")
		return ok
	}
	return false
}

func (e *element) Focus() bool {
	if !e.focusable() {
		return false
	}
	e.d.active = e.n
	return true
}

func (e *element) Query(selector string) dom.Element {
	return e.d.wrap(first(e.sel().Find(selector)))
}

func (e *element) QueryAll(selector string) []dom.Element {
	return e.d.wrapAll(e.sel().Find(selector))
}

func (e *element) Closest(selector string) dom.Element {
	return e.d.wrap(first(e.sel().Closest(selector)))
}

func (e *element) Contains(other dom.Element) bool {
	o, ok := other.(*element)
	if !ok || o == nil {
		return false
	}
	return e.contains(o.n)
}

func (e *element) contains(n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == e.n {
			return true
		}
	}
	return false
}

func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

func (e *element) Append(child dom.Element) {
	c, ok := child.(*element)
	if !ok || c == nil {
		return
	}
	detach(c.n)
	e.n.AppendChild(c.n)
}

func (e *element) InsertBefore(child, ref dom.Element) {
	c, ok := child.(*element)
	if !ok || c == nil {
		return
	}
	r, ok := ref.(*element)
	if !ok || r == nil || r.n.Parent != e.n {
		e.Append(child)
		return
	}
	detach(c.n)
	e.n.InsertBefore(c.n, r.n)
}

func (e *element) Remove() { detach(e.n) }

func (e *element) Clear() {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		c = next
	}
}

func (e *element) On(event string, h dom.Handler) { e.d.on(e.n, event, h) }

func (e *element) Equal(other dom.Element) bool {
	o, ok := other.(*element)
	return ok && o != nil && o.n == e.n
}
