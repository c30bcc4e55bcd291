//go:build js && wasm

// Package jsdom binds the dom contract to the browser through syscall/js.
package jsdom

import (
	"syscall/js"

	"biomae/internal/dom"
)

type Document struct {
	doc js.Value
	win js.Value
	// handler funcs live as long as the page
	funcs []js.Func
}

var (
	_ dom.Document             = (*Document)(nil)
	_ dom.Geometry             = (*Document)(nil)
	_ dom.IntersectionObserver = (*Document)(nil)
)

func New() *Document {
	win := js.Global()
	return &Document{doc: win.Get("document"), win: win}
}

func present(v js.Value) bool { return !v.IsNull() && !v.IsUndefined() }

func (d *Document) wrap(v js.Value) dom.Element {
	if !present(v) {
		return nil
	}
	return &element{d: d, v: v}
}

func (d *Document) wrapAll(list js.Value) []dom.Element {
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, d.wrap(list.Index(i)))
	}
	return out
}

func (d *Document) ByID(id string) dom.Element {
	return d.wrap(d.doc.Call("getElementById", id))
}

func (d *Document) Query(selector string) dom.Element {
	return d.wrap(d.doc.Call("querySelector", selector))
}

func (d *Document) QueryAll(selector string) []dom.Element {
	return d.wrapAll(d.doc.Call("querySelectorAll", selector))
}

func (d *Document) Body() dom.Element { return d.wrap(d.doc.Get("body")) }

func (d *Document) Create(tag string) dom.Element {
	return d.wrap(d.doc.Call("createElement", tag))
}

func (d *Document) Active() dom.Element {
	if el := d.wrap(d.doc.Get("activeElement")); el != nil {
		return el
	}
	return d.Body()
}

func (d *Document) On(event string, h dom.Handler) { d.listen(d.doc, event, h) }

func (d *Document) listen(target js.Value, event string, h dom.Handler) {
	fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		native := args[0]
		ev := &dom.Event{Type: event, Target: d.eventTarget(native)}
		if k := native.Get("key"); k.Type() == js.TypeString {
			ev.Key = k.String()
		}
		if x := native.Get("clientX"); x.Type() == js.TypeNumber {
			ev.X = x.Float()
			ev.Y = native.Get("clientY").Float()
		}
		h(ev)
		if ev.DefaultPrevented() {
			native.Call("preventDefault")
		}
		if ev.Stopped() {
			native.Call("stopPropagation")
		}
		return nil
	})
	d.funcs = append(d.funcs, fn)
	target.Call("addEventListener", event, fn)
}

// eventTarget returns the element an event was dispatched to. Text node
// targets resolve to their parent element.
func (d *Document) eventTarget(native js.Value) dom.Element {
	t := native.Get("target")
	if !present(t) {
		return nil
	}
	if t.Get("nodeType").Int() != 1 {
		t = t.Get("parentElement")
	}
	return d.wrap(t)
}

func (d *Document) Rect(el dom.Element) dom.Rect {
	e, ok := el.(*element)
	if !ok || e == nil {
		return dom.Rect{}
	}
	r := e.v.Call("getBoundingClientRect")
	return dom.Rect{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

func (d *Document) Viewport() (float64, float64) {
	return d.win.Get("innerWidth").Float(), d.win.Get("innerHeight").Float()
}

// ObserveIntersection runs fn once el is at least threshold visible.
// Without IntersectionObserver support fn runs immediately.
func (d *Document) ObserveIntersection(el dom.Element, threshold float64, fn func()) {
	e, ok := el.(*element)
	if !ok || e == nil {
		return
	}
	ctor := d.win.Get("IntersectionObserver")
	if !present(ctor) {
		fn()
		return
	}
	var cb js.Func
	cb = js.FuncOf(func(_ js.Value, args []js.Value) any {
		entries, observer := args[0], args[1]
		for i := 0; i < entries.Length(); i++ {
			if entries.Index(i).Get("isIntersecting").Bool() {
				observer.Call("unobserve", e.v)
				observer.Call("disconnect")
				fn()
				cb.Release()
				return nil
			}
		}
		return nil
	})
	opts := js.Global().Get("Object").New()
	opts.Set("threshold", threshold)
	ctor.New(cb, opts).Call("observe", e.v)
}

// MatchMedia evaluates a media query once.
func MatchMedia(query string) bool {
	mm := js.Global().Get("matchMedia")
	if !present(mm) {
		return false
	}
	return js.Global().Call("matchMedia", query).Get("matches").Bool()
}

// SaveData reports the visitor's data-saver preference.
func SaveData() bool {
	conn := js.Global().Get("navigator").Get("connection")
	if !present(conn) {
		return false
	}
	v := conn.Get("saveData")
	return v.Type() == js.TypeBoolean && v.Bool()
}
