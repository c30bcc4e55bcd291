//go:build js && wasm

package jsdom

import (
	"strings"
	"syscall/js"

	"biomae/internal/dom"
)

type element struct {
	d *Document
	v js.Value
}

var _ dom.Element = (*element)(nil)

func (e *element) Tag() string { return strings.ToLower(e.v.Get("tagName").String()) }

func (e *element) Attr(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if !present(v) {
		return "", false
	}
	return v.String(), true
}

func (e *element) SetAttr(name, value string) { e.v.Call("setAttribute", name, value) }
func (e *element) RemoveAttr(name string)     { e.v.Call("removeAttribute", name) }

func (e *element) classes() js.Value { return e.v.Get("classList") }

func (e *element) HasClass(name string) bool { return e.classes().Call("contains", name).Bool() }
func (e *element) AddClass(name string)      { e.classes().Call("add", name) }
func (e *element) RemoveClass(name string)   { e.classes().Call("remove", name) }
func (e *element) ToggleClass(name string) bool {
	return e.classes().Call("toggle", name).Bool()
}

func (e *element) Text() string        { return e.v.Get("textContent").String() }
func (e *element) SetText(text string) { e.v.Set("textContent", text) }

func (e *element) Value() string {
	v := e.v.Get("value")
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func (e *element) SetValue(value string) { e.v.Set("value", value) }

func (e *element) Reset() {
	if e.Tag() == "form" {
		e.v.Call("reset")
		return
	}
	for _, c := range e.QueryAll("input, textarea") {
		c.(*element).v.Set("value", c.(*element).v.Get("defaultValue"))
	}
}

func (e *element) SetStyle(property, value string) {
	style := e.v.Get("style")
	if value == "" {
		style.Call("removeProperty", property)
		return
	}
	style.Call("setProperty", property, value)
}

func (e *element) Focus() bool {
	e.v.Call("focus")
	return e.v.Equal(e.d.doc.Get("activeElement"))
}

func (e *element) Query(selector string) dom.Element {
	return e.d.wrap(e.v.Call("querySelector", selector))
}

func (e *element) QueryAll(selector string) []dom.Element {
	return e.d.wrapAll(e.v.Call("querySelectorAll", selector))
}

func (e *element) Closest(selector string) dom.Element {
	return e.d.wrap(e.v.Call("closest", selector))
}

func (e *element) other(el dom.Element) (js.Value, bool) {
	o, ok := el.(*element)
	if !ok || o == nil {
		return js.Undefined(), false
	}
	return o.v, true
}

func (e *element) Contains(other dom.Element) bool {
	v, ok := e.other(other)
	return ok && e.v.Call("contains", v).Bool()
}

func (e *element) Append(child dom.Element) {
	if v, ok := e.other(child); ok {
		e.v.Call("appendChild", v)
	}
}

func (e *element) InsertBefore(child, ref dom.Element) {
	c, ok := e.other(child)
	if !ok {
		return
	}
	r, ok := e.other(ref)
	if !ok || !r.Get("parentNode").Equal(e.v) {
		e.v.Call("appendChild", c)
		return
	}
	e.v.Call("insertBefore", c, r)
}

func (e *element) Remove() { e.v.Call("remove") }

func (e *element) Clear() { e.v.Set("textContent", "") }

func (e *element) On(event string, h dom.Handler) { e.d.listen(e.v, event, h) }

func (e *element) Equal(other dom.Element) bool {
	v, ok := e.other(other)
	return ok && e.v.Equal(v)
}
