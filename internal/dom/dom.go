// Package dom defines the minimal view contract the storefront components
// run against. A browser binding and a headless HTML document both satisfy it.
package dom

import "time"

// Event is delivered to handlers registered with On. Handlers run on the
// single event thread; none of them may block.
type Event struct {
	Type   string
	Key    string
	Target Element
	X, Y   float64

	prevented bool
	stopped   bool
}

func (e *Event) PreventDefault()        { e.prevented = true }
func (e *Event) DefaultPrevented() bool { return e.prevented }
func (e *Event) StopPropagation()       { e.stopped = true }
func (e *Event) Stopped() bool          { return e.stopped }

type Handler func(*Event)

// Element is one node of the rendered page. Methods returning an Element
// return a nil interface when nothing matches.
type Element interface {
	Tag() string
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	RemoveAttr(name string)

	HasClass(name string) bool
	AddClass(name string)
	RemoveClass(name string)
	// ToggleClass flips the class and reports whether it is now present.
	ToggleClass(name string) bool

	// Text returns the concatenated text content. SetText replaces all
	// children with one text node; the value is never parsed as markup.
	Text() string
	SetText(text string)

	// Value and SetValue address the live value of form controls.
	Value() string
	SetValue(value string)
	// Reset restores every form control under the element to its default.
	Reset()

	SetStyle(property, value string)

	// Focus moves focus to the element and reports whether it accepted it.
	Focus() bool

	Query(selector string) Element
	QueryAll(selector string) []Element
	Closest(selector string) Element
	// Contains reports whether other is the element itself or a descendant.
	Contains(other Element) bool

	Append(child Element)
	// InsertBefore inserts child immediately before ref, which must be a
	// direct child of the receiver.
	InsertBefore(child, ref Element)
	// Remove detaches the element from its parent.
	Remove()
	Clear()

	On(event string, h Handler)
	Equal(other Element) bool
}

type Document interface {
	ByID(id string) Element
	Query(selector string) Element
	QueryAll(selector string) []Element
	Body() Element
	Create(tag string) Element
	// Active returns the focused element, or the body when nothing is.
	Active() Element
	// On registers a document-level handler. Events bubble to it from
	// every element.
	On(event string, h Handler)
}

// Scheduler runs callbacks on the event thread. Cancel funcs are safe to
// call more than once.
type Scheduler interface {
	Now() time.Time
	After(d time.Duration, fn func()) (cancel func())
	Every(d time.Duration, fn func()) (cancel func())
	// Frame runs fn before the next repaint.
	Frame(fn func()) (cancel func())
}

type Rect struct {
	Left, Top, Width, Height float64
}

// Geometry is implemented by documents that have a layout.
type Geometry interface {
	Rect(el Element) Rect
	Viewport() (width, height float64)
}

// IntersectionObserver is implemented by documents that can report when an
// element scrolls into view. fn runs once, after which the element is no
// longer observed.
type IntersectionObserver interface {
	ObserveIntersection(el Element, threshold float64, fn func())
}

// Present reports whether every element is non-nil.
func Present(els ...Element) bool {
	for _, el := range els {
		if el == nil {
			return false
		}
	}
	return true
}
