// Package overlay implements the modal open/close lifecycle: focus capture
// and restore, page locking, and Escape handling in open order.
package overlay

import (
	"biomae/internal/dom"
	"biomae/internal/lock"
	applog "biomae/internal/log"
)

const openClass = "open"

type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Overlay is one modal panel. Content is filled by the owning type before
// show is called.
type Overlay struct {
	name      string
	doc       dom.Document
	root      dom.Element
	dismiss   dom.Element
	locks     *lock.Manager
	stack     *Stack
	state     State
	lastFocus dom.Element
}

func newOverlay(name string, doc dom.Document, root, dismiss dom.Element, locks *lock.Manager, stack *Stack) *Overlay {
	return &Overlay{name: name, doc: doc, root: root, dismiss: dismiss, locks: locks, stack: stack}
}

func (o *Overlay) Name() string      { return o.name }
func (o *Overlay) State() State      { return o.state }
func (o *Overlay) IsOpen() bool      { return o.state == Open }
func (o *Overlay) Root() dom.Element { return o.root }

// show moves a populated overlay to Open. Showing an open overlay only
// refocuses its dismiss control; the lock is held once per overlay.
func (o *Overlay) show() {
	if o.state == Open {
		o.focusDismiss()
		return
	}
	o.lastFocus = o.doc.Active()
	o.state = Open
	o.root.AddClass(openClass)
	o.root.SetAttr("aria-hidden", "false")
	if o.locks != nil {
		o.locks.Acquire()
	}
	if o.stack != nil {
		o.stack.push(o)
	}
	o.focusDismiss()
	applog.Info("overlay.open", map[string]any{"overlay": o.name})
}

func (o *Overlay) focusDismiss() {
	if o.dismiss != nil {
		o.dismiss.Focus()
	}
}

// Close is idempotent. It reports whether the overlay was open.
func (o *Overlay) Close() bool {
	if o.state != Open {
		return false
	}
	o.state = Closed
	o.root.RemoveClass(openClass)
	o.root.SetAttr("aria-hidden", "true")
	if o.locks != nil {
		o.locks.Release()
	}
	if o.stack != nil {
		o.stack.remove(o)
	}
	if prev := o.lastFocus; prev != nil {
		prev.Focus()
	}
	o.lastFocus = nil
	applog.Info("overlay.close", map[string]any{"overlay": o.name})
	return true
}

// bindClose makes every element under root matching selector close the
// overlay on click.
func (o *Overlay) bindClose(selector string) {
	for _, el := range o.root.QueryAll(selector) {
		el.On("click", func(*dom.Event) { o.Close() })
	}
}

// Stack tracks open overlays in the order they opened.
type Stack struct {
	open []*Overlay
}

func NewStack() *Stack { return &Stack{} }

func (s *Stack) push(o *Overlay) {
	s.remove(o)
	s.open = append(s.open, o)
}

func (s *Stack) remove(o *Overlay) {
	for i, x := range s.open {
		if x == o {
			s.open = append(s.open[:i], s.open[i+1:]...)
			return
		}
	}
}

// Top returns the most recently opened overlay that is still open.
func (s *Stack) Top() *Overlay {
	if len(s.open) == 0 {
		return nil
	}
	return s.open[len(s.open)-1]
}

func (s *Stack) Len() int { return len(s.open) }

// CloseTop closes the topmost overlay, if any.
func (s *Stack) CloseTop() bool {
	if top := s.Top(); top != nil {
		return top.Close()
	}
	return false
}

// HandleKey closes the topmost overlay on Escape.
func (s *Stack) HandleKey(ev *dom.Event) {
	if ev.Key != "Escape" {
		return
	}
	s.CloseTop()
}
