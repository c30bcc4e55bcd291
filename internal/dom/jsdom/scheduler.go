//go:build js && wasm

package jsdom

import (
	"sync"
	"syscall/js"
	"time"

	"biomae/internal/dom"
)

// Scheduler runs callbacks through the browser's timer and animation frame
// queues.
type Scheduler struct {
	win js.Value
}

var _ dom.Scheduler = (*Scheduler)(nil)

func NewScheduler() *Scheduler { return &Scheduler{win: js.Global()} }

func (s *Scheduler) Now() time.Time { return time.Now() }

// schedule registers fn with start and returns an idempotent cancel. once
// releases the callback after its first run.
func (s *Scheduler) schedule(start, stop string, arg any, once bool, fn func()) func() {
	var (
		cb       js.Func
		id       js.Value
		released sync.Once
	)
	release := func() { released.Do(cb.Release) }
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		if once {
			release()
		}
		return nil
	})
	if arg == nil {
		id = s.win.Call(start, cb)
	} else {
		id = s.win.Call(start, cb, arg)
	}
	return func() {
		s.win.Call(stop, id)
		release()
	}
}

func (s *Scheduler) After(d time.Duration, fn func()) func() {
	return s.schedule("setTimeout", "clearTimeout", d.Milliseconds(), true, fn)
}

func (s *Scheduler) Every(d time.Duration, fn func()) func() {
	return s.schedule("setInterval", "clearInterval", d.Milliseconds(), false, fn)
}

func (s *Scheduler) Frame(fn func()) func() {
	return s.schedule("requestAnimationFrame", "cancelAnimationFrame", nil, true, fn)
}
