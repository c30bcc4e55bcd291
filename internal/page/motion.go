package page

import (
	"fmt"

	"biomae/internal/dom"
)

// Preferences are the visitor's media preferences, read once at startup.
type Preferences struct {
	ReducedMotion    bool
	FineHoverPointer bool
	SaveData         bool
}

// Animated reports whether pointer-driven effects should run.
func (p Preferences) Animated() bool {
	return !p.ReducedMotion && p.FineHoverPointer && !p.SaveData
}

const revealThreshold = 0.16

func mountReveal(doc dom.Document) int {
	els := doc.QueryAll(".reveal")
	obs, ok := doc.(dom.IntersectionObserver)
	for _, el := range els {
		el := el
		if !ok {
			el.AddClass("in-view")
			continue
		}
		obs.ObserveIntersection(el, revealThreshold, func() { el.AddClass("in-view") })
	}
	return len(els)
}

func applyDataSaver(doc dom.Document, prefs Preferences) {
	if !prefs.SaveData {
		return
	}
	if media := doc.Query(".project-logo-gif"); media != nil && media.Tag() == "video" {
		media.RemoveAttr("autoplay")
	}
}

// TiltTransform is the card transform for a pointer at (x, y) over r.
func TiltTransform(r dom.Rect, x, y float64) string {
	if r.Width <= 0 || r.Height <= 0 {
		return ""
	}
	rotateX := ((y-r.Top)/r.Height - 0.5) * -6
	rotateY := ((x-r.Left)/r.Width - 0.5) * 8
	return fmt.Sprintf("perspective(700px) rotateX(%.2fdeg) rotateY(%.2fdeg) translateY(-3px)", unsigned(rotateX), unsigned(rotateY))
}

// unsigned folds negative zero so centred pointers print as 0.00.
func unsigned(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// OrbTransform is the parallax offset of the index-th orb.
func OrbTransform(index int, x, y, vw, vh float64) string {
	speed := float64(index+1) * 0.008
	return fmt.Sprintf("translate(%.2fpx, %.2fpx)", (x-vw/2)*speed, (y-vh/2)*speed)
}

// mountMotion wires tilt cards and parallax orbs. It needs a document with
// layout and is skipped otherwise.
func mountMotion(doc dom.Document, sched dom.Scheduler, prefs Preferences) bool {
	geo, ok := doc.(dom.Geometry)
	if !ok || sched == nil || !prefs.Animated() {
		return false
	}
	for _, card := range doc.QueryAll(".tilt-card") {
		tiltCard(card, geo, sched)
	}

	orbs := doc.QueryAll(".bg-orb")
	if len(orbs) == 0 {
		return true
	}
	var x, y float64
	var pending func()
	doc.On("pointermove", func(ev *dom.Event) {
		x, y = ev.X, ev.Y
		if pending != nil {
			return
		}
		pending = sched.Frame(func() {
			pending = nil
			vw, vh := geo.Viewport()
			for i, orb := range orbs {
				orb.SetStyle("transform", OrbTransform(i, x, y, vw, vh))
			}
		})
	})
	return true
}

func tiltCard(card dom.Element, geo dom.Geometry, sched dom.Scheduler) {
	var (
		rect    *dom.Rect
		x, y    float64
		pending func()
	)
	card.On("pointerenter", func(*dom.Event) {
		r := geo.Rect(card)
		rect = &r
	})
	card.On("pointermove", func(ev *dom.Event) {
		x, y = ev.X, ev.Y
		if pending != nil {
			return
		}
		pending = sched.Frame(func() {
			pending = nil
			if rect == nil {
				r := geo.Rect(card)
				rect = &r
			}
			card.SetStyle("transform", TiltTransform(*rect, x, y))
		})
	})
	card.On("pointerleave", func(*dom.Event) {
		if pending != nil {
			pending()
			pending = nil
		}
		rect = nil
		card.SetStyle("transform", "")
	})
}
