package reviews

import (
	"strconv"

	"biomae/internal/dom"
	"biomae/internal/validate"
)

const (
	activeStarClass = "is-active"
	pickingClass    = "is-picking"
)

// RatingPicker mirrors the hidden rating field onto the star buttons.
type RatingPicker struct {
	field     dom.Element
	container dom.Element
	buttons   []dom.Element
	sched     dom.Scheduler
}

// NewRatingPicker returns nil when there is no field or no button.
func NewRatingPicker(field, container dom.Element, sched dom.Scheduler) *RatingPicker {
	if field == nil || container == nil {
		return nil
	}
	buttons := container.QueryAll(".review-star")
	if len(buttons) == 0 {
		return nil
	}
	p := &RatingPicker{field: field, container: container, buttons: buttons, sched: sched}
	for _, b := range buttons {
		b := b
		b.On("click", func(*dom.Event) {
			v, _ := b.Attr("data-rating")
			p.Set(v, true)
		})
	}
	p.Set(field.Value(), false)
	return p
}

// Set stores the normalized rating and lights the matching stars. animate
// restarts the picking animation on the next frame.
func (p *RatingPicker) Set(value string, animate bool) int {
	r := validate.Rating(value)
	p.field.SetValue(strconv.Itoa(r))
	for _, b := range p.buttons {
		v, _ := b.Attr("data-rating")
		n, err := strconv.Atoi(v)
		active := err == nil && n <= r
		if active {
			b.AddClass(activeStarClass)
		} else {
			b.RemoveClass(activeStarClass)
		}
		b.SetAttr("aria-pressed", strconv.FormatBool(active))
	}
	p.container.RemoveClass(pickingClass)
	if animate && p.sched != nil {
		p.sched.Frame(func() { p.container.AddClass(pickingClass) })
	}
	return r
}

func (p *RatingPicker) Value() int { return validate.Rating(p.field.Value()) }
