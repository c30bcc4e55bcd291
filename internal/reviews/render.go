package reviews

import (
	"strings"
	"time"

	"biomae/internal/dom"
	"biomae/internal/domain"
	"biomae/internal/validate"
)

const (
	FilledStar = "★"
	EmptyStar  = "☆"

	EnterClass    = "review-enter"
	EnterDuration = 550 * time.Millisecond

	UserReviewSelector = ".quote-card[data-user-review='true']"
)

// Stars renders rating as five glyphs, filled first.
func Stars(rating int) string {
	r := validate.RatingNumber(float64(rating))
	return strings.Repeat(FilledStar, r) + strings.Repeat(EmptyStar, validate.MaxRating-r)
}

// Renderer inserts review cards into the testimonial list.
type Renderer struct {
	doc   dom.Document
	list  dom.Element
	sched dom.Scheduler
}

func NewRenderer(doc dom.Document, list dom.Element, sched dom.Scheduler) *Renderer {
	return &Renderer{doc: doc, list: list, sched: sched}
}

// Render builds a card for rev. With prepend it goes before the first
// visitor card so editorial cards keep their place; otherwise, or when no
// visitor card exists yet, it is appended.
func (r *Renderer) Render(rev domain.Review, prepend bool) dom.Element {
	if r.list == nil {
		return nil
	}
	card := r.doc.Create("article")
	card.SetAttr("class", "quote-card")
	card.SetAttr("data-user-review", "true")

	rating := r.doc.Create("p")
	rating.SetAttr("class", "quote-card__rating")
	rating.SetText(Stars(rev.Rating))

	msg := r.doc.Create("p")
	msg.SetText(`"` + rev.Message + `"`)

	author := r.doc.Create("h4")
	author.SetText(rev.Name + " - " + rev.City)

	card.Append(rating)
	card.Append(msg)
	card.Append(author)

	card.AddClass(EnterClass)
	if r.sched != nil {
		r.sched.After(EnterDuration, func() { card.RemoveClass(EnterClass) })
	}

	if prepend {
		if firstUser := r.list.Query(UserReviewSelector); firstUser != nil {
			r.list.InsertBefore(card, firstUser)
			return card
		}
	}
	r.list.Append(card)
	return card
}
