package reviews

import (
	"biomae/internal/dom"
)

// Element ids the review form relies on.
const (
	FormID     = "review-form"
	NameID     = "review-name"
	CityID     = "review-city"
	RatingID   = "review-rating"
	MessageID  = "review-message"
	FeedbackID = "review-feedback"
	ListID     = "testimonials-track"
)

type Messages struct {
	Rejected string
	Accepted string
}

func DefaultMessages() Messages {
	return Messages{
		Rejected: "المرجو إدخال معلومات صحيحة قبل النشر.",
		Accepted: "تم نشر رأيك بنجاح. شكرًا لك!",
	}
}

// Form binds the pipeline to the review form on the page.
type Form struct {
	doc      dom.Document
	form     dom.Element
	feedback dom.Element
	picker   *RatingPicker
	pipeline *Pipeline
	renderer *Renderer
	msgs     Messages
}

// Mount wires the review form and renders the stored reviews after the
// editorial ones, replacing any visitor cards already on the page. It returns nil when the form or the list is missing.
func Mount(doc dom.Document, sched dom.Scheduler, pipeline *Pipeline, msgs Messages) *Form {
	form := doc.ByID(FormID)
	list := doc.ByID(ListID)
	if !dom.Present(form, list) {
		return nil
	}
	f := &Form{
		doc:      doc,
		form:     form,
		feedback: doc.ByID(FeedbackID),
		pipeline: pipeline,
		renderer: NewRenderer(doc, list, sched),
		msgs:     msgs,
	}
	if field := doc.ByID(RatingID); field != nil {
		f.picker = NewRatingPicker(field, doc.Query(".review-stars"), sched)
	}
	// A pre-rendered page already carries visitor cards from another store.
	for _, card := range list.QueryAll(UserReviewSelector) {
		card.Remove()
	}
	for _, r := range pipeline.store.Load() {
		f.renderer.Render(r, false)
	}
	form.On("submit", func(ev *dom.Event) {
		ev.PreventDefault()
		f.Submit()
	})
	return f
}

func (f *Form) Picker() *RatingPicker { return f.picker }

// Submit reads the form fields and runs them through the pipeline. When a
// field is missing from the page nothing happens and ok is false.
func (f *Form) Submit() (out Outcome, ok bool) {
	name := f.doc.ByID(NameID)
	city := f.doc.ByID(CityID)
	rating := f.doc.ByID(RatingID)
	msg := f.doc.ByID(MessageID)
	if !dom.Present(name, city, rating, msg) {
		return Outcome{State: Idle}, false
	}

	out = f.pipeline.Submit(Input{
		Name:    name.Value(),
		City:    city.Value(),
		Rating:  rating.Value(),
		Message: msg.Value(),
	})
	if out.State == Rejected {
		f.say(f.msgs.Rejected)
		return out, true
	}

	f.renderer.Render(out.Review, true)
	f.form.Reset()
	if f.picker != nil {
		f.picker.Set("5", false)
	}
	f.say(f.msgs.Accepted)
	return out, true
}

func (f *Form) say(text string) {
	if f.feedback != nil {
		f.feedback.SetText(text)
	}
}
