package reviews

import (
	"time"

	"biomae/internal/domain"
	applog "biomae/internal/log"
	"biomae/internal/validate"
)

type State int

const (
	Idle State = iota
	Validating
	Rejected
	Accepted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Validating:
		return "validating"
	case Rejected:
		return "rejected"
	case Accepted:
		return "accepted"
	}
	return "unknown"
}

// Input is the raw form as typed by the visitor.
type Input struct {
	Name    string
	City    string
	Rating  string
	Message string
}

type Outcome struct {
	State State
	// Review is the stored record when State is Accepted.
	Review domain.Review
	// Problems names the fields that failed validation.
	Problems []string
}

// Pipeline turns a form submission into a stored review. It runs inside one
// event reaction, so the load-prepend-save sequence needs no locking within
// a page. Two pages sharing the same storage race; the last writer wins.
type Pipeline struct {
	store *Store
	now   func() time.Time
	state State
}

func NewPipeline(store *Store, now func() time.Time) *Pipeline {
	if now == nil {
		now = time.Now
	}
	return &Pipeline{store: store, now: now}
}

// State is the outcome of the last submission, or Idle.
func (p *Pipeline) State() State { return p.state }

func (p *Pipeline) Submit(in Input) Outcome {
	p.state = Validating

	text := validate.NewReviewText(in.Name, in.City, in.Message)
	rating := validate.Rating(in.Rating)

	if problems := text.Problems(); len(problems) > 0 {
		p.state = Rejected
		applog.Info("review.submit.rejected", map[string]any{"problems": problems})
		return Outcome{State: Rejected, Problems: problems}
	}

	rec := domain.Review{
		Name:      text.Name,
		City:      text.City,
		Rating:    rating,
		Message:   text.Message,
		CreatedAt: p.now().UnixMilli(),
	}
	next := append([]domain.Review{rec}, p.store.Load()...)
	if len(next) > Capacity {
		next = next[:Capacity]
	}
	if err := p.store.Save(next); err != nil {
		// the review still shows for this page view
		applog.Error("review.store.save", err, map[string]any{"count": len(next)})
	}

	p.state = Accepted
	applog.Info("review.submit.accepted", map[string]any{"rating": rating, "stored": len(next)})
	return Outcome{State: Accepted, Review: rec}
}
