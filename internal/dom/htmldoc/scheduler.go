package htmldoc

import (
	"time"

	"biomae/internal/dom"
)

// frameInterval is the simulated time between repaints.
const frameInterval = 16 * time.Millisecond

// Scheduler is a manual clock. Nothing runs until Advance or Settle is
// called, which keeps tests deterministic.
type Scheduler struct {
	now    time.Time
	seq    int
	timers []*timer
}

type timer struct {
	seq       int
	at        time.Time
	every     time.Duration
	fn        func()
	cancelled bool
}

var _ dom.Scheduler = (*Scheduler)(nil)

func NewScheduler(start time.Time) *Scheduler { return &Scheduler{now: start} }

func (s *Scheduler) Now() time.Time { return s.now }

func (s *Scheduler) add(at time.Time, every time.Duration, fn func()) func() {
	s.seq++
	t := &timer{seq: s.seq, at: at, every: every, fn: fn}
	s.timers = append(s.timers, t)
	return func() { t.cancelled = true }
}

func (s *Scheduler) After(d time.Duration, fn func()) func() {
	return s.add(s.now.Add(d), 0, fn)
}

func (s *Scheduler) Every(d time.Duration, fn func()) func() {
	if d <= 0 {
		d = frameInterval
	}
	return s.add(s.now.Add(d), d, fn)
}

func (s *Scheduler) Frame(fn func()) func() {
	return s.add(s.now.Add(frameInterval), 0, fn)
}

// next returns the earliest live timer due at or before limit, honouring
// insertion order for equal deadlines.
func (s *Scheduler) next(limit time.Time, oneShotOnly bool) *timer {
	var best *timer
	live := s.timers[:0]
	for _, t := range s.timers {
		if t.cancelled {
			continue
		}
		live = append(live, t)
		if t.at.After(limit) || (oneShotOnly && t.every > 0) {
			continue
		}
		if best == nil || t.at.Before(best.at) || (t.at.Equal(best.at) && t.seq < best.seq) {
			best = t
		}
	}
	s.timers = live
	return best
}

func (s *Scheduler) fire(t *timer) {
	if t.at.After(s.now) {
		s.now = t.at
	}
	if t.every > 0 {
		t.at = t.at.Add(t.every)
	} else {
		t.cancelled = true
	}
	t.fn()
}

// Advance moves the clock forward by d, running every timer that falls due.
func (s *Scheduler) Advance(d time.Duration) {
	limit := s.now.Add(d)
	for t := s.next(limit, false); t != nil; t = s.next(limit, false) {
		s.fire(t)
	}
	s.now = limit
}

// Settle runs pending one-shot timers and frames, including ones they
// schedule, leaving intervals untouched.
func (s *Scheduler) Settle() {
	far := s.now.Add(24 * time.Hour)
	for t := s.next(far, true); t != nil; t = s.next(far, true) {
		s.fire(t)
	}
}

// Pending reports the number of live timers, intervals included.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}
