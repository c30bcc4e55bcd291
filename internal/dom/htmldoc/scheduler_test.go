package htmldoc_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"biomae/internal/dom/htmldoc"
)

var start = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func TestAfterRunsInDeadlineOrder(t *testing.T) {
	s := htmldoc.NewScheduler(start)
	var order []string
	s.After(200*time.Millisecond, func() { order = append(order, "late") })
	s.After(100*time.Millisecond, func() { order = append(order, "early") })
	s.After(100*time.Millisecond, func() { order = append(order, "early-second") })

	s.Advance(150 * time.Millisecond)
	assert.Equal(t, []string{"early", "early-second"}, order)
	s.Advance(time.Second)
	assert.Equal(t, []string{"early", "early-second", "late"}, order)
	assert.Equal(t, start.Add(1150*time.Millisecond), s.Now())
}

func TestEveryRepeatsUntilCancelled(t *testing.T) {
	s := htmldoc.NewScheduler(start)
	n := 0
	cancel := s.Every(time.Second, func() { n++ })

	s.Advance(3500 * time.Millisecond)
	assert.Equal(t, 3, n)
	cancel()
	cancel()
	s.Advance(time.Minute)
	assert.Equal(t, 3, n)
	assert.Equal(t, 0, s.Pending())
}

func TestSettleSkipsIntervals(t *testing.T) {
	s := htmldoc.NewScheduler(start)
	ticks, frames, chained := 0, 0, 0
	s.Every(time.Second, func() { ticks++ })
	s.Frame(func() {
		frames++
		s.After(550*time.Millisecond, func() { chained++ })
	})

	s.Settle()
	assert.Equal(t, 0, ticks)
	assert.Equal(t, 1, frames)
	assert.Equal(t, 1, chained)
	assert.Equal(t, 1, s.Pending())
}

func TestCancelledTimerNeverRuns(t *testing.T) {
	s := htmldoc.NewScheduler(start)
	ran := false
	cancel := s.After(time.Millisecond, func() { ran = true })
	cancel()
	s.Advance(time.Second)
	assert.False(t, ran)
}
