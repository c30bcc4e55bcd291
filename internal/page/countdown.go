package page

import (
	"fmt"
	"strings"
	"time"

	"biomae/internal/dom"
)

// FallbackWindow is used when the page carries no usable deadline.
const FallbackWindow = 48 * time.Hour

var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDeadline reads a data-deadline value. Unparsable or past values
// yield now plus FallbackWindow.
func ParseDeadline(raw string, now time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			if t.After(now) {
				return t
			}
			break
		}
	}
	return now.Add(FallbackWindow)
}

// FormatRemaining renders d as "DDj HHh MMm SSs"; zero once elapsed.
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return "00j 00h 00m 00s"
	}
	total := int64(d / time.Second)
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60
	return fmt.Sprintf("%02dj %02dh %02dm %02ds", days, hours, minutes, seconds)
}

type Countdown struct {
	el       dom.Element
	sched    dom.Scheduler
	deadline time.Time
	stop     func()
}

func mountCountdown(doc dom.Document, sched dom.Scheduler) *Countdown {
	el := doc.ByID("countdown")
	if el == nil || sched == nil {
		return nil
	}
	raw, _ := el.Attr("data-deadline")
	c := &Countdown{el: el, sched: sched, deadline: ParseDeadline(raw, sched.Now())}
	c.tick()
	c.stop = sched.Every(time.Second, c.tick)
	return c
}

func (c *Countdown) tick() {
	c.el.SetText(FormatRemaining(c.deadline.Sub(c.sched.Now())))
}

func (c *Countdown) Deadline() time.Time { return c.deadline }

func (c *Countdown) Stop() {
	if c.stop != nil {
		c.stop()
	}
}
