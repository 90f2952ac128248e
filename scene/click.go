package scene

import (
	"time"

	"github.com/michaelquigley/faderkit/draw"
)

const (
	doubleClickTime     = 400 * time.Millisecond
	doubleClickDistance = 4
)

// ClickTracker turns presses into double-clicks for hosts that only report
// button state
type ClickTracker struct {
	last time.Time
	pos  draw.Point
}

// Press records a press at pos; returns true when it completes a
// double-click
func (c *ClickTracker) Press(now time.Time, pos draw.Point) bool {
	dx, dy := pos.X-c.pos.X, pos.Y-c.pos.Y
	double := !c.last.IsZero() &&
		now.Sub(c.last) <= doubleClickTime &&
		dx*dx+dy*dy <= doubleClickDistance*doubleClickDistance
	if double {
		c.last = time.Time{}
	} else {
		c.last = now
	}
	c.pos = pos
	return double
}
