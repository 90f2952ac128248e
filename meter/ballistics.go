package meter

import (
	"math"
	"time"

	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/widget"
)

// Ballistics smooths detector outputs into meter bar states: bars fall at
// FallRate, and peaks hold for HoldTime before falling at the same rate
type Ballistics struct {
	Range    faderkit.Range[float32]
	FallRate float32
	HoldTime time.Duration

	left  channel
	right channel
}

type channel struct {
	level float32
	peak  float32
	held  time.Duration
	seen  bool
}

// NewBallistics maps levels onto r, falling at 20 dB/s with a two second
// peak hold
func NewBallistics(r faderkit.Range[float32]) *Ballistics {
	return &Ballistics{Range: r, FallRate: 20.0, HoldTime: 2 * time.Second}
}

// Update advances the meters by dt and folds in out; the right bar is nil
// until the detector has reported a right channel
func (b *Ballistics) Update(out Output, dt time.Duration) (left widget.MeterBar, right *widget.MeterBar) {
	b.left.update(reading(out.LeftRMSDB, out.LeftPeakDB), reading(out.LeftPeakDB, nil), b.FallRate, b.HoldTime, dt)
	left = b.left.bar(b.Range)
	if out.RightPeakDB != nil || out.RightRMSDB != nil || b.right.seen {
		b.right.update(reading(out.RightRMSDB, out.RightPeakDB), reading(out.RightPeakDB, nil), b.FallRate, b.HoldTime, dt)
		bar := b.right.bar(b.Range)
		right = &bar
	}
	return left, right
}

// Reset drops all history
func (b *Ballistics) Reset() {
	b.left = channel{}
	b.right = channel{}
}

// reading picks the first measured value; nil means nothing was measured
func reading(primary, fallback *float32) *float32 {
	if primary != nil {
		return primary
	}
	return fallback
}

func (c *channel) update(level, peak *float32, fallRate float32, hold, dt time.Duration) {
	fall := fallRate * float32(dt.Seconds())
	silent := float32(math.Inf(-1))
	if !c.seen {
		c.level, c.peak = silent, silent
	}

	next := c.level - fall
	if level != nil {
		c.seen = true
		if *level > next {
			next = *level
		}
	}
	c.level = next

	if peak != nil && *peak >= c.peak {
		c.peak = *peak
		c.held = 0
	} else {
		c.held += dt
		if c.held > hold {
			c.peak -= fall
		}
	}
	if c.peak < c.level {
		c.peak = c.level
	}
}

func (c *channel) bar(r faderkit.Range[float32]) widget.MeterBar {
	if !c.seen {
		return widget.MeterBar{}
	}
	peak := toNormal(r, c.peak)
	return widget.MeterBar{Bar: toNormal(r, c.level), Peak: &peak}
}

func toNormal(r faderkit.Range[float32], db float32) faderkit.Normal {
	if math.IsInf(float64(db), -1) {
		return faderkit.MinNormal
	}
	return r.ToNormal(db)
}
