package meter

import (
	"math"

	"github.com/michaelquigley/faderkit"
)

// Correlation measures the phase correlation of a stereo signal: +1 for
// identical channels, 0 for unrelated ones and -1 for inverted ones
type Correlation struct {
	window    int
	left      []float32
	right     []float32
	next      int
	count     int
	averaging float32
	value     float32
}

// NewCorrelation creates a meter over window samples; averaging (0..1) is the
// weight the previous reading keeps on each update
func NewCorrelation(window int, averaging float32) *Correlation {
	if window < 1 {
		window = 1
	}
	return &Correlation{
		window:    window,
		left:      make([]float32, window),
		right:     make([]float32, window),
		averaging: clamp(averaging, 0, 1),
	}
}

// Process adds a block of samples; blocks of unequal length are ignored.
// Returns the averaged correlation
func (c *Correlation) Process(left, right []float32) float32 {
	if len(left) != len(right) {
		return c.value
	}
	for i := range left {
		c.left[c.next] = left[i]
		c.right[c.next] = right[i]
		c.next = (c.next + 1) % c.window
		if c.count < c.window {
			c.count++
		}
	}
	if c.count == c.window {
		c.value = c.value*c.averaging + c.pearson()*(1.0-c.averaging)
	}
	return c.value
}

// Value is the last averaged correlation in -1..1
func (c *Correlation) Value() float32 {
	return c.value
}

// Normal maps the correlation onto a PhaseMeter value, -1 at 0.0 and +1 at 1.0
func (c *Correlation) Normal() faderkit.Normal {
	return faderkit.NewNormal((c.value + 1.0) / 2.0)
}

func (c *Correlation) pearson() float32 {
	var meanL, meanR float64
	for i := 0; i < c.count; i++ {
		meanL += float64(c.left[i])
		meanR += float64(c.right[i])
	}
	meanL /= float64(c.count)
	meanR /= float64(c.count)

	var num, varL, varR float64
	for i := 0; i < c.count; i++ {
		dl := float64(c.left[i]) - meanL
		dr := float64(c.right[i]) - meanR
		num += dl * dr
		varL += dl * dl
		varR += dr * dr
	}
	if varL == 0 || varR == 0 {
		if varL == 0 && varR == 0 {
			return 1.0
		}
		return 0.0
	}
	return clamp(float32(num/(math.Sqrt(varL)*math.Sqrt(varR))), -1, 1)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
