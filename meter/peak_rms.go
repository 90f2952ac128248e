package meter

import (
	"math"

	"github.com/michaelquigley/faderkit"
)

const (
	// RMSWindow is the span the RMS reading averages over, in seconds
	RMSWindow = 0.3

	// RMSBlockSize is the number of samples summed per RMS update
	RMSBlockSize = 512
)

var _ Detector = (*PeakRMS)(nil)

// PeakRMS reports the block peak and a windowed RMS level of each channel
type PeakRMS struct {
	sampleRate float32
	blocks     int
	left       rmsWindow
	right      rmsWindow
}

func NewPeakRMS(sampleRate float32) *PeakRMS {
	d := &PeakRMS{}
	d.SetSampleRate(sampleRate)
	return d
}

// SetSampleRate resizes the RMS window and clears its history
func (d *PeakRMS) SetSampleRate(rate float32) {
	d.sampleRate = rate
	d.blocks = int(RMSWindow * rate / RMSBlockSize)
	if d.blocks < 1 {
		d.blocks = 1
	}
	d.left = newRMSWindow(d.blocks)
	d.right = newRMSWindow(d.blocks)
}

func (d *PeakRMS) SampleRate() float32 {
	return d.sampleRate
}

func (d *PeakRMS) Process(left, right []float32) Output {
	var out Output
	if len(left) > 0 {
		out.LeftPeakDB = ptr(faderkit.AmplitudeToDB(peak(left)))
	}
	if rms, ok := d.left.process(left); ok {
		out.LeftRMSDB = ptr(faderkit.AmplitudeToDB(rms))
	}
	if right == nil {
		return out
	}
	if len(right) > 0 {
		out.RightPeakDB = ptr(faderkit.AmplitudeToDB(peak(right)))
	}
	if rms, ok := d.right.process(right); ok {
		out.RightRMSDB = ptr(faderkit.AmplitudeToDB(rms))
	}
	return out
}

func peak(samples []float32) float32 {
	var max float32
	for _, s := range samples {
		if s < 0 {
			s = -s
		}
		if s > max {
			max = s
		}
	}
	return max
}

// rmsWindow keeps the sum of squares of the last n complete blocks
type rmsWindow struct {
	sums    []float64
	next    int
	filled  int
	pending float64
	counted int
}

func newRMSWindow(blocks int) rmsWindow {
	return rmsWindow{sums: make([]float64, blocks)}
}

// process consumes samples and reports the RMS when at least one block
// completed during the call
func (w *rmsWindow) process(samples []float32) (float32, bool) {
	completed := false
	for _, s := range samples {
		w.pending += float64(s) * float64(s)
		w.counted++
		if w.counted == RMSBlockSize {
			w.sums[w.next] = w.pending
			w.next = (w.next + 1) % len(w.sums)
			if w.filled < len(w.sums) {
				w.filled++
			}
			w.pending = 0
			w.counted = 0
			completed = true
		}
	}
	if !completed {
		return 0, false
	}
	var total float64
	for i := 0; i < w.filled; i++ {
		total += w.sums[i]
	}
	return float32(math.Sqrt(total / float64(w.filled*RMSBlockSize))), true
}
