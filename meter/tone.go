package meter

import "math"

// Source fills blocks of left and right samples; it returns the number of
// samples written to each
type Source interface {
	Read(left, right []float32) (int, error)
}

// Tone is a test source: a sine whose amplitude swells with a slow LFO, with
// the right channel offset in phase
type Tone struct {
	SampleRate  float32
	Frequency   float32
	Amplitude   float32
	SwellRate   float32
	PhaseOffset float32

	phase float64
	swell float64
}

func NewTone(sampleRate float32) *Tone {
	return &Tone{SampleRate: sampleRate, Frequency: 440.0, Amplitude: 1.0, SwellRate: 0.25, PhaseOffset: 0.5}
}

func (t *Tone) Read(left, right []float32) (int, error) {
	n := len(left)
	if right != nil && len(right) < n {
		n = len(right)
	}
	step := 2.0 * math.Pi * float64(t.Frequency) / float64(t.SampleRate)
	swellStep := 2.0 * math.Pi * float64(t.SwellRate) / float64(t.SampleRate)
	for i := 0; i < n; i++ {
		gain := float64(t.Amplitude) * (0.5 + 0.5*math.Sin(t.swell))
		left[i] = float32(gain * math.Sin(t.phase))
		if right != nil {
			right[i] = float32(gain * math.Sin(t.phase+float64(t.PhaseOffset)))
		}
		t.phase = math.Mod(t.phase+step, 2.0*math.Pi)
		t.swell = math.Mod(t.swell+swellStep, 2.0*math.Pi)
	}
	return n, nil
}
