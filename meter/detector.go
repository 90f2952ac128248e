// Package meter turns audio sample blocks into the readings the faderkit
// meters display. Detectors run wherever the audio is; their outputs are
// handed to the UI goroutine through a Monitor.
package meter

// Output is one detector reading in dB; nil fields were not measured this
// block, which happens for the right channel of mono input and for RMS
// until a full block has been seen
type Output struct {
	LeftPeakDB  *float32
	RightPeakDB *float32
	LeftRMSDB   *float32
	RightRMSDB  *float32
}

// Detector measures blocks of left and right samples; right may be nil for
// mono input
type Detector interface {
	SetSampleRate(rate float32)
	Process(left, right []float32) Output
}

func ptr(v float32) *float32 {
	return &v
}
