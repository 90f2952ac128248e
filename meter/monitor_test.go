package meter

import (
	"math"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func newMonitor(t *testing.T, source Source, detector Detector, sampleRate float32, block int) *Monitor {
	t.Helper()
	m, err := NewMonitor(source, detector, sampleRate, block)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestNewMonitorRejectsBadPacing(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float32
		block      int
	}{
		{"zero block", 48000, 0},
		{"negative block", 48000, -1},
		{"zero sample rate", 0, 480},
		{"nan sample rate", float32(math.NaN()), 480},
	}
	for _, test := range tests {
		if _, err := NewMonitor(NewTone(48000), NewPeakRMS(48000), test.sampleRate, test.block); err == nil {
			t.Errorf("%v: expected an error", test.name)
		}
	}
}

func TestMonitorPublishesReadings(t *testing.T) {
	m := newMonitor(t, NewTone(48000), NewPeakRMS(48000), 48000, 480)
	if err := m.Start(); err != nil {
		t.Fatal(err)
	}
	defer m.Stop()

	select {
	case r := <-m.Readings():
		if r.Output.LeftPeakDB == nil || r.Output.RightPeakDB == nil {
			t.Errorf("expected stereo peaks, got %+v", r.Output)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a reading")
	}
}

type failingSource struct{}

func (failingSource) Read(left, right []float32) (int, error) {
	return 0, errors.New("device gone")
}

func TestMonitorStopsOnSourceError(t *testing.T) {
	m := newMonitor(t, failingSource{}, NewPeakRMS(48000), 48000, 480)
	if err := m.Start(); err != nil {
		t.Fatal(err)
	}
	done := make(chan struct{})
	go func() {
		m.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected stop to return")
	}
}

func TestToneChannels(t *testing.T) {
	tone := NewTone(48000)
	tone.PhaseOffset = 0
	left := make([]float32, 256)
	right := make([]float32, 256)
	n, err := tone.Read(left, right)
	if err != nil || n != 256 {
		t.Fatalf("expected 256 samples, got %d (%v)", n, err)
	}
	for i := range left {
		if left[i] != right[i] {
			t.Fatalf("expected identical channels without a phase offset")
		}
	}
}
