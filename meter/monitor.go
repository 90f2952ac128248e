package meter

import (
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Reading is one block of detector results
type Reading struct {
	Output      Output
	Correlation float32
	Elapsed     time.Duration
}

// Monitor pulls blocks from a Source on its own goroutine and publishes
// readings for the UI goroutine to drain
//
// Readings are dropped when the UI falls behind; meters only need the latest
type Monitor struct {
	source      Source
	detector    Detector
	correlation *Correlation
	block       int
	sampleRate  float32
	interval    time.Duration

	readings chan Reading
	stop     chan struct{}
	wg       sync.WaitGroup
}

// NewMonitor creates a monitor reading blocks of block samples at the pace
// of sampleRate; both must be positive
func NewMonitor(source Source, detector Detector, sampleRate float32, block int) (*Monitor, error) {
	if !(sampleRate > 0) {
		return nil, errors.Errorf("meter monitor: sample rate must be positive, got %v", sampleRate)
	}
	if block <= 0 {
		return nil, errors.Errorf("meter monitor: block must be positive, got %d", block)
	}
	interval := max(time.Duration(float64(block)/float64(sampleRate)*float64(time.Second)), time.Nanosecond)
	detector.SetSampleRate(sampleRate)
	return &Monitor{
		source:      source,
		detector:    detector,
		correlation: NewCorrelation(block, 0.9),
		block:       block,
		sampleRate:  sampleRate,
		interval:    interval,
		readings:    make(chan Reading, 8),
	}, nil
}

// Readings is the channel the UI drains
func (m *Monitor) Readings() <-chan Reading {
	return m.readings
}

// Start begins reading in a background goroutine
func (m *Monitor) Start() error {
	m.stop = make(chan struct{})
	m.wg.Add(1)
	go m.run()
	slog.Debug("meter monitor started", "block", m.block, "interval", m.interval)
	return nil
}

// Stop ends the goroutine and waits for it
func (m *Monitor) Stop() {
	if m.stop == nil {
		return
	}
	close(m.stop)
	m.wg.Wait()
	m.stop = nil
}

func (m *Monitor) run() {
	defer m.wg.Done()
	left := make([]float32, m.block)
	right := make([]float32, m.block)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-m.stop:
			return
		case now := <-ticker.C:
			n, err := m.source.Read(left, right)
			if err != nil {
				slog.Error("meter source failed", "error", err)
				return
			}
			m.publish(left[:n], right[:n], now.Sub(last))
			last = now
		}
	}
}

// Tap meters a block produced elsewhere, such as one handed to an audio
// device; a tapped monitor is never started
func (m *Monitor) Tap(left, right []float32) {
	m.publish(left, right, time.Duration(float64(len(left))/float64(m.sampleRate)*float64(time.Second)))
}

func (m *Monitor) publish(left, right []float32, elapsed time.Duration) {
	r := Reading{
		Output:      m.detector.Process(left, right),
		Correlation: m.correlation.Process(left, right),
		Elapsed:     elapsed,
	}
	select {
	case m.readings <- r:
	default:
	}
}
