package main

import (
	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/meter"
	"github.com/michaelquigley/faderkit/scene"
	"github.com/pkg/errors"
)

const (
	sampleRate = 48000
	meterBlock = 1024
)

// loadBoard builds the scene at args[0], or the main scene without args
func loadBoard(args []string) (*scene.Board, error) {
	var cfg *faderkit.Scene
	var err error
	if len(args) > 0 {
		if cfg, err = faderkit.LoadScene(args[0]); err != nil {
			return nil, errors.Wrapf(err, "error loading scene '%v'", args[0])
		}
	} else {
		if cfg, err = faderkit.LoadMainScene(); err != nil {
			return nil, errors.Wrap(err, "error loading main scene")
		}
	}

	board, err := scene.NewBuilder(cfg).Build()
	if err != nil {
		return nil, errors.Wrap(err, "error building scene")
	}
	return board, nil
}

// startMeters feeds the test tone to a meter monitor, through the audio
// device when audio is set; the returned func stops it
func startMeters(audio bool) (<-chan meter.Reading, func(), error) {
	tone := meter.NewTone(sampleRate)
	monitor, err := meter.NewMonitor(tone, meter.NewPeakRMS(sampleRate), sampleRate, meterBlock)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error creating meter monitor")
	}
	if audio {
		tone.Amplitude = 0.25
		playback, err := meter.NewPlayback(tone, sampleRate, monitor.Tap)
		if err != nil {
			return nil, nil, err
		}
		return monitor.Readings(), func() { _ = playback.Close() }, nil
	}
	if err := monitor.Start(); err != nil {
		return nil, nil, errors.Wrap(err, "error starting meter monitor")
	}
	return monitor.Readings(), monitor.Stop, nil
}
