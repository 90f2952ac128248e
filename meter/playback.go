package meter

import (
	"encoding/binary"
	"log/slog"

	"github.com/ebitengine/oto/v3"
	"github.com/pkg/errors"
)

// Playback plays a Source on the default audio device as 16 bit stereo and
// hands every block it plays to a tap, so meters follow what is heard
type Playback struct {
	ctx    *oto.Context
	player *oto.Player
}

// NewPlayback opens the audio device and starts playing source; tap may be
// nil and is called on the device's goroutine
func NewPlayback(source Source, sampleRate int, tap func(left, right []float32)) (*Playback, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, errors.Wrap(err, "error opening audio device")
	}
	<-ready

	player := ctx.NewPlayer(newPCMStream(source, tap))
	player.SetBufferSize(sampleRate / 10 * bytesPerFrame)
	player.Play()
	slog.Debug("audio playback started", "sample_rate", sampleRate)
	return &Playback{ctx: ctx, player: player}, nil
}

// Close stops playback
func (p *Playback) Close() error {
	return p.player.Close()
}

const bytesPerFrame = 4

// pcmStream adapts a Source to the io.Reader oto pulls from
type pcmStream struct {
	source Source
	tap    func(left, right []float32)
	left   []float32
	right  []float32
	failed bool
}

func newPCMStream(source Source, tap func(left, right []float32)) *pcmStream {
	return &pcmStream{source: source, tap: tap}
}

func (s *pcmStream) Read(buf []byte) (int, error) {
	frames := len(buf) / bytesPerFrame
	if frames == 0 {
		return 0, nil
	}
	if cap(s.left) < frames {
		s.left = make([]float32, frames)
		s.right = make([]float32, frames)
	}
	left, right := s.left[:frames], s.right[:frames]

	n := 0
	if !s.failed {
		var err error
		if n, err = s.source.Read(left, right); err != nil {
			slog.Error("audio source failed; playing silence", "error", err)
			s.failed = true
			n = 0
		}
	}
	for i := n; i < frames; i++ {
		left[i], right[i] = 0, 0
	}

	for i := 0; i < frames; i++ {
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame:], uint16(toPCM(left[i])))
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame+2:], uint16(toPCM(right[i])))
	}
	if s.tap != nil {
		s.tap(left, right)
	}
	return frames * bytesPerFrame, nil
}

func toPCM(sample float32) int16 {
	sample = clamp(sample, -1.0, 1.0)
	return int16(sample * 32767)
}
