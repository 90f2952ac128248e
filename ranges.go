package faderkit

import (
	"math"

	"github.com/pkg/errors"
)

const (
	// MinFrequency is the lower clamp of every FreqRange (Hz)
	MinFrequency = 20.0

	// MaxFrequency is the upper clamp of every FreqRange (Hz); ten octaves above MinFrequency
	MaxFrequency = 20480.0
)

// Range maps a domain value to and from a Normal
type Range[T any] interface {
	ToNormal(value T) Normal
	ToValue(normal Normal) T
	CreateParam(value, defaultValue T) Param
	CreateParamDefault() Param
}

var (
	_ Range[float32] = FloatRange{}
	_ Range[int]     = IntRange{}
	_ Range[float32] = LogDBRange{}
	_ Range[float32] = FreqRange{}
)

// FloatRange maps a continuous linear range of float32 values to a Normal
type FloatRange struct {
	min       float32
	max       float32
	span      float32
	spanRecip float32
}

// NewFloatRange creates a FloatRange over min..=max; it panics unless max > min
func NewFloatRange(min, max float32) FloatRange {
	if !(max > min) {
		panic(errors.Errorf("float range: max (%v) must be greater than min (%v)", max, min))
	}
	span := max - min
	return FloatRange{
		min:       min,
		max:       max,
		span:      span,
		spanRecip: 1.0 / span,
	}
}

// DefaultFloatRange returns the range 0.0..=1.0
func DefaultFloatRange() FloatRange {
	return NewFloatRange(0.0, 1.0)
}

// BipolarFloatRange returns the range -1.0..=1.0
func BipolarFloatRange() FloatRange {
	return NewFloatRange(-1.0, 1.0)
}

func (r FloatRange) Min() float32 { return r.min }
func (r FloatRange) Max() float32 { return r.max }

// ToNormal returns the Normal for value, clamping value into the range
func (r FloatRange) ToNormal(value float32) Normal {
	value = clamp(value, r.min, r.max)
	return NewNormal((value - r.min) * r.spanRecip)
}

// ToValue returns the value for a Normal
func (r FloatRange) ToValue(normal Normal) float32 {
	return normal.Scale(r.span) + r.min
}

// CreateParam creates a Param whose value and default are mapped from this range
func (r FloatRange) CreateParam(value, defaultValue float32) Param {
	return NewParam(r.ToNormal(value), r.ToNormal(defaultValue))
}

// CreateParamDefault creates a Param with value and default of 0.0
func (r FloatRange) CreateParamDefault() Param {
	return r.CreateParam(0.0, 0.0)
}

// IntRange maps a discrete linear range of int values to a Normal
type IntRange struct {
	min       int
	max       int
	span      float32
	spanRecip float32
}

// NewIntRange creates an IntRange over min..=max; it panics unless max > min
func NewIntRange(min, max int) IntRange {
	if !(max > min) {
		panic(errors.Errorf("int range: max (%d) must be greater than min (%d)", max, min))
	}
	span := float32(max - min)
	return IntRange{
		min:       min,
		max:       max,
		span:      span,
		spanRecip: 1.0 / span,
	}
}

// DefaultIntRange returns the range 0..=100
func DefaultIntRange() IntRange {
	return NewIntRange(0, 100)
}

func (r IntRange) Min() int { return r.min }
func (r IntRange) Max() int { return r.max }

// Steps returns the number of discrete steps in the range
func (r IntRange) Steps() int {
	return r.max - r.min
}

// ToNormal returns the Normal for value, clamping value into the range
func (r IntRange) ToNormal(value int) Normal {
	if value < r.min {
		value = r.min
	} else if value > r.max {
		value = r.max
	}
	return NewNormal(float32(value-r.min) * r.spanRecip)
}

// ToValue returns the nearest integer value for a Normal (halves round away from zero)
func (r IntRange) ToValue(normal Normal) int {
	return int(math.Round(float64(normal.Scale(r.span)))) + r.min
}

// SnapNormal returns the Normal of the integer value closest to normal
func (r IntRange) SnapNormal(normal Normal) Normal {
	return r.ToNormal(r.ToValue(normal))
}

// CreateParam creates a Param whose value and default are mapped from this range
func (r IntRange) CreateParam(value, defaultValue int) Param {
	return NewParam(r.ToNormal(value), r.ToNormal(defaultValue))
}

// CreateParamDefault creates a Param with value and default of 0
func (r IntRange) CreateParamDefault() Param {
	return r.CreateParam(0, 0)
}

// LogDBRange maps a continuous range of decibel values to a Normal, with a
// stationary point at 0 dB placed at zeroPosition
//
// Values near 0 dB move slower per unit of slider travel than values far from it
type LogDBRange struct {
	min          float32
	max          float32
	zeroPosition Normal

	minRecip          float32
	maxRecip          float32
	zeroRecip         float32
	oneMinusZeroRecip float32

	snapWindow  float32
	snapDefault float32
}

// NewLogDBRange creates a LogDBRange over min..=max dB
// It panics unless min <= 0 <= max and max > min
func NewLogDBRange(min, max float32, zeroPosition Normal) LogDBRange {
	if !(max > min) {
		panic(errors.Errorf("log db range: max (%v) must be greater than min (%v)", max, min))
	}
	if max < 0.0 {
		panic(errors.Errorf("log db range: max (%v) must be 0.0 or positive", max))
	}
	if min > 0.0 {
		panic(errors.Errorf("log db range: min (%v) must be 0.0 or negative", min))
	}
	z := zeroPosition.Float32()
	return LogDBRange{
		min:               min,
		max:               max,
		zeroPosition:      zeroPosition,
		minRecip:          safeRecip(min),
		maxRecip:          safeRecip(max),
		zeroRecip:         safeRecip(z),
		oneMinusZeroRecip: safeRecip(1.0 - z),
	}
}

// DefaultLogDBRange returns the range -12 dB..=+12 dB with 0 dB at the center
func DefaultLogDBRange() LogDBRange {
	return NewLogDBRange(-12.0, 12.0, CenterNormal)
}

// WithSnapToDefault returns a copy of the range whose ToValue snaps any result
// within ±window dB of defaultDB to exactly defaultDB
func (r LogDBRange) WithSnapToDefault(defaultDB, window float32) LogDBRange {
	if window < 0.0 {
		window = -window
	}
	r.snapDefault = defaultDB
	r.snapWindow = window
	return r
}

func (r LogDBRange) Min() float32 { return r.min }
func (r LogDBRange) Max() float32 { return r.max }
func (r LogDBRange) ZeroPosition() Normal { return r.zeroPosition }

// ToNormal returns the Normal for a dB value, clamping it into the range
func (r LogDBRange) ToNormal(value float32) Normal {
	value = clamp(value, r.min, r.max)
	z := r.zeroPosition.Float32()
	switch {
	case value == 0.0:
		return r.zeroPosition
	case value < 0.0:
		if r.min >= 0.0 {
			return MinNormal
		}
		u := 1.0 - sqrt32(value*r.minRecip)
		return NewNormal(u * z)
	default:
		if r.max <= 0.0 {
			return MaxNormal
		}
		u := sqrt32(value * r.maxRecip)
		return NewNormal(u*(1.0-z) + z)
	}
}

// ToValue returns the dB value for a Normal
func (r LogDBRange) ToValue(normal Normal) float32 {
	value := r.unmap(normal)
	if r.snapWindow > 0.0 && value >= r.snapDefault-r.snapWindow && value <= r.snapDefault+r.snapWindow {
		return r.snapDefault
	}
	return value
}

func (r LogDBRange) unmap(normal Normal) float32 {
	n := normal.Float32()
	z := r.zeroPosition.Float32()
	switch {
	case normal.Equal(r.zeroPosition):
		return 0.0
	case n < z:
		if r.min >= 0.0 || r.zeroRecip == 0.0 {
			return r.min
		}
		neg := 1.0 - n*r.zeroRecip
		return neg * neg * r.min
	default:
		if r.max <= 0.0 || r.oneMinusZeroRecip == 0.0 {
			return r.max
		}
		pos := (n - z) * r.oneMinusZeroRecip
		return pos * pos * r.max
	}
}

// CreateParam creates a Param whose value and default are mapped from this range
func (r LogDBRange) CreateParam(value, defaultValue float32) Param {
	return NewParam(r.ToNormal(value), r.ToNormal(defaultValue))
}

// CreateParamDefault creates a Param with value and default of 0 dB
func (r LogDBRange) CreateParamDefault() Param {
	return r.CreateParam(0.0, 0.0)
}

// FreqRange maps a range of frequencies to a Normal so that every octave of
// the ten octave spectrum (20 Hz to 20480 Hz) occupies the same travel
type FreqRange struct {
	min float32
	max float32

	minSpectrum   float32
	spectrumSpan  float32
	spectrumRecip float32
}

// NewFreqRange creates a FreqRange over min..=max Hz
// Both endpoints are clamped to 20..=20480 Hz; it panics unless the clamped max > min
func NewFreqRange(min, max float32) FreqRange {
	min = clamp(min, MinFrequency, MaxFrequency)
	max = clamp(max, MinFrequency, MaxFrequency)
	if !(max > min) {
		panic(errors.Errorf("freq range: max (%v Hz) must be greater than min (%v Hz) after clamping", max, min))
	}
	minSpectrum := SpectrumNormal(min).Float32()
	span := SpectrumNormal(max).Float32() - minSpectrum
	return FreqRange{
		min:           min,
		max:           max,
		minSpectrum:   minSpectrum,
		spectrumSpan:  span,
		spectrumRecip: 1.0 / span,
	}
}

// DefaultFreqRange returns the range 20 Hz..=20 kHz
func DefaultFreqRange() FreqRange {
	return NewFreqRange(20.0, 20000.0)
}

func (r FreqRange) Min() float32 { return r.min }
func (r FreqRange) Max() float32 { return r.max }

// ToNormal returns the Normal for a frequency, clamping it into the range
func (r FreqRange) ToNormal(value float32) Normal {
	value = clamp(value, r.min, r.max)
	return NewNormal((SpectrumNormal(value).Float32() - r.minSpectrum) * r.spectrumRecip)
}

// ToValue returns the frequency for a Normal
func (r FreqRange) ToValue(normal Normal) float32 {
	return SpectrumFrequency(NewNormal(normal.Scale(r.spectrumSpan) + r.minSpectrum))
}

// CreateParam creates a Param whose value and default are mapped from this range
func (r FreqRange) CreateParam(value, defaultValue float32) Param {
	return NewParam(r.ToNormal(value), r.ToNormal(defaultValue))
}

// CreateParamDefault creates a Param with value and default of 20480 Hz
func (r FreqRange) CreateParamDefault() Param {
	return r.CreateParam(MaxFrequency, MaxFrequency)
}

// SpectrumNormal returns the position of freq in the whole ten octave spectrum
func SpectrumNormal(freq float32) Normal {
	if freq <= 0.0 {
		return MinNormal
	}
	return NewNormal(float32((math.Log2(float64(freq)/40.0) + 1.0) * 0.1))
}

// SpectrumFrequency is the inverse of SpectrumNormal
func SpectrumFrequency(normal Normal) float32 {
	return float32(40.0 * math.Pow(2.0, 10.0*float64(normal.Float32())-1.0))
}

func clamp(value, min, max float32) float32 {
	if value <= min {
		return min
	}
	if value >= max {
		return max
	}
	if value != value {
		return min
	}
	return value
}

func safeRecip(value float32) float32 {
	if value == 0.0 {
		return 0.0
	}
	return 1.0 / value
}

func sqrt32(value float32) float32 {
	return float32(math.Sqrt(float64(value)))
}
