package faderkit

import "math"

var (
	// DefaultAngleMin is the default starting angle of a knob (30 degrees)
	DefaultAngleMin = float32(30.0 * PiOver180)

	// DefaultAngleMax is the default ending angle of a knob (330 degrees)
	DefaultAngleMax = float32(330.0 * PiOver180)
)

// KnobAngleRange is the arc a knob rotates through, in radians
//
// 0 points straight down at the bottom of the knob and angles grow clockwise
// towards 2π; the default 30..330 degree sweep has its midpoint pointing up
type KnobAngleRange struct {
	min float32
	max float32
}

// DefaultKnobAngleRange returns the 30..330 degree range
func DefaultKnobAngleRange() KnobAngleRange {
	return KnobAngleRange{min: DefaultAngleMin, max: DefaultAngleMax}
}

// KnobAngleRangeFromDeg creates a range from degrees; values outside 0..360
// are set to 0
func KnobAngleRangeFromDeg(min, max float32) KnobAngleRange {
	return KnobAngleRangeFromRad(min*float32(PiOver180), max*float32(PiOver180))
}

// KnobAngleRangeFromRad creates a range from radians; values outside 0..2π
// are set to 0, and if max ends up below min the two are swapped
func KnobAngleRangeFromRad(min, max float32) KnobAngleRange {
	if !(min >= 0.0 && min < TwoPi) {
		min = 0.0
	}
	if !(max >= 0.0 && max < TwoPi) {
		max = 0.0
	}
	if max < min {
		min, max = max, min
	}
	return KnobAngleRange{min: min, max: max}
}

func (r KnobAngleRange) Min() float32 { return r.min }
func (r KnobAngleRange) Max() float32 { return r.max }

// Span returns max - min
func (r KnobAngleRange) Span() float32 {
	return r.max - r.min
}

// ValueAngle returns the angle of a Normal within the range
func (r KnobAngleRange) ValueAngle(normal Normal) float32 {
	return r.min + normal.Scale(r.Span())
}

// Direction returns the unit vector (screen space, y down) pointing at the
// angle of normal
func (r KnobAngleRange) Direction(normal Normal) (x, y float32) {
	return AngleDirection(r.ValueAngle(normal))
}

// AngleDirection returns the unit vector for an angle measured clockwise from
// straight down, in screen space
func AngleDirection(angle float32) (x, y float32) {
	s, c := math.Sincos(float64(angle))
	return float32(-s), float32(c)
}

// ScreenAngle converts a clockwise-from-down angle into the conventional
// screen angle (clockwise from +x, y down) used by arc drawing
func ScreenAngle(angle float32) float32 {
	a := math.Mod(float64(angle)+math.Pi/2.0, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return float32(a)
}
