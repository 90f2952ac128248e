package faderkit

import "math"

const (
	// PiOver180 converts degrees to radians
	PiOver180 = math.Pi / 180.0

	// TwoPi is a full turn in radians
	TwoPi = math.Pi * 2.0
)

// DBToAmplitude converts decibels to linear amplitude
func DBToAmplitude(db float32) float32 {
	return float32(math.Pow(10.0, float64(db)/20.0))
}

// AmplitudeToDB converts linear amplitude to decibels
// Silence (amplitude <= 0) returns negative infinity
func AmplitudeToDB(amplitude float32) float32 {
	if amplitude <= 0.0 {
		return float32(math.Inf(-1))
	}
	return float32(20.0 * math.Log10(float64(amplitude)))
}

// Lerp interpolates between a and b by t
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}
