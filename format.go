package faderkit

import (
	"fmt"
	"math"
)

// Formatter renders a domain value as a display string
type Formatter func(value float32) string

// FormatDB formats decibels; anything at or below floor is shown as -∞ dB
func FormatDB(floor float32) Formatter {
	return func(db float32) string {
		if db <= floor || math.IsInf(float64(db), -1) {
			return "-∞ dB"
		}
		return fmt.Sprintf("%.1f dB", db)
	}
}

// FormatFreq formats a frequency using Hz below 1 kHz and kHz above
func FormatFreq(hz float32) string {
	if hz >= 1000.0 {
		return fmt.Sprintf("%.2f kHz", hz/1000.0)
	}
	return fmt.Sprintf("%.1f Hz", hz)
}

// FormatFreqShort formats a frequency for tick labels ("20", "1k", "2.5k")
func FormatFreqShort(hz float32) string {
	if hz >= 1000.0 {
		k := hz / 1000.0
		if k == float32(math.Trunc(float64(k))) {
			return fmt.Sprintf("%.0fk", k)
		}
		return fmt.Sprintf("%.1fk", k)
	}
	return fmt.Sprintf("%.0f", hz)
}

// FormatPercent formats a 0..1 value as a percentage
func FormatPercent(value float32) string {
	return fmt.Sprintf("%.0f%%", value*100.0)
}

// FormatPan formats a -1..1 pan position ("C", "30L", "100R")
func FormatPan(pan float32) string {
	switch {
	case math.Abs(float64(pan)) < 0.01:
		return "C"
	case pan < 0:
		return fmt.Sprintf("%.0fL", -pan*100.0)
	default:
		return fmt.Sprintf("%.0fR", pan*100.0)
	}
}

// FormatInt formats a value rounded to the nearest integer
func FormatInt(value float32) string {
	return fmt.Sprintf("%d", int(math.Round(float64(value))))
}

// FormatFloat formats a value with two decimals
func FormatFloat(value float32) string {
	return fmt.Sprintf("%.2f", value)
}
