package faderkit

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// ErrNormalOutOfRange is returned by TryNormal when the value is outside 0.0..=1.0
var ErrNormalOutOfRange = errors.New("out of normal range (0.0..=1.0)")

// Normal is a float32 that is guaranteed to be constrained to 0.0 <= value <= 1.0
// It is the currency passed between widgets and renderers
type Normal struct {
	value float32
}

var (
	// MinNormal is a Normal with the value 0.0
	MinNormal = Normal{0.0}

	// CenterNormal is a Normal with the value 0.5
	CenterNormal = Normal{0.5}

	// MaxNormal is a Normal with the value 1.0
	MaxNormal = Normal{1.0}
)

// NewNormal creates a Normal, clamping the value into 0.0..=1.0 (NaN becomes 0.0)
func NewNormal(value float32) Normal {
	return Normal{clampUnit(value)}
}

// TryNormal creates a Normal without clamping, failing if the value is out of range
func TryNormal(value float32) (Normal, error) {
	if !(value >= 0.0 && value <= 1.0) {
		return MinNormal, fmt.Errorf("%v: %w", value, ErrNormalOutOfRange)
	}
	return Normal{value}, nil
}

// Set replaces the value, clamping into 0.0..=1.0
func (n *Normal) Set(value float32) {
	n.value = clampUnit(value)
}

// Float32 returns the value of the Normal
func (n Normal) Float32() float32 {
	return n.value
}

// Inv returns 1.0 - value
func (n Normal) Inv() float32 {
	return 1.0 - n.value
}

// Scale returns value * scalar
func (n Normal) Scale(scalar float32) float32 {
	return n.value * scalar
}

// ScaleInv returns (1.0 - value) * scalar
// Vertical renderers use this so that a Normal of 1.0 sits at the top of the bounds
func (n Normal) ScaleInv(scalar float32) float32 {
	return (1.0 - n.value) * scalar
}

// Equal compares the clamped values bit-for-bit
func (n Normal) Equal(other Normal) bool {
	return math.Float32bits(n.value) == math.Float32bits(other.value)
}

// Less reports whether n sorts before other
func (n Normal) Less(other Normal) bool {
	return n.value < other.value
}

func (n Normal) String() string {
	return fmt.Sprintf("%.4f", n.value)
}

func clampUnit(value float32) float32 {
	switch {
	case value != value:
		return 0.0
	case value <= 0.0:
		return 0.0
	case value > 1.0:
		return 1.0
	default:
		return value
	}
}
