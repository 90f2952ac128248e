// Package widget holds the render contracts of the faderkit controls and
// meters. Each widget is a small state struct whose Render method turns the
// current values into a draw.Primitive tree; marks are built through caches
// owned by the widget so unchanged annotations are reused between frames.
package widget

import (
	"math"

	"github.com/michaelquigley/faderkit/draw"
)

// Orientation selects the main axis of bar shaped widgets
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Interaction is the pointer state a widget is drawn in
type Interaction int

const (
	Active Interaction = iota
	Hovered
	Dragging
)

func (i Interaction) String() string {
	switch i {
	case Hovered:
		return "hovered"
	case Dragging:
		return "dragging"
	default:
		return "active"
	}
}

// Frame is the per-frame input every widget renders from; a nil Cursor means
// the pointer is not over the host
type Frame struct {
	Bounds   draw.Rect
	Cursor   *draw.Point
	Dragging bool
}

// Interaction returns Dragging while dragging, Hovered while the cursor is
// inside the bounds and Active otherwise
func (f Frame) Interaction() Interaction {
	switch {
	case f.Dragging:
		return Dragging
	case f.Cursor != nil && f.Bounds.Contains(*f.Cursor):
		return Hovered
	default:
		return Active
	}
}

// StyleSet holds one appearance per interaction state
type StyleSet[T any] struct {
	Active   T
	Hovered  T
	Dragging T
}

// Uniform returns a StyleSet that draws the same in every state
func Uniform[T any](style T) StyleSet[T] {
	return StyleSet[T]{Active: style, Hovered: style, Dragging: style}
}

// For returns the appearance for state i
func (s StyleSet[T]) For(i Interaction) T {
	switch i {
	case Dragging:
		return s.Dragging
	case Hovered:
		return s.Hovered
	default:
		return s.Active
	}
}

// Select picks the appearance for f
func (s StyleSet[T]) Select(f Frame) T {
	return s.For(f.Interaction())
}

func roundf(v float32) float32 {
	return float32(math.Round(float64(v)))
}

func floorf(v float32) float32 {
	return float32(math.Floor(float64(v)))
}

func fill(bounds draw.Rect, color draw.Color) draw.Quad {
	return draw.Quad{Bounds: bounds, Fill: color}
}

// visible reports whether a colour should be drawn; a zero alpha colour
// doubles as "not set" in appearances
func visible(c draw.Color) bool {
	return c.A > 0
}
