package widget

import (
	"math"

	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
)

// Gesture turns pointer input into Param updates for one widget
//
// A drag moves the value by the pointer distance times Scalar. When
// Normalized is set the distance is first divided by the widget's extent, so
// a scalar near 1.0 tracks the pointer; otherwise Scalar is per pixel
type Gesture struct {
	Scalar         float32
	WheelScalar    float32
	ModifierScalar float32
	Normalized     bool

	dragging   bool
	prev       float32
	continuous float32
}

// SliderGesture tracks the pointer across the slider's extent
func SliderGesture() Gesture {
	return Gesture{Scalar: 0.9575, WheelScalar: 0.01, ModifierScalar: 0.02, Normalized: true}
}

// KnobGesture moves the value a fixed amount per pixel of vertical travel
func KnobGesture() Gesture {
	return Gesture{Scalar: 0.00385, WheelScalar: 0.01, ModifierScalar: 0.02}
}

// ModRangeGesture is KnobGesture at half the speed
func ModRangeGesture() Gesture {
	return Gesture{Scalar: 0.00385 / 2.0, WheelScalar: 0.005, ModifierScalar: 0.02}
}

// Dragging reports whether a drag is in progress
func (g *Gesture) Dragging() bool {
	return g.dragging
}

// Grab starts a drag at pointer coordinate pos along the drag axis
func (g *Gesture) Grab(p *faderkit.Param, pos float32) {
	g.dragging = true
	g.prev = pos
	g.continuous = p.Normal.Float32()
}

// Release ends the drag
func (g *Gesture) Release() {
	g.dragging = false
}

// DragVertical moves p by the vertical pointer travel since the last call;
// moving up increases the value. Returns true when p changed
func (g *Gesture) DragVertical(p *faderkit.Param, cursor draw.Point, bounds draw.Rect, modifier bool) bool {
	if !g.dragging {
		return false
	}
	delta := cursor.Y - g.prev
	if g.Normalized {
		if bounds.H <= 0 {
			return false
		}
		delta /= bounds.H
	}
	g.prev = clampf(cursor.Y, bounds.Y, bounds.Bottom())
	return g.move(p, delta*g.Scalar, modifier)
}

// DragHorizontal moves p by the horizontal pointer travel; moving right
// increases the value
func (g *Gesture) DragHorizontal(p *faderkit.Param, cursor draw.Point, bounds draw.Rect, modifier bool) bool {
	if !g.dragging {
		return false
	}
	delta := g.prev - cursor.X
	if g.Normalized {
		if bounds.W <= 0 {
			return false
		}
		delta /= bounds.W
	}
	g.prev = clampf(cursor.X, bounds.X, bounds.Right())
	return g.move(p, delta*g.Scalar, modifier)
}

// Wheel moves p by lines of scroll; positive lines increase the value
func (g *Gesture) Wheel(p *faderkit.Param, lines float32, modifier bool) bool {
	if g.WheelScalar == 0 || lines == 0 {
		return false
	}
	if !g.dragging {
		g.continuous = p.Normal.Float32()
	}
	return g.move(p, -lines*g.WheelScalar, modifier)
}

// DoubleClick resets p to its default
func (g *Gesture) DoubleClick(p *faderkit.Param) bool {
	g.dragging = false
	if p.IsDefault() {
		return false
	}
	p.Reset()
	return true
}

func (g *Gesture) move(p *faderkit.Param, delta float32, modifier bool) bool {
	if math.Abs(float64(delta)) < 1.1920929e-07 {
		return false
	}
	if modifier {
		delta *= g.ModifierScalar
	}
	changed := p.Update(faderkit.NewNormal(g.continuous - delta))
	g.continuous = p.Normal.Float32()
	return changed
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
