package widget

import (
	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
)

// ModRangeInputAppearance is the dot of a ModRangeInput; a nil Dot draws
// nothing, which keeps the control usable while invisible
type ModRangeInputAppearance struct {
	Dot HandleShape
}

// ModRangeInput is a small dot that is dragged to edit a modulation amount
type ModRangeInput struct {
	Param   faderkit.Param
	Style   StyleSet[ModRangeInputAppearance]
	Gesture Gesture
}

func NewModRangeInput(param faderkit.Param) *ModRangeInput {
	dot := func(c draw.Color) ModRangeInputAppearance {
		return ModRangeInputAppearance{Dot: CircleHandle{Color: c, BorderWidth: 1, BorderColor: BorderColor}}
	}
	return &ModRangeInput{
		Param:   param,
		Style:   StyleSet[ModRangeInputAppearance]{Active: dot(LightBackColor), Hovered: dot(LightBackHover), Dragging: dot(LightBackDrag)},
		Gesture: ModRangeGesture(),
	}
}

// Range returns the modulation range the control describes, from the
// param's default to its value
func (m *ModRangeInput) Range() faderkit.ModulationRange {
	return faderkit.NewModulationRange(m.Param.Default, m.Param.Normal)
}

// Render draws the dot filling the width of f's bounds
func (m *ModRangeInput) Render(f Frame) draw.Primitive {
	x, y, size := floorf(f.Bounds.X), floorf(f.Bounds.Y), floorf(f.Bounds.W)
	bounds := draw.Rect{X: x, Y: y, W: size, H: size}

	switch d := m.Style.Select(f).Dot.(type) {
	case CircleHandle:
		return draw.Quad{Bounds: bounds, Fill: d.Color, BorderRadius: size / 2.0, BorderWidth: d.BorderWidth, BorderColor: d.BorderColor}
	case SquareHandle:
		return draw.Quad{Bounds: bounds, Fill: d.Color, BorderRadius: d.BorderRadius, BorderWidth: d.BorderWidth, BorderColor: d.BorderColor}
	default:
		return draw.None{}
	}
}
