package widget

import (
	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
)

// HandleShape is the XY pad handle; CircleHandle or SquareHandle
type HandleShape interface {
	handleShape()
}

type CircleHandle struct {
	Color       draw.Color
	Diameter    float32
	BorderWidth float32
	BorderColor draw.Color
}

type SquareHandle struct {
	Color        draw.Color
	Size         float32
	BorderRadius float32
	BorderWidth  float32
	BorderColor  draw.Color
}

func (CircleHandle) handleShape() {}
func (SquareHandle) handleShape() {}

// XYPadAppearance draws the pad; a zero RailWidth hides the rails and a
// transparent CenterLineColor hides the center lines
type XYPadAppearance struct {
	RailWidth       float32
	HRailColor      draw.Color
	VRailColor      draw.Color
	Handle          HandleShape
	BackColor       draw.Color
	BorderWidth     float32
	BorderColor     draw.Color
	CenterLineWidth float32
	CenterLineColor draw.Color
}

func DefaultXYPadAppearance() XYPadAppearance {
	return XYPadAppearance{
		RailWidth:       2,
		HRailColor:      XYPadRailColor,
		VRailColor:      XYPadRailColor,
		Handle:          CircleHandle{Color: LightBackColor, Diameter: 11, BorderWidth: 2, BorderColor: BorderColor},
		BackColor:       LightBackColor,
		BorderWidth:     1,
		BorderColor:     BorderColor,
		CenterLineWidth: 1,
		CenterLineColor: XYPadCenterLine,
	}
}

// XYPad controls two Params; X grows to the right and Y grows upward
type XYPad struct {
	X       faderkit.Param
	Y       faderkit.Param
	Style   StyleSet[XYPadAppearance]
	Gesture Gesture
}

func NewXYPad(x, y faderkit.Param) *XYPad {
	active := DefaultXYPadAppearance()
	dragging := active
	dragging.Handle = CircleHandle{Color: LightBackDrag, Diameter: 13, BorderWidth: 2, BorderColor: BorderColor}
	return &XYPad{
		X:       x,
		Y:       y,
		Style:   StyleSet[XYPadAppearance]{Active: active, Hovered: active, Dragging: dragging},
		Gesture: Gesture{ModifierScalar: 0.02},
	}
}

// PointAt sets both Params from an absolute cursor position inside f's
// square; returns true when either changed
func (p *XYPad) PointAt(f Frame, cursor draw.Point) bool {
	x, y, size := padSquare(f.Bounds)
	if size <= 0 {
		return false
	}
	changedX := p.X.Update(faderkit.NewNormal((cursor.X - x) / size))
	changedY := p.Y.Update(faderkit.NewNormal(1.0 - (cursor.Y-y)/size))
	return changedX || changedY
}

func padSquare(bounds draw.Rect) (x, y, size float32) {
	size = bounds.W
	if bounds.H < size {
		size = bounds.H
	}
	return floorf(bounds.X), floorf(bounds.Y), floorf(size)
}

// Render draws the pad for frame f
func (p *XYPad) Render(f Frame) draw.Primitive {
	app := p.Style.Select(f)
	x, y, size := padSquare(f.Bounds)

	back := draw.Quad{
		Bounds:      draw.Rect{X: x, Y: y, W: size, H: size},
		Fill:        app.BackColor,
		BorderWidth: app.BorderWidth,
		BorderColor: app.BorderColor,
	}

	handleX := floorf(x + p.X.Normal.Scale(size))
	handleY := floorf(y + p.Y.Normal.ScaleInv(size))
	center := floorf(size / 2.0)

	var hCenter, vCenter draw.Primitive = draw.None{}, draw.None{}
	if visible(app.CenterLineColor) && app.CenterLineWidth > 0 {
		half := floorf(app.CenterLineWidth / 2.0)
		hCenter = fill(draw.Rect{X: x, Y: y + center - half, W: size, H: app.CenterLineWidth}, app.CenterLineColor)
		vCenter = fill(draw.Rect{X: x + center - half, Y: y, W: app.CenterLineWidth, H: size}, app.CenterLineColor)
	}

	var hRail, vRail draw.Primitive = draw.None{}, draw.None{}
	if app.RailWidth > 0 {
		half := floorf(app.RailWidth / 2.0)
		hRail = fill(draw.Rect{X: x, Y: handleY - half, W: size, H: app.RailWidth}, app.HRailColor)
		vRail = fill(draw.Rect{X: handleX - half, Y: y, W: app.RailWidth, H: size}, app.VRailColor)
	}

	var handle draw.Primitive = draw.None{}
	switch h := app.Handle.(type) {
	case CircleHandle:
		r := h.Diameter / 2.0
		handle = draw.Quad{
			Bounds:       draw.Rect{X: handleX - r, Y: handleY - r, W: h.Diameter, H: h.Diameter},
			Fill:         h.Color,
			BorderRadius: r,
			BorderWidth:  h.BorderWidth,
			BorderColor:  h.BorderColor,
		}
	case SquareHandle:
		half := floorf(h.Size / 2.0)
		handle = draw.Quad{
			Bounds:       draw.Rect{X: handleX - half, Y: handleY - half, W: h.Size, H: h.Size},
			Fill:         h.Color,
			BorderRadius: h.BorderRadius,
			BorderWidth:  h.BorderWidth,
			BorderColor:  h.BorderColor,
		}
	}

	return draw.NewGroup(back, hCenter, vCenter, hRail, vRail, handle)
}
