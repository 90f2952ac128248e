package widget

import (
	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
)

// RampDirection selects which way the ramp rises
type RampDirection int

const (
	// RampUp rises from bottom-left to top-right
	RampUp RampDirection = iota
	// RampDown falls from top-left to bottom-right
	RampDown
)

func (d RampDirection) String() string {
	if d == RampDown {
		return "down"
	}
	return "up"
}

// RampTone is the colour band a ramp value falls in
type RampTone int

const (
	RampToneCenter RampTone = iota
	RampToneUp
	RampToneDown
)

// RampToneOf returns RampToneDown below 0.449, RampToneUp above 0.501 and
// RampToneCenter in between
func RampToneOf(n faderkit.Normal) RampTone {
	switch v := n.Float32(); {
	case v < 0.449:
		return RampToneDown
	case v > 0.501:
		return RampToneUp
	default:
		return RampToneCenter
	}
}

// RampCurve returns the quadratic curve of a ramp in a local frame whose
// origin is the bottom-left corner and whose y grows downward, so the top
// edge is at -h. A center tone curve is a straight line with its control
// point at the midpoint
func RampCurve(n faderkit.Normal, dir RampDirection, w, h float32) (from, control, to draw.Point, tone RampTone) {
	v := n.Float32()
	tone = RampToneOf(n)
	bottomLeft := draw.Point{X: 0, Y: 0}
	topLeft := draw.Point{X: 0, Y: -h}
	topRight := draw.Point{X: w, Y: -h}
	bottomRight := draw.Point{X: w, Y: 0}

	switch dir {
	case RampDown:
		switch tone {
		case RampToneDown:
			return topLeft, draw.Point{X: w * (v * 2.0), Y: 0}, bottomRight, tone
		case RampToneUp:
			return bottomRight, draw.Point{X: w * ((v - 0.5) * 2.0), Y: -h}, topLeft, tone
		default:
			return topLeft, draw.Point{X: w / 2.0, Y: -h / 2.0}, bottomRight, tone
		}
	default:
		switch tone {
		case RampToneDown:
			return bottomLeft, draw.Point{X: w * (1.0 - v*2.0), Y: 0}, topRight, tone
		case RampToneUp:
			return topRight, draw.Point{X: w * (1.0 - (v-0.5)*2.0), Y: -h}, bottomLeft, tone
		default:
			return bottomLeft, draw.Point{X: w / 2.0, Y: -h / 2.0}, topRight, tone
		}
	}
}

type RampAppearance struct {
	BackColor       draw.Color
	BackBorderWidth float32
	BackBorderColor draw.Color
	LineWidth       float32
	LineCenterColor draw.Color
	LineUpColor     draw.Color
	LineDownColor   draw.Color
}

func DefaultRampAppearance() RampAppearance {
	return RampAppearance{
		BackColor:       LightBackColor,
		BackBorderWidth: 1,
		BackBorderColor: BorderColor,
		LineWidth:       2,
		LineCenterColor: draw.Color{R: 0.7, G: 0.7, B: 0.7, A: 1},
		LineUpColor:     draw.Color{R: 0.0, G: 0.9, B: 0.0, A: 1},
		LineDownColor:   draw.Color{R: 0.0, G: 0.9, B: 0.0, A: 1},
	}
}

// Ramp shows the curvature of an envelope segment
type Ramp struct {
	Param     faderkit.Param
	Direction RampDirection
	Style     StyleSet[RampAppearance]
	Gesture   Gesture
}

func NewRamp(param faderkit.Param, dir RampDirection) *Ramp {
	active := DefaultRampAppearance()
	hovered := active
	hovered.BackColor = RampBackHover
	return &Ramp{
		Param:     param,
		Direction: dir,
		Style:     StyleSet[RampAppearance]{Active: active, Hovered: hovered, Dragging: hovered},
		Gesture:   Gesture{Scalar: 0.00385, WheelScalar: 0.01, ModifierScalar: 0.02},
	}
}

// Render draws the ramp for frame f
func (r *Ramp) Render(f Frame) draw.Primitive {
	app := r.Style.Select(f)
	x, y := floorf(f.Bounds.X), floorf(f.Bounds.Y)
	w, h := floorf(f.Bounds.W), floorf(f.Bounds.H)

	back := draw.Quad{
		Bounds:      draw.Rect{X: x, Y: y, W: w, H: h},
		Fill:        app.BackColor,
		BorderWidth: app.BackBorderWidth,
		BorderColor: app.BackBorderColor,
	}

	border := app.BackBorderWidth
	rangeW, rangeH := w-2.0*border, h-2.0*border
	if rangeW <= 0 || rangeH <= 0 || app.LineWidth <= 0 {
		return back
	}

	from, control, to, tone := RampCurve(r.Param.Normal, r.Direction, rangeW, rangeH)
	origin := draw.Point{X: x + border, Y: y + border + rangeH}

	color := app.LineCenterColor
	switch tone {
	case RampToneUp:
		color = app.LineUpColor
	case RampToneDown:
		color = app.LineDownColor
	}

	var line draw.Primitive
	if tone == RampToneCenter {
		line = draw.Line{A: origin.Add(from), B: origin.Add(to), Width: app.LineWidth, Color: color}
	} else {
		line = draw.Curve{From: origin.Add(from), Control: origin.Add(control), To: origin.Add(to), Width: app.LineWidth, Color: color}
	}
	return draw.NewGroup(back, line)
}
