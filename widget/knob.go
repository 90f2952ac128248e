package widget

import (
	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
)

// StyleLength is a size in pixels, or when Scaled a fraction of the knob's
// diameter
type StyleLength struct {
	Value  float32
	Scaled bool
}

func Fixed(px float32) StyleLength       { return StyleLength{Value: px} }
func Scaled(fraction float32) StyleLength { return StyleLength{Value: fraction, Scaled: true} }

// Resolve returns the length in pixels for a knob of diameter
func (l StyleLength) Resolve(diameter float32) float32 {
	if l.Scaled {
		return l.Value * diameter
	}
	return l.Value
}

// Notch is the value indicator drawn on a knob; CircleNotch or LineNotch
type Notch interface {
	notch()
}

// CircleNotch is a dot Offset in from the knob's edge
type CircleNotch struct {
	Color       draw.Color
	BorderWidth float32
	BorderColor draw.Color
	Diameter    StyleLength
	Offset      StyleLength
}

// LineNotch is a line of Length starting Offset in from the knob's edge
type LineNotch struct {
	Color  draw.Color
	Width  StyleLength
	Length StyleLength
	Offset StyleLength
}

func (CircleNotch) notch() {}
func (LineNotch) notch()   {}

// KnobAppearance is one of ClassicCircleKnob, ClassicLineKnob, ArcKnob or
// ArcBipolarKnob
type KnobAppearance interface {
	knobAppearance()
}

type ClassicCircleKnob struct {
	Color       draw.Color
	BorderWidth float32
	BorderColor draw.Color
	Notch       CircleNotch
}

type ClassicLineKnob struct {
	Color       draw.Color
	BorderWidth float32
	BorderColor draw.Color
	Notch       LineNotch
}

// ArcKnob is a ring filled from the minimum angle to the value
type ArcKnob struct {
	Width       StyleLength
	EmptyColor  draw.Color
	FilledColor draw.Color
	Cap         draw.LineCap
	Notch       Notch
}

// ArcBipolarKnob is a ring filled from the center angle to the value
type ArcBipolarKnob struct {
	Width            StyleLength
	EmptyColor       draw.Color
	LeftFilledColor  draw.Color
	RightFilledColor draw.Color
	Cap              draw.LineCap
	Notch            Notch
}

func (ClassicCircleKnob) knobAppearance() {}
func (ClassicLineKnob) knobAppearance()   {}
func (ArcKnob) knobAppearance()           {}
func (ArcBipolarKnob) knobAppearance()    {}

// ValueArc is an optional ring around the knob showing its value. With a
// visible RightFilledColor it fills from the center like ArcBipolarKnob
type ValueArc struct {
	Width            float32
	Offset           float32
	EmptyColor       draw.Color
	LeftFilledColor  draw.Color
	RightFilledColor draw.Color
	Cap              draw.LineCap
}

// ModRangeArc is a ring around the knob showing a ModulationRange
type ModRangeArc struct {
	Width              float32
	Offset             float32
	EmptyColor         draw.Color
	FilledColor        draw.Color
	FilledInverseColor draw.Color
	Cap                draw.LineCap
}

// DefaultModRangeArc is a 3 pixel ring just outside the knob
func DefaultModRangeArc() *ModRangeArc {
	return &ModRangeArc{
		Width:              3,
		Offset:             1.5,
		EmptyColor:         ModRangeEmptyColor,
		FilledColor:        ModRangeFilled,
		FilledInverseColor: ModRangeFilledInv,
		Cap:                draw.CapButt,
	}
}

type KnobStyle struct {
	Appearance StyleSet[KnobAppearance]
	Angles     faderkit.KnobAngleRange
	Ticks      *RadialTicks
	Texts      *RadialTexts
	ValueArc   *ValueArc
	ModRange   *ModRangeArc
	ModRange2  *ModRangeArc
}

// DefaultClassicCircleKnob is a light knob with a dark dot notch
func DefaultClassicCircleKnob() ClassicCircleKnob {
	return ClassicCircleKnob{
		Color:       LightBackColor,
		BorderWidth: 1,
		BorderColor: BorderColor,
		Notch: CircleNotch{
			Color:    BorderColor,
			Diameter: Scaled(0.17),
			Offset:   Scaled(0.15),
		},
	}
}

func DefaultClassicLineKnob() ClassicLineKnob {
	return ClassicLineKnob{
		Color:       LightBackColor,
		BorderWidth: 1,
		BorderColor: BorderColor,
		Notch: LineNotch{
			Color:  BorderColor,
			Width:  Fixed(2),
			Length: Scaled(0.3),
			Offset: Scaled(0.1),
		},
	}
}

// DefaultArcKnob is a green ring with a line notch
func DefaultArcKnob() ArcKnob {
	return ArcKnob{
		Width:       Scaled(0.12),
		EmptyColor:  ModRangeEmptyColor,
		FilledColor: ModRangeFilled,
		Cap:         draw.CapRound,
		Notch:       LineNotch{Color: BorderColor, Width: Fixed(2), Length: Scaled(0.25), Offset: Scaled(0.15)},
	}
}

func DefaultArcBipolarKnob() ArcBipolarKnob {
	return ArcBipolarKnob{
		Width:            Scaled(0.12),
		EmptyColor:       ModRangeEmptyColor,
		LeftFilledColor:  ModRangeFilledInv,
		RightFilledColor: ModRangeFilled,
		Cap:              draw.CapRound,
		Notch:            LineNotch{Color: BorderColor, Width: Fixed(2), Length: Scaled(0.25), Offset: Scaled(0.15)},
	}
}

// UniformKnobStyle is DefaultKnobStyle drawing app in every state
func UniformKnobStyle(app KnobAppearance) KnobStyle {
	style := DefaultKnobStyle()
	style.Appearance = Uniform(app)
	return style
}

func DefaultKnobStyle() KnobStyle {
	active := DefaultClassicCircleKnob()
	hovered := active
	hovered.Color = KnobBackHover
	return KnobStyle{
		Appearance: StyleSet[KnobAppearance]{Active: active, Hovered: hovered, Dragging: hovered},
		Angles:     faderkit.DefaultKnobAngleRange(),
		Ticks:      DefaultRadialTicks(),
		Texts:      DefaultRadialTexts(),
	}
}

// Knob is a rotary control
//
// BipolarCenter, when set, is the Normal bipolar arcs fill from; otherwise
// they fill from 0.5
type Knob struct {
	Param         faderkit.Param
	BipolarCenter *faderkit.Normal
	ModRange      *faderkit.ModulationRange
	ModRange2     *faderkit.ModulationRange
	Marks         Marks
	Style         KnobStyle
	Gesture       Gesture
	annotations
}

func NewKnob(param faderkit.Param) *Knob {
	return &Knob{Param: param, Style: DefaultKnobStyle(), Gesture: KnobGesture()}
}

// knobInfo is the resolved geometry of one frame
type knobInfo struct {
	bounds     draw.Rect
	center     draw.Point
	radius     float32
	angles     faderkit.KnobAngleRange
	value      faderkit.Normal
	valueAngle float32
}

// squareBounds centers the largest square that fits in bounds
func squareBounds(bounds draw.Rect) draw.Rect {
	b := bounds.Round()
	switch {
	case b.W > b.H:
		return draw.Rect{X: roundf(b.X + (b.W-b.H)/2.0), Y: b.Y, W: b.H, H: b.H}
	case b.H > b.W:
		return draw.Rect{X: b.X, Y: roundf(b.Y + (b.H-b.W)/2.0), W: b.W, H: b.W}
	default:
		return b
	}
}

// Render draws the knob for frame f
func (k *Knob) Render(f Frame) draw.Primitive {
	bounds := squareBounds(f.Bounds)
	info := knobInfo{
		bounds:     bounds,
		center:     bounds.Center(),
		radius:     bounds.W / 2.0,
		angles:     k.Style.Angles,
		value:      k.Param.Normal,
		valueAngle: k.Style.Angles.ValueAngle(k.Param.Normal),
	}

	ticks := k.radialTicks(info.center, info.radius, info.angles, k.Marks.Ticks, k.Style.Ticks)
	texts := k.radialTexts(info.center, info.radius, info.angles, k.Marks.Texts, k.Style.Texts)
	valueArc := k.renderValueArc(info)
	mod1 := renderModRangeArc(info, k.ModRange, k.Style.ModRange)
	mod2 := renderModRangeArc(info, k.ModRange2, k.Style.ModRange2)

	switch app := k.Style.Appearance.Select(f).(type) {
	case ClassicCircleKnob:
		back := knobBack(info, app.Color, app.BorderWidth, app.BorderColor)
		return draw.NewGroup(ticks, texts, valueArc, mod1, mod2, back, renderNotch(info, app.Notch))
	case ClassicLineKnob:
		back := knobBack(info, app.Color, app.BorderWidth, app.BorderColor)
		return draw.NewGroup(ticks, texts, valueArc, mod1, mod2, back, renderNotch(info, app.Notch))
	case ArcKnob:
		width := app.Width.Resolve(info.bounds.W)
		r := info.radius - width/2.0
		min, max := info.angles.Min(), info.angles.Max()
		empty := arcBetween(info.center, r, min, max, width, app.EmptyColor, app.Cap)
		filled := arcBetween(info.center, r, min, info.valueAngle, width, app.FilledColor, app.Cap)
		return draw.NewGroup(ticks, texts, empty, filled, renderNotch(info, app.Notch), valueArc, mod1, mod2)
	case ArcBipolarKnob:
		width := app.Width.Resolve(info.bounds.W)
		r := info.radius - width/2.0
		empty := arcBetween(info.center, r, info.angles.Min(), info.angles.Max(), width, app.EmptyColor, app.Cap)
		var filled draw.Primitive = draw.None{}
		centerAngle := info.angles.ValueAngle(k.bipolarCenter())
		switch k.bipolarSide() {
		case -1:
			filled = arcBetween(info.center, r, info.valueAngle, centerAngle, width, app.LeftFilledColor, app.Cap)
		case 1:
			filled = arcBetween(info.center, r, centerAngle, info.valueAngle, width, app.RightFilledColor, app.Cap)
		}
		return draw.NewGroup(ticks, texts, empty, filled, renderNotch(info, app.Notch), valueArc, mod1, mod2)
	default:
		return draw.None{}
	}
}

func (k *Knob) bipolarCenter() faderkit.Normal {
	if k.BipolarCenter != nil {
		return *k.BipolarCenter
	}
	return faderkit.CenterNormal
}

// bipolarSide returns -1 left of center, 1 right of it and 0 on it
func (k *Knob) bipolarSide() int {
	n := k.Param.Normal
	if k.BipolarCenter != nil {
		switch {
		case n.Less(*k.BipolarCenter):
			return -1
		case k.BipolarCenter.Less(n):
			return 1
		default:
			return 0
		}
	}
	switch v := n.Float32(); {
	case v < 0.499:
		return -1
	case v > 0.501:
		return 1
	default:
		return 0
	}
}

func (k *Knob) renderValueArc(info knobInfo) draw.Primitive {
	style := k.Style.ValueArc
	if style == nil {
		return draw.None{}
	}
	r := info.radius + style.Offset + style.Width/2.0
	min, max := info.angles.Min(), info.angles.Max()
	empty := arcBetween(info.center, r, min, max, style.Width, style.EmptyColor, style.Cap)

	var filled draw.Primitive = draw.None{}
	if visible(style.RightFilledColor) {
		half := min + info.angles.Span()/2.0
		switch v := info.value.Float32(); {
		case v < 0.499:
			filled = arcBetween(info.center, r, info.valueAngle, half, style.Width, style.LeftFilledColor, style.Cap)
		case v > 0.501:
			filled = arcBetween(info.center, r, half, info.valueAngle, style.Width, style.RightFilledColor, style.Cap)
		}
	} else if !info.value.Equal(faderkit.MinNormal) {
		filled = arcBetween(info.center, r, min, info.valueAngle, style.Width, style.LeftFilledColor, style.Cap)
	}
	return draw.NewGroup(empty, filled)
}

func renderModRangeArc(info knobInfo, m *faderkit.ModulationRange, style *ModRangeArc) draw.Primitive {
	if m == nil || style == nil || !m.Visible {
		return draw.None{}
	}
	r := info.radius + style.Offset + style.Width/2.0
	min, span := info.angles.Min(), info.angles.Span()
	empty := arcBetween(info.center, r, min, min+span, style.Width, style.EmptyColor, style.Cap)

	var filled draw.Primitive = draw.None{}
	if m.FilledVisible && !m.IsEmpty() {
		lo, hi, inverse := m.Span()
		color := style.FilledColor
		if inverse {
			color = style.FilledInverseColor
		}
		filled = arcBetween(info.center, r, min+lo.Scale(span), min+hi.Scale(span), style.Width, color, style.Cap)
	}
	return draw.NewGroup(empty, filled)
}

// arcBetween strokes the arc between two knob angles (clockwise from down)
func arcBetween(center draw.Point, radius, from, to, width float32, color draw.Color, lineCap draw.LineCap) draw.Primitive {
	if to < from {
		from, to = to, from
	}
	if to-from <= 0 || width <= 0 || radius <= 0 || !visible(color) {
		return draw.None{}
	}
	start := faderkit.ScreenAngle(from)
	return draw.Arc{
		Center: center,
		Radius: radius,
		Start:  start,
		End:    start + (to - from),
		Width:  width,
		Color:  color,
		Cap:    lineCap,
	}
}

func knobBack(info knobInfo, color draw.Color, borderWidth float32, borderColor draw.Color) draw.Quad {
	return draw.Quad{
		Bounds:       info.bounds,
		Fill:         color,
		BorderRadius: info.radius,
		BorderWidth:  borderWidth,
		BorderColor:  borderColor,
	}
}

func renderNotch(info knobInfo, notch Notch) draw.Primitive {
	dx, dy := faderkit.AngleDirection(info.valueAngle)
	dir := draw.Point{X: dx, Y: dy}
	diameter := info.bounds.W

	switch n := notch.(type) {
	case CircleNotch:
		size := n.Diameter.Resolve(diameter)
		if size <= 0 {
			return draw.None{}
		}
		at := info.radius - n.Offset.Resolve(diameter)
		return draw.Quad{
			Bounds:       draw.RectFromCenter(draw.Point{X: info.center.X + dir.X*at, Y: info.center.Y + dir.Y*at}, size, size),
			Fill:         n.Color,
			BorderRadius: size / 2.0,
			BorderWidth:  n.BorderWidth,
			BorderColor:  n.BorderColor,
		}
	case LineNotch:
		width := n.Width.Resolve(diameter)
		length := n.Length.Resolve(diameter)
		if width <= 0 || length <= 0 {
			return draw.None{}
		}
		outer := info.radius - n.Offset.Resolve(diameter)
		inner := outer - length
		return draw.Line{
			A:     draw.Point{X: info.center.X + dir.X*outer, Y: info.center.Y + dir.Y*outer},
			B:     draw.Point{X: info.center.X + dir.X*inner, Y: info.center.Y + dir.Y*inner},
			Width: width,
			Color: n.Color,
		}
	default:
		return draw.None{}
	}
}
