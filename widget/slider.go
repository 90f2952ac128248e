package widget

import (
	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
)

// SliderAppearance is one of ClassicSlider, RectSlider, RectBipolarSlider or
// TextureSlider
type SliderAppearance interface {
	sliderAppearance()
}

// ClassicRail is the pair of thin rails the handle of a classic slider runs
// along; index 0 is the left (top) rail
type ClassicRail struct {
	Colors  [2]draw.Color
	Widths  [2]float32
	Padding float32
}

// ClassicHandle is a bordered handle with an optional notch across its middle
// Length is measured along the slider
type ClassicHandle struct {
	Color        draw.Color
	Length       float32
	NotchWidth   float32
	NotchColor   draw.Color
	BorderRadius float32
	BorderWidth  float32
	BorderColor  draw.Color
}

type ClassicSlider struct {
	Rail   ClassicRail
	Handle ClassicHandle
}

// RectBack is the background of the rect appearances
type RectBack struct {
	Color        draw.Color
	BorderWidth  float32
	BorderRadius float32
	BorderColor  draw.Color
}

// RectSlider fills the slider from the minimum up to the handle
type RectSlider struct {
	Back            RectBack
	FilledColor     draw.Color
	HandleColor     draw.Color
	HandleLength    float32
	HandleFilledGap float32
}

// RectBipolarSlider fills from the center towards the handle, in the low or
// high colour depending on the side
type RectBipolarSlider struct {
	Back              RectBack
	LowFilledColor    draw.Color
	HighFilledColor   draw.Color
	HandleLowColor    draw.Color
	HandleHighColor   draw.Color
	HandleCenterColor draw.Color
	HandleLength      float32
	HandleFilledGap   float32
}

// TextureSlider draws a named texture as the handle. ImageBounds is relative
// to the handle center as seen on a vertical slider (X across, Y along)
type TextureSlider struct {
	Rail         ClassicRail
	Texture      string
	HandleLength float32
	ImageBounds  draw.Rect
}

func (ClassicSlider) sliderAppearance()     {}
func (RectSlider) sliderAppearance()        {}
func (RectBipolarSlider) sliderAppearance() {}
func (TextureSlider) sliderAppearance()     {}

// SliderStyle is everything a slider needs besides its values
type SliderStyle struct {
	Appearance StyleSet[SliderAppearance]
	Ticks      *LinearTicks
	Texts      *LinearTexts
	ModRange   *ModRangeStyle
	ModRange2  *ModRangeStyle
}

// DefaultClassicSlider is the light classic handle on grey rails
func DefaultClassicSlider() ClassicSlider {
	return ClassicSlider{
		Rail: ClassicRail{
			Colors: [2]draw.Color{SliderRailLeft, SliderRailRight},
			Widths: [2]float32{1, 1},
		},
		Handle: ClassicHandle{
			Color:        LightBackColor,
			Length:       34,
			NotchWidth:   4,
			NotchColor:   BorderColor,
			BorderRadius: 2,
			BorderWidth:  1,
			BorderColor:  BorderColor,
		},
	}
}

// DefaultRectSlider is a dark bar filled in the modulation green
func DefaultRectSlider() RectSlider {
	return RectSlider{
		Back:            RectBack{Color: MeterBackColor, BorderWidth: 1, BorderRadius: 2, BorderColor: MeterBorderColor},
		FilledColor:     ModRangeFilled,
		HandleColor:     LightBackColor,
		HandleLength:    4,
		HandleFilledGap: 1,
	}
}

func DefaultRectBipolarSlider() RectBipolarSlider {
	return RectBipolarSlider{
		Back:              RectBack{Color: MeterBackColor, BorderWidth: 1, BorderRadius: 2, BorderColor: MeterBorderColor},
		LowFilledColor:    ModRangeFilledInv,
		HighFilledColor:   ModRangeFilled,
		HandleLowColor:    LightBackColor,
		HandleHighColor:   LightBackColor,
		HandleCenterColor: LightBackHover,
		HandleLength:      4,
		HandleFilledGap:   1,
	}
}

// UniformSliderStyle is DefaultSliderStyle drawing app in every state
func UniformSliderStyle(app SliderAppearance) SliderStyle {
	style := DefaultSliderStyle()
	style.Appearance = Uniform(app)
	return style
}

// DefaultSliderStyle is the classic appearance with ticks and labels
func DefaultSliderStyle() SliderStyle {
	active := DefaultClassicSlider()
	hovered, dragging := active, active
	hovered.Handle.Color = LightBackHover
	dragging.Handle.Color = LightBackDrag
	return SliderStyle{
		Appearance: StyleSet[SliderAppearance]{Active: active, Hovered: hovered, Dragging: dragging},
		Ticks:      DefaultLinearTicks(),
		Texts:      DefaultLinearTexts(),
	}
}

// slider is the state shared by VSlider and HSlider
type slider struct {
	Param     faderkit.Param
	ModRange  *faderkit.ModulationRange
	ModRange2 *faderkit.ModulationRange
	Marks     Marks
	Style     SliderStyle
	Gesture   Gesture
	annotations
}

// VSlider is a vertical slider; 1.0 is at the top
type VSlider struct {
	slider
}

// HSlider is a horizontal slider; 1.0 is at the right
type HSlider struct {
	slider
}

func NewVSlider(param faderkit.Param) *VSlider {
	return &VSlider{slider{Param: param, Style: DefaultSliderStyle(), Gesture: SliderGesture()}}
}

func NewHSlider(param faderkit.Param) *HSlider {
	return &HSlider{slider{Param: param, Style: DefaultSliderStyle(), Gesture: SliderGesture()}}
}

// Render draws the slider for frame f
func (s *VSlider) Render(f Frame) draw.Primitive {
	return s.render(Vertical, f)
}

// Render draws the slider for frame f
func (s *HSlider) Render(f Frame) draw.Primitive {
	return s.render(Horizontal, f)
}

// sliderAxis places rectangles given a main offset measured from the maximum
// end of the slider (top or right) and a cross offset from the left or top
type sliderAxis struct {
	o Orientation
	b draw.Rect
}

func (a sliderAxis) mainExtent() float32 {
	if a.o == Horizontal {
		return a.b.W
	}
	return a.b.H
}

func (a sliderAxis) crossExtent() float32 {
	if a.o == Horizontal {
		return a.b.H
	}
	return a.b.W
}

func (a sliderAxis) rect(main, cross, mainSize, crossSize float32) draw.Rect {
	if a.o == Horizontal {
		return draw.Rect{X: a.b.Right() - main - mainSize, Y: a.b.Y + cross, W: mainSize, H: crossSize}
	}
	return draw.Rect{X: a.b.X + cross, Y: a.b.Y + main, W: crossSize, H: mainSize}
}

// span covers the main axis interval lo..hi across the full cross extent
func (a sliderAxis) span(lo, hi float32) draw.Rect {
	extent := a.mainExtent()
	return a.rect((1.0-hi)*extent, 0, (hi-lo)*extent, a.crossExtent())
}

// valueBounds is the travel of the handle's center
func (a sliderAxis) valueBounds(handle float32) draw.Rect {
	half := roundf(handle / 2.0)
	if a.o == Horizontal {
		return draw.Rect{X: a.b.X + half, Y: a.b.Y, W: a.b.W - handle, H: a.b.H}
	}
	return draw.Rect{X: a.b.X, Y: a.b.Y + half, W: a.b.W, H: a.b.H - handle}
}

func (s *slider) render(o Orientation, f Frame) draw.Primitive {
	a := sliderAxis{o: o, b: f.Bounds.Round()}
	switch app := s.Style.Appearance.Select(f).(type) {
	case ClassicSlider:
		return s.renderClassic(a, app)
	case RectSlider:
		return s.renderRect(a, app)
	case RectBipolarSlider:
		return s.renderRectBipolar(a, app)
	case TextureSlider:
		return s.renderTexture(a, app)
	default:
		return draw.None{}
	}
}

// markers returns ticks, texts and both mod ranges
func (s *slider) markers(a sliderAxis, markBounds, modBounds draw.Rect) (ticks, texts, mod1, mod2 draw.Primitive) {
	modAxis := sliderAxis{o: a.o, b: modBounds}
	return s.linearTicks(a.o, markBounds, s.Marks.Ticks, s.Style.Ticks),
		s.linearTexts(a.o, markBounds, s.Marks.Texts, s.Style.Texts),
		renderModRange(modAxis, s.ModRange, s.Style.ModRange),
		renderModRange(modAxis, s.ModRange2, s.Style.ModRange2)
}

func (s *slider) renderClassic(a sliderAxis, style ClassicSlider) draw.Primitive {
	handle := style.Handle.Length
	value := a.valueBounds(handle)
	valueExtent := a.mainExtent() - handle
	ticks, texts, mod1, mod2 := s.markers(a, value, value)

	railA, railB := classicRail(a, style.Rail)

	offset := roundf(s.Param.Normal.ScaleInv(valueExtent))
	handleQuad := draw.Quad{
		Bounds:       a.rect(offset, 0, handle, a.crossExtent()),
		Fill:         style.Handle.Color,
		BorderRadius: style.Handle.BorderRadius,
		BorderWidth:  style.Handle.BorderWidth,
		BorderColor:  style.Handle.BorderColor,
	}

	var notch draw.Primitive = draw.None{}
	if style.Handle.NotchWidth > 0 {
		at := roundf(offset + handle/2.0 - style.Handle.NotchWidth/2.0)
		notch = fill(a.rect(at, 0, style.Handle.NotchWidth, a.crossExtent()), style.Handle.NotchColor)
	}

	return draw.NewGroup(ticks, texts, railA, railB, handleQuad, notch, mod1, mod2)
}

func (s *slider) renderRect(a sliderAxis, style RectSlider) draw.Primitive {
	handle := style.HandleLength
	border := style.Back.BorderWidth
	value := a.valueBounds(handle)
	valueExtent := a.mainExtent() - handle
	ticks, texts, mod1, mod2 := s.markers(a, value, a.b)

	back := rectBack(a, style.Back)
	offset := roundf(s.Param.Normal.ScaleInv(valueExtent - 2.0*border))

	var filled draw.Primitive = draw.None{}
	filledOffset := offset + handle + style.HandleFilledGap
	if size := a.mainExtent() - filledOffset; size > 0 {
		filled = draw.Quad{
			Bounds:       a.rect(filledOffset, 0, size, a.crossExtent()),
			Fill:         style.FilledColor,
			BorderRadius: style.Back.BorderRadius,
		}
	}

	handleQuad := draw.Quad{
		Bounds:       a.rect(offset, 0, handle+2.0*border, a.crossExtent()),
		Fill:         style.HandleColor,
		BorderRadius: style.Back.BorderRadius,
	}

	return draw.NewGroup(back, ticks, texts, filled, handleQuad, mod1, mod2)
}

func (s *slider) renderRectBipolar(a sliderAxis, style RectBipolarSlider) draw.Primitive {
	handle := style.HandleLength
	border := style.Back.BorderWidth
	value := a.valueBounds(handle)
	valueExtent := a.mainExtent() - handle
	ticks, texts, mod1, mod2 := s.markers(a, value, a.b)

	back := rectBack(a, style.Back)
	offset := roundf(s.Param.Normal.ScaleInv(valueExtent - 2.0*border))
	n := s.Param.Normal.Float32()

	var filled draw.Primitive = draw.None{}
	handleColor := style.HandleCenterColor
	switch {
	case n > 0.499 && n < 0.501:
	case n > 0.5:
		handleColor = style.HandleHighColor
		start := offset + handle + style.HandleFilledGap
		if size := roundf(a.mainExtent()/2.0 - start + 2.0*border); size > 0 {
			filled = draw.Quad{
				Bounds:       a.rect(start, 0, size, a.crossExtent()),
				Fill:         style.HighFilledColor,
				BorderRadius: style.Back.BorderRadius,
			}
		}
	default:
		handleColor = style.HandleLowColor
		start := roundf(a.mainExtent()/2.0) - border
		if size := offset - start + 2.0*border - style.HandleFilledGap; size > 0 {
			filled = draw.Quad{
				Bounds:       a.rect(start, 0, size, a.crossExtent()),
				Fill:         style.LowFilledColor,
				BorderRadius: style.Back.BorderRadius,
			}
		}
	}

	handleQuad := draw.Quad{
		Bounds:       a.rect(offset, 0, handle+2.0*border, a.crossExtent()),
		Fill:         handleColor,
		BorderRadius: style.Back.BorderRadius,
	}

	return draw.NewGroup(back, ticks, texts, filled, handleQuad, mod1, mod2)
}

func (s *slider) renderTexture(a sliderAxis, style TextureSlider) draw.Primitive {
	handle := style.HandleLength
	value := a.valueBounds(handle)
	valueExtent := a.mainExtent() - handle
	ticks, texts, mod1, mod2 := s.markers(a, value, value)

	railA, railB := classicRail(a, style.Rail)

	img := style.ImageBounds
	main := roundf(roundf(handle/2.0) + img.Y + s.Param.Normal.ScaleInv(valueExtent))
	cross := roundf(a.crossExtent()/2.0 + img.X)
	image := draw.Image{Bounds: a.rect(main, cross, img.H, img.W), Texture: style.Texture}

	return draw.NewGroup(ticks, texts, railA, railB, image, mod1, mod2)
}

func classicRail(a sliderAxis, rail ClassicRail) (draw.Primitive, draw.Primitive) {
	full := rail.Widths[0] + rail.Widths[1]
	start := roundf((a.crossExtent() - full) / 2.0)
	length := a.mainExtent() - 2.0*rail.Padding
	if length <= 0 {
		return draw.None{}, draw.None{}
	}
	first := fill(a.rect(rail.Padding, start, length, rail.Widths[0]), rail.Colors[0])
	second := fill(a.rect(rail.Padding, start+rail.Widths[0], length, rail.Widths[1]), rail.Colors[1])
	return first, second
}

func rectBack(a sliderAxis, back RectBack) draw.Quad {
	return draw.Quad{
		Bounds:       a.b,
		Fill:         back.Color,
		BorderRadius: back.BorderRadius,
		BorderWidth:  back.BorderWidth,
		BorderColor:  back.BorderColor,
	}
}
