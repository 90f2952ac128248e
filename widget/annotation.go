package widget

import (
	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
	"github.com/michaelquigley/faderkit/marks"
)

// LinearTicks is how a bar shaped widget lays out its tick marks
type LinearTicks struct {
	Style     marks.TickStyle
	Placement marks.TickPlacement
}

func DefaultLinearTicks() *LinearTicks {
	return &LinearTicks{Style: marks.DefaultTickStyle(), Placement: marks.BothSides(false, faderkit.ZeroOffset)}
}

// LinearTexts is how a bar shaped widget lays out its text marks
type LinearTexts struct {
	Style     marks.TextStyle
	Placement marks.TextPlacement
}

func DefaultLinearTexts() *LinearTexts {
	return &LinearTexts{Style: marks.DefaultTextStyle(), Placement: marks.TextLeftOrTop(false, faderkit.Offset{X: -4, Y: -4})}
}

// RadialTicks is how a knob lays out its tick marks; Offset is added to the
// knob radius
type RadialTicks struct {
	Style  marks.TickStyle
	Offset float32
	Inside bool
}

func DefaultRadialTicks() *RadialTicks {
	return &RadialTicks{Style: marks.DefaultTickStyle(), Offset: 3}
}

// RadialTexts is how a knob lays out its text marks
type RadialTexts struct {
	Style       marks.TextStyle
	Offset      float32
	VOffset     float32
	HCharOffset float32
}

func DefaultRadialTexts() *RadialTexts {
	return &RadialTexts{Style: marks.DefaultTextStyle(), Offset: 15, HCharOffset: 3}
}

// Marks are the optional annotations a widget draws next to its value
type Marks struct {
	Ticks *marks.TickGroup
	Texts *marks.TextGroup
}

// annotations owns the primitive caches of one widget
type annotations struct {
	ticks marks.TickCache
	texts marks.TextCache
}

func (a *annotations) linearTicks(o Orientation, bounds draw.Rect, group *marks.TickGroup, style *LinearTicks) draw.Primitive {
	if style == nil || group.IsEmpty() {
		return draw.None{}
	}
	if o == Horizontal {
		return a.ticks.Horizontal(bounds, group, style.Style, style.Placement, false)
	}
	return a.ticks.Vertical(bounds, group, style.Style, style.Placement, false)
}

func (a *annotations) linearTexts(o Orientation, bounds draw.Rect, group *marks.TextGroup, style *LinearTexts) draw.Primitive {
	if style == nil || group.IsEmpty() {
		return draw.None{}
	}
	if o == Horizontal {
		return a.texts.Horizontal(bounds, group, style.Style, style.Placement, false)
	}
	return a.texts.Vertical(bounds, group, style.Style, style.Placement, false)
}

func (a *annotations) radialTicks(center draw.Point, radius float32, angles faderkit.KnobAngleRange, group *marks.TickGroup, style *RadialTicks) draw.Primitive {
	if style == nil || group.IsEmpty() {
		return draw.None{}
	}
	return a.ticks.Radial(center, radius+style.Offset, angles.Min(), angles.Span(), style.Inside, group, style.Style, false)
}

func (a *annotations) radialTexts(center draw.Point, radius float32, angles faderkit.KnobAngleRange, group *marks.TextGroup, style *RadialTexts) draw.Primitive {
	if style == nil || group.IsEmpty() {
		return draw.None{}
	}
	center.Y += style.VOffset
	return a.texts.Radial(center, radius+style.Offset, angles.Min(), angles.Span(), group, style.Style, style.HCharOffset, false)
}

// Builds returns how many times the widget's annotations were rebuilt
func (a *annotations) Builds() int {
	return a.ticks.Builds() + a.texts.Builds()
}
