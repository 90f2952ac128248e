package widget

import (
	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
)

// ModRangeKind selects where a slider draws its modulation strip
type ModRangeKind int

const (
	// ModRangeCenter is a strip of Width centered across the slider
	ModRangeCenter ModRangeKind = iota
	// ModRangeCenterFilled spans the slider minus EdgePadding on both sides
	ModRangeCenterFilled
	// ModRangeLeftOrTop sits outside the left (top) edge
	ModRangeLeftOrTop
	// ModRangeRightOrBottom sits outside the right (bottom) edge
	ModRangeRightOrBottom
)

// ModRangePlacement positions the strip across the slider
type ModRangePlacement struct {
	Kind        ModRangeKind
	Width       float32
	Offset      float32
	EdgePadding float32
}

// cross returns the strip's offset and width across an axis of extent
func (p ModRangePlacement) cross(extent float32) (offset, width float32) {
	switch p.Kind {
	case ModRangeCenterFilled:
		return p.EdgePadding, extent - 2.0*p.EdgePadding
	case ModRangeLeftOrTop:
		return p.Offset - p.Width, p.Width
	case ModRangeRightOrBottom:
		return extent + p.Offset, p.Width
	default:
		return p.Offset + (extent-p.Width)/2.0, p.Width
	}
}

// ModRangeStyle draws a ModulationRange next to or over a slider
// BackColor with zero alpha draws no background
type ModRangeStyle struct {
	Placement          ModRangePlacement
	BackColor          draw.Color
	BackBorderWidth    float32
	BackBorderRadius   float32
	BackBorderColor    draw.Color
	FilledColor        draw.Color
	FilledInverseColor draw.Color
}

// DefaultModRangeStyle is a 4 pixel strip outside the right (bottom) edge
func DefaultModRangeStyle() *ModRangeStyle {
	return &ModRangeStyle{
		Placement:          ModRangePlacement{Kind: ModRangeRightOrBottom, Width: 4, Offset: 4},
		BackColor:          ModRangeEmptyColor,
		FilledColor:        ModRangeFilled,
		FilledInverseColor: ModRangeFilledInv,
	}
}

func renderModRange(a sliderAxis, m *faderkit.ModulationRange, style *ModRangeStyle) draw.Primitive {
	if m == nil || style == nil || !m.Visible {
		return draw.None{}
	}
	cross, width := style.Placement.cross(a.crossExtent())
	if width <= 0 {
		return draw.None{}
	}
	extent := a.mainExtent()

	var back draw.Primitive = draw.None{}
	if visible(style.BackColor) {
		back = draw.Quad{
			Bounds:       a.rect(0, cross, extent, width),
			Fill:         style.BackColor,
			BorderRadius: style.BackBorderRadius,
			BorderWidth:  style.BackBorderWidth,
			BorderColor:  style.BackBorderColor,
		}
	}

	var filled draw.Primitive = draw.None{}
	if m.FilledVisible && !m.IsEmpty() {
		lo, hi, inverse := m.Span()
		color := style.FilledColor
		if inverse {
			color = style.FilledInverseColor
		}
		start := hi.ScaleInv(extent)
		filled = draw.Quad{
			Bounds:       a.rect(start, cross, lo.ScaleInv(extent)-start, width),
			Fill:         color,
			BorderRadius: style.BackBorderRadius,
		}
	}

	return draw.NewGroup(back, filled)
}
