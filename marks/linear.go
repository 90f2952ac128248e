package marks

import (
	"math"

	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
)

// axis maps main/cross coordinates onto a rectangle; the main axis runs
// along the marks' positions
type axis struct {
	vertical bool
	bounds   draw.Rect
	inverse  bool
}

func (a axis) mainStart() float32 {
	if a.vertical {
		return a.bounds.Y
	}
	return a.bounds.X
}

func (a axis) mainExtent() float32 {
	if a.vertical {
		return a.bounds.H
	}
	return a.bounds.W
}

func (a axis) crossStart() float32 {
	if a.vertical {
		return a.bounds.X
	}
	return a.bounds.Y
}

func (a axis) crossExtent() float32 {
	if a.vertical {
		return a.bounds.W
	}
	return a.bounds.H
}

func (a axis) crossEnd() float32 {
	return a.crossStart() + a.crossExtent()
}

func (a axis) crossMid() float32 {
	return a.crossStart() + a.crossExtent()/2.0
}

// position returns the main axis coordinate of n; vertical axes put 1.0 at
// the top unless inverse is set
func (a axis) position(n faderkit.Normal) float32 {
	if a.inverse != a.vertical {
		return a.mainStart() + n.ScaleInv(a.mainExtent())
	}
	return a.mainStart() + n.Scale(a.mainExtent())
}

// rect builds a rectangle from main/cross coordinates
func (a axis) rect(main, cross, mainSize, crossSize float32) draw.Rect {
	if a.vertical {
		return draw.Rect{X: cross, Y: main, W: crossSize, H: mainSize}
	}
	return draw.Rect{X: main, Y: cross, W: mainSize, H: crossSize}
}

// HorizontalTicks lays out group along a horizontal axis
func HorizontalTicks(bounds draw.Rect, group *TickGroup, style TickStyle, placement TickPlacement, inverse bool) draw.Primitive {
	return linearTicks(axis{bounds: placement.Offset.OffsetRect(bounds), inverse: inverse}, group, style, placement)
}

// VerticalTicks lays out group along a vertical axis, 1.0 at the top unless
// inverse is set
func VerticalTicks(bounds draw.Rect, group *TickGroup, style TickStyle, placement TickPlacement, inverse bool) draw.Primitive {
	return linearTicks(axis{vertical: true, bounds: placement.Offset.OffsetRect(bounds), inverse: inverse}, group, style, placement)
}

// edge alignment of a mark against a cross axis coordinate
type edge int

const (
	// the mark starts at the coordinate and grows towards the far edge
	fromEdge edge = iota
	// the mark ends at the coordinate
	toEdge
)

func linearTicks(a axis, group *TickGroup, style TickStyle, placement TickPlacement) draw.Primitive {
	if group.IsEmpty() {
		return draw.None{}
	}

	out := make([]draw.Primitive, 0, group.Len()*2)
	switch placement.Kind {
	case PlaceBothSides:
		if placement.Inside {
			out = appendEdgeTicks(out, a, a.crossStart(), fromEdge, group, style)
			out = appendEdgeTicks(out, a, a.crossEnd(), toEdge, group, style)
		} else {
			out = appendEdgeTicks(out, a, a.crossStart(), toEdge, group, style)
			out = appendEdgeTicks(out, a, a.crossEnd(), fromEdge, group, style)
		}

	case PlaceLeftOrTop:
		if placement.Inside {
			out = appendEdgeTicks(out, a, a.crossStart(), fromEdge, group, style)
		} else {
			out = appendEdgeTicks(out, a, a.crossStart(), toEdge, group, style)
		}

	case PlaceRightOrBottom:
		if placement.Inside {
			out = appendEdgeTicks(out, a, a.crossEnd(), toEdge, group, style)
		} else {
			out = appendEdgeTicks(out, a, a.crossEnd(), fromEdge, group, style)
		}

	case PlaceCenter:
		for t := TierOne; t <= TierThree; t++ {
			shape := style.Shape(t)
			length := shape.Extent()
			cross := a.crossMid() - length/2.0
			if placement.FillLength {
				cross = a.crossStart() + length
				length = a.crossExtent() - 2.0*length
			}
			out = appendTier(out, a, group.Tier(t), shape, cross, length)
		}

	case PlaceCenterSplit:
		gap := placement.Gap
		for t := TierOne; t <= TierThree; t++ {
			shape := style.Shape(t)
			length := shape.Extent()
			near := a.crossMid() - length - gap/2.0
			if placement.FillLength {
				length = (a.crossExtent() - gap) / 2.0
				near = a.crossStart()
			}
			far := a.crossMid() + gap/2.0
			out = appendTier(out, a, group.Tier(t), shape, near, length)
			out = appendTier(out, a, group.Tier(t), shape, far, length)
		}
	}

	return draw.Group{Children: out}
}

func appendEdgeTicks(out []draw.Primitive, a axis, at float32, e edge, group *TickGroup, style TickStyle) []draw.Primitive {
	for t := TierOne; t <= TierThree; t++ {
		shape := style.Shape(t)
		length := shape.Extent()
		cross := at
		if e == toEdge {
			cross = at - length
		}
		out = appendTier(out, a, group.Tier(t), shape, cross, length)
	}
	return out
}

// appendTier emits one primitive per position. cross is where the mark starts
// across the axis and length how far it reaches
func appendTier(out []draw.Primitive, a axis, positions []faderkit.Normal, shape Shape, cross, length float32) []draw.Primitive {
	if len(positions) == 0 || length <= 0 {
		return out
	}

	switch shape.Kind {
	case ShapeLine:
		if shape.Width <= 0 {
			return out
		}
		for _, n := range positions {
			main := a.position(n) - shape.Width/2.0
			r := a.rect(roundf(main), roundf(cross), shape.Width, length)
			out = append(out, draw.Quad{Bounds: r, Fill: shape.Color})
		}

	case ShapeCircle:
		for _, n := range positions {
			main := a.position(n) - length/2.0
			r := a.rect(roundf(main), roundf(cross), length, length)
			out = append(out, draw.Quad{Bounds: r, Fill: shape.Color, BorderRadius: length / 2.0})
		}
	}
	return out
}

// HorizontalTexts lays out labels along a horizontal axis
func HorizontalTexts(bounds draw.Rect, group *TextGroup, style TextStyle, placement TextPlacement, inverse bool) draw.Primitive {
	return linearTexts(axis{bounds: placement.Offset.OffsetRect(bounds), inverse: inverse}, group, style, placement)
}

// VerticalTexts lays out labels along a vertical axis, 1.0 at the top unless
// inverse is set
func VerticalTexts(bounds draw.Rect, group *TextGroup, style TextStyle, placement TextPlacement, inverse bool) draw.Primitive {
	return linearTexts(axis{vertical: true, bounds: placement.Offset.OffsetRect(bounds), inverse: inverse}, group, style, placement)
}

// crossAlign is the alignment of a label box against its cross axis anchor
type crossAlign int

const (
	alignAfter  crossAlign = iota // box starts at the anchor
	alignMiddle                   // box is centered on the anchor
	alignBefore                   // box ends at the anchor
)

func linearTexts(a axis, group *TextGroup, style TextStyle, placement TextPlacement) draw.Primitive {
	if group.IsEmpty() || style.BoundsWidth <= 0 || style.BoundsHeight <= 0 {
		return draw.None{}
	}

	out := make([]draw.Primitive, 0, group.Len()*2)
	switch placement.Kind {
	case PlaceBothSides:
		if placement.Inside {
			out = appendTexts(out, a, group, style, a.crossStart(), alignAfter)
			out = appendTexts(out, a, group, style, a.crossEnd(), alignBefore)
		} else {
			out = appendTexts(out, a, group, style, a.crossStart(), alignBefore)
			out = appendTexts(out, a, group, style, a.crossEnd(), alignAfter)
		}

	case PlaceLeftOrTop:
		if placement.Inside {
			out = appendTexts(out, a, group, style, a.crossStart(), alignAfter)
		} else {
			out = appendTexts(out, a, group, style, a.crossStart(), alignBefore)
		}

	case PlaceRightOrBottom:
		if placement.Inside {
			out = appendTexts(out, a, group, style, a.crossEnd(), alignBefore)
		} else {
			out = appendTexts(out, a, group, style, a.crossEnd(), alignAfter)
		}

	default:
		align := alignMiddle
		switch placement.Align {
		case AlignStart:
			align = alignAfter
		case AlignEnd:
			align = alignBefore
		}
		out = appendTexts(out, a, group, style, a.crossMid(), align)
	}

	return draw.Group{Children: out}
}

func appendTexts(out []draw.Primitive, a axis, group *TextGroup, style TextStyle, anchor float32, align crossAlign) []draw.Primitive {
	mainSize, crossSize := style.BoundsWidth, style.BoundsHeight
	if a.vertical {
		mainSize, crossSize = style.BoundsHeight, style.BoundsWidth
	}

	cross := anchor
	switch align {
	case alignMiddle:
		cross = anchor - crossSize/2.0
	case alignBefore:
		cross = anchor - crossSize
	}

	h, v := textAlignment(a.vertical, align)
	for _, m := range group.Marks() {
		main := roundf(a.position(m.Position)) - mainSize/2.0
		out = append(out, draw.Text{
			Bounds:  a.rect(main, cross, mainSize, crossSize),
			Content: m.Label,
			Size:    style.Size,
			Font:    style.Font,
			Color:   style.Color,
			HAlign:  h,
			VAlign:  v,
		})
	}
	return out
}

// textAlignment keeps the label pinned to its anchor inside the box
func textAlignment(vertical bool, align crossAlign) (draw.HAlign, draw.VAlign) {
	if vertical {
		switch align {
		case alignAfter:
			return draw.AlignLeft, draw.AlignMiddle
		case alignBefore:
			return draw.AlignRight, draw.AlignMiddle
		default:
			return draw.AlignCenter, draw.AlignMiddle
		}
	}
	switch align {
	case alignAfter:
		return draw.AlignCenter, draw.AlignTop
	case alignBefore:
		return draw.AlignCenter, draw.AlignBottom
	default:
		return draw.AlignCenter, draw.AlignMiddle
	}
}

func roundf(v float32) float32 {
	return float32(math.Round(float64(v)))
}
