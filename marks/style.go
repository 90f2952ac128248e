package marks

import (
	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
)

// ShapeKind selects how a tick mark tier is drawn
type ShapeKind int

const (
	ShapeNone ShapeKind = iota
	ShapeLine
	ShapeCircle
)

// Shape is the look of one tick mark tier
// Line uses Length, Width and Color; Circle uses Diameter and Color
type Shape struct {
	Kind     ShapeKind
	Length   float32
	Width    float32
	Diameter float32
	Color    draw.Color
}

// LineShape draws marks as lines of length (across the axis) by width (along it)
func LineShape(length, width float32, color draw.Color) Shape {
	return Shape{Kind: ShapeLine, Length: length, Width: width, Color: color}
}

// CircleShape draws marks as dots
func CircleShape(diameter float32, color draw.Color) Shape {
	return Shape{Kind: ShapeCircle, Diameter: diameter, Color: color}
}

// Extent is how far the shape reaches across the axis
func (s Shape) Extent() float32 {
	switch s.Kind {
	case ShapeLine:
		return s.Length
	case ShapeCircle:
		return s.Diameter
	default:
		return 0
	}
}

var (
	TickTier1Color = draw.Color{R: 0.56, G: 0.56, B: 0.56, A: 0.93}
	TickTier2Color = draw.Color{R: 0.56, G: 0.56, B: 0.56, A: 0.83}
	TickTier3Color = draw.Color{R: 0.56, G: 0.56, B: 0.56, A: 0.65}
	TextMarkColor  = draw.Color{R: 0.16, G: 0.16, B: 0.16, A: 0.9}
)

// TickStyle is the shape of each tier
type TickStyle struct {
	Tier1 Shape
	Tier2 Shape
	Tier3 Shape
}

// DefaultTickStyle returns lines of 4x2, 3x2 and 2x1 pixels
func DefaultTickStyle() TickStyle {
	return TickStyle{
		Tier1: LineShape(4, 2, TickTier1Color),
		Tier2: LineShape(3, 2, TickTier2Color),
		Tier3: LineShape(2, 1, TickTier3Color),
	}
}

// Shape returns the shape of tier t
func (s TickStyle) Shape(t Tier) Shape {
	switch t {
	case TierOne:
		return s.Tier1
	case TierTwo:
		return s.Tier2
	case TierThree:
		return s.Tier3
	default:
		return Shape{}
	}
}

// MaxExtent is the largest Extent of the three tiers
func (s TickStyle) MaxExtent() float32 {
	return max(s.Tier1.Extent(), s.Tier2.Extent(), s.Tier3.Extent())
}

// TextStyle is the look of text marks; each label is laid out in a
// BoundsWidth x BoundsHeight box
type TextStyle struct {
	Color        draw.Color
	Size         float32
	Font         string
	BoundsWidth  float32
	BoundsHeight float32
}

// DefaultTextStyle returns 12 pixel text in a 30x14 box
func DefaultTextStyle() TextStyle {
	return TextStyle{
		Color:        TextMarkColor,
		Size:         12,
		BoundsWidth:  30,
		BoundsHeight: 14,
	}
}

// PlacementKind selects where marks sit relative to the bounds
type PlacementKind int

const (
	PlaceBothSides PlacementKind = iota
	PlaceLeftOrTop
	PlaceRightOrBottom
	PlaceCenter
	PlaceCenterSplit
)

func (k PlacementKind) String() string {
	switch k {
	case PlaceBothSides:
		return "both_sides"
	case PlaceLeftOrTop:
		return "left_or_top"
	case PlaceRightOrBottom:
		return "right_or_bottom"
	case PlaceCenter:
		return "center"
	case PlaceCenterSplit:
		return "center_split"
	default:
		return "unknown"
	}
}

// TickPlacement positions tick marks relative to the bounds
//
// Inside applies to BothSides, LeftOrTop and RightOrBottom. FillLength
// applies to Center and CenterSplit, Gap only to CenterSplit
type TickPlacement struct {
	Kind       PlacementKind
	Offset     faderkit.Offset
	Inside     bool
	FillLength bool
	Gap        float32
}

func BothSides(inside bool, offset faderkit.Offset) TickPlacement {
	return TickPlacement{Kind: PlaceBothSides, Inside: inside, Offset: offset}
}

func LeftOrTop(inside bool, offset faderkit.Offset) TickPlacement {
	return TickPlacement{Kind: PlaceLeftOrTop, Inside: inside, Offset: offset}
}

func RightOrBottom(inside bool, offset faderkit.Offset) TickPlacement {
	return TickPlacement{Kind: PlaceRightOrBottom, Inside: inside, Offset: offset}
}

func Center(fillLength bool, offset faderkit.Offset) TickPlacement {
	return TickPlacement{Kind: PlaceCenter, FillLength: fillLength, Offset: offset}
}

// CenterSplit draws each mark as two halves either side of the midline,
// separated by gap
func CenterSplit(fillLength bool, gap float32, offset faderkit.Offset) TickPlacement {
	return TickPlacement{Kind: PlaceCenterSplit, FillLength: fillLength, Gap: gap, Offset: offset}
}

// Align is the alignment of centered text marks
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// TextPlacement positions text marks relative to the bounds; CenterSplit is
// not valid for text and is drawn as Center
type TextPlacement struct {
	Kind   PlacementKind
	Offset faderkit.Offset
	Inside bool
	Align  Align
}

func TextBothSides(inside bool, offset faderkit.Offset) TextPlacement {
	return TextPlacement{Kind: PlaceBothSides, Inside: inside, Offset: offset}
}

func TextLeftOrTop(inside bool, offset faderkit.Offset) TextPlacement {
	return TextPlacement{Kind: PlaceLeftOrTop, Inside: inside, Offset: offset}
}

func TextRightOrBottom(inside bool, offset faderkit.Offset) TextPlacement {
	return TextPlacement{Kind: PlaceRightOrBottom, Inside: inside, Offset: offset}
}

func TextCenter(align Align, offset faderkit.Offset) TextPlacement {
	return TextPlacement{Kind: PlaceCenter, Align: align, Offset: offset}
}
