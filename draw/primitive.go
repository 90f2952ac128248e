// Package draw is the primitive vocabulary shared by the renderers in
// faderkit and the toolkit adapters that turn primitives into pixels.
package draw

// Primitive is an opaque drawing command
//
// The concrete types are None, Quad, Line, Arc, Curve, Text, Image, Group
// and *Cached
type Primitive interface {
	primitive()
}

// None draws nothing
type None struct{}

// Quad is a filled rectangle with optional rounded corners and border
// A circle is a Quad whose BorderRadius is half its width
type Quad struct {
	Bounds       Rect
	Fill         Color
	BorderRadius float32
	BorderWidth  float32
	BorderColor  Color
}

// Circle returns a Quad drawn as a disc of the given diameter
func Circle(center Point, diameter float32, fill Color) Quad {
	return Quad{
		Bounds:       RectFromCenter(center, diameter, diameter),
		Fill:         fill,
		BorderRadius: diameter / 2.0,
	}
}

// Line is a stroked segment
type Line struct {
	A     Point
	B     Point
	Width float32
	Color Color
}

// LineCap selects how the ends of an Arc are drawn
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// Arc is a stroked circular arc. Start and End are screen angles in radians,
// clockwise from +x (y down), with Start <= End
type Arc struct {
	Center Point
	Radius float32
	Start  float32
	End    float32
	Width  float32
	Color  Color
	Cap    LineCap
}

// Curve is a stroked quadratic bezier
type Curve struct {
	From    Point
	Control Point
	To      Point
	Width   float32
	Color   Color
}

// HAlign is horizontal text alignment inside a text box
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is vertical text alignment inside a text box
type VAlign int

const (
	AlignTop VAlign = iota
	AlignMiddle
	AlignBottom
)

// Text is a label laid out inside Bounds
// Font is an opaque name handed through to the toolkit adapter
type Text struct {
	Bounds  Rect
	Content string
	Size    float32
	Font    string
	Color   Color
	HAlign  HAlign
	VAlign  VAlign
}

// Origin is the top left corner of a run of text measuring width by height
// when aligned inside the text box
func (t Text) Origin(width, height float32) Point {
	x, y := t.Bounds.X, t.Bounds.Y
	switch t.HAlign {
	case AlignCenter:
		x += (t.Bounds.W - width) / 2.0
	case AlignRight:
		x += t.Bounds.W - width
	}
	switch t.VAlign {
	case AlignMiddle:
		y += (t.Bounds.H - height) / 2.0
	case AlignBottom:
		y += t.Bounds.H - height
	}
	return Point{X: x, Y: y}
}

// Image draws a named texture stretched over Bounds; adapters resolve the
// name against textures registered by the host
type Image struct {
	Bounds  Rect
	Texture string
}

// Group draws its children in order
type Group struct {
	Children []Primitive
}

// Cached is a shared handle to a previously built primitive tree
// Handles are shared by pointer and must be treated as immutable
type Cached struct {
	Primitive Primitive
}

func (None) primitive()    {}
func (Quad) primitive()    {}
func (Line) primitive()    {}
func (Arc) primitive()     {}
func (Curve) primitive()   {}
func (Text) primitive()    {}
func (Image) primitive()   {}
func (Group) primitive()   {}
func (*Cached) primitive() {}

// NewGroup builds a Group, dropping None children; a single child is
// returned unwrapped and no children returns None
func NewGroup(children ...Primitive) Primitive {
	kept := make([]Primitive, 0, len(children))
	for _, child := range children {
		if child == nil {
			continue
		}
		if _, ok := child.(None); ok {
			continue
		}
		kept = append(kept, child)
	}
	switch len(kept) {
	case 0:
		return None{}
	case 1:
		return kept[0]
	default:
		return Group{Children: kept}
	}
}

// Walk calls fn for every leaf primitive in draw order, descending into
// Group and Cached
func Walk(p Primitive, fn func(Primitive)) {
	switch v := p.(type) {
	case nil, None:
	case Group:
		for _, child := range v.Children {
			Walk(child, fn)
		}
	case *Cached:
		if v != nil {
			Walk(v.Primitive, fn)
		}
	default:
		fn(p)
	}
}

// Count returns the number of leaf primitives that will be drawn
func Count(p Primitive) int {
	n := 0
	Walk(p, func(Primitive) { n++ })
	return n
}
