package faderkit

import "github.com/michaelquigley/faderkit/draw"

// Offset is a pixel offset applied to bounds before positioning
type Offset struct {
	X float32
	Y float32
}

// ZeroOffset has no horizontal or vertical offset
var ZeroOffset = Offset{}

// OffsetRect returns rect moved by the offset
func (o Offset) OffsetRect(rect draw.Rect) draw.Rect {
	at := rect.Min().Add(o.Point())
	return draw.Rect{X: at.X, Y: at.Y, W: rect.W, H: rect.H}
}

// Point returns the offset as a point
func (o Offset) Point() draw.Point {
	return draw.Point{X: o.X, Y: o.Y}
}
