package draw

import "math"

// Point is a position in pixels, y grows downward
type Point struct {
	X float32
	Y float32
}

// Add returns p translated by o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Rotate returns p rotated clockwise (in screen space) by angle radians around origin
func (p Point) Rotate(origin Point, angle float32) Point {
	s, c := math.Sincos(float64(angle))
	dx := float64(p.X - origin.X)
	dy := float64(p.Y - origin.Y)
	return Point{
		X: origin.X + float32(dx*c-dy*s),
		Y: origin.Y + float32(dx*s+dy*c),
	}
}

// Round returns p with both coordinates rounded to whole pixels
func (p Point) Round() Point {
	return Point{X: round(p.X), Y: round(p.Y)}
}

// Rect is an axis aligned rectangle
type Rect struct {
	X float32
	Y float32
	W float32
	H float32
}

// RectFromCenter creates a w x h rectangle centered on c
func RectFromCenter(c Point, w, h float32) Rect {
	return Rect{X: c.X - w/2.0, Y: c.Y - h/2.0, W: w, H: h}
}

func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }
func (r Rect) Max() Point { return Point{X: r.X + r.W, Y: r.Y + r.H} }
func (r Rect) Right() float32 { return r.X + r.W }
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Center returns the center point of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2.0, Y: r.Y + r.H/2.0}
}

// Contains reports whether p lies inside r (edges inclusive)
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Inset shrinks the rectangle by d on every side
func (r Rect) Inset(d float32) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Translate returns r moved by (dx, dy)
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Round snaps the rectangle's origin and size to whole pixels
func (r Rect) Round() Rect {
	return Rect{X: round(r.X), Y: round(r.Y), W: round(r.W), H: round(r.H)}
}

// IsEmpty reports whether the rectangle has no area
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

func round(v float32) float32 {
	return float32(math.Round(float64(v)))
}
