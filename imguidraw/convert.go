package imguidraw

import (
	"math"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/michaelquigley/faderkit/draw"
)

// PackColor packs c the way IM_COL32 does: alpha in the high byte, red in
// the low byte
func PackColor(c draw.Color) uint32 {
	r, g, b, a := c.RGBA8()
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

func vec(p draw.Point) imgui.Vec2 {
	return imgui.Vec2{X: p.X, Y: p.Y}
}

func point(v imgui.Vec2) draw.Point {
	return draw.Point{X: v.X, Y: v.Y}
}

// arcSegments is one segment per 4 pixels of arc length, at least 4
func arcSegments(a draw.Arc) int32 {
	length := float64(a.Radius) * float64(a.End-a.Start)
	return int32(max(math.Ceil(length/4.0), 4))
}

// arcEnds returns the start and end points of a
func arcEnds(a draw.Arc) [2]draw.Point {
	at := func(angle float32) draw.Point {
		s, c := math.Sincos(float64(angle))
		return draw.Point{X: a.Center.X + a.Radius*float32(c), Y: a.Center.Y + a.Radius*float32(s)}
	}
	return [2]draw.Point{at(a.Start), at(a.End)}
}
