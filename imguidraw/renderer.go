// Package imguidraw draws faderkit primitives into dear imgui draw lists
package imguidraw

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/michaelquigley/faderkit/draw"
)

// ImageFunc draws a textured primitive; hosts own their texture ids
type ImageFunc func(dl *imgui.DrawList, img draw.Image)

// Renderer emits draw list commands for primitive trees
type Renderer struct {
	Image ImageFunc
}

// Draw appends every leaf of p to dl in order
func (r *Renderer) Draw(dl *imgui.DrawList, p draw.Primitive) {
	draw.Walk(p, func(leaf draw.Primitive) {
		r.leaf(dl, leaf)
	})
}

func (r *Renderer) leaf(dl *imgui.DrawList, p draw.Primitive) {
	switch v := p.(type) {
	case draw.Quad:
		if v.Bounds.IsEmpty() {
			return
		}
		lo, hi := vec(v.Bounds.Min()), vec(v.Bounds.Max())
		if v.Fill.A > 0 {
			dl.AddRectFilledV(lo, hi, PackColor(v.Fill), v.BorderRadius, imgui.DrawFlagsNone)
		}
		if v.BorderWidth > 0 && v.BorderColor.A > 0 {
			b := v.Bounds.Inset(v.BorderWidth / 2.0)
			dl.AddRectV(vec(b.Min()), vec(b.Max()), PackColor(v.BorderColor), max(v.BorderRadius-v.BorderWidth/2.0, 0), imgui.DrawFlagsNone, v.BorderWidth)
		}

	case draw.Line:
		if v.Width > 0 && v.Color.A > 0 {
			dl.AddLineV(vec(v.A), vec(v.B), PackColor(v.Color), v.Width)
		}

	case draw.Arc:
		if v.Width <= 0 || v.Color.A <= 0 {
			return
		}
		col := PackColor(v.Color)
		dl.PathClear()
		dl.PathArcToV(vec(v.Center), v.Radius, v.Start, v.End, arcSegments(v))
		dl.PathStrokeV(col, imgui.DrawFlagsNone, v.Width)
		if v.Cap == draw.CapRound {
			for _, end := range arcEnds(v) {
				dl.AddCircleFilledV(vec(end), v.Width/2.0, col, 0)
			}
		}

	case draw.Curve:
		if v.Width > 0 && v.Color.A > 0 {
			dl.AddBezierQuadraticV(vec(v.From), vec(v.Control), vec(v.To), PackColor(v.Color), v.Width, 0)
		}

	case draw.Text:
		size := imgui.CalcTextSize(v.Content)
		dl.AddTextVec2(vec(v.Origin(size.X, size.Y).Round()), PackColor(v.Color), v.Content)

	case draw.Image:
		if r.Image != nil {
			r.Image(dl, v)
		}
	}
}
