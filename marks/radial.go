package marks

import (
	"unicode/utf8"

	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
)

// angles closer to straight down than this are drawn unrotated
const rotationEpsilon = 0.001

// markAngle returns the angle of n, clockwise from straight down
func markAngle(startAngle, angleSpan float32, n faderkit.Normal, inverse bool) float32 {
	if inverse {
		return startAngle + n.ScaleInv(angleSpan)
	}
	return startAngle + n.Scale(angleSpan)
}

// radialDirection is the unit vector for angle; near zero the rotation is
// skipped so marks at the bottom stay exactly vertical
func radialDirection(angle float32) draw.Point {
	if angle > -rotationEpsilon && angle < rotationEpsilon {
		return draw.Point{X: 0, Y: 1}
	}
	return draw.Point{X: 0, Y: 1}.Rotate(draw.Point{}, angle)
}

func along(center, dir draw.Point, distance float32) draw.Point {
	return draw.Point{X: center.X + dir.X*distance, Y: center.Y + dir.Y*distance}
}

// RadialTicks lays out group around an arc of radius centered on center
//
// startAngle and angleSpan are radians clockwise from straight down. Marks sit
// just inside the radius when inside is set, otherwise just outside it
func RadialTicks(center draw.Point, radius, startAngle, angleSpan float32, inside bool, group *TickGroup, style TickStyle, inverse bool) draw.Primitive {
	if group.IsEmpty() {
		return draw.None{}
	}

	out := make([]draw.Primitive, 0, group.Len())
	for t := TierOne; t <= TierThree; t++ {
		positions := group.Tier(t)
		if len(positions) == 0 {
			continue
		}
		shape := style.Shape(t)

		switch shape.Kind {
		case ShapeLine:
			if shape.Width <= 0 || shape.Length <= 0 {
				continue
			}
			base := radius
			if inside {
				base = radius - shape.Length
			}
			for _, n := range positions {
				dir := radialDirection(markAngle(startAngle, angleSpan, n, inverse))
				out = append(out, draw.Line{
					A:     along(center, dir, base),
					B:     along(center, dir, base+shape.Length),
					Width: shape.Width,
					Color: shape.Color,
				})
			}

		case ShapeCircle:
			if shape.Diameter <= 0 {
				continue
			}
			r := radius + shape.Diameter/2.0
			if inside {
				r = radius - shape.Diameter/2.0
			}
			for _, n := range positions {
				dir := radialDirection(markAngle(startAngle, angleSpan, n, inverse))
				out = append(out, draw.Circle(along(center, dir, r), shape.Diameter, shape.Color))
			}
		}
	}
	return draw.Group{Children: out}
}

// RadialTexts places labels at radius around center. Labels left or right of
// the vertical axis are pushed outwards by (len-1)*hCharOffset so longer
// labels clear the arc
func RadialTexts(center draw.Point, radius, startAngle, angleSpan float32, group *TextGroup, style TextStyle, hCharOffset float32, inverse bool) draw.Primitive {
	if group.IsEmpty() || style.BoundsWidth <= 0 || style.BoundsHeight <= 0 {
		return draw.None{}
	}

	out := make([]draw.Primitive, 0, group.Len())
	for _, m := range group.Marks() {
		dir := radialDirection(markAngle(startAngle, angleSpan, m.Position, inverse))

		offsetX := dir.X * radius
		bias := float32(utf8.RuneCountInString(m.Label)-1) * hCharOffset
		if offsetX < -rotationEpsilon {
			offsetX -= bias
		} else if offsetX > rotationEpsilon {
			offsetX += bias
		}

		at := draw.Point{X: center.X + offsetX, Y: center.Y + dir.Y*radius}.Round()
		out = append(out, draw.Text{
			Bounds:  draw.RectFromCenter(at, style.BoundsWidth, style.BoundsHeight),
			Content: m.Label,
			Size:    style.Size,
			Font:    style.Font,
			Color:   style.Color,
			HAlign:  draw.AlignCenter,
			VAlign:  draw.AlignMiddle,
		})
	}
	return draw.Group{Children: out}
}
