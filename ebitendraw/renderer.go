// Package ebitendraw draws faderkit primitives onto ebiten images and runs a
// scene board as an ebiten game
package ebitendraw

import (
	"image"
	"image/color"
	"log/slog"
	"math"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/michaelquigley/faderkit/draw"
)

// debug font cell
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// Renderer draws primitive trees; Textures resolves draw.Image names
type Renderer struct {
	Textures map[string]*ebiten.Image

	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewRenderer() *Renderer {
	return &Renderer{Textures: make(map[string]*ebiten.Image)}
}

// Draw renders every leaf of p onto dst in order
func (r *Renderer) Draw(dst *ebiten.Image, p draw.Primitive) {
	draw.Walk(p, func(leaf draw.Primitive) {
		r.leaf(dst, leaf)
	})
}

func (r *Renderer) leaf(dst *ebiten.Image, p draw.Primitive) {
	switch v := p.(type) {
	case draw.Quad:
		r.quad(dst, v)

	case draw.Line:
		if v.Width > 0 && v.Color.A > 0 {
			vector.StrokeLine(dst, v.A.X, v.A.Y, v.B.X, v.B.Y, v.Width, nrgba(v.Color), true)
		}

	case draw.Arc:
		var path vector.Path
		path.Arc(v.Center.X, v.Center.Y, v.Radius, v.Start, v.End, vector.Clockwise)
		r.stroke(dst, &path, v.Width, lineCap(v.Cap), v.Color)

	case draw.Curve:
		var path vector.Path
		path.MoveTo(v.From.X, v.From.Y)
		path.QuadTo(v.Control.X, v.Control.Y, v.To.X, v.To.Y)
		r.stroke(dst, &path, v.Width, vector.LineCapButt, v.Color)

	case draw.Text:
		x, y := textOrigin(v)
		ebitenutil.DebugPrintAt(dst, v.Content, x, y)

	case draw.Image:
		tex, found := r.Textures[v.Texture]
		if !found {
			slog.Debug("texture not registered", "texture", v.Texture)
			return
		}
		size := tex.Bounds().Size()
		if size.X == 0 || size.Y == 0 {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(v.Bounds.W)/float64(size.X), float64(v.Bounds.H)/float64(size.Y))
		op.GeoM.Translate(float64(v.Bounds.X), float64(v.Bounds.Y))
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(tex, op)
	}
}

func (r *Renderer) quad(dst *ebiten.Image, q draw.Quad) {
	b := q.Bounds
	if b.IsEmpty() {
		return
	}
	border := q.BorderWidth > 0 && q.BorderColor.A > 0
	half := q.BorderWidth / 2.0

	if q.BorderRadius <= 0 {
		if q.Fill.A > 0 {
			vector.DrawFilledRect(dst, b.X, b.Y, b.W, b.H, nrgba(q.Fill), false)
		}
		if border {
			vector.StrokeRect(dst, b.X+half, b.Y+half, b.W-q.BorderWidth, b.H-q.BorderWidth, q.BorderWidth, nrgba(q.BorderColor), false)
		}
		return
	}

	if q.Fill.A > 0 {
		r.fill(dst, roundedRect(b, q.BorderRadius), q.Fill)
	}
	if border {
		r.stroke(dst, roundedRect(b.Inset(half), max(q.BorderRadius-half, 0)), q.BorderWidth, vector.LineCapButt, q.BorderColor)
	}
}

func (r *Renderer) fill(dst *ebiten.Image, path *vector.Path, c draw.Color) {
	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	r.triangles(dst, c)
}

func (r *Renderer) stroke(dst *ebiten.Image, path *vector.Path, width float32, lineCap vector.LineCap, c draw.Color) {
	if width <= 0 || c.A <= 0 {
		return
	}
	op := &vector.StrokeOptions{Width: width, LineCap: lineCap, LineJoin: vector.LineJoinRound}
	r.vertices, r.indices = path.AppendVerticesAndIndicesForStroke(r.vertices[:0], r.indices[:0], op)
	r.triangles(dst, c)
}

func (r *Renderer) triangles(dst *ebiten.Image, c draw.Color) {
	if len(r.indices) == 0 {
		return
	}
	tint(r.vertices, c)
	dst.DrawTriangles(r.vertices, r.indices, r.whiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *Renderer) whiteImage() *ebiten.Image {
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return r.white
}

// tint points every vertex at the white texel and colours it
func tint(vertices []ebiten.Vertex, c draw.Color) {
	for i := range vertices {
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorR = c.R
		vertices[i].ColorG = c.G
		vertices[i].ColorB = c.B
		vertices[i].ColorA = c.A
	}
}

// roundedRect traces b clockwise with corners of radius, clamped to half the
// shorter side
func roundedRect(b draw.Rect, radius float32) *vector.Path {
	radius = min(radius, b.W/2.0, b.H/2.0)
	x0, y0, x1, y1 := b.X, b.Y, b.Right(), b.Bottom()
	const quarter = math.Pi / 2.0

	var p vector.Path
	p.MoveTo(x0+radius, y0)
	p.LineTo(x1-radius, y0)
	p.Arc(x1-radius, y0+radius, radius, -quarter, 0, vector.Clockwise)
	p.LineTo(x1, y1-radius)
	p.Arc(x1-radius, y1-radius, radius, 0, quarter, vector.Clockwise)
	p.LineTo(x0+radius, y1)
	p.Arc(x0+radius, y1-radius, radius, quarter, 2*quarter, vector.Clockwise)
	p.LineTo(x0, y0+radius)
	p.Arc(x0+radius, y0+radius, radius, 2*quarter, 3*quarter, vector.Clockwise)
	p.Close()
	return &p
}

func lineCap(c draw.LineCap) vector.LineCap {
	switch c {
	case draw.CapRound:
		return vector.LineCapRound
	case draw.CapSquare:
		return vector.LineCapSquare
	default:
		return vector.LineCapButt
	}
}

func nrgba(c draw.Color) color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// textOrigin aligns t using the debug font's fixed cell
func textOrigin(t draw.Text) (x, y int) {
	width := float32(glyphWidth * utf8.RuneCountInString(t.Content))
	o := t.Origin(width, glyphHeight).Round()
	return int(o.X), int(o.Y)
}
