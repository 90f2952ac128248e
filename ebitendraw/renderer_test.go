package ebitendraw

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/michaelquigley/faderkit/draw"
)

func TestNRGBA(t *testing.T) {
	got := nrgba(draw.Color{R: 1, G: 0, B: 0, A: 0.5})
	if got != (color.NRGBA{R: 255, G: 0, B: 0, A: 128}) {
		t.Errorf("unexpected colour %+v", got)
	}
}

func TestTextOrigin(t *testing.T) {
	text := draw.Text{
		Bounds:  draw.Rect{X: 0, Y: 0, W: 80, H: 20},
		Content: "gain",
		HAlign:  draw.AlignCenter,
		VAlign:  draw.AlignMiddle,
	}
	if x, y := textOrigin(text); x != 28 || y != 2 {
		t.Errorf("expected (28, 2), got (%d, %d)", x, y)
	}
	text.Content = "±∞"
	if x, _ := textOrigin(text); x != 34 {
		t.Errorf("expected runes to be counted, got %d", x)
	}
}

func TestLineCap(t *testing.T) {
	if lineCap(draw.CapRound) != vector.LineCapRound || lineCap(draw.CapSquare) != vector.LineCapSquare || lineCap(draw.CapButt) != vector.LineCapButt {
		t.Errorf("unexpected line cap mapping")
	}
}

func TestRoundedRectFill(t *testing.T) {
	path := roundedRect(draw.Rect{X: 10, Y: 10, W: 20, H: 10}, 50)
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	if len(vs) == 0 || len(is) == 0 {
		t.Fatalf("expected triangles for a rounded rect")
	}
	for _, v := range vs {
		if v.DstX < 10-0.01 || v.DstX > 30+0.01 || v.DstY < 10-0.01 || v.DstY > 20+0.01 {
			t.Fatalf("vertex (%v, %v) outside the rect", v.DstX, v.DstY)
		}
	}

	tint(vs, draw.Color{R: 0.25, G: 0.5, B: 0.75, A: 1})
	for _, v := range vs {
		if v != (ebiten.Vertex{DstX: v.DstX, DstY: v.DstY, SrcX: 1, SrcY: 1, ColorR: 0.25, ColorG: 0.5, ColorB: 0.75, ColorA: 1}) {
			t.Fatalf("unexpected tinted vertex %+v", v)
		}
	}
}

func TestWindowSize(t *testing.T) {
	if w, h := windowSize(draw.Point{X: 159.2, Y: 0}); w != 160 || h != 1 {
		t.Errorf("expected (160, 1), got (%d, %d)", w, h)
	}
}
