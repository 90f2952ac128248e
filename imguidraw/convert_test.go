package imguidraw

import (
	"math"
	"testing"

	"github.com/michaelquigley/faderkit/draw"
)

func TestPackColor(t *testing.T) {
	tests := []struct {
		c    draw.Color
		want uint32
	}{
		{draw.Black, 0xff000000},
		{draw.White, 0xffffffff},
		{draw.Color{R: 1, A: 1}, 0xff0000ff},
		{draw.Color{B: 1, A: 0.5}, 0x80ff0000},
		{draw.Transparent, 0},
	}
	for _, tt := range tests {
		if got := PackColor(tt.c); got != tt.want {
			t.Errorf("%+v: expected %#08x, got %#08x", tt.c, tt.want, got)
		}
	}
}

func TestArcSegments(t *testing.T) {
	if got := arcSegments(draw.Arc{Radius: 2, Start: 0, End: 1}); got != 4 {
		t.Errorf("expected the minimum of 4, got %d", got)
	}
	if got := arcSegments(draw.Arc{Radius: 40, Start: 0, End: math.Pi}); got != 32 {
		t.Errorf("expected 32, got %d", got)
	}
}

func TestArcEnds(t *testing.T) {
	ends := arcEnds(draw.Arc{Center: draw.Point{X: 10, Y: 10}, Radius: 5, Start: 0, End: math.Pi / 2})
	near := func(p, want draw.Point) bool {
		return math.Abs(float64(p.X-want.X)) < 1e-4 && math.Abs(float64(p.Y-want.Y)) < 1e-4
	}
	if !near(ends[0], draw.Point{X: 15, Y: 10}) {
		t.Errorf("expected the start at +x, got %+v", ends[0])
	}
	// screen y grows downward
	if !near(ends[1], draw.Point{X: 10, Y: 15}) {
		t.Errorf("expected the end below the center, got %+v", ends[1])
	}
}
