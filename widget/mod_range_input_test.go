package widget

import (
	"testing"

	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
)

func TestModRangeInput(t *testing.T) {
	in := NewModRangeInput(faderkit.NewParam(faderkit.NewNormal(0.75), faderkit.CenterNormal))
	bounds := draw.Rect{X: 2.4, Y: 3.6, W: 10.5, H: 10.5}

	q := quads(t, in.Render(Frame{Bounds: bounds, Cursor: &draw.Point{X: 5, Y: 5}}))
	if len(q) != 1 {
		t.Fatalf("expected a single dot, got %d quads", len(q))
	}
	expectRect(t, "dot", q[0].Bounds, draw.Rect{X: 2, Y: 3, W: 10, H: 10})
	if q[0].Fill != LightBackHover || q[0].BorderRadius != 5 {
		t.Errorf("expected a hovered circle, got %+v", q[0])
	}

	r := in.Range()
	if r.Start.Float32() != 0.5 || r.End.Float32() != 0.75 {
		t.Errorf("expected range 0.5..0.75, got %v..%v", r.Start, r.End)
	}

	in.Style = Uniform(ModRangeInputAppearance{})
	if _, ok := in.Render(Frame{Bounds: bounds}).(draw.None); !ok {
		t.Errorf("expected an invisible dot to draw nothing")
	}
}
