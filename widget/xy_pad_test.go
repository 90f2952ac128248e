package widget

import (
	"testing"

	"github.com/michaelquigley/faderkit/draw"
)

func TestXYPadHandle(t *testing.T) {
	pad := NewXYPad(param(0.25), param(0.75))
	q := quads(t, pad.Render(Frame{Bounds: draw.Rect{X: 10, Y: 10, W: 100, H: 120}}))
	if len(q) != 6 {
		t.Fatalf("expected back, center lines, rails and handle, got %d quads", len(q))
	}
	expectRect(t, "back", q[0].Bounds, draw.Rect{X: 10, Y: 10, W: 100, H: 100})
	expectRect(t, "h rail", q[3].Bounds, draw.Rect{X: 10, Y: 34, W: 100, H: 2})
	expectRect(t, "v rail", q[4].Bounds, draw.Rect{X: 34, Y: 10, W: 2, H: 100})
	expectRect(t, "handle", q[5].Bounds, draw.Rect{X: 29.5, Y: 29.5, W: 11, H: 11})
}

func TestXYPadSquareHandle(t *testing.T) {
	pad := NewXYPad(param(1.0), param(0.0))
	app := DefaultXYPadAppearance()
	app.Handle = SquareHandle{Color: LightBackColor, Size: 10}
	app.RailWidth = 0
	app.CenterLineColor = draw.Transparent
	pad.Style = Uniform(app)

	q := quads(t, pad.Render(Frame{Bounds: draw.Rect{W: 100, H: 100}}))
	if len(q) != 2 {
		t.Fatalf("expected back and handle, got %d quads", len(q))
	}
	expectRect(t, "handle", q[1].Bounds, draw.Rect{X: 95, Y: 95, W: 10, H: 10})
}

func TestXYPadPointAt(t *testing.T) {
	pad := NewXYPad(param(0.0), param(0.0))
	f := Frame{Bounds: draw.Rect{X: 10, Y: 10, W: 100, H: 100}}
	if !pad.PointAt(f, draw.Point{X: 60, Y: 35}) {
		t.Fatalf("expected a change")
	}
	if !near(pad.X.Normal.Float32(), 0.5) || !near(pad.Y.Normal.Float32(), 0.75) {
		t.Errorf("expected (0.5, 0.75), got (%v, %v)", pad.X.Normal, pad.Y.Normal)
	}
	pad.PointAt(f, draw.Point{X: -100, Y: 500})
	if pad.X.Normal.Float32() != 0 || pad.Y.Normal.Float32() != 0 {
		t.Errorf("expected clamping to the corner, got (%v, %v)", pad.X.Normal, pad.Y.Normal)
	}
}
