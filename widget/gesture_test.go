package widget

import (
	"testing"

	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
)

func TestKnobGestureDrag(t *testing.T) {
	bounds := draw.Rect{W: 40, H: 200}
	p := param(0.5)
	g := KnobGesture()

	if g.DragVertical(&p, draw.Point{Y: 90}, bounds, false) {
		t.Fatalf("expected no change before grabbing")
	}
	g.Grab(&p, 100)
	if !g.Dragging() {
		t.Fatalf("expected dragging after grab")
	}
	if !g.DragVertical(&p, draw.Point{Y: 90}, bounds, false) {
		t.Fatalf("expected moving up to change the value")
	}
	if !near(p.Normal.Float32(), 0.5385) {
		t.Errorf("expected 0.5385, got %v", p.Normal)
	}

	g.DragVertical(&p, draw.Point{Y: 100}, bounds, true)
	if !near(p.Normal.Float32(), 0.5385-0.0385*0.02) {
		t.Errorf("expected fine adjustment with the modifier, got %v", p.Normal)
	}

	g.Release()
	if g.DragVertical(&p, draw.Point{Y: 0}, bounds, false) {
		t.Errorf("expected no change after release")
	}
}

func TestSliderGestureTracksPointer(t *testing.T) {
	p := param(0.5)
	g := SliderGesture()
	g.Grab(&p, 100)
	g.DragVertical(&p, draw.Point{Y: 0}, draw.Rect{W: 20, H: 200}, false)
	if !near(p.Normal.Float32(), 0.5+0.5*0.9575) {
		t.Errorf("expected %v, got %v", 0.5+0.5*0.9575, p.Normal)
	}

	g.Grab(&p, 50)
	g.DragHorizontal(&p, draw.Point{X: 250}, draw.Rect{W: 200, H: 20}, false)
	if p.Normal != faderkit.MaxNormal {
		t.Errorf("expected the value to clamp at 1.0, got %v", p.Normal)
	}
}

func TestGestureWheel(t *testing.T) {
	p := param(0.5)
	g := KnobGesture()
	if !g.Wheel(&p, 1, false) {
		t.Fatalf("expected the wheel to change the value")
	}
	if !near(p.Normal.Float32(), 0.51) {
		t.Errorf("expected 0.51, got %v", p.Normal)
	}
	g.Wheel(&p, -2, false)
	if !near(p.Normal.Float32(), 0.49) {
		t.Errorf("expected 0.49, got %v", p.Normal)
	}
	if g.Wheel(&p, 0, false) {
		t.Errorf("expected no change for zero lines")
	}
}

func TestGestureDoubleClick(t *testing.T) {
	p := faderkit.NewParam(faderkit.NewNormal(0.9), faderkit.NewNormal(0.25))
	g := KnobGesture()
	g.Grab(&p, 0)
	if !g.DoubleClick(&p) {
		t.Fatalf("expected reset to change the value")
	}
	if p.Normal.Float32() != 0.25 || g.Dragging() {
		t.Errorf("expected reset to default and drag ended, got %v", p.Normal)
	}
	if g.DoubleClick(&p) {
		t.Errorf("expected no change when already at default")
	}
}
