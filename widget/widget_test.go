package widget

import (
	"math"
	"testing"

	"github.com/michaelquigley/faderkit/draw"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= 1e-3
}

func nearRect(a, b draw.Rect) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.W, b.W) && near(a.H, b.H)
}

func leaves(p draw.Primitive) []draw.Primitive {
	var out []draw.Primitive
	draw.Walk(p, func(leaf draw.Primitive) { out = append(out, leaf) })
	return out
}

func quads(t *testing.T, p draw.Primitive) []draw.Quad {
	t.Helper()
	var out []draw.Quad
	for _, leaf := range leaves(p) {
		q, ok := leaf.(draw.Quad)
		if !ok {
			t.Fatalf("expected quads, got %T", leaf)
		}
		out = append(out, q)
	}
	return out
}

func expectRect(t *testing.T, name string, got, expected draw.Rect) {
	t.Helper()
	if !nearRect(got, expected) {
		t.Errorf("%v: expected %v, got %v", name, expected, got)
	}
}

func TestFrameInteraction(t *testing.T) {
	bounds := draw.Rect{X: 10, Y: 10, W: 20, H: 20}
	tests := []struct {
		name     string
		frame    Frame
		expected Interaction
	}{
		{"outside", Frame{Bounds: bounds, Cursor: &draw.Point{X: 0, Y: 0}}, Active},
		{"no cursor", Frame{Bounds: draw.Rect{W: 20, H: 20}}, Active},
		{"inside", Frame{Bounds: bounds, Cursor: &draw.Point{X: 15, Y: 15}}, Hovered},
		{"edge", Frame{Bounds: bounds, Cursor: &draw.Point{X: 30, Y: 30}}, Hovered},
		{"dragging outside", Frame{Bounds: bounds, Cursor: &draw.Point{X: 0, Y: 0}, Dragging: true}, Dragging},
	}
	for _, test := range tests {
		if got := test.frame.Interaction(); got != test.expected {
			t.Errorf("%v: expected %v, got %v", test.name, test.expected, got)
		}
	}
}

func TestStyleSetSelect(t *testing.T) {
	set := StyleSet[string]{Active: "a", Hovered: "h", Dragging: "d"}
	bounds := draw.Rect{W: 10, H: 10}
	if got := set.Select(Frame{Bounds: bounds, Cursor: &draw.Point{X: 20, Y: 20}}); got != "a" {
		t.Errorf("expected active, got %v", got)
	}
	if got := set.Select(Frame{Bounds: bounds, Cursor: &draw.Point{X: 5, Y: 5}}); got != "h" {
		t.Errorf("expected hovered, got %v", got)
	}
	if got := set.Select(Frame{Bounds: bounds, Dragging: true}); got != "d" {
		t.Errorf("expected dragging, got %v", got)
	}

	uniform := Uniform(7)
	for _, i := range []Interaction{Active, Hovered, Dragging} {
		if uniform.For(i) != 7 {
			t.Errorf("uniform %v: expected 7, got %v", i, uniform.For(i))
		}
	}
}
