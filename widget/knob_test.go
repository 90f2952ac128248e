package widget

import (
	"math"
	"testing"

	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
	"github.com/michaelquigley/faderkit/marks"
)

func TestSquareBounds(t *testing.T) {
	tests := []struct {
		bounds   draw.Rect
		expected draw.Rect
	}{
		{draw.Rect{X: 0, Y: 0, W: 40, H: 40}, draw.Rect{X: 0, Y: 0, W: 40, H: 40}},
		{draw.Rect{X: 0, Y: 0, W: 60, H: 40}, draw.Rect{X: 10, Y: 0, W: 40, H: 40}},
		{draw.Rect{X: 5, Y: 5, W: 40, H: 50}, draw.Rect{X: 5, Y: 10, W: 40, H: 40}},
	}
	for _, test := range tests {
		if got := squareBounds(test.bounds); got != test.expected {
			t.Errorf("%v: expected %v, got %v", test.bounds, test.expected, got)
		}
	}
}

func TestKnobCenterNotchPointsUp(t *testing.T) {
	k := NewKnob(param(0.5))
	q := quads(t, k.Render(Frame{Bounds: draw.Rect{W: 40, H: 40}}))
	if len(q) != 2 {
		t.Fatalf("expected back and notch, got %d quads", len(q))
	}
	expectRect(t, "back", q[0].Bounds, draw.Rect{W: 40, H: 40})
	if q[0].BorderRadius != 20 {
		t.Errorf("expected a round back, got radius %v", q[0].BorderRadius)
	}

	// notch diameter 0.17 and offset 0.15 of the 40 pixel knob
	notch := q[1].Bounds.Center()
	if !near(notch.X, 20) || !near(notch.Y, 6) {
		t.Errorf("expected notch centered at (20, 6), got %v", notch)
	}
	if !near(q[1].Bounds.W, 6.8) {
		t.Errorf("expected notch diameter 6.8, got %v", q[1].Bounds.W)
	}
}

func TestKnobLineNotch(t *testing.T) {
	k := NewKnob(param(0.0))
	k.Style.Appearance = Uniform[KnobAppearance](ClassicLineKnob{
		Color: LightBackColor,
		Notch: LineNotch{Color: BorderColor, Width: Fixed(2), Length: Fixed(8), Offset: Fixed(2)},
	})
	var line draw.Line
	for _, leaf := range leaves(k.Render(Frame{Bounds: draw.Rect{W: 40, H: 40}})) {
		if l, ok := leaf.(draw.Line); ok {
			line = l
		}
	}
	// 0.0 sits 30 degrees clockwise from straight down, towards the left
	s, c := math.Sincos(30.0 * math.Pi / 180.0)
	outer := draw.Point{X: 20 - float32(s)*18, Y: 20 + float32(c)*18}
	if !near(line.A.X, outer.X) || !near(line.A.Y, outer.Y) {
		t.Errorf("expected notch to start at %v, got %v", outer, line.A)
	}
	if line.Width != 2 {
		t.Errorf("expected width 2, got %v", line.Width)
	}
}

func TestArcKnob(t *testing.T) {
	k := NewKnob(param(0.5))
	k.Style.Appearance = Uniform[KnobAppearance](ArcKnob{
		Width:       Fixed(4),
		EmptyColor:  BorderColor,
		FilledColor: ModRangeFilled,
	})
	var arcs []draw.Arc
	for _, leaf := range leaves(k.Render(Frame{Bounds: draw.Rect{W: 40, H: 40}})) {
		if a, ok := leaf.(draw.Arc); ok {
			arcs = append(arcs, a)
		}
	}
	if len(arcs) != 2 {
		t.Fatalf("expected empty and filled arcs, got %d", len(arcs))
	}

	start := float32(120.0 * math.Pi / 180.0)
	empty, filled := arcs[0], arcs[1]
	if !near(empty.Radius, 18) || !near(empty.Start, start) || !near(empty.End-empty.Start, float32(300.0*math.Pi/180.0)) {
		t.Errorf("unexpected empty arc %+v", empty)
	}
	if !near(filled.Start, start) || !near(filled.End-filled.Start, float32(150.0*math.Pi/180.0)) {
		t.Errorf("unexpected filled arc %+v", filled)
	}
	if filled.Color != ModRangeFilled {
		t.Errorf("expected filled colour, got %v", filled.Color)
	}
}

func TestArcBipolarKnob(t *testing.T) {
	app := ArcBipolarKnob{
		Width:            Fixed(4),
		EmptyColor:       BorderColor,
		LeftFilledColor:  ModRangeFilledInv,
		RightFilledColor: ModRangeFilled,
	}
	tests := []struct {
		value    float32
		arcs     int
		expected draw.Color
	}{
		{0.25, 2, ModRangeFilledInv},
		{0.5, 1, BorderColor},
		{0.75, 2, ModRangeFilled},
	}
	for _, test := range tests {
		k := NewKnob(param(test.value))
		k.Style.Appearance = Uniform[KnobAppearance](app)
		var arcs []draw.Arc
		for _, leaf := range leaves(k.Render(Frame{Bounds: draw.Rect{W: 40, H: 40}})) {
			if a, ok := leaf.(draw.Arc); ok {
				arcs = append(arcs, a)
			}
		}
		if len(arcs) != test.arcs {
			t.Fatalf("%v: expected %d arcs, got %d", test.value, test.arcs, len(arcs))
		}
		if got := arcs[len(arcs)-1].Color; got != test.expected {
			t.Errorf("%v: expected %v, got %v", test.value, test.expected, got)
		}
	}
}

func TestKnobModRangeArc(t *testing.T) {
	k := NewKnob(param(0.5))
	k.Style.ModRange = DefaultModRangeArc()
	mod := faderkit.NewModulationRange(faderkit.NewNormal(0.5), faderkit.NewNormal(0.25))
	k.ModRange = &mod

	var arcs []draw.Arc
	for _, leaf := range leaves(k.Render(Frame{Bounds: draw.Rect{W: 40, H: 40}})) {
		if a, ok := leaf.(draw.Arc); ok {
			arcs = append(arcs, a)
		}
	}
	if len(arcs) != 2 {
		t.Fatalf("expected empty and filled mod arcs, got %d", len(arcs))
	}
	filled := arcs[1]
	if filled.Color != ModRangeFilledInv {
		t.Errorf("expected inverse colour for a falling range, got %v", filled.Color)
	}
	if !near(filled.Radius, 20+1.5+1.5) {
		t.Errorf("expected radius 23, got %v", filled.Radius)
	}
	if !near(filled.End-filled.Start, float32(75.0*math.Pi/180.0)) {
		t.Errorf("expected a quarter of the sweep, got %v", filled.End-filled.Start)
	}
}

func TestKnobRadialMarks(t *testing.T) {
	k := NewKnob(param(0.5))
	k.Marks = Marks{Ticks: marks.MinMaxTicks(marks.TierOne)}
	bounds := draw.Rect{W: 40, H: 40}
	k.Render(Frame{Bounds: bounds})
	k.Render(Frame{Bounds: bounds, Cursor: &draw.Point{X: 10, Y: 10}})
	if k.Builds() != 1 {
		t.Errorf("expected ticks built once, got %d", k.Builds())
	}
}
