package faderkit

import (
	"math"
	"testing"
)

func TestDefaultKnobAngleRange(t *testing.T) {
	r := DefaultKnobAngleRange()
	if !near(r.Min(), 0.5235988) || !near(r.Max(), 5.759587) {
		t.Errorf("unexpected default range %v..%v", r.Min(), r.Max())
	}

	if a := r.ValueAngle(CenterNormal); !near(a, math.Pi) {
		t.Errorf("ValueAngle(0.5) = %v, want π", a)
	}
	x, y := r.Direction(CenterNormal)
	if !near(x, 0) || !near(y, -1) {
		t.Errorf("Direction(0.5) = (%v, %v), want straight up", x, y)
	}

	// the minimum sits at the lower left of the knob
	x, y = r.Direction(MinNormal)
	if !(x < 0 && y > 0) {
		t.Errorf("Direction(0.0) = (%v, %v), want lower left", x, y)
	}
	x, y = r.Direction(MaxNormal)
	if !(x > 0 && y > 0) {
		t.Errorf("Direction(1.0) = (%v, %v), want lower right", x, y)
	}
}

func TestKnobAngleRangeFromDeg(t *testing.T) {
	r := KnobAngleRangeFromDeg(30, 330)
	d := DefaultKnobAngleRange()
	if !near(r.Min(), d.Min()) || !near(r.Max(), d.Max()) {
		t.Errorf("expected FromDeg(30, 330) to equal the default")
	}

	r = KnobAngleRangeFromDeg(-10, 400)
	if r.Min() != 0 || r.Max() != 0 {
		t.Errorf("expected out of range angles to be set to 0, got %v..%v", r.Min(), r.Max())
	}
	if r.Span() != 0 {
		t.Errorf("expected an empty span")
	}
}

func TestScreenAngle(t *testing.T) {
	tests := []struct {
		name     string
		angle    float32
		expected float32
	}{
		{"Down", 0, math.Pi / 2},
		{"Left", math.Pi / 2, math.Pi},
		{"Up", math.Pi, 3 * math.Pi / 2},
		{"Lower right", 7 * math.Pi / 4, math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScreenAngle(tt.angle); !near(got, tt.expected) {
				t.Errorf("ScreenAngle(%v) = %v, want %v", tt.angle, got, tt.expected)
			}
			// the screen angle and the direction agree
			x, y := AngleDirection(tt.angle)
			s := float64(ScreenAngle(tt.angle))
			if !near(x, float32(math.Cos(s))) || !near(y, float32(math.Sin(s))) {
				t.Errorf("direction (%v, %v) disagrees with screen angle %v", x, y, s)
			}
		})
	}
}
