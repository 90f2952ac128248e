package faderkit

import (
	"math"
	"testing"
)

const tolerance = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tolerance
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%v: expected a panic", name)
		}
	}()
	fn()
}

func TestFloatRange(t *testing.T) {
	r := NewFloatRange(-60.0, 12.0)
	tests := []struct {
		name     string
		value    float32
		expected float32
	}{
		{"Min", -60.0, 0.0},
		{"Max", 12.0, 1.0},
		{"Half", -24.0, 0.5},
		{"Below min", -100.0, 0.0},
		{"Above max", 40.0, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if n := r.ToNormal(tt.value); !near(n.Float32(), tt.expected) {
				t.Errorf("ToNormal(%v) = %v, want %v", tt.value, n, tt.expected)
			}
		})
	}
}

func TestFloatRangeRoundTrip(t *testing.T) {
	r := NewFloatRange(-3.0, 7.0)
	for v := float32(-5.0); v <= 9.0; v += 0.25 {
		expected := clamp(v, -3.0, 7.0)
		got := r.ToValue(r.ToNormal(v))
		if math.Abs(float64(got-expected)) > 1e-6*10 {
			t.Errorf("round trip of %v: got %v, want %v", v, got, expected)
		}
	}
}

func TestFloatRangeDefaults(t *testing.T) {
	if DefaultFloatRange().Min() != 0 || DefaultFloatRange().Max() != 1 {
		t.Errorf("unexpected default float range")
	}
	if !BipolarFloatRange().ToNormal(0).Equal(CenterNormal) {
		t.Errorf("expected 0.0 at the center of the bipolar range")
	}
	p := BipolarFloatRange().CreateParamDefault()
	if !p.Normal.Equal(CenterNormal) || !p.Default.Equal(CenterNormal) {
		t.Errorf("expected default param at center, got %+v", p)
	}
}

func TestRangeConstructionPanics(t *testing.T) {
	expectPanic(t, "float equal", func() { NewFloatRange(1, 1) })
	expectPanic(t, "float inverted", func() { NewFloatRange(2, 1) })
	expectPanic(t, "int equal", func() { NewIntRange(3, 3) })
	expectPanic(t, "log db positive min", func() { NewLogDBRange(1, 12, CenterNormal) })
	expectPanic(t, "log db negative max", func() { NewLogDBRange(-12, -1, CenterNormal) })
	expectPanic(t, "log db empty", func() { NewLogDBRange(0, 0, CenterNormal) })
	expectPanic(t, "freq inverted", func() { NewFreqRange(100, 50) })
	expectPanic(t, "freq clamped empty", func() { NewFreqRange(30000, 40000) })
}

func TestIntRangeSnap(t *testing.T) {
	r := NewIntRange(0, 5)
	if v := r.ToValue(CenterNormal); v != 3 {
		t.Errorf("ToValue(0.5) = %v, want 3", v)
	}
	snapped := r.SnapNormal(CenterNormal)
	if !near(snapped.Float32(), 0.6) {
		t.Errorf("SnapNormal(0.5) = %v, want 0.6", snapped)
	}
	if !r.SnapNormal(snapped).Equal(snapped) {
		t.Errorf("SnapNormal is not idempotent")
	}
}

func TestIntRangeRoundTrip(t *testing.T) {
	r := NewIntRange(-7, 13)
	for i := -7; i <= 13; i++ {
		if got := r.ToValue(r.ToNormal(i)); got != i {
			t.Errorf("round trip of %d: got %d", i, got)
		}
	}
	if r.ToValue(r.ToNormal(-50)) != -7 || r.ToValue(r.ToNormal(50)) != 13 {
		t.Errorf("expected out of range values to clamp")
	}
	if r.Steps() != 20 {
		t.Errorf("expected 20 steps, got %d", r.Steps())
	}
}

func TestLogDBRangeCentered(t *testing.T) {
	r := DefaultLogDBRange()

	tests := []struct {
		name     string
		value    float32
		expected float32
	}{
		{"Zero", 0.0, 0.5},
		{"Min", -12.0, 0.0},
		{"Max", 12.0, 1.0},
		{"Minus three", -3.0, 0.25},
		{"Plus three", 3.0, 0.75},
		{"Below min", -40.0, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if n := r.ToNormal(tt.value); !near(n.Float32(), tt.expected) {
				t.Errorf("ToNormal(%v) = %v, want %v", tt.value, n, tt.expected)
			}
		})
	}

	if v := r.ToValue(NewNormal(0.75)); !near(v, 3.0) {
		t.Errorf("ToValue(0.75) = %v, want 3.0", v)
	}
	if v := r.ToValue(CenterNormal); v != 0.0 {
		t.Errorf("ToValue(0.5) = %v, want 0.0", v)
	}
	if v := r.ToValue(MinNormal); !near(v, -12.0) {
		t.Errorf("ToValue(0.0) = %v, want -12.0", v)
	}
	if v := r.ToValue(MaxNormal); !near(v, 12.0) {
		t.Errorf("ToValue(1.0) = %v, want 12.0", v)
	}
}

func TestLogDBRangeMonotonic(t *testing.T) {
	r := NewLogDBRange(-60.0, 6.0, NewNormal(0.8))
	previous := r.ToNormal(-60.0)
	for v := float32(-59.5); v <= 6.0; v += 0.5 {
		n := r.ToNormal(v)
		if !previous.Less(n) {
			t.Fatalf("ToNormal not increasing at %v: %v then %v", v, previous, n)
		}
		previous = n
	}

	previousValue := r.ToValue(MinNormal)
	for i := 1; i <= 100; i++ {
		v := r.ToValue(NewNormal(float32(i) / 100.0))
		if v < previousValue {
			t.Fatalf("ToValue decreasing at %v: %v then %v", i, previousValue, v)
		}
		previousValue = v
	}
}

func TestLogDBRangeRoundTrip(t *testing.T) {
	r := NewLogDBRange(-24.0, 12.0, NewNormal(0.6))
	for v := float32(-24.0); v <= 12.0; v += 1.5 {
		if got := r.ToValue(r.ToNormal(v)); math.Abs(float64(got-v)) > 1e-3 {
			t.Errorf("round trip of %v: got %v", v, got)
		}
	}
}

func TestLogDBRangeOneSided(t *testing.T) {
	negative := NewLogDBRange(-12.0, 0.0, MaxNormal)
	if !negative.ToNormal(6.0).Equal(MaxNormal) {
		t.Errorf("expected positive values to clamp to the pivot")
	}
	if v := negative.ToValue(CenterNormal); !near(v, -3.0) {
		t.Errorf("ToValue(0.5) = %v, want -3.0", v)
	}
	if v := negative.ToValue(MaxNormal); v != 0.0 {
		t.Errorf("ToValue(1.0) = %v, want 0.0", v)
	}

	positive := NewLogDBRange(0.0, 12.0, MinNormal)
	if !positive.ToNormal(-6.0).Equal(MinNormal) {
		t.Errorf("expected negative values to clamp to the pivot")
	}
	if v := positive.ToValue(CenterNormal); !near(v, 3.0) {
		t.Errorf("ToValue(0.5) = %v, want 3.0", v)
	}
}

func TestLogDBRangeSnapToDefault(t *testing.T) {
	plain := DefaultLogDBRange()
	snapping := plain.WithSnapToDefault(0.0, 0.001)

	n := NewNormal(0.5001)
	if plain.ToValue(n) == 0.0 {
		t.Errorf("expected no snapping by default")
	}
	if snapping.ToValue(n) != 0.0 {
		t.Errorf("expected %v to snap to 0 dB, got %v", n, snapping.ToValue(n))
	}
	if v := snapping.ToValue(NewNormal(0.75)); !near(v, 3.0) {
		t.Errorf("expected values outside the window to be untouched, got %v", v)
	}
}

func TestFreqRangeOctaves(t *testing.T) {
	r := NewFreqRange(20.0, 20480.0)

	if n := r.ToNormal(20.0); n.Float32() != 0.0 {
		t.Errorf("ToNormal(20) = %v, want 0", n)
	}
	if n := r.ToNormal(40.0); !near(n.Float32(), 0.1) {
		t.Errorf("ToNormal(40) = %v, want 0.1", n)
	}
	if n := r.ToNormal(20480.0); !near(n.Float32(), 1.0) {
		t.Errorf("ToNormal(20480) = %v, want 1", n)
	}
	if v := r.ToValue(CenterNormal); !near(v/640.0, 1.0) {
		t.Errorf("ToValue(0.5) = %v, want 640", v)
	}

	for f := float32(20.0); f < 20480.0; f *= 2.0 {
		step := r.ToNormal(f*2.0).Float32() - r.ToNormal(f).Float32()
		if !near(step, 0.1) {
			t.Errorf("octave above %v spans %v, want 0.1", f, step)
		}
	}
}

func TestFreqRangeEndpoints(t *testing.T) {
	tests := []struct {
		name string
		min  float32
		max  float32
	}{
		{"Low", 20.0, 200.0},
		{"Mid", 100.0, 5000.0},
		{"Default", 20.0, 20000.0},
		{"High", 1000.0, 20480.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewFreqRange(tt.min, tt.max)
			if n := r.ToNormal(tt.min); !near(n.Float32(), 0.0) {
				t.Errorf("ToNormal(min) = %v", n)
			}
			if n := r.ToNormal(tt.max); !near(n.Float32(), 1.0) {
				t.Errorf("ToNormal(max) = %v", n)
			}
			previous := r.ToNormal(tt.min)
			for i := 1; i <= 50; i++ {
				f := tt.min + (tt.max-tt.min)*float32(i)/50.0
				n := r.ToNormal(f)
				if n.Less(previous) {
					t.Fatalf("not monotonic at %v", f)
				}
				previous = n
			}
		})
	}
}

func TestFreqRangeClampsEndpoints(t *testing.T) {
	r := NewFreqRange(5.0, 30000.0)
	if r.Min() != MinFrequency || r.Max() != MaxFrequency {
		t.Errorf("expected endpoints clamped to 20..20480, got %v..%v", r.Min(), r.Max())
	}
	p := DefaultFreqRange().CreateParamDefault()
	if !near(p.Normal.Float32(), 1.0) || !p.IsDefault() {
		t.Errorf("expected the default freq param at max, got %+v", p)
	}
}
