package marks

import (
	"math"
	"testing"

	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= 1e-4
}

var testColor = draw.RGB(1, 0, 0)

func lineStyle() TickStyle {
	return TickStyle{Tier1: LineShape(4, 2, testColor), Tier2: LineShape(3, 2, testColor), Tier3: LineShape(2, 1, testColor)}
}

func quadBounds(t *testing.T, p draw.Primitive) []draw.Rect {
	t.Helper()
	var out []draw.Rect
	draw.Walk(p, func(leaf draw.Primitive) {
		q, ok := leaf.(draw.Quad)
		if !ok {
			t.Fatalf("expected quads, got %T", leaf)
		}
		out = append(out, q.Bounds)
	})
	return out
}

func expectRects(t *testing.T, name string, got, expected []draw.Rect) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("%v: expected %v, got %v", name, expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("%v[%d]: expected %v, got %v", name, i, expected[i], got[i])
		}
	}
}

func TestHorizontalTickPlacements(t *testing.T) {
	bounds := draw.Rect{X: 10, Y: 20, W: 100, H: 30}
	group := CenterTicks(TierOne)

	tests := []struct {
		name      string
		placement TickPlacement
		expected  []draw.Rect
	}{
		{"left or top inside", LeftOrTop(true, faderkit.ZeroOffset), []draw.Rect{{59, 20, 2, 4}}},
		{"left or top outside", LeftOrTop(false, faderkit.ZeroOffset), []draw.Rect{{59, 16, 2, 4}}},
		{"right or bottom inside", RightOrBottom(true, faderkit.ZeroOffset), []draw.Rect{{59, 46, 2, 4}}},
		{"right or bottom outside", RightOrBottom(false, faderkit.ZeroOffset), []draw.Rect{{59, 50, 2, 4}}},
		{"both sides inside", BothSides(true, faderkit.ZeroOffset), []draw.Rect{{59, 20, 2, 4}, {59, 46, 2, 4}}},
		{"both sides outside", BothSides(false, faderkit.ZeroOffset), []draw.Rect{{59, 16, 2, 4}, {59, 50, 2, 4}}},
		{"both sides offset", BothSides(true, faderkit.Offset{X: 5, Y: -5}), []draw.Rect{{64, 15, 2, 4}, {64, 41, 2, 4}}},
		{"center", Center(false, faderkit.ZeroOffset), []draw.Rect{{59, 33, 2, 4}}},
		{"center fill", Center(true, faderkit.ZeroOffset), []draw.Rect{{59, 24, 2, 22}}},
		{"center split", CenterSplit(false, 6, faderkit.ZeroOffset), []draw.Rect{{59, 28, 2, 4}, {59, 38, 2, 4}}},
		{"center split fill", CenterSplit(true, 6, faderkit.ZeroOffset), []draw.Rect{{59, 20, 2, 12}, {59, 38, 2, 12}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := HorizontalTicks(bounds, group, lineStyle(), tt.placement, false)
			expectRects(t, tt.name, quadBounds(t, p), tt.expected)
		})
	}
}

func TestHorizontalTicksInverse(t *testing.T) {
	bounds := draw.Rect{X: 0, Y: 0, W: 100, H: 10}
	group := NewTickGroup(TickMark{faderkit.NewNormal(0.25), TierOne})

	normal := quadBounds(t, HorizontalTicks(bounds, group, lineStyle(), LeftOrTop(true, faderkit.ZeroOffset), false))
	inverse := quadBounds(t, HorizontalTicks(bounds, group, lineStyle(), LeftOrTop(true, faderkit.ZeroOffset), true))
	expectRects(t, "normal", normal, []draw.Rect{{24, 0, 2, 4}})
	expectRects(t, "inverse", inverse, []draw.Rect{{74, 0, 2, 4}})
}

func TestVerticalTicksPutMaxAtTop(t *testing.T) {
	bounds := draw.Rect{X: 10, Y: 20, W: 100, H: 30}
	group := MinMaxTicks(TierOne)

	got := quadBounds(t, VerticalTicks(bounds, group, lineStyle(), LeftOrTop(true, faderkit.ZeroOffset), false))
	expectRects(t, "default", got, []draw.Rect{{10, 49, 4, 2}, {10, 19, 4, 2}})

	got = quadBounds(t, VerticalTicks(bounds, group, lineStyle(), LeftOrTop(true, faderkit.ZeroOffset), true))
	expectRects(t, "inverse", got, []draw.Rect{{10, 19, 4, 2}, {10, 49, 4, 2}})

	got = quadBounds(t, VerticalTicks(bounds, group, lineStyle(), RightOrBottom(false, faderkit.ZeroOffset), false))
	expectRects(t, "right outside", got, []draw.Rect{{110, 49, 4, 2}, {110, 19, 4, 2}})
}

func TestTickTierOrder(t *testing.T) {
	bounds := draw.Rect{X: 0, Y: 0, W: 100, H: 10}
	group := NewTickGroup(
		TickMark{faderkit.NewNormal(0.3), TierThree},
		TickMark{faderkit.NewNormal(0.2), TierTwo},
		TickMark{faderkit.NewNormal(0.1), TierOne},
	)
	got := quadBounds(t, HorizontalTicks(bounds, group, lineStyle(), LeftOrTop(true, faderkit.ZeroOffset), false))
	expectRects(t, "tiers", got, []draw.Rect{{9, 0, 2, 4}, {19, 0, 2, 3}, {30, 0, 1, 2}})
}

func TestTicksRoundToWholePixels(t *testing.T) {
	bounds := draw.Rect{X: 0.4, Y: 0.6, W: 33, H: 10}
	group := NewTickGroup(TickMark{faderkit.NewNormal(1.0 / 3.0), TierOne})
	got := quadBounds(t, HorizontalTicks(bounds, group, lineStyle(), LeftOrTop(true, faderkit.ZeroOffset), false))
	if len(got) != 1 {
		t.Fatalf("expected one mark")
	}
	if got[0].X != float32(math.Round(float64(got[0].X))) || got[0].Y != float32(math.Round(float64(got[0].Y))) {
		t.Errorf("expected whole pixel origin, got %v", got[0])
	}
}

func TestZeroSizedTicksEmitNothing(t *testing.T) {
	bounds := draw.Rect{X: 0, Y: 0, W: 100, H: 10}
	group := SubdividedTicks(3, 1, 1, TierOne)
	style := TickStyle{Tier1: LineShape(4, 0, testColor), Tier2: Shape{}, Tier3: CircleShape(0, testColor)}

	if n := draw.Count(HorizontalTicks(bounds, group, style, BothSides(false, faderkit.ZeroOffset), false)); n != 0 {
		t.Errorf("expected no primitives, got %d", n)
	}
	if n := draw.Count(HorizontalTicks(bounds, nil, lineStyle(), BothSides(false, faderkit.ZeroOffset), false)); n != 0 {
		t.Errorf("expected no primitives for a nil group, got %d", n)
	}
}

func TestCircleTicks(t *testing.T) {
	bounds := draw.Rect{X: 10, Y: 20, W: 100, H: 30}
	style := TickStyle{Tier1: CircleShape(6, testColor)}
	p := HorizontalTicks(bounds, CenterTicks(TierOne), style, LeftOrTop(true, faderkit.ZeroOffset), false)

	var quads []draw.Quad
	draw.Walk(p, func(leaf draw.Primitive) { quads = append(quads, leaf.(draw.Quad)) })
	if len(quads) != 1 {
		t.Fatalf("expected one circle")
	}
	if quads[0].Bounds != (draw.Rect{X: 57, Y: 20, W: 6, H: 6}) || quads[0].BorderRadius != 3 {
		t.Errorf("unexpected circle %+v", quads[0])
	}
}

func textBounds(t *testing.T, p draw.Primitive) []draw.Text {
	t.Helper()
	var out []draw.Text
	draw.Walk(p, func(leaf draw.Primitive) {
		text, ok := leaf.(draw.Text)
		if !ok {
			t.Fatalf("expected text, got %T", leaf)
		}
		out = append(out, text)
	})
	return out
}

func TestHorizontalTextPlacements(t *testing.T) {
	bounds := draw.Rect{X: 0, Y: 0, W: 100, H: 20}
	group := CenterText("0")

	tests := []struct {
		name      string
		placement TextPlacement
		expected  draw.Rect
		valign    draw.VAlign
	}{
		{"left or top outside", TextLeftOrTop(false, faderkit.ZeroOffset), draw.Rect{X: 35, Y: -14, W: 30, H: 14}, draw.AlignBottom},
		{"left or top inside", TextLeftOrTop(true, faderkit.ZeroOffset), draw.Rect{X: 35, Y: 0, W: 30, H: 14}, draw.AlignTop},
		{"right or bottom outside", TextRightOrBottom(false, faderkit.ZeroOffset), draw.Rect{X: 35, Y: 20, W: 30, H: 14}, draw.AlignTop},
		{"right or bottom inside", TextRightOrBottom(true, faderkit.ZeroOffset), draw.Rect{X: 35, Y: 6, W: 30, H: 14}, draw.AlignBottom},
		{"center", TextCenter(AlignCenter, faderkit.ZeroOffset), draw.Rect{X: 35, Y: 3, W: 30, H: 14}, draw.AlignMiddle},
		{"center start", TextCenter(AlignStart, faderkit.ZeroOffset), draw.Rect{X: 35, Y: 10, W: 30, H: 14}, draw.AlignTop},
		{"offset", TextLeftOrTop(false, faderkit.Offset{X: 0, Y: -2}), draw.Rect{X: 35, Y: -16, W: 30, H: 14}, draw.AlignBottom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			texts := textBounds(t, HorizontalTexts(bounds, group, DefaultTextStyle(), tt.placement, false))
			if len(texts) != 1 {
				t.Fatalf("expected one label, got %d", len(texts))
			}
			if texts[0].Bounds != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, texts[0].Bounds)
			}
			if texts[0].VAlign != tt.valign || texts[0].HAlign != draw.AlignCenter {
				t.Errorf("unexpected alignment %v %v", texts[0].HAlign, texts[0].VAlign)
			}
			if texts[0].Content != "0" || texts[0].Size != 12 {
				t.Errorf("unexpected text %+v", texts[0])
			}
		})
	}

	both := textBounds(t, HorizontalTexts(bounds, group, DefaultTextStyle(), TextBothSides(true, faderkit.ZeroOffset), false))
	if len(both) != 2 {
		t.Errorf("expected two labels per mark for both sides, got %d", len(both))
	}
}

func TestVerticalTexts(t *testing.T) {
	bounds := draw.Rect{X: 0, Y: 0, W: 20, H: 100}
	texts := textBounds(t, VerticalTexts(bounds, MinMaxText("min", "max"), DefaultTextStyle(), TextLeftOrTop(false, faderkit.ZeroOffset), false))
	if len(texts) != 2 {
		t.Fatalf("expected two labels, got %d", len(texts))
	}
	if texts[0].Bounds != (draw.Rect{X: -30, Y: 93, W: 30, H: 14}) || texts[0].HAlign != draw.AlignRight {
		t.Errorf("unexpected min label %+v", texts[0])
	}
	if texts[1].Bounds != (draw.Rect{X: -30, Y: -7, W: 30, H: 14}) {
		t.Errorf("unexpected max label %+v", texts[1])
	}

	texts = textBounds(t, VerticalTexts(bounds, MinMaxText("min", "max"), DefaultTextStyle(), TextRightOrBottom(false, faderkit.ZeroOffset), true))
	if texts[0].Bounds != (draw.Rect{X: 20, Y: -7, W: 30, H: 14}) || texts[0].HAlign != draw.AlignLeft {
		t.Errorf("unexpected inverse min label %+v", texts[0])
	}
}
