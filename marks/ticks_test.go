package marks

import (
	"sort"
	"testing"

	"github.com/michaelquigley/faderkit"
)

func normals(values ...float32) []faderkit.Normal {
	out := make([]faderkit.Normal, 0, len(values))
	for _, v := range values {
		out = append(out, faderkit.NewNormal(v))
	}
	return out
}

func expectPositions(t *testing.T, name string, got, expected []faderkit.Normal) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("%v: expected %v, got %v", name, expected, got)
	}
	for i := range expected {
		if !got[i].Equal(expected[i]) {
			t.Errorf("%v[%d]: expected %v, got %v", name, i, expected[i], got[i])
		}
	}
}

func TestSubdividedTicksScenario(t *testing.T) {
	g := SubdividedTicks(3, 1, 0, TierTwo)

	expectPositions(t, "tier one", g.Tier(TierOne), normals(0.25, 0.5, 0.75))
	expectPositions(t, "tier two", g.Tier(TierTwo), normals(0.125, 0.375, 0.625, 0.875, 0.0, 1.0))
	if g.Tier(TierThree) != nil {
		t.Errorf("expected an empty tier three to report nil")
	}
	if g.Len() != 9 {
		t.Errorf("expected 9 marks, got %d", g.Len())
	}
}

func TestSubdividedTicksCounts(t *testing.T) {
	tests := []struct{ one, two, three int }{
		{3, 1, 0},
		{4, 3, 2},
		{1, 0, 3},
		{0, 2, 1},
		{9, 1, 1},
		{0, 0, 0},
	}
	for _, tt := range tests {
		g := SubdividedTicks(tt.one, tt.two, tt.three, NoSides)
		expected := tt.one + (tt.one+1)*tt.two + (tt.one+1)*(tt.two+1)*tt.three
		if g.Len() != expected {
			t.Errorf("%+v: expected %d marks, got %d", tt, expected, g.Len())
		}
		if len(g.Tier(TierOne)) != tt.one || len(g.Tier(TierTwo)) != (tt.one+1)*tt.two {
			t.Errorf("%+v: unexpected tier sizes", tt)
		}

		var all []float32
		for _, m := range g.Marks() {
			all = append(all, m.Position.Float32())
		}
		sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
		for i, v := range all {
			if !(v > 0 && v < 1) {
				t.Errorf("%+v: position %v outside (0, 1)", tt, v)
			}
			if i > 0 && !(v > all[i-1]) {
				t.Errorf("%+v: positions not strictly ascending at %v", tt, v)
			}
		}
	}
}

func TestEvenlySpacedTicks(t *testing.T) {
	expectPositions(t, "five", EvenlySpacedTicks(5, TierOne).Tier(TierOne), normals(0, 0.25, 0.5, 0.75, 1))
	expectPositions(t, "one", EvenlySpacedTicks(1, TierTwo).Tier(TierTwo), normals(0))
	if !EvenlySpacedTicks(0, TierOne).IsEmpty() {
		t.Errorf("expected an empty group")
	}

	g := EvenlySpacedTicks(11, TierThree)
	for k, n := range g.Tier(TierThree) {
		if !near(n.Float32(), float32(k)/10.0) {
			t.Errorf("mark %d at %v, want %v", k, n, float32(k)/10.0)
		}
	}
}

func TestPresetTicks(t *testing.T) {
	expectPositions(t, "center", CenterTicks(TierOne).Tier(TierOne), normals(0.5))
	expectPositions(t, "min max", MinMaxTicks(TierTwo).Tier(TierTwo), normals(0, 1))

	g := MinMaxAndCenterTicks(TierOne, TierThree)
	expectPositions(t, "outer", g.Tier(TierOne), normals(0, 1))
	expectPositions(t, "center", g.Tier(TierThree), normals(0.5))
	if g.Len() != 3 {
		t.Errorf("expected 3 marks, got %d", g.Len())
	}
}

func TestValueTicks(t *testing.T) {
	g := ValueTicks[float32](faderkit.DefaultLogDBRange(), TierOne, -12, 0, 12)
	expectPositions(t, "db", g.Tier(TierOne), normals(0, 0.5, 1))
}

func TestTickGroupHash(t *testing.T) {
	a := SubdividedTicks(4, 1, 1, TierOne)
	b := SubdividedTicks(4, 1, 1, TierOne)
	if a.Hash() != b.Hash() {
		t.Errorf("expected identical construction to hash identically")
	}
	if a.Hash() == SubdividedTicks(4, 1, 1, TierTwo).Hash() {
		t.Errorf("expected a different sides tier to change the hash")
	}
	if CenterTicks(TierOne).Hash() == CenterTicks(TierTwo).Hash() {
		t.Errorf("expected the tier to be part of the hash")
	}
	var empty *TickGroup
	if empty.Hash() != 0 || empty.Len() != 0 || !empty.IsEmpty() || empty.Tier(TierOne) != nil {
		t.Errorf("expected a nil group to behave as empty")
	}
}

func TestTickMarksOrder(t *testing.T) {
	g := NewTickGroup(
		TickMark{faderkit.NewNormal(0.3), TierThree},
		TickMark{faderkit.NewNormal(0.9), TierOne},
		TickMark{faderkit.NewNormal(0.1), TierOne},
		TickMark{faderkit.NewNormal(0.2), Tier(7)},
	)
	marks := g.Marks()
	if len(marks) != 3 || g.Len() != 3 {
		t.Fatalf("expected 3 marks, got %v", marks)
	}
	if marks[0].Tier != TierOne || !marks[0].Position.Equal(faderkit.NewNormal(0.9)) {
		t.Errorf("expected tier one marks first in insertion order, got %v", marks)
	}
	if marks[2].Tier != TierThree {
		t.Errorf("expected tier three last, got %v", marks)
	}
}
