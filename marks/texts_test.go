package marks

import (
	"testing"

	"github.com/michaelquigley/faderkit"
)

func labels(g *TextGroup) []string {
	var out []string
	for _, m := range g.Marks() {
		out = append(out, m.Label)
	}
	return out
}

func TestSubdividedText(t *testing.T) {
	g := SubdividedText([]string{"a", "b", "c"}, "min", "")
	if g.Len() != 4 {
		t.Fatalf("expected 4 marks, got %v", g.Marks())
	}
	expected := normals(0.25, 0.5, 0.75, 0)
	for i, m := range g.Marks() {
		if !near(m.Position.Float32(), expected[i].Float32()) {
			t.Errorf("mark %d at %v, want %v", i, m.Position, expected[i])
		}
	}
	if got := labels(g); got[3] != "min" {
		t.Errorf("expected the min label last, got %v", got)
	}
}

func TestEvenlySpacedText(t *testing.T) {
	g := EvenlySpacedText("lo", "mid", "hi")
	expected := normals(0, 0.5, 1)
	for i, m := range g.Marks() {
		if !m.Position.Equal(expected[i]) {
			t.Errorf("mark %d at %v, want %v", i, m.Position, expected[i])
		}
	}
	if one := EvenlySpacedText("x"); one.Len() != 1 || !one.Marks()[0].Position.Equal(faderkit.MinNormal) {
		t.Errorf("expected a single label at 0.0")
	}
	if !EvenlySpacedText().IsEmpty() {
		t.Errorf("expected an empty group")
	}
}

func TestTextGroupCopiesLabels(t *testing.T) {
	marks := []TextMark{{faderkit.MinNormal, "a"}, {faderkit.MaxNormal, "b"}}
	g := NewTextGroup(marks...)
	marks[0].Label = "changed"
	if g.Marks()[0].Label != "a" {
		t.Errorf("expected the group to own its labels")
	}
}

func TestTextGroupHash(t *testing.T) {
	if MinMaxText("a", "b").Hash() != MinMaxText("a", "b").Hash() {
		t.Errorf("expected identical construction to hash identically")
	}
	if MinMaxText("a", "b").Hash() == MinMaxText("a", "c").Hash() {
		t.Errorf("expected labels to be part of the hash")
	}
	if MinMaxText("ab", "").Hash() == MinMaxText("a", "b").Hash() {
		t.Errorf("expected label boundaries to be part of the hash")
	}
	if MinMaxAndCenterText("-", "+", "0").Len() != 3 || CenterText("0").Len() != 1 {
		t.Errorf("unexpected preset lengths")
	}
}

func TestValueTexts(t *testing.T) {
	g := ValueTexts[float32](faderkit.DefaultFreqRange(), faderkit.FormatFreqShort, 20, 20000)
	got := labels(g)
	if len(got) != 2 || got[0] != "20" || got[1] != "20k" {
		t.Errorf("unexpected labels %v", got)
	}
}
