package marks

import (
	"github.com/cespare/xxhash/v2"
	"github.com/michaelquigley/faderkit"
)

// TextMark is a label at a position on the unit interval
type TextMark struct {
	Position faderkit.Normal
	Label    string
}

// TextGroup is an immutable, ordered list of text marks
type TextGroup struct {
	marks []TextMark
	hash  uint64
}

// NewTextGroup copies marks into a group; marks are drawn in order
func NewTextGroup(marks ...TextMark) *TextGroup {
	g := &TextGroup{marks: make([]TextMark, len(marks))}
	copy(g.marks, marks)

	h := xxhash.New()
	writeUint64(h, uint64(len(g.marks)))
	for _, m := range g.marks {
		writeUint64(h, uint64(len(m.Label)))
		_, _ = h.WriteString(m.Label)
		writeUint64(h, quantize(m.Position))
	}
	g.hash = h.Sum64()
	return g
}

// CenterText is a single label at 0.5
func CenterText(label string) *TextGroup {
	return NewTextGroup(TextMark{faderkit.CenterNormal, label})
}

// MinMaxText labels 0.0 and 1.0
func MinMaxText(minLabel, maxLabel string) *TextGroup {
	return NewTextGroup(
		TextMark{faderkit.MinNormal, minLabel},
		TextMark{faderkit.MaxNormal, maxLabel},
	)
}

// MinMaxAndCenterText labels 0.0, 0.5 and 1.0
func MinMaxAndCenterText(minLabel, maxLabel, centerLabel string) *TextGroup {
	return NewTextGroup(
		TextMark{faderkit.MinNormal, minLabel},
		TextMark{faderkit.CenterNormal, centerLabel},
		TextMark{faderkit.MaxNormal, maxLabel},
	)
}

// SubdividedText spaces labels at k/(len+1); a non-empty minLabel or
// maxLabel is added at 0.0 or 1.0
func SubdividedText(labels []string, minLabel, maxLabel string) *TextGroup {
	marks := make([]TextMark, 0, len(labels)+2)
	span := 1.0 / float32(len(labels)+1)
	for i, label := range labels {
		marks = append(marks, TextMark{faderkit.NewNormal(float32(i)*span + span), label})
	}
	if minLabel != "" {
		marks = append(marks, TextMark{faderkit.MinNormal, minLabel})
	}
	if maxLabel != "" {
		marks = append(marks, TextMark{faderkit.MaxNormal, maxLabel})
	}
	return NewTextGroup(marks...)
}

// EvenlySpacedText spaces labels at k/(len-1); a single label sits at 0.0
func EvenlySpacedText(labels ...string) *TextGroup {
	marks := make([]TextMark, 0, len(labels))
	switch {
	case len(labels) == 1:
		marks = append(marks, TextMark{faderkit.MinNormal, labels[0]})
	case len(labels) > 1:
		last := len(labels) - 1
		span := 1.0 / float32(last)
		for i := 0; i < last; i++ {
			marks = append(marks, TextMark{faderkit.NewNormal(float32(i) * span), labels[i]})
		}
		marks = append(marks, TextMark{faderkit.MaxNormal, labels[last]})
	}
	return NewTextGroup(marks...)
}

// ValueTexts labels each domain value of r using format
func ValueTexts[T any](r faderkit.Range[T], format func(T) string, values ...T) *TextGroup {
	marks := make([]TextMark, 0, len(values))
	for _, v := range values {
		marks = append(marks, TextMark{r.ToNormal(v), format(v)})
	}
	return NewTextGroup(marks...)
}

// Marks returns the marks in draw order; callers must not modify the slice
func (g *TextGroup) Marks() []TextMark {
	if g == nil {
		return nil
	}
	return g.marks
}

func (g *TextGroup) Len() int {
	if g == nil {
		return 0
	}
	return len(g.marks)
}

func (g *TextGroup) IsEmpty() bool {
	return g.Len() == 0
}

// Hash is the content hash computed when the group was built
func (g *TextGroup) Hash() uint64 {
	if g == nil {
		return 0
	}
	return g.hash
}
