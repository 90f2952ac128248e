package widget

import (
	"github.com/michaelquigley/faderkit/draw"
)

type ReductionMeterAppearance struct {
	BackColor        draw.Color
	BackBorderWidth  float32
	BackBorderRadius float32
	BackBorderColor  draw.Color
	Color            draw.Color
	PeakLineColor    draw.Color
	PeakLineWidth    float32
}

func DefaultReductionMeterAppearance() ReductionMeterAppearance {
	return ReductionMeterAppearance{
		BackColor:       MeterBackColor,
		BackBorderWidth: 1,
		BackBorderColor: MeterBorderColor,
		Color:           ReductionBarColor,
		PeakLineColor:   ReductionPeakColor,
		PeakLineWidth:   2,
	}
}

type ReductionMeterStyle struct {
	Appearance ReductionMeterAppearance
	Ticks      *LinearTicks
	Texts      *LinearTexts
}

func DefaultReductionMeterStyle() ReductionMeterStyle {
	return ReductionMeterStyle{Appearance: DefaultReductionMeterAppearance(), Ticks: DefaultLinearTicks()}
}

// ReductionMeter shows gain reduction as a bar hanging from the maximum end
// (the top, or the right when horizontal)
type ReductionMeter struct {
	Bar         MeterBar
	Orientation Orientation
	Marks       Marks
	Style       ReductionMeterStyle

	annotations
}

func NewReductionMeter(o Orientation) *ReductionMeter {
	return &ReductionMeter{Orientation: o, Style: DefaultReductionMeterStyle()}
}

// Render draws the meter inside bounds
func (m *ReductionMeter) Render(bounds draw.Rect) draw.Primitive {
	app := m.Style.Appearance
	b := draw.Rect{X: floorf(bounds.X), Y: floorf(bounds.Y), W: floorf(bounds.W), H: floorf(bounds.H)}
	inner := b.Inset(app.BackBorderWidth)
	a := sliderAxis{o: m.Orientation, b: b}

	ticks := m.linearTicks(m.Orientation, inner, m.Marks.Ticks, m.Style.Ticks)
	texts := m.linearTexts(m.Orientation, inner, m.Marks.Texts, m.Style.Texts)

	back := draw.Quad{
		Bounds:       b,
		Fill:         app.BackColor,
		BorderRadius: app.BackBorderRadius,
		BorderWidth:  app.BackBorderWidth,
		BorderColor:  app.BackBorderColor,
	}

	var bar draw.Primitive = draw.None{}
	if v := m.Bar.Bar.Float32(); v != 0.0 {
		bar = draw.Quad{
			Bounds:       a.span(1.0-v, 1.0),
			Fill:         app.Color,
			BorderRadius: app.BackBorderRadius,
			BorderWidth:  app.BackBorderWidth,
			BorderColor:  app.BackBorderColor,
		}
	}

	var peak draw.Primitive = draw.None{}
	if p := m.Bar.Peak; p != nil && p.Float32() != 0.0 {
		width := app.PeakLineWidth + app.BackBorderWidth*2.0
		offset := roundf(a.mainExtent()*p.Float32() - width/2.0)
		peak = draw.Quad{
			Bounds:       a.rect(offset, 0, width, a.crossExtent()),
			Fill:         app.PeakLineColor,
			BorderRadius: app.BackBorderRadius,
			BorderWidth:  app.BackBorderWidth,
			BorderColor:  app.BackBorderColor,
		}
	}

	return draw.NewGroup(ticks, texts, back, bar, peak)
}
