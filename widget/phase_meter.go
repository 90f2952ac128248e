package widget

import (
	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
)

// PhaseTier is the quality band of a phase correlation reading
type PhaseTier int

const (
	PhaseBad PhaseTier = iota
	PhasePoor
	PhaseOkay
	PhaseGood
)

func (t PhaseTier) String() string {
	switch t {
	case PhasePoor:
		return "poor"
	case PhaseOkay:
		return "okay"
	case PhaseGood:
		return "good"
	default:
		return "bad"
	}
}

// PhaseTiers position the good and poor boundaries; each is a Normal of its
// own half of the meter, so Good 0.5 starts the good band at 0.75 and Poor
// 0.5 ends the bad band at 0.25
type PhaseTiers struct {
	Good faderkit.Normal
	Poor faderkit.Normal
}

func DefaultPhaseTiers() PhaseTiers {
	return PhaseTiers{Good: faderkit.NewNormal(0.45), Poor: faderkit.NewNormal(0.45)}
}

func (t PhaseTiers) goodStart() float32 { return 0.5 + t.Good.Float32()/2.0 }
func (t PhaseTiers) poorStart() float32 { return t.Poor.Float32() / 2.0 }

// Tier returns the band n falls in; 0.5 is uncorrelated
func (t PhaseTiers) Tier(n faderkit.Normal) PhaseTier {
	v := n.Float32()
	switch {
	case v >= t.goodStart():
		return PhaseGood
	case v >= 0.5:
		return PhaseOkay
	case v >= t.poorStart():
		return PhasePoor
	default:
		return PhaseBad
	}
}

type PhaseMeterAppearance struct {
	BackColor       draw.Color
	BackBorderWidth float32
	BackBorderColor draw.Color
	BadColor        draw.Color
	PoorColor       draw.Color
	OkayColor       draw.Color
	GoodColor       draw.Color
	CenterLineWidth float32
	CenterLineColor draw.Color
}

func DefaultPhaseMeterAppearance() PhaseMeterAppearance {
	return PhaseMeterAppearance{
		BackColor:       MeterBackColor,
		BackBorderWidth: 1,
		BackBorderColor: MeterBorderColor,
		BadColor:        MeterClipColor,
		PoorColor:       MeterHighColor,
		OkayColor:       MeterMedColor,
		GoodColor:       MeterLowColor,
		CenterLineWidth: 1,
		CenterLineColor: PhaseCenterLine,
	}
}

// PhaseMeter shows phase correlation: -1 at the minimum end, +1 at the
// maximum end and 0 in the center
type PhaseMeter struct {
	Value       faderkit.Normal
	Tiers       PhaseTiers
	Orientation Orientation
	Style       PhaseMeterAppearance
}

func NewPhaseMeter(o Orientation) *PhaseMeter {
	return &PhaseMeter{
		Value:       faderkit.CenterNormal,
		Tiers:       DefaultPhaseTiers(),
		Orientation: o,
		Style:       DefaultPhaseMeterAppearance(),
	}
}

// Render draws the meter inside bounds; readings within 0.001 of the center
// draw no bars
func (m *PhaseMeter) Render(bounds draw.Rect) draw.Primitive {
	app := m.Style
	b := draw.Rect{X: floorf(bounds.X), Y: floorf(bounds.Y), W: floorf(bounds.W), H: floorf(bounds.H)}
	a := sliderAxis{o: m.Orientation, b: b.Inset(app.BackBorderWidth)}
	extent := a.mainExtent()
	center := roundf(extent / 2.0)

	back := draw.Quad{Bounds: b, Fill: app.BackColor, BorderWidth: app.BackBorderWidth, BorderColor: app.BackBorderColor}
	centerLine := fill(a.rect(roundf(center-app.CenterLineWidth/2.0), 0, app.CenterLineWidth, a.crossExtent()), app.CenterLineColor)

	v := m.Value.Float32()
	if v >= 0.499 && v <= 0.501 {
		return draw.NewGroup(back, centerLine)
	}

	value := roundf(v * extent)
	poor := roundf(extent * m.Tiers.poorStart())
	good := roundf(extent * m.Tiers.goodStart())

	// pixel spans measured from the minimum end
	between := func(from, to float32, color draw.Color) draw.Primitive {
		if to <= from {
			return draw.None{}
		}
		return fill(a.rect(extent-to, 0, to-from, a.crossExtent()), color)
	}

	switch m.Tiers.Tier(m.Value) {
	case PhaseBad:
		return draw.NewGroup(back, between(value, poor, app.BadColor), between(poor, center, app.PoorColor), centerLine)
	case PhasePoor:
		return draw.NewGroup(back, between(value, center, app.PoorColor), centerLine)
	case PhaseOkay:
		return draw.NewGroup(back, between(center, value, app.OkayColor), centerLine)
	default:
		return draw.NewGroup(back, between(center, good, app.OkayColor), between(good, value, app.GoodColor), centerLine)
	}
}
