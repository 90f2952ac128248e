package widget

import (
	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
)

// MeterBar is the state of one meter channel; a nil or zero Peak hides the
// peak line
type MeterBar struct {
	Bar  faderkit.Normal
	Peak *faderkit.Normal
}

// DBTiers are the bar positions where the meter changes colour; a nil High
// or Med collapses that tier into the one above it
type DBTiers struct {
	Clipping faderkit.Normal
	High     *faderkit.Normal
	Med      *faderkit.Normal
}

// DBTier is the colour band a bar position falls in
type DBTier int

const (
	TierLow DBTier = iota
	TierMed
	TierHigh
	TierClipping
)

func (t DBTier) String() string {
	switch t {
	case TierMed:
		return "med"
	case TierHigh:
		return "high"
	case TierClipping:
		return "clipping"
	default:
		return "low"
	}
}

// DefaultDBTiers places the tiers for a -64..+6 dB meter: clipping at 0 dB,
// high at -6 dB and med at -18 dB
func DefaultDBTiers(r faderkit.LogDBRange) DBTiers {
	high := r.ToNormal(-6.0)
	med := r.ToNormal(-18.0)
	return DBTiers{Clipping: r.ToNormal(0.0), High: &high, Med: &med}
}

// Tier returns the band n falls in
func (t DBTiers) Tier(n faderkit.Normal) DBTier {
	v := n.Float32()
	if v >= t.Clipping.Float32() {
		return TierClipping
	}
	if t.High != nil {
		if v >= t.High.Float32() {
			return TierHigh
		}
		if t.Med != nil && v >= t.Med.Float32() {
			return TierMed
		}
	}
	return TierLow
}

// boundaries returns the start of the med, high and clipping bands
func (t DBTiers) boundaries() (med, high, clip float32) {
	clip = t.Clipping.Float32()
	high = clip
	if t.High != nil {
		high = t.High.Float32()
	}
	med = high
	if t.Med != nil {
		med = t.Med.Float32()
	}
	return med, high, clip
}

// DBMeterAppearance draws a DBMeter; a transparent PeakLineColor draws the
// peak line in the colour of its tier
type DBMeterAppearance struct {
	BackColor         draw.Color
	BackBorderWidth   float32
	BackBorderColor   draw.Color
	LowColor          draw.Color
	MedColor          draw.Color
	HighColor         draw.Color
	ClipColor         draw.Color
	PeakLineColor     draw.Color
	PeakLineWidth     float32
	ColorAllClipColor bool
	ClipMarkerWidth   float32
	ClipMarkerColor   draw.Color
	InnerGap          float32
	InnerGapColor     draw.Color
}

func DefaultDBMeterAppearance() DBMeterAppearance {
	return DBMeterAppearance{
		BackColor:         MeterBackColor,
		BackBorderWidth:   1,
		BackBorderColor:   MeterBorderColor,
		LowColor:          MeterLowColor,
		MedColor:          MeterMedColor,
		HighColor:         MeterHighColor,
		ClipColor:         MeterClipColor,
		PeakLineWidth:     2,
		ColorAllClipColor: true,
		ClipMarkerWidth:   2,
		ClipMarkerColor:   MeterClipMarker,
		InnerGap:          2,
		InnerGapColor:     MeterGapColor,
	}
}

type DBMeterStyle struct {
	Appearance DBMeterAppearance
	Ticks      *LinearTicks
	Texts      *LinearTexts
}

func DefaultDBMeterStyle() DBMeterStyle {
	return DBMeterStyle{Appearance: DefaultDBMeterAppearance(), Ticks: DefaultLinearTicks()}
}

// DBMeter shows one or two channel levels with coloured tiers
type DBMeter struct {
	Left        MeterBar
	Right       *MeterBar
	Tiers       DBTiers
	Orientation Orientation
	Marks       Marks
	Style       DBMeterStyle

	annotations
}

func NewDBMeter(tiers DBTiers, o Orientation) *DBMeter {
	return &DBMeter{Tiers: tiers, Orientation: o, Style: DefaultDBMeterStyle()}
}

// NewStereoDBMeter creates a meter with both channels
func NewStereoDBMeter(tiers DBTiers, o Orientation) *DBMeter {
	m := NewDBMeter(tiers, o)
	m.Right = &MeterBar{}
	return m
}

// Render draws the meter inside bounds
func (m *DBMeter) Render(bounds draw.Rect) draw.Primitive {
	app := m.Style.Appearance
	b := draw.Rect{X: floorf(bounds.X), Y: floorf(bounds.Y), W: floorf(bounds.W), H: floorf(bounds.H)}
	border := app.BackBorderWidth
	inner := b.Inset(border)
	a := sliderAxis{o: m.Orientation, b: inner}

	ticks := m.linearTicks(m.Orientation, inner, m.Marks.Ticks, m.Style.Ticks)
	texts := m.linearTexts(m.Orientation, inner, m.Marks.Texts, m.Style.Texts)

	back := draw.Quad{Bounds: b, Fill: app.BackColor, BorderWidth: border, BorderColor: app.BackBorderColor}
	clipMarker := fill(clipMarkerRect(a, m.Tiers.Clipping, app.ClipMarkerWidth), app.ClipMarkerColor)

	if m.Right == nil {
		return draw.NewGroup(ticks, texts, back, clipMarker, m.bar(a, m.Left))
	}

	barCross := floorf((a.crossExtent() - app.InnerGap) * 0.5)
	left := a.crossSlice(0, barCross)
	right := a.crossSlice(a.crossExtent()-barCross, barCross)
	gap := fill(gapRect(m.Orientation, b, inner, barCross, app.InnerGap), app.InnerGapColor)

	return draw.NewGroup(ticks, texts, back, clipMarker, gap, m.bar(left, m.Left), m.bar(right, *m.Right))
}

// bar draws one channel as up to four tier segments followed by its peak line
func (m *DBMeter) bar(a sliderAxis, state MeterBar) draw.Primitive {
	app := m.Style.Appearance
	tier := m.Tiers.Tier(state.Bar)
	allClip := app.ColorAllClipColor && tier == TierClipping

	var peak draw.Primitive = draw.None{}
	if state.Peak != nil && state.Peak.Float32() != 0.0 {
		peakTier := m.Tiers.Tier(*state.Peak)
		allClip = app.ColorAllClipColor && peakTier == TierClipping
		color := m.tierColor(peakTier)
		if peakTier != TierClipping && visible(app.PeakLineColor) {
			color = app.PeakLineColor
		}
		peak = fill(peakRect(a, *state.Peak, app.PeakLineWidth), color)
	}

	v := state.Bar.Float32()
	if v == 0.0 {
		return peak
	}

	med, high, clip := m.Tiers.boundaries()
	starts := [4]float32{0, med, high, clip}
	ends := [4]float32{med, high, clip, 1}
	segments := make([]draw.Primitive, 0, 5)
	for i := range starts {
		if int(tier) < i {
			break
		}
		end := ends[i]
		if int(tier) == i {
			end = v
		}
		if end <= starts[i] && i > 0 {
			continue
		}
		color := m.tierColor(DBTier(i))
		if allClip {
			color = app.ClipColor
		}
		segments = append(segments, fill(a.span(starts[i], end), color))
	}
	segments = append(segments, peak)
	return draw.NewGroup(segments...)
}

func (m *DBMeter) tierColor(t DBTier) draw.Color {
	return m.Style.Appearance.TierColor(t)
}

// TierColor is the bar colour of tier t
func (app DBMeterAppearance) TierColor(t DBTier) draw.Color {
	switch t {
	case TierMed:
		return app.MedColor
	case TierHigh:
		return app.HighColor
	case TierClipping:
		return app.ClipColor
	default:
		return app.LowColor
	}
}

// crossSlice narrows the axis to size pixels starting at cross
func (a sliderAxis) crossSlice(cross, size float32) sliderAxis {
	if a.o == Horizontal {
		return sliderAxis{o: a.o, b: draw.Rect{X: a.b.X, Y: a.b.Y + cross, W: a.b.W, H: size}}
	}
	return sliderAxis{o: a.o, b: draw.Rect{X: a.b.X + cross, Y: a.b.Y, W: size, H: a.b.H}}
}

// peakRect is a line of the given width whose travel keeps it inside the bar
func peakRect(a sliderAxis, peak faderkit.Normal, width float32) draw.Rect {
	offset := roundf((a.mainExtent() - width) * peak.Inv())
	return a.rect(offset, 0, width, a.crossExtent())
}

func clipMarkerRect(a sliderAxis, clip faderkit.Normal, width float32) draw.Rect {
	if a.o == Horizontal {
		x := floorf(a.b.X + a.b.W*clip.Float32() - width*0.5)
		return draw.Rect{X: x, Y: a.b.Y, W: width, H: a.b.H}
	}
	y := floorf(a.b.Y + a.b.H*clip.Inv() - roundf(width*0.5))
	return draw.Rect{X: a.b.X, Y: y, W: a.b.W, H: width}
}

// gapRect spans the full outer bounds between the two bars
func gapRect(o Orientation, outer, inner draw.Rect, barCross, gap float32) draw.Rect {
	if o == Horizontal {
		start := inner.Y + barCross
		return draw.Rect{X: outer.X, Y: start, W: outer.W, H: inner.Bottom() - barCross - start}
	}
	start := inner.X + barCross
	return draw.Rect{X: start, Y: outer.Y, W: inner.Right() - barCross - start, H: outer.H}
}
