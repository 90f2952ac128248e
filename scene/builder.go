// Package scene builds a bank of widgets from a faderkit.Scene and drives it:
// table layout, pointer routing, gangs and meter feeds
package scene

import (
	"fmt"

	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
	"github.com/michaelquigley/faderkit/meter"
	"github.com/michaelquigley/faderkit/widget"
)

// Kind names a widget type in a scene file
type Kind string

const (
	KindVSlider        Kind = "vslider"
	KindHSlider        Kind = "hslider"
	KindKnob           Kind = "knob"
	KindXYPad          Kind = "xypad"
	KindRamp           Kind = "ramp"
	KindDBMeter        Kind = "dbmeter"
	KindPhaseMeter     Kind = "phasemeter"
	KindReductionMeter Kind = "reductionmeter"
	KindModRange       Kind = "modrange"
)

// axis is how pointer motion drives an entry
type axis int

const (
	axisNone axis = iota
	axisVertical
	axisHorizontal
	axisPoint
)

var (
	dbMeterRange        = faderkit.RangeConfig{Kind: "logdb", Min: -60, Max: 6, Pivot: 0.9}
	reductionMeterRange = faderkit.RangeConfig{Kind: "float", Min: 0, Max: 24}
)

// Entry is one built widget
type Entry struct {
	Name   string
	Kind   Kind
	Range  faderkit.Range[float32]
	Format faderkit.Formatter

	param   *faderkit.Param
	param2  *faderkit.Param
	gesture *widget.Gesture
	axis    axis
	gang    *faderkit.Gang
	render  func(widget.Frame) draw.Primitive

	pad        *widget.XYPad
	dbMeter    *widget.DBMeter
	phase      *widget.PhaseMeter
	reduction  *widget.ReductionMeter
	ballistics *meter.Ballistics
}

// Param is the entry's value, or nil for meters
func (e *Entry) Param() *faderkit.Param {
	return e.param
}

// Gang is the gang the entry belongs to, if any
func (e *Entry) Gang() *faderkit.Gang {
	return e.gang
}

// Render draws the widget for frame f
func (e *Entry) Render(f widget.Frame) draw.Primitive {
	return e.render(f)
}

// Readout is the formatted value shown under the widget
func (e *Entry) Readout() string {
	switch {
	case e.param2 != nil:
		return e.Format(e.Range.ToValue(e.param.Normal)) + " / " + e.Format(e.Range.ToValue(e.param2.Normal))
	case e.param != nil:
		return e.Format(e.Range.ToValue(e.param.Normal))
	case e.dbMeter != nil:
		return e.Format(e.Range.ToValue(e.dbMeter.Left.Bar))
	case e.phase != nil:
		return faderkit.FormatFloat(e.phase.Value.Float32()*2.0 - 1.0)
	case e.reduction != nil:
		return e.Format(e.Range.ToValue(e.reduction.Bar.Bar))
	default:
		return ""
	}
}

// Builder turns scene configuration into widgets
type Builder struct {
	scene *faderkit.Scene
}

func NewBuilder(scene *faderkit.Scene) *Builder {
	return &Builder{scene: scene}
}

// Build creates every widget and gang of the scene
func (b *Builder) Build() (*Board, error) {
	var entries []*Entry
	byName := make(map[string]*Entry)

	for i, cfg := range b.scene.Widgets {
		if _, found := byName[cfg.Name]; found {
			return nil, fmt.Errorf("widget %d (%s): duplicate name", i, cfg.Name)
		}
		e, err := buildEntry(cfg)
		if err != nil {
			return nil, fmt.Errorf("widget %d (%s): %w", i, cfg.Name, err)
		}
		entries = append(entries, e)
		byName[cfg.Name] = e
	}

	for i, gangCfg := range b.scene.Gangs {
		var members []*Entry
		var params []*faderkit.Param
		for j, name := range gangCfg.Widgets {
			e, found := byName[name]
			if !found {
				return nil, fmt.Errorf("gang %d (%s), widget %d (%s): not found in scene", i, gangCfg.Name, j, name)
			}
			if e.param == nil {
				return nil, fmt.Errorf("gang %d (%s), widget %d (%s): kind %v has no value to gang", i, gangCfg.Name, j, name, e.Kind)
			}
			if e.gang != nil {
				return nil, fmt.Errorf("gang %d (%s), widget %d (%s): already in gang '%s'", i, gangCfg.Name, j, name, e.gang.Name())
			}
			members = append(members, e)
			params = append(params, e.param)
		}

		gang, err := faderkit.NewGang(gangCfg.Name, faderkit.GangMode(gangCfg.Mode), params...)
		if err != nil {
			return nil, fmt.Errorf("gang %d (%s): failed to create gang: %w", i, gangCfg.Name, err)
		}
		for _, e := range members {
			e.gang = gang
		}
	}

	theme, err := newTheme(b.scene.Theme)
	if err != nil {
		return nil, err
	}
	return newBoard(b.scene, theme, entries), nil
}

func buildEntry(cfg faderkit.WidgetConfig) (*Entry, error) {
	kind := Kind(cfg.Kind)
	rangeCfg := cfg.Range
	if rangeCfg == (faderkit.RangeConfig{}) {
		switch kind {
		case KindDBMeter:
			rangeCfg = dbMeterRange
		case KindReductionMeter:
			rangeCfg = reductionMeterRange
		}
	}

	r, format, err := NewRange(rangeCfg)
	if err != nil {
		return nil, err
	}
	if format, err = newFormatter(cfg.Texts.Format, rangeCfg.Min, format); err != nil {
		return nil, err
	}
	ticks, err := newTicks(cfg.Ticks, r)
	if err != nil {
		return nil, err
	}
	m := widget.Marks{Ticks: ticks, Texts: newTexts(cfg.Texts, r, format)}

	defaultValue := cfg.Value
	if cfg.Default != nil {
		defaultValue = *cfg.Default
	}
	param := r.CreateParam(cfg.Value, defaultValue)

	orientation, err := parseOrientation(cfg.Orientation)
	if err != nil {
		return nil, err
	}

	e := &Entry{Name: cfg.Name, Kind: kind, Range: r, Format: format}
	switch kind {
	case KindVSlider, KindHSlider:
		style, err := sliderStyle(cfg.Appearance)
		if err != nil {
			return nil, err
		}
		if kind == KindVSlider {
			s := widget.NewVSlider(param)
			s.Marks, s.Style = m, style
			e.param, e.gesture, e.render, e.axis = &s.Param, &s.Gesture, s.Render, axisVertical
		} else {
			s := widget.NewHSlider(param)
			s.Marks, s.Style = m, style
			e.param, e.gesture, e.render, e.axis = &s.Param, &s.Gesture, s.Render, axisHorizontal
		}

	case KindKnob:
		style, err := knobStyle(cfg.Appearance)
		if err != nil {
			return nil, err
		}
		k := widget.NewKnob(param)
		k.Marks, k.Style = m, style
		e.param, e.gesture, e.render, e.axis = &k.Param, &k.Gesture, k.Render, axisVertical

	case KindXYPad:
		p := widget.NewXYPad(param, param)
		e.pad = p
		e.param, e.param2, e.gesture, e.render, e.axis = &p.X, &p.Y, &p.Gesture, p.Render, axisPoint

	case KindRamp:
		dir, err := parseDirection(cfg.Direction)
		if err != nil {
			return nil, err
		}
		rp := widget.NewRamp(param, dir)
		e.param, e.gesture, e.render, e.axis = &rp.Param, &rp.Gesture, rp.Render, axisVertical

	case KindModRange:
		in := widget.NewModRangeInput(param)
		e.param, e.gesture, e.render, e.axis = &in.Param, &in.Gesture, in.Render, axisVertical

	case KindDBMeter:
		logDB, ok := r.(faderkit.LogDBRange)
		if !ok {
			return nil, fmt.Errorf("dbmeter needs a logdb range, got '%v'", rangeCfg.Kind)
		}
		tiers := widget.DefaultDBTiers(logDB)
		var dm *widget.DBMeter
		if cfg.Stereo {
			dm = widget.NewStereoDBMeter(tiers, orientation)
		} else {
			dm = widget.NewDBMeter(tiers, orientation)
		}
		dm.Marks = m
		e.dbMeter, e.ballistics = dm, meter.NewBallistics(r)
		e.render = func(f widget.Frame) draw.Primitive { return dm.Render(f.Bounds) }

	case KindPhaseMeter:
		pm := widget.NewPhaseMeter(orientation)
		e.phase = pm
		e.render = func(f widget.Frame) draw.Primitive { return pm.Render(f.Bounds) }

	case KindReductionMeter:
		rm := widget.NewReductionMeter(orientation)
		rm.Marks = m
		e.reduction, e.ballistics = rm, meter.NewBallistics(r)
		e.render = func(f widget.Frame) draw.Primitive { return rm.Render(f.Bounds) }

	default:
		return nil, fmt.Errorf("unknown widget kind '%v'", cfg.Kind)
	}
	return e, nil
}

func sliderStyle(appearance string) (widget.SliderStyle, error) {
	switch appearance {
	case "", "classic":
		return widget.DefaultSliderStyle(), nil
	case "rect":
		return widget.UniformSliderStyle(widget.DefaultRectSlider()), nil
	case "bipolar":
		return widget.UniformSliderStyle(widget.DefaultRectBipolarSlider()), nil
	default:
		return widget.SliderStyle{}, fmt.Errorf("unknown slider appearance '%v'", appearance)
	}
}

func knobStyle(appearance string) (widget.KnobStyle, error) {
	switch appearance {
	case "", "circle":
		return widget.DefaultKnobStyle(), nil
	case "line":
		return widget.UniformKnobStyle(widget.DefaultClassicLineKnob()), nil
	case "arc":
		return widget.UniformKnobStyle(widget.DefaultArcKnob()), nil
	case "bipolar":
		return widget.UniformKnobStyle(widget.DefaultArcBipolarKnob()), nil
	default:
		return widget.KnobStyle{}, fmt.Errorf("unknown knob appearance '%v'", appearance)
	}
}

func parseOrientation(s string) (widget.Orientation, error) {
	switch s {
	case "", "vertical":
		return widget.Vertical, nil
	case "horizontal":
		return widget.Horizontal, nil
	default:
		return widget.Vertical, fmt.Errorf("unknown orientation '%v'", s)
	}
}

func parseDirection(s string) (widget.RampDirection, error) {
	switch s {
	case "", "up":
		return widget.RampUp, nil
	case "down":
		return widget.RampDown, nil
	default:
		return widget.RampUp, fmt.Errorf("unknown ramp direction '%v'", s)
	}
}
