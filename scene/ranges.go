package scene

import (
	"fmt"
	"math"

	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/marks"
)

// intRange presents an IntRange in float32 display units
type intRange struct {
	faderkit.IntRange
}

func (r intRange) ToNormal(value float32) faderkit.Normal {
	return r.IntRange.ToNormal(int(math.Round(float64(value))))
}

func (r intRange) ToValue(normal faderkit.Normal) float32 {
	return float32(r.IntRange.ToValue(normal))
}

func (r intRange) CreateParam(value, defaultValue float32) faderkit.Param {
	return faderkit.NewParam(r.ToNormal(value), r.ToNormal(defaultValue))
}

func (r intRange) CreateParamDefault() faderkit.Param {
	return r.IntRange.CreateParamDefault()
}

// NewRange validates cfg and builds its range along with the formatter for
// the widget's value readout; zero bounds select the kind's default range
func NewRange(cfg faderkit.RangeConfig) (faderkit.Range[float32], faderkit.Formatter, error) {
	unset := cfg.Min == 0 && cfg.Max == 0
	switch cfg.Kind {
	case "", "float":
		if unset {
			return faderkit.DefaultFloatRange(), faderkit.FormatFloat, nil
		}
		if !(cfg.Max > cfg.Min) {
			return nil, nil, fmt.Errorf("float range: max (%v) must be greater than min (%v)", cfg.Max, cfg.Min)
		}
		return faderkit.NewFloatRange(cfg.Min, cfg.Max), faderkit.FormatFloat, nil

	case "int":
		if unset {
			return intRange{faderkit.DefaultIntRange()}, faderkit.FormatInt, nil
		}
		lo, hi := int(math.Round(float64(cfg.Min))), int(math.Round(float64(cfg.Max)))
		if !(hi > lo) {
			return nil, nil, fmt.Errorf("int range: max (%d) must be greater than min (%d)", hi, lo)
		}
		return intRange{faderkit.NewIntRange(lo, hi)}, faderkit.FormatInt, nil

	case "logdb":
		if unset {
			cfg.Min, cfg.Max = -12, 12
		}
		if !(cfg.Max > cfg.Min) || cfg.Max < 0 || cfg.Min > 0 {
			return nil, nil, fmt.Errorf("logdb range: need min <= 0 <= max and max > min (min %v, max %v)", cfg.Min, cfg.Max)
		}
		pivot := faderkit.CenterNormal
		if cfg.Pivot != 0 {
			var err error
			if pivot, err = faderkit.TryNormal(cfg.Pivot); err != nil {
				return nil, nil, fmt.Errorf("logdb range: pivot: %w", err)
			}
		}
		return faderkit.NewLogDBRange(cfg.Min, cfg.Max, pivot), faderkit.FormatDB(cfg.Min), nil

	case "freq":
		if unset {
			return faderkit.DefaultFreqRange(), faderkit.FormatFreq, nil
		}
		lo := min(max(cfg.Min, faderkit.MinFrequency), faderkit.MaxFrequency)
		hi := min(max(cfg.Max, faderkit.MinFrequency), faderkit.MaxFrequency)
		if !(hi > lo) {
			return nil, nil, fmt.Errorf("freq range: max (%v Hz) must be greater than min (%v Hz) after clamping", hi, lo)
		}
		return faderkit.NewFreqRange(lo, hi), faderkit.FormatFreq, nil

	default:
		return nil, nil, fmt.Errorf("unknown range kind '%v'", cfg.Kind)
	}
}

// newFormatter resolves a named formatter; an empty name keeps fallback
func newFormatter(name string, floor float32, fallback faderkit.Formatter) (faderkit.Formatter, error) {
	switch name {
	case "":
		return fallback, nil
	case "db":
		return faderkit.FormatDB(floor), nil
	case "freq":
		return faderkit.FormatFreq, nil
	case "freqshort":
		return faderkit.FormatFreqShort, nil
	case "percent":
		return faderkit.FormatPercent, nil
	case "pan":
		return faderkit.FormatPan, nil
	case "int":
		return faderkit.FormatInt, nil
	case "float":
		return faderkit.FormatFloat, nil
	default:
		return nil, fmt.Errorf("unknown format '%v'", name)
	}
}

// newTicks builds the tick group; explicit values win over the preset
func newTicks(cfg faderkit.TicksConfig, r faderkit.Range[float32]) (*marks.TickGroup, error) {
	if len(cfg.Values) > 0 {
		return marks.ValueTicks(r, marks.TierOne, cfg.Values...), nil
	}
	switch cfg.Preset {
	case "":
		return nil, nil
	case "center":
		return marks.CenterTicks(marks.TierOne), nil
	case "minmax":
		return marks.MinMaxTicks(marks.TierOne), nil
	case "minmaxcenter":
		return marks.MinMaxAndCenterTicks(marks.TierOne, marks.TierTwo), nil
	case "subdivided":
		return marks.SubdividedTicks(cfg.One, cfg.Two, cfg.Three, marks.TierOne), nil
	case "even":
		if cfg.One < 1 {
			return nil, fmt.Errorf("even ticks need one >= 1, got %d", cfg.One)
		}
		return marks.EvenlySpacedTicks(cfg.One, marks.TierOne), nil
	default:
		return nil, fmt.Errorf("unknown tick preset '%v'", cfg.Preset)
	}
}

func newTexts(cfg faderkit.TextsConfig, r faderkit.Range[float32], format faderkit.Formatter) *marks.TextGroup {
	if len(cfg.Values) == 0 {
		return nil
	}
	return marks.ValueTexts[float32](r, format, cfg.Values...)
}
