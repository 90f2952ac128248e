package widget

import "github.com/michaelquigley/faderkit/draw"

// Default palette shared by the default appearances
var (
	BorderColor        = draw.RGB(0.315, 0.315, 0.315)
	LightBackColor     = draw.RGB(0.97, 0.97, 0.97)
	LightBackHover     = draw.RGB(0.93, 0.93, 0.93)
	LightBackDrag      = draw.RGB(0.92, 0.92, 0.92)
	KnobBackHover      = draw.RGB(0.96, 0.96, 0.96)
	RampBackHover      = draw.RGB(0.95, 0.95, 0.95)
	SliderRailLeft     = draw.Color{R: 0.26, G: 0.26, B: 0.26, A: 0.75}
	SliderRailRight    = draw.Color{R: 0.56, G: 0.56, B: 0.56, A: 0.75}
	XYPadRailColor     = draw.Color{R: 0.56, G: 0.56, B: 0.56, A: 0.9}
	XYPadCenterLine    = draw.Color{R: 0.56, G: 0.56, B: 0.56, A: 0.5}
	MeterBackColor     = draw.RGB(0.45, 0.45, 0.45)
	MeterBorderColor   = draw.RGB(0.2, 0.2, 0.2)
	MeterLowColor      = draw.RGB(0.435, 0.886, 0.11)
	MeterMedColor      = draw.RGB(0.737, 1.0, 0.145)
	MeterHighColor     = draw.RGB(1.0, 0.945, 0.0)
	MeterClipColor     = draw.RGB(1.0, 0.071, 0.071)
	MeterClipMarker    = draw.Color{R: 0.78, G: 0.78, B: 0.78, A: 0.28}
	MeterGapColor      = draw.RGB(0.25, 0.25, 0.25)
	PhaseCenterLine    = draw.RGB(0.92, 0.92, 0.92)
	ModRangeFilled     = draw.RGB(0.0, 0.7, 0.0)
	ModRangeFilledInv  = draw.RGB(0.0, 0.7, 0.7)
	ModRangeEmptyColor = draw.Color{R: 0.42, G: 0.42, B: 0.42, A: 0.6}
	ReductionBarColor  = draw.RGB(0.435, 0.886, 0.11)
	ReductionPeakColor = draw.RGB(0.91, 0.91, 0.91)
)
