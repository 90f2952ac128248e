package widget

import (
	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
)

// LevelRangeDB is the dynamic range LevelNormal spreads over the unit interval
const LevelRangeDB = 96.0

// LevelNormal maps a dB level to a Normal over a LevelRangeDB window, so
// -96 dB is 0.0 and 0 dB is 1.0
func LevelNormal(db float32) faderkit.Normal {
	if db < -LevelRangeDB {
		db = -LevelRangeDB
	}
	return faderkit.NewNormal((db + LevelRangeDB) / LevelRangeDB)
}

// LevelColor is the signal level gradient used to tint rails and meters:
// dark green through bright green and yellow to red
//
// 0.0 is H120 V0.3, 0.5 is H120 V0.6, 0.8 is H60 V0.8 and 1.0 is H0 V1.0
func LevelColor(level faderkit.Normal) draw.Color {
	n := level.Float32()
	var h, v float32
	switch {
	case n <= 0.5:
		h = 120.0 / 360.0
		v = 0.3 + (n/0.5)*0.3
	case n <= 0.8:
		t := (n - 0.5) / 0.3
		h = (120.0 - t*60.0) / 360.0
		v = 0.6 + t*0.2
	default:
		t := (n - 0.8) / 0.2
		h = (60.0 - t*60.0) / 360.0
		v = 0.8 + t*0.2
	}
	return draw.HSV(h, 1.0, v)
}

// LevelColorDB is LevelColor for a dB level; silence is black
func LevelColorDB(db float32) draw.Color {
	if db <= -LevelRangeDB {
		return draw.Black
	}
	return LevelColor(LevelNormal(db))
}
