package faderkit

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/michaelquigley/df/dd"
)

// Scene describes a bank of widgets laid out in a table, one widget per
// column
type Scene struct {
	Title   string
	Columns int
	Cell    CellConfig
	Theme   ThemeConfig
	Widgets []WidgetConfig `dd:"+required"`
	Gangs   []GangConfig
}

// CellConfig is the size of one table column; Label is the height of the
// label and value rows
type CellConfig struct {
	Width  float32
	Height float32
	Label  float32
}

// ThemeConfig holds hex colours (#rrggbb or #rrggbbaa) for the table chrome
type ThemeConfig struct {
	Background string
	Label      string
	Value      string
}

type WidgetConfig struct {
	Name        string `dd:"+required"`
	Kind        string `dd:"+required"`
	Range       RangeConfig
	Value       float32
	Default     *float32
	Ticks       TicksConfig
	Texts       TextsConfig
	Appearance  string
	Direction   string
	Orientation string
	Stereo      bool
}

// RangeConfig selects the value mapping; Kind is one of float, int, logdb,
// freq and Pivot is the Normal position of 0 dB for logdb
type RangeConfig struct {
	Kind  string
	Min   float32
	Max   float32
	Pivot float32
}

// TicksConfig picks a tick preset (center, minmax, minmaxcenter, subdivided,
// even) or explicit Values in range units
type TicksConfig struct {
	Preset string
	One    int
	Two    int
	Three  int
	Values []float32
}

// TextsConfig labels Values (in range units) using Format (db, freq, percent,
// pan, int, float)
type TextsConfig struct {
	Values []float32
	Format string
}

type GangConfig struct {
	Name    string   `dd:"+required"`
	Mode    string
	Widgets []string `dd:"+required"`
}

// Defaults fills unset layout fields
func (s *Scene) Defaults() {
	if s.Title == "" {
		s.Title = "faderkit"
	}
	if s.Columns < 1 {
		s.Columns = len(s.Widgets)
	}
	if s.Cell.Width <= 0 {
		s.Cell.Width = 80
	}
	if s.Cell.Height <= 0 {
		s.Cell.Height = 240
	}
	if s.Cell.Label <= 0 {
		s.Cell.Label = 20
	}
}

func LoadMainScene() (*Scene, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	scenePath := filepath.Join(home, ".config", "faderkit", "scene.yaml")
	return LoadScene(scenePath)
}

func LoadScene(path string) (*Scene, error) {
	scene, err := dd.NewFromYAML[Scene](path)
	if err != nil {
		return nil, err
	}
	scene.Defaults()
	slog.Info("loaded scene", "path", path, "widgets", len(scene.Widgets), "gangs", len(scene.Gangs))
	return scene, nil
}
