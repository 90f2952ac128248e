package scene

import (
	"fmt"
	"math"

	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
	"github.com/michaelquigley/faderkit/meter"
	"github.com/michaelquigley/faderkit/widget"
)

const (
	cellPadding = 8
	labelSize   = 12
)

// Theme colours the table chrome around the widgets
type Theme struct {
	Background draw.Color
	Label      draw.Color
	Value      draw.Color
}

func DefaultTheme() Theme {
	return Theme{
		Background: draw.RGB(0.16, 0.16, 0.16),
		Label:      widget.LightBackColor,
		Value:      widget.ReductionPeakColor,
	}
}

func newTheme(cfg faderkit.ThemeConfig) (Theme, error) {
	theme := DefaultTheme()
	for _, field := range []struct {
		name  string
		hex   string
		color *draw.Color
	}{
		{"background", cfg.Background, &theme.Background},
		{"label", cfg.Label, &theme.Label},
		{"value", cfg.Value, &theme.Value},
	} {
		if field.hex == "" {
			continue
		}
		c, err := draw.ParseHex(field.hex)
		if err != nil {
			return theme, fmt.Errorf("theme %s: %w", field.name, err)
		}
		*field.color = c
	}
	return theme, nil
}

// Cell is the table cell of one entry: a label row, the widget and a value
// row, relative to the board origin
type Cell struct {
	Label  draw.Rect
	Widget draw.Rect
	Value  draw.Rect
}

// Pointer is one frame of pointer input in screen coordinates
type Pointer struct {
	Position    draw.Point
	Down        bool
	Pressed     bool
	DoubleClick bool
	Modifier    bool
	Wheel       float32
}

// Board is a built scene laid out as a table with fixed width columns
type Board struct {
	Title  string
	Theme  Theme
	Origin draw.Point

	entries []*Entry
	cells   []Cell
	size    draw.Point
	cursor  *draw.Point
	active  *Entry
}

func newBoard(s *faderkit.Scene, theme Theme, entries []*Entry) *Board {
	s.Defaults()
	cells, size := layout(s.Cell, s.Columns, len(entries))
	return &Board{Title: s.Title, Theme: theme, entries: entries, cells: cells, size: size}
}

// layout wraps entries into bands of columns; every band is a label row, a
// widget row and a value row
func layout(cell faderkit.CellConfig, columns, n int) ([]Cell, draw.Point) {
	if columns < 1 {
		columns = 1
	}
	band := cell.Label*2 + cell.Height
	cells := make([]Cell, n)
	for i := range cells {
		x := float32(i%columns) * cell.Width
		y := float32(i/columns) * band
		cells[i] = Cell{
			Label:  draw.Rect{X: x, Y: y, W: cell.Width, H: cell.Label},
			Widget: draw.Rect{X: x + cellPadding, Y: y + cell.Label + cellPadding, W: cell.Width - 2*cellPadding, H: cell.Height - 2*cellPadding},
			Value:  draw.Rect{X: x, Y: y + cell.Label + cell.Height, W: cell.Width, H: cell.Label},
		}
	}
	rows := (n + columns - 1) / columns
	return cells, draw.Point{X: float32(min(n, columns)) * cell.Width, Y: float32(rows) * band}
}

func (b *Board) Entries() []*Entry {
	return b.entries
}

// Entry finds an entry by name
func (b *Board) Entry(name string) *Entry {
	for _, e := range b.entries {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Size is the extent of the whole table
func (b *Board) Size() draw.Point {
	return b.size
}

// Cell returns the screen space cell of entry i
func (b *Board) Cell(i int) Cell {
	c := b.cells[i]
	return Cell{
		Label:  c.Label.Translate(b.Origin.X, b.Origin.Y),
		Widget: c.Widget.Translate(b.Origin.X, b.Origin.Y),
		Value:  c.Value.Translate(b.Origin.X, b.Origin.Y),
	}
}

// Render draws the whole board for the last pointer position
func (b *Board) Render() draw.Primitive {
	children := make([]draw.Primitive, 0, 1+3*len(b.entries))
	children = append(children, draw.Quad{
		Bounds: draw.Rect{X: b.Origin.X, Y: b.Origin.Y, W: b.size.X, H: b.size.Y},
		Fill:   b.Theme.Background,
	})
	for i, e := range b.entries {
		c := b.Cell(i)
		children = append(children,
			draw.Text{Bounds: c.Label, Content: e.Name, Size: labelSize, Color: b.Theme.Label, HAlign: draw.AlignCenter, VAlign: draw.AlignMiddle},
			e.Render(widget.Frame{Bounds: c.Widget, Cursor: b.cursor, Dragging: b.active == e}),
			draw.Text{Bounds: c.Value, Content: e.Readout(), Size: labelSize, Color: b.Theme.Value, HAlign: draw.AlignCenter, VAlign: draw.AlignMiddle},
		)
	}
	return draw.NewGroup(children...)
}

// Input routes one frame of pointer input; returns true when any value
// changed
func (b *Board) Input(p Pointer) bool {
	pos := p.Position
	b.cursor = &pos

	if b.active != nil {
		e := b.active
		if !p.Down {
			e.gesture.Release()
			b.active = nil
			return false
		}
		return b.drag(e, p)
	}

	i := b.entryAt(p.Position)
	if i < 0 {
		return false
	}
	e := b.entries[i]
	if e.param == nil {
		return false
	}

	switch {
	case p.DoubleClick:
		return b.apply(e, func() bool {
			changed := e.gesture.DoubleClick(e.param)
			if e.param2 != nil && !e.param2.IsDefault() {
				e.param2.Reset()
				changed = true
			}
			return changed
		})
	case p.Pressed:
		b.active = e
		switch e.axis {
		case axisHorizontal:
			e.gesture.Grab(e.param, p.Position.X)
		case axisPoint:
			e.gesture.Grab(e.param, 0)
			return b.drag(e, p)
		default:
			e.gesture.Grab(e.param, p.Position.Y)
		}
		return false
	case p.Wheel != 0:
		return b.apply(e, func() bool { return e.gesture.Wheel(e.param, p.Wheel, p.Modifier) })
	}
	return false
}

func (b *Board) drag(e *Entry, p Pointer) bool {
	bounds := b.Cell(b.index(e)).Widget
	return b.apply(e, func() bool {
		switch e.axis {
		case axisHorizontal:
			return e.gesture.DragHorizontal(e.param, p.Position, bounds, p.Modifier)
		case axisPoint:
			return e.pad.PointAt(widget.Frame{Bounds: bounds}, p.Position)
		default:
			return e.gesture.DragVertical(e.param, p.Position, bounds, p.Modifier)
		}
	})
}

// apply runs change and propagates the result through the entry's gang
func (b *Board) apply(e *Entry, change func() bool) bool {
	previous := e.param.Normal
	if !change() {
		return false
	}
	if e.gang != nil {
		e.gang.Follow(e.param, previous)
	}
	return true
}

func (b *Board) entryAt(pos draw.Point) int {
	for i := range b.entries {
		if b.Cell(i).Widget.Contains(pos) {
			return i
		}
	}
	return -1
}

func (b *Board) index(e *Entry) int {
	for i, other := range b.entries {
		if other == e {
			return i
		}
	}
	return -1
}

// Feed folds one meter reading into every meter on the board
//
// Reduction meters show the gain reduction a 4:1 compressor with a -18 dB
// threshold would apply to the left peak
func (b *Board) Feed(r meter.Reading) {
	for _, e := range b.entries {
		switch {
		case e.dbMeter != nil:
			left, right := e.ballistics.Update(r.Output, r.Elapsed)
			e.dbMeter.Left = left
			if e.dbMeter.Right != nil && right != nil {
				*e.dbMeter.Right = *right
			}
		case e.phase != nil:
			e.phase.Value = faderkit.NewNormal((r.Correlation + 1.0) * 0.5)
		case e.reduction != nil:
			gr := reduction(r.Output.LeftPeakDB)
			left, _ := e.ballistics.Update(meter.Output{LeftPeakDB: &gr, LeftRMSDB: &gr}, r.Elapsed)
			e.reduction.Bar = left
		}
	}
}

func reduction(peakDB *float32) float32 {
	const threshold, ratio = -18.0, 4.0
	if peakDB == nil || math.IsInf(float64(*peakDB), -1) || *peakDB <= threshold {
		return 0
	}
	return (*peakDB - threshold) * (1.0 - 1.0/ratio)
}
