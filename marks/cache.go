package marks

import (
	"log/slog"

	"github.com/michaelquigley/faderkit"
	"github.com/michaelquigley/faderkit/draw"
)

// cache keys hold the bits of every float input

type shapeKey struct {
	kind     ShapeKind
	length   uint32
	width    uint32
	diameter uint32
	color    draw.ColorBits
}

func (s Shape) key() shapeKey {
	return shapeKey{
		kind:     s.Kind,
		length:   draw.Bits(s.Length),
		width:    draw.Bits(s.Width),
		diameter: draw.Bits(s.Diameter),
		color:    s.Color.Bits(),
	}
}

type tickStyleKey [3]shapeKey

func (s TickStyle) key() tickStyleKey {
	return tickStyleKey{s.Tier1.key(), s.Tier2.key(), s.Tier3.key()}
}

type textStyleKey struct {
	color        draw.ColorBits
	size         uint32
	font         string
	boundsWidth  uint32
	boundsHeight uint32
}

func (s TextStyle) key() textStyleKey {
	return textStyleKey{
		color:        s.Color.Bits(),
		size:         draw.Bits(s.Size),
		font:         s.Font,
		boundsWidth:  draw.Bits(s.BoundsWidth),
		boundsHeight: draw.Bits(s.BoundsHeight),
	}
}

type offsetKey [2]uint32

func newOffsetKey(o faderkit.Offset) offsetKey {
	return offsetKey{draw.Bits(o.X), draw.Bits(o.Y)}
}

type tickPlacementKey struct {
	kind       PlacementKind
	offset     offsetKey
	inside     bool
	fillLength bool
	gap        uint32
}

func (p TickPlacement) key() tickPlacementKey {
	return tickPlacementKey{
		kind:       p.Kind,
		offset:     newOffsetKey(p.Offset),
		inside:     p.Inside,
		fillLength: p.FillLength,
		gap:        draw.Bits(p.Gap),
	}
}

type textPlacementKey struct {
	kind   PlacementKind
	offset offsetKey
	inside bool
	align  Align
}

func (p TextPlacement) key() textPlacementKey {
	return textPlacementKey{kind: p.Kind, offset: newOffsetKey(p.Offset), inside: p.Inside, align: p.Align}
}

type tickLinearKey struct {
	vertical  bool
	bounds    draw.RectBits
	hash      uint64
	style     tickStyleKey
	placement tickPlacementKey
	inverse   bool
}

type tickRadialKey struct {
	center     draw.PointBits
	radius     uint32
	startAngle uint32
	angleSpan  uint32
	inside     bool
	hash       uint64
	style      tickStyleKey
	inverse    bool
}

// TickCache memoises the tick primitives of one widget. Each call variant
// keeps a single entry; any change in its inputs rebuilds it
type TickCache struct {
	linear draw.Cache[tickLinearKey]
	radial draw.Cache[tickRadialKey]
}

// Horizontal is HorizontalTicks through the cache
func (c *TickCache) Horizontal(bounds draw.Rect, group *TickGroup, style TickStyle, placement TickPlacement, inverse bool) *draw.Cached {
	key := tickLinearKey{bounds: bounds.Bits(), hash: group.Hash(), style: style.key(), placement: placement.key(), inverse: inverse}
	return c.linearGet(key, func() draw.Primitive {
		return HorizontalTicks(bounds, group, style, placement, inverse)
	})
}

// Vertical is VerticalTicks through the cache
func (c *TickCache) Vertical(bounds draw.Rect, group *TickGroup, style TickStyle, placement TickPlacement, inverse bool) *draw.Cached {
	key := tickLinearKey{vertical: true, bounds: bounds.Bits(), hash: group.Hash(), style: style.key(), placement: placement.key(), inverse: inverse}
	return c.linearGet(key, func() draw.Primitive {
		return VerticalTicks(bounds, group, style, placement, inverse)
	})
}

func (c *TickCache) linearGet(key tickLinearKey, build func() draw.Primitive) *draw.Cached {
	before := c.linear.Builds()
	entry := c.linear.Get(key, build)
	if c.linear.Builds() != before {
		slog.Debug("rebuilt linear tick marks", "vertical", key.vertical, "hash", key.hash)
	}
	return entry
}

// Radial is RadialTicks through the cache
func (c *TickCache) Radial(center draw.Point, radius, startAngle, angleSpan float32, inside bool, group *TickGroup, style TickStyle, inverse bool) *draw.Cached {
	key := tickRadialKey{
		center:     center.Bits(),
		radius:     draw.Bits(radius),
		startAngle: draw.Bits(startAngle),
		angleSpan:  draw.Bits(angleSpan),
		inside:     inside,
		hash:       group.Hash(),
		style:      style.key(),
		inverse:    inverse,
	}
	before := c.radial.Builds()
	entry := c.radial.Get(key, func() draw.Primitive {
		return RadialTicks(center, radius, startAngle, angleSpan, inside, group, style, inverse)
	})
	if c.radial.Builds() != before {
		slog.Debug("rebuilt radial tick marks", "center", center, "radius", radius, "hash", key.hash)
	}
	return entry
}

// Builds returns how many times any variant has been rebuilt
func (c *TickCache) Builds() int {
	return c.linear.Builds() + c.radial.Builds()
}

type textLinearKey struct {
	vertical  bool
	bounds    draw.RectBits
	hash      uint64
	style     textStyleKey
	placement textPlacementKey
	inverse   bool
}

type textRadialKey struct {
	center      draw.PointBits
	radius      uint32
	startAngle  uint32
	angleSpan   uint32
	hash        uint64
	style       textStyleKey
	hCharOffset uint32
	inverse     bool
}

// TextCache memoises the text primitives of one widget
type TextCache struct {
	linear draw.Cache[textLinearKey]
	radial draw.Cache[textRadialKey]
}

// Horizontal is HorizontalTexts through the cache
func (c *TextCache) Horizontal(bounds draw.Rect, group *TextGroup, style TextStyle, placement TextPlacement, inverse bool) *draw.Cached {
	key := textLinearKey{bounds: bounds.Bits(), hash: group.Hash(), style: style.key(), placement: placement.key(), inverse: inverse}
	return c.linear.Get(key, func() draw.Primitive {
		return HorizontalTexts(bounds, group, style, placement, inverse)
	})
}

// Vertical is VerticalTexts through the cache
func (c *TextCache) Vertical(bounds draw.Rect, group *TextGroup, style TextStyle, placement TextPlacement, inverse bool) *draw.Cached {
	key := textLinearKey{vertical: true, bounds: bounds.Bits(), hash: group.Hash(), style: style.key(), placement: placement.key(), inverse: inverse}
	return c.linear.Get(key, func() draw.Primitive {
		return VerticalTexts(bounds, group, style, placement, inverse)
	})
}

// Radial is RadialTexts through the cache
func (c *TextCache) Radial(center draw.Point, radius, startAngle, angleSpan float32, group *TextGroup, style TextStyle, hCharOffset float32, inverse bool) *draw.Cached {
	key := textRadialKey{
		center:      center.Bits(),
		radius:      draw.Bits(radius),
		startAngle:  draw.Bits(startAngle),
		angleSpan:   draw.Bits(angleSpan),
		hash:        group.Hash(),
		style:       style.key(),
		hCharOffset: draw.Bits(hCharOffset),
		inverse:     inverse,
	}
	return c.radial.Get(key, func() draw.Primitive {
		return RadialTexts(center, radius, startAngle, angleSpan, group, style, hCharOffset, inverse)
	})
}

// Builds returns how many times any variant has been rebuilt
func (c *TextCache) Builds() int {
	return c.linear.Builds() + c.radial.Builds()
}
