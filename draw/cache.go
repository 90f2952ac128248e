package draw

import "math"

// Cache memoises one primitive tree per owner; a miss replaces the previous
// entry rather than adding to it
//
// Keys are compared with ==; float fields belong in the key as Bits
//
// Cache is not safe for concurrent use. The zero value is empty and ready to use
type Cache[K comparable] struct {
	key    K
	entry  *Cached
	builds int
}

// Get returns the cached handle when key equals the key of the current entry,
// otherwise it calls build, stores the result under key and returns the new
// handle. A panic in build propagates and leaves the previous entry in place
func (c *Cache[K]) Get(key K, build func() Primitive) *Cached {
	if c.entry != nil && c.key == key {
		return c.entry
	}
	entry := &Cached{Primitive: build()}
	c.key = key
	c.entry = entry
	c.builds++
	return entry
}

// Builds returns how many times the cache has been rebuilt
func (c *Cache[K]) Builds() int {
	return c.builds
}

// Clear drops the current entry
func (c *Cache[K]) Clear() {
	var zero K
	c.key = zero
	c.entry = nil
}

// Bits returns the bit pattern of v for use in cache keys, so that NaN keys
// match themselves and +0 and -0 differ
func Bits(v float32) uint32 {
	return math.Float32bits(v)
}

// PointBits is a Point as cache key bits
type PointBits [2]uint32

func (p Point) Bits() PointBits {
	return PointBits{Bits(p.X), Bits(p.Y)}
}

// RectBits is a Rect as cache key bits
type RectBits [4]uint32

func (r Rect) Bits() RectBits {
	return RectBits{Bits(r.X), Bits(r.Y), Bits(r.W), Bits(r.H)}
}

// ColorBits is a Color as cache key bits
type ColorBits [4]uint32

func (c Color) Bits() ColorBits {
	return ColorBits{Bits(c.R), Bits(c.G), Bits(c.B), Bits(c.A)}
}
