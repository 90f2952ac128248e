// Package marks builds tick and text annotations on the unit interval and
// lays them out as draw primitives along linear and radial axes.
package marks

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/michaelquigley/faderkit"
)

// Tier is the visual importance of a tick mark
type Tier int

const (
	TierOne Tier = iota
	TierTwo
	TierThree
)

// NoSides is passed to SubdividedTicks to omit the marks at 0.0 and 1.0
const NoSides Tier = -1

func (t Tier) String() string {
	switch t {
	case TierOne:
		return "one"
	case TierTwo:
		return "two"
	case TierThree:
		return "three"
	default:
		return "none"
	}
}

// TickMark is one position on the unit interval with its tier
type TickMark struct {
	Position faderkit.Normal
	Tier     Tier
}

// TickGroup is an immutable set of tick marks bucketed by tier
type TickGroup struct {
	tiers [3][]faderkit.Normal
	len   int
	hash  uint64
}

// NewTickGroup buckets marks by tier, preserving their order within a tier
// Marks with an unknown tier are dropped
func NewTickGroup(marks ...TickMark) *TickGroup {
	g := &TickGroup{}
	h := xxhash.New()
	writeUint64(h, uint64(len(marks)))
	for _, m := range marks {
		if m.Tier < TierOne || m.Tier > TierThree {
			continue
		}
		writeUint64(h, uint64(m.Tier))
		writeUint64(h, quantize(m.Position))
		g.tiers[m.Tier] = append(g.tiers[m.Tier], m.Position)
		g.len++
	}
	g.hash = h.Sum64()
	return g
}

// CenterTicks is a single mark at 0.5
func CenterTicks(tier Tier) *TickGroup {
	return NewTickGroup(TickMark{faderkit.CenterNormal, tier})
}

// MinMaxTicks is a mark at 0.0 and at 1.0
func MinMaxTicks(tier Tier) *TickGroup {
	return NewTickGroup(
		TickMark{faderkit.MinNormal, tier},
		TickMark{faderkit.MaxNormal, tier},
	)
}

// MinMaxAndCenterTicks is marks at 0.0 and 1.0 in outer tier plus 0.5 in
// center tier
func MinMaxAndCenterTicks(outer, center Tier) *TickGroup {
	return NewTickGroup(
		TickMark{faderkit.MinNormal, outer},
		TickMark{faderkit.CenterNormal, center},
		TickMark{faderkit.MaxNormal, outer},
	)
}

// SubdividedTicks builds a tiered grid: one tier one marks split 0..1 into
// one+1 intervals, each of those gets two tier two marks, and each resulting
// tier two interval gets three tier three marks. When sides is not NoSides,
// marks at 0.0 and 1.0 are added in that tier
func SubdividedTicks(one, two, three int, sides Tier) *TickGroup {
	one, two, three = max(one, 0), max(two, 0), max(three, 0)

	oneRanges := one + 1
	twoRanges := two + 1
	threeRanges := three + 1

	oneSpan := 1.0 / float32(oneRanges)
	twoSpan := oneSpan / float32(twoRanges)
	threeSpan := twoSpan / float32(threeRanges)

	marks := make([]TickMark, 0, one+oneRanges*two+oneRanges*twoRanges*three+2)
	for i1 := 0; i1 < oneRanges; i1++ {
		onePos := float32(i1)*oneSpan + oneSpan
		if i1 != one {
			marks = append(marks, TickMark{faderkit.NewNormal(onePos), TierOne})
		}
		for i2 := 0; i2 < twoRanges; i2++ {
			twoPos := float32(i2)*twoSpan + twoSpan
			if i2 != two {
				marks = append(marks, TickMark{faderkit.NewNormal(onePos - twoPos), TierTwo})
			}
			for i3 := 0; i3 < three; i3++ {
				threePos := float32(i3)*threeSpan + threeSpan
				marks = append(marks, TickMark{faderkit.NewNormal(onePos - twoPos + threePos), TierThree})
			}
		}
	}

	if sides != NoSides {
		marks = append(marks, TickMark{faderkit.MinNormal, sides}, TickMark{faderkit.MaxNormal, sides})
	}
	return NewTickGroup(marks...)
}

// EvenlySpacedTicks places n marks at k/(n-1); a single mark sits at 0.0
func EvenlySpacedTicks(n int, tier Tier) *TickGroup {
	marks := make([]TickMark, 0, max(n, 0))
	switch {
	case n == 1:
		marks = append(marks, TickMark{faderkit.MinNormal, tier})
	case n > 1:
		last := n - 1
		span := 1.0 / float32(last)
		for i := 0; i < last; i++ {
			marks = append(marks, TickMark{faderkit.NewNormal(float32(i) * span), tier})
		}
		marks = append(marks, TickMark{faderkit.MaxNormal, tier})
	}
	return NewTickGroup(marks...)
}

// ValueTicks places a mark in tier at each domain value of r
func ValueTicks[T any](r faderkit.Range[T], tier Tier, values ...T) *TickGroup {
	marks := make([]TickMark, 0, len(values))
	for _, v := range values {
		marks = append(marks, TickMark{r.ToNormal(v), tier})
	}
	return NewTickGroup(marks...)
}

// Tier returns the positions in tier t, or nil when the tier is empty
func (g *TickGroup) Tier(t Tier) []faderkit.Normal {
	if g == nil || t < TierOne || t > TierThree || len(g.tiers[t]) == 0 {
		return nil
	}
	return g.tiers[t]
}

// Marks returns every mark, tier one first
func (g *TickGroup) Marks() []TickMark {
	if g == nil {
		return nil
	}
	out := make([]TickMark, 0, g.len)
	for t := TierOne; t <= TierThree; t++ {
		for _, n := range g.tiers[t] {
			out = append(out, TickMark{n, t})
		}
	}
	return out
}

func (g *TickGroup) Len() int {
	if g == nil {
		return 0
	}
	return g.len
}

func (g *TickGroup) IsEmpty() bool {
	return g.Len() == 0
}

// Hash is the content hash computed when the group was built
func (g *TickGroup) Hash() uint64 {
	if g == nil {
		return 0
	}
	return g.hash
}

func quantize(n faderkit.Normal) uint64 {
	return uint64(n.Float32() * 10_000_000.0)
}

func writeUint64(h *xxhash.Digest, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = h.Write(buf[:])
}
